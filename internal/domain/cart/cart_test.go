package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartItem(t *testing.T) {
	cartID := uuid.New()
	productID := uuid.New()

	t.Run("valid item", func(t *testing.T) {
		item, err := NewCartItem(cartID, productID, "Bidon 10L", decimal.NewFromInt(1500), "", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, item.Quantity)
		assert.True(t, item.Subtotal().Equal(decimal.NewFromInt(4500)))
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := NewCartItem(cartID, productID, "Bidon 10L", decimal.NewFromInt(1500), "", 0)
		assert.Error(t, err)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewCartItem(cartID, productID, "Bidon 10L", decimal.NewFromInt(1500), "", -2)
		assert.Error(t, err)
	})
}

func TestValidateProposed(t *testing.T) {
	p := uuid.New()

	t.Run("valid lines", func(t *testing.T) {
		assert.NoError(t, ValidateProposed([]ProposedLine{
			{ProductID: p, Quantity: 1},
			{ProductID: uuid.New(), Quantity: 7},
		}))
	})

	t.Run("empty proposal", func(t *testing.T) {
		assert.NoError(t, ValidateProposed(nil))
		assert.NoError(t, ValidateProposed([]ProposedLine{}))
	})

	t.Run("any bad line rejects the whole proposal", func(t *testing.T) {
		assert.Error(t, ValidateProposed([]ProposedLine{
			{ProductID: p, Quantity: 2},
			{ProductID: uuid.New(), Quantity: 0},
		}))
		assert.Error(t, ValidateProposed([]ProposedLine{
			{ProductID: p, Quantity: -1},
		}))
		assert.Error(t, ValidateProposed([]ProposedLine{
			{ProductID: uuid.Nil, Quantity: 1},
		}))
	})
}

func TestCollapseProposed(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	t.Run("duplicates sum into the first occurrence", func(t *testing.T) {
		got := CollapseProposed([]ProposedLine{
			{ProductID: a, Quantity: 1},
			{ProductID: b, Quantity: 5},
			{ProductID: a, Quantity: 2},
		})
		require.Len(t, got, 2)
		assert.Equal(t, a, got[0].ProductID)
		assert.Equal(t, 3, got[0].Quantity)
		assert.Equal(t, b, got[1].ProductID)
		assert.Equal(t, 5, got[1].Quantity)
	})

	t.Run("no duplicates passes through", func(t *testing.T) {
		lines := []ProposedLine{{ProductID: a, Quantity: 1}, {ProductID: b, Quantity: 2}}
		assert.Equal(t, lines, CollapseProposed(lines))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, CollapseProposed(nil))
	})
}
