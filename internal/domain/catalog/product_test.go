package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	categoryID := uuid.New()
	sellerID := uuid.New()

	t.Run("valid product", func(t *testing.T) {
		p, err := NewProduct("Bidon 10L", "Eau minérale en bidon", decimal.NewFromInt(1500), 40, categoryID, sellerID)
		require.NoError(t, err)
		assert.Equal(t, "Bidon 10L", p.Title)
		assert.True(t, p.Price.Equal(decimal.NewFromInt(1500)))
		assert.Equal(t, ProductStatusActive, p.Status)
		assert.True(t, p.IsActive())
		assert.True(t, p.IsOwnedBy(sellerID))
		assert.False(t, p.IsOwnedBy(uuid.New()))
	})

	t.Run("empty title", func(t *testing.T) {
		_, err := NewProduct("  ", "", decimal.NewFromInt(100), 1, categoryID, sellerID)
		assert.Error(t, err)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewProduct("Bidon", "", decimal.NewFromInt(-1), 1, categoryID, sellerID)
		assert.Error(t, err)
	})

	t.Run("negative stock", func(t *testing.T) {
		_, err := NewProduct("Bidon", "", decimal.NewFromInt(100), -1, categoryID, sellerID)
		assert.Error(t, err)
	})

	t.Run("missing category", func(t *testing.T) {
		_, err := NewProduct("Bidon", "", decimal.NewFromInt(100), 1, uuid.Nil, sellerID)
		assert.Error(t, err)
	})
}

func TestProduct_Update(t *testing.T) {
	categoryID := uuid.New()
	p, err := NewProduct("Bidon 10L", "", decimal.NewFromInt(1500), 40, categoryID, uuid.New())
	require.NoError(t, err)
	version := p.GetVersion()

	newCategory := uuid.New()
	require.NoError(t, p.Update("Bidon 20L", "Grand format", decimal.NewFromInt(2800), 15, newCategory))
	assert.Equal(t, "Bidon 20L", p.Title)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(2800)))
	assert.Equal(t, 15, p.Stock)
	assert.Equal(t, newCategory, p.CategoryID)
	assert.Equal(t, version+1, p.GetVersion())

	assert.Error(t, p.Update("", "", decimal.NewFromInt(1), 1, newCategory))
}

func TestProduct_DeactivateActivate(t *testing.T) {
	p, err := NewProduct("Bidon 10L", "", decimal.NewFromInt(1500), 40, uuid.New(), uuid.New())
	require.NoError(t, err)

	require.NoError(t, p.Deactivate())
	assert.False(t, p.IsActive())
	assert.Error(t, p.Deactivate())

	require.NoError(t, p.Activate())
	assert.True(t, p.IsActive())
	assert.Error(t, p.Activate())
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "eau-en-bouteille", Slugify("Eau en bouteille"))
	assert.Equal(t, "bidons-20l", Slugify("  Bidons  20L "))
	assert.Equal(t, "packs", Slugify("Packs!"))
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory("Eau en bouteille", "Bouteilles individuelles")
	require.NoError(t, err)
	assert.Equal(t, "Eau en bouteille", c.Name)
	assert.Equal(t, "eau-en-bouteille", c.Slug)

	_, err = NewCategory("  ", "")
	assert.Error(t, err)
}

func TestNewFavorite(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()

	f, err := NewFavorite(userID, productID)
	require.NoError(t, err)
	assert.Equal(t, userID, f.UserID)
	assert.Equal(t, productID, f.ProductID)

	_, err = NewFavorite(uuid.Nil, productID)
	assert.Error(t, err)
	_, err = NewFavorite(userID, uuid.Nil)
	assert.Error(t, err)
}
