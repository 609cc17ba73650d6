package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/cart"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every statement on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&cart.Cart{}, &cart.CartItem{}))
	return db
}

func newItem(t *testing.T, title string, price int64, quantity int) cart.CartItem {
	t.Helper()
	item, err := cart.NewCartItem(uuid.Nil, uuid.New(), title, decimal.NewFromInt(price), "", quantity)
	require.NoError(t, err)
	return *item
}

func TestGormCartRepository_ReplaceItems(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the cart row on first use", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		userID := uuid.New()

		persisted, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{
			newItem(t, "Bidon 10L", 1500, 2),
		})
		require.NoError(t, err)
		require.Len(t, persisted, 1)
		assert.Equal(t, "Bidon 10L", persisted[0].Title)
		assert.Equal(t, 2, persisted[0].Quantity)
		assert.NotEqual(t, uuid.Nil, persisted[0].CartID)
	})

	t.Run("replaces previous content entirely", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		userID := uuid.New()

		_, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{
			newItem(t, "Bidon 10L", 1500, 2),
			newItem(t, "Pack 6x1.5L", 2500, 1),
		})
		require.NoError(t, err)

		persisted, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{
			newItem(t, "Bidon 20L", 2800, 1),
		})
		require.NoError(t, err)
		require.Len(t, persisted, 1)
		assert.Equal(t, "Bidon 20L", persisted[0].Title)

		items, err := repo.FindItemsByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("empty replacement empties the cart", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		userID := uuid.New()

		_, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{
			newItem(t, "Bidon 10L", 1500, 3),
		})
		require.NoError(t, err)

		persisted, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{})
		require.NoError(t, err)
		assert.Empty(t, persisted)
	})

	t.Run("carts of different users stay isolated", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		alice := uuid.New()
		bob := uuid.New()

		_, err := repo.ReplaceItems(ctx, alice, []cart.CartItem{newItem(t, "Bidon 10L", 1500, 1)})
		require.NoError(t, err)
		_, err = repo.ReplaceItems(ctx, bob, []cart.CartItem{newItem(t, "Pack 6x1.5L", 2500, 4)})
		require.NoError(t, err)

		aliceItems, err := repo.FindItemsByUserID(ctx, alice)
		require.NoError(t, err)
		require.Len(t, aliceItems, 1)
		assert.Equal(t, "Bidon 10L", aliceItems[0].Title)

		bobItems, err := repo.FindItemsByUserID(ctx, bob)
		require.NoError(t, err)
		require.Len(t, bobItems, 1)
		assert.Equal(t, "Pack 6x1.5L", bobItems[0].Title)
	})
}

func TestGormCartRepository_FindItemsByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("user without a cart gets an empty slice", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))

		items, err := repo.FindItemsByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("snapshots round-trip", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		userID := uuid.New()
		item := newItem(t, "Bidon 10L", 1500, 2)

		_, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{item})
		require.NoError(t, err)

		items, err := repo.FindItemsByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, item.ProductID, items[0].ProductID)
		assert.True(t, items[0].UnitPrice.Equal(decimal.NewFromInt(1500)))
	})
}

func TestGormCartRepository_ClearByUserID(t *testing.T) {
	ctx := context.Background()

	t.Run("clears a populated cart", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		userID := uuid.New()

		_, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{
			newItem(t, "Bidon 10L", 1500, 2),
		})
		require.NoError(t, err)

		require.NoError(t, repo.ClearByUserID(ctx, userID))

		items, err := repo.FindItemsByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("clearing an absent cart is a no-op", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		require.NoError(t, repo.ClearByUserID(ctx, uuid.New()))
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		repo := NewGormCartRepository(newTestDB(t))
		userID := uuid.New()

		_, err := repo.ReplaceItems(ctx, userID, []cart.CartItem{newItem(t, "Bidon 10L", 1500, 1)})
		require.NoError(t, err)

		require.NoError(t, repo.ClearByUserID(ctx, userID))
		require.NoError(t, repo.ClearByUserID(ctx, userID))
	})
}
