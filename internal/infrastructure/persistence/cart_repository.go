package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/cart"
	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM
type GormCartRepository struct {
	db *gorm.DB
}

// NewGormCartRepository creates a new GormCartRepository
func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// FindItemsByUserID returns the persisted cart lines in insertion order.
// A user without a cart row gets an empty slice.
func (r *GormCartRepository) FindItemsByUserID(ctx context.Context, userID uuid.UUID) ([]cart.CartItem, error) {
	var c cart.Cart
	if err := r.db.WithContext(ctx).First(&c, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []cart.CartItem{}, nil
		}
		return nil, err
	}

	var items []cart.CartItem
	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", c.ID).
		Order("created_at ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceItems swaps the cart content inside one transaction. The cart
// row is created on first use. Any failure rolls back and leaves the
// previous content untouched. The persisted lines are re-read after
// commit so callers see exactly what was stored.
func (r *GormCartRepository) ReplaceItems(ctx context.Context, userID uuid.UUID, items []cart.CartItem) ([]cart.CartItem, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c cart.Cart
		err := tx.First(&c, "user_id = ?", userID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fresh, err := cart.NewCart(userID)
			if err != nil {
				return err
			}
			if err := tx.Create(fresh).Error; err != nil {
				return err
			}
			c = *fresh
		} else if err != nil {
			return err
		}

		if err := tx.Where("cart_id = ?", c.ID).Delete(&cart.CartItem{}).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}

		for i := range items {
			items[i].CartID = c.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return nil, err
	}

	return r.FindItemsByUserID(ctx, userID)
}

// ClearByUserID removes every line from the user's cart. Clearing an
// absent or empty cart is a no-op.
func (r *GormCartRepository) ClearByUserID(ctx context.Context, userID uuid.UUID) error {
	var c cart.Cart
	if err := r.db.WithContext(ctx).First(&c, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return r.db.WithContext(ctx).Where("cart_id = ?", c.ID).Delete(&cart.CartItem{}).Error
}

var _ cart.CartRepository = (*GormCartRepository)(nil)
