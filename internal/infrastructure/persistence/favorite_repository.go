package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/catalog"
	"github.com/h2ogo/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormFavoriteRepository implements FavoriteRepository using GORM
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// Find returns the favorite link for a (user, product) pair
func (r *GormFavoriteRepository) Find(ctx context.Context, userID, productID uuid.UUID) (*catalog.Favorite, error) {
	var favorite catalog.Favorite
	if err := r.db.WithContext(ctx).
		First(&favorite, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &favorite, nil
}

// FindByUserID returns all favorites of a user, newest first
func (r *GormFavoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]catalog.Favorite, error) {
	var favorites []catalog.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}
	return favorites, nil
}

// Save creates a favorite link
func (r *GormFavoriteRepository) Save(ctx context.Context, favorite *catalog.Favorite) error {
	return r.db.WithContext(ctx).Save(favorite).Error
}

// Delete removes a favorite link
func (r *GormFavoriteRepository) Delete(ctx context.Context, userID, productID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&catalog.Favorite{}, "user_id = ? AND product_id = ?", userID, productID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ catalog.FavoriteRepository = (*GormFavoriteRepository)(nil)
