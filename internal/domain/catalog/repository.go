package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/shared"
)

// ProductRepository defines the interface for product persistence.
// FindByID resolves products regardless of status so carts that
// reference a deactivated product keep working.
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindBySellerID(ctx context.Context, sellerID uuid.UUID, filter shared.Filter) ([]Product, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// CategoryRepository defines the interface for category persistence
type CategoryRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindAll(ctx context.Context) ([]Category, error)
	Save(ctx context.Context, category *Category) error
}

// FavoriteRepository defines the interface for favorite persistence
type FavoriteRepository interface {
	Find(ctx context.Context, userID, productID uuid.UUID) (*Favorite, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]Favorite, error)
	Save(ctx context.Context, favorite *Favorite) error
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
