package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/cart"
	"github.com/h2ogo/backend/internal/domain/catalog"
	"github.com/h2ogo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProductLookup resolves product references during reconciliation.
// Deactivated products still resolve; only a missing row is an error.
type ProductLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error)
}

// ReconcilerService validates client-proposed carts against the
// catalog and atomically replaces the persisted cart. The client is
// never trusted for titles, prices or images.
type ReconcilerService struct {
	cartRepo cart.CartRepository
	products ProductLookup
	logger   *zap.Logger
}

// NewReconcilerService creates a new cart reconciler service
func NewReconcilerService(cartRepo cart.CartRepository, products ProductLookup, logger *zap.Logger) *ReconcilerService {
	return &ReconcilerService{
		cartRepo: cartRepo,
		products: products,
		logger:   logger,
	}
}

// Reconcile replaces the user's persisted cart with a validated copy
// of the proposed lines. Validation happens before any storage access
// and any failure leaves the previous cart untouched. Concurrent
// reconciles for the same user are serialized by the storage layer and
// resolve last-writer-wins.
func (s *ReconcilerService) Reconcile(ctx context.Context, userID uuid.UUID, proposed []cart.ProposedLine) (*CartDTO, error) {
	if err := cart.ValidateProposed(proposed); err != nil {
		return nil, err
	}

	collapsed := cart.CollapseProposed(proposed)

	items := make([]cart.CartItem, 0, len(collapsed))
	for _, line := range collapsed {
		product, err := s.products.FindByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("NOT_FOUND",
					fmt.Sprintf("Product %s does not exist", line.ProductID))
			}
			return nil, s.storageFailure("product lookup", err)
		}

		item, err := cart.NewCartItem(uuid.Nil, product.GetID(), product.Title, product.Price, product.ImageURL, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	persisted, err := s.cartRepo.ReplaceItems(ctx, userID, items)
	if err != nil {
		return nil, s.storageFailure("cart replace", err)
	}

	s.logger.Info("cart reconciled",
		zap.String("user_id", userID.String()),
		zap.Int("items", len(persisted)))

	dto := ToCartDTO(persisted)
	return &dto, nil
}

// Fetch returns the user's persisted cart. A user without a cart gets
// an empty cart view.
func (s *ReconcilerService) Fetch(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	items, err := s.cartRepo.FindItemsByUserID(ctx, userID)
	if err != nil {
		return nil, s.storageFailure("cart fetch", err)
	}
	dto := ToCartDTO(items)
	return &dto, nil
}

// Clear empties the user's persisted cart. Clearing an already empty
// or absent cart succeeds.
func (s *ReconcilerService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.ClearByUserID(ctx, userID); err != nil {
		return s.storageFailure("cart clear", err)
	}
	s.logger.Info("cart cleared", zap.String("user_id", userID.String()))
	return nil
}

// storageFailure maps infrastructure errors to a retryable storage
// error, passing domain errors through untouched.
func (s *ReconcilerService) storageFailure(op string, err error) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}
	s.logger.Error("cart storage failure", zap.String("op", op), zap.Error(err))
	return shared.ErrStorageUnavailable
}
