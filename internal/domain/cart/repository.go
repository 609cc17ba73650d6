package cart

import (
	"context"

	"github.com/google/uuid"
)

// CartRepository defines the interface for cart persistence.
type CartRepository interface {
	// FindItemsByUserID returns the persisted cart lines for a user in
	// insertion order. A user without a cart row gets an empty slice.
	FindItemsByUserID(ctx context.Context, userID uuid.UUID) ([]CartItem, error)

	// ReplaceItems atomically swaps the user's cart content for the
	// given lines, creating the cart row if needed, and returns the
	// persisted lines re-read after commit. On failure the previous
	// content is untouched.
	ReplaceItems(ctx context.Context, userID uuid.UUID, items []CartItem) ([]CartItem, error)

	// ClearByUserID removes every line from the user's cart. Clearing
	// an absent or empty cart is a no-op.
	ClearByUserID(ctx context.Context, userID uuid.UUID) error
}
