package cart

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Cart is the single persisted cart of a user. One row per user,
// created lazily on the first reconcile.
type Cart struct {
	shared.BaseEntity
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (Cart) TableName() string {
	return "carts"
}

// NewCart creates an empty cart for a user
func NewCart(userID uuid.UUID) (*Cart, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "User is required")
	}
	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
	}, nil
}

// CartItem is a validated line in a persisted cart. Title, unit price
// and image are snapshots taken from the catalog at reconcile time,
// never from the client.
type CartItem struct {
	shared.BaseEntity
	CartID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Title     string          `gorm:"type:varchar(200);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ImageURL  string          `gorm:"type:varchar(500)"`
	Quantity  int             `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CartItem) TableName() string {
	return "cart_items"
}

// NewCartItem creates a validated cart line with catalog snapshots
func NewCartItem(cartID, productID uuid.UUID, title string, unitPrice decimal.Decimal, imageURL string, quantity int) (*CartItem, error) {
	if quantity < 1 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be at least 1")
	}
	return &CartItem{
		BaseEntity: shared.NewBaseEntity(),
		CartID:     cartID,
		ProductID:  productID,
		Title:      title,
		UnitPrice:  unitPrice,
		ImageURL:   imageURL,
		Quantity:   quantity,
	}, nil
}

// Subtotal returns unit price times quantity
func (i *CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ProposedLine is one line of a client-submitted cart. Only the
// product reference and quantity are trusted as input.
type ProposedLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// ValidateProposed rejects the whole proposal if any line carries a
// missing product reference or a quantity below 1. Nothing is looked
// up or written before this passes.
func ValidateProposed(lines []ProposedLine) error {
	for i, line := range lines {
		if line.ProductID == uuid.Nil {
			return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Item %d is missing a product reference", i))
		}
		if line.Quantity < 1 {
			return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Item %d has an invalid quantity, must be at least 1", i))
		}
	}
	return nil
}

// CollapseProposed merges duplicate product references by summing
// their quantities. The first occurrence keeps its position.
func CollapseProposed(lines []ProposedLine) []ProposedLine {
	collapsed := make([]ProposedLine, 0, len(lines))
	index := make(map[uuid.UUID]int, len(lines))
	for _, line := range lines {
		if at, seen := index[line.ProductID]; seen {
			collapsed[at].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(collapsed)
		collapsed = append(collapsed, line)
	}
	return collapsed
}
