package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the lifecycle status of a publication
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Product represents a water product publication listed by a seller.
// Deactivation is the soft-delete: inactive products disappear from
// listings but stay resolvable for carts that still reference them.
type Product struct {
	shared.BaseAggregateRoot
	Title       string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Stock       int             `gorm:"not null;default:0"`
	Capacity    string          `gorm:"type:varchar(50)"`
	Location    string          `gorm:"type:varchar(200)"`
	ImageURL    string          `gorm:"type:varchar(500)"`
	Featured    bool            `gorm:"not null;default:false"`
	Status      ProductStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SellerID    uuid.UUID       `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new active product publication
func NewProduct(title, description string, price decimal.Decimal, stock int, categoryID, sellerID uuid.UUID) (*Product, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if categoryID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}
	if sellerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SELLER", "Seller is required")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Title:             strings.TrimSpace(title),
		Description:       strings.TrimSpace(description),
		Price:             price,
		Stock:             stock,
		Status:            ProductStatusActive,
		CategoryID:        categoryID,
		SellerID:          sellerID,
	}, nil
}

// Update modifies the editable publication fields
func (p *Product) Update(title, description string, price decimal.Decimal, stock int, categoryID uuid.UUID) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}
	if categoryID == uuid.Nil {
		return shared.NewDomainError("INVALID_CATEGORY", "Category is required")
	}

	p.Title = strings.TrimSpace(title)
	p.Description = strings.TrimSpace(description)
	p.Price = price
	p.Stock = stock
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetDetails sets the optional capacity and location fields
func (p *Product) SetDetails(capacity, location string) {
	p.Capacity = strings.TrimSpace(capacity)
	p.Location = strings.TrimSpace(location)
	p.UpdatedAt = time.Now()
}

// SetImageURL sets the publication image
func (p *Product) SetImageURL(imageURL string) error {
	if imageURL != "" && len(imageURL) > 500 {
		return shared.NewDomainError("INVALID_IMAGE", "Image URL cannot exceed 500 characters")
	}
	p.ImageURL = imageURL
	p.UpdatedAt = time.Now()
	return nil
}

// SetFeatured marks or unmarks the publication as featured
func (p *Product) SetFeatured(featured bool) {
	p.Featured = featured
	p.UpdatedAt = time.Now()
}

// Deactivate removes the publication from listings
func (p *Product) Deactivate() error {
	if p.Status == ProductStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Publication is already inactive")
	}
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Activate restores the publication to listings
func (p *Product) Activate() error {
	if p.Status == ProductStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Publication is already active")
	}
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// IsActive returns true if the publication is listed
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// IsOwnedBy returns true if the given user published the product
func (p *Product) IsOwnedBy(userID uuid.UUID) bool {
	return p.SellerID == userID
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot be empty")
	}
	if len(title) > 200 {
		return shared.NewDomainError("INVALID_TITLE", "Title cannot exceed 200 characters")
	}
	return nil
}
