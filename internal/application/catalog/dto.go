package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/catalog"
	"github.com/h2ogo/backend/internal/domain/shared"
)

// CreateProductInput contains input for publishing a product
type CreateProductInput struct {
	Title       string
	Description string
	Price       string
	Stock       int
	Capacity    string
	Location    string
	ImageURL    string
	CategoryID  uuid.UUID
	SellerID    uuid.UUID
}

// UpdateProductInput contains input for editing a publication
type UpdateProductInput struct {
	ProductID   uuid.UUID
	ActorID     uuid.UUID
	Title       string
	Description string
	Price       string
	Stock       int
	Capacity    string
	Location    string
	ImageURL    string
	CategoryID  uuid.UUID
}

// ListProductsInput contains catalog listing filters
type ListProductsInput struct {
	Page       int
	PageSize   int
	Search     string
	CategoryID uuid.UUID
	Featured   *bool
	OrderBy    string
	OrderDir   string
}

// ProductDTO is the public view of a publication
type ProductDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Capacity    string `json:"capacity,omitempty"`
	Location    string `json:"location,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Featured    bool   `json:"featured"`
	Status      string `json:"status"`
	CategoryID  string `json:"categoryId"`
	SellerID    string `json:"sellerId"`
	CreatedAt   string `json:"createdAt"`
}

// CategoryDTO is the public view of a category
type CategoryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	IconURL     string `json:"iconUrl,omitempty"`
}

// UploadURLRequest contains input for requesting a presigned image upload
type UploadURLRequest struct {
	FileName    string
	ContentType string
	SellerID    uuid.UUID
}

// UploadURLResult carries the presigned upload URL and the storage key
type UploadURLResult struct {
	UploadURL string    `json:"uploadUrl"`
	ObjectKey string    `json:"objectKey"`
	PublicURL string    `json:"publicUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ToProductDTO converts a product to its public view
func ToProductDTO(p *catalog.Product) ProductDTO {
	return ProductDTO{
		ID:          p.GetID().String(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
		Capacity:    p.Capacity,
		Location:    p.Location,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		Status:      string(p.Status),
		CategoryID:  p.CategoryID.String(),
		SellerID:    p.SellerID.String(),
		CreatedAt:   p.GetCreatedAt().Format(time.RFC3339),
	}
}

// ToProductDTOs converts a slice of products
func ToProductDTOs(products []catalog.Product) []ProductDTO {
	dtos := make([]ProductDTO, 0, len(products))
	for i := range products {
		dtos = append(dtos, ToProductDTO(&products[i]))
	}
	return dtos
}

// ToCategoryDTO converts a category to its public view
func ToCategoryDTO(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.GetID().String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IconURL:     c.IconURL,
	}
}

// toFilter converts listing input to a repository filter
func toFilter(input ListProductsInput) shared.Filter {
	filter := shared.DefaultFilter()
	if input.Page > 0 {
		filter.Page = input.Page
	}
	if input.PageSize > 0 && input.PageSize <= 100 {
		filter.PageSize = input.PageSize
	}
	if input.Search != "" {
		filter.Search = input.Search
	}
	if input.OrderBy != "" {
		filter.OrderBy = input.OrderBy
	}
	if input.OrderDir == "asc" || input.OrderDir == "desc" {
		filter.OrderDir = input.OrderDir
	}
	if input.CategoryID != uuid.Nil {
		filter.Filters["category_id"] = input.CategoryID
	}
	if input.Featured != nil {
		filter.Filters["featured"] = *input.Featured
	}
	// Listings only show active publications
	filter.Filters["status"] = string(catalog.ProductStatusActive)
	return filter
}
