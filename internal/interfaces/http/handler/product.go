package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/h2ogo/backend/internal/application/catalog"
)

// ProductHandler handles product publication endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
	imageService   *catalogapp.ImageService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService, imageService *catalogapp.ImageService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		imageService:   imageService,
	}
}

// CreateProductRequest represents a request to publish a product
type CreateProductRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Price       string `json:"price" binding:"required"`
	Stock       int    `json:"stock" binding:"omitempty,min=0"`
	Capacity    string `json:"capacity" binding:"omitempty,max=50"`
	Location    string `json:"location" binding:"omitempty,max=200"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,max=500"`
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
}

// UpdateProductRequest represents a request to edit a publication
type UpdateProductRequest struct {
	Title       string `json:"title" binding:"required,min=3,max=200"`
	Description string `json:"description" binding:"omitempty,max=5000"`
	Price       string `json:"price" binding:"required"`
	Stock       int    `json:"stock" binding:"omitempty,min=0"`
	Capacity    string `json:"capacity" binding:"omitempty,max=50"`
	Location    string `json:"location" binding:"omitempty,max=200"`
	ImageURL    string `json:"imageUrl" binding:"omitempty,max=500"`
	CategoryID  string `json:"categoryId" binding:"required,uuid"`
}

// ListProductsRequest represents catalog listing query parameters
type ListProductsRequest struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"pageSize" binding:"omitempty,min=1,max=100"`
	Search     string `form:"search"`
	CategoryID string `form:"categoryId" binding:"omitempty,uuid"`
	Featured   *bool  `form:"featured"`
	OrderBy    string `form:"orderBy"`
	OrderDir   string `form:"orderDir" binding:"omitempty,oneof=asc desc"`
}

// UploadURLRequest represents a request for a presigned image upload URL
type UploadURLRequest struct {
	FileName    string `json:"fileName" binding:"required,max=255"`
	ContentType string `json:"contentType" binding:"required"`
}

// FavoriteResponse reports the favorite state after a toggle
type FavoriteResponse struct {
	ProductID string `json:"productId"`
	Favorited bool   `json:"favorited"`
}

// Create publishes a new product for the authenticated seller
func (h *ProductHandler) Create(c *gin.Context) {
	sellerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), catalogapp.CreateProductInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Capacity:    req.Capacity,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		CategoryID:  categoryID,
		SellerID:    sellerID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// GetByID returns one publication
func (h *ProductHandler) GetByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	// Viewer may be anonymous; inactive products stay hidden then
	viewerID, _ := getUserID(c)

	product, err := h.productService.GetProduct(c.Request.Context(), productID, viewerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// List returns a paginated catalog page of active publications
func (h *ProductHandler) List(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	input := catalogapp.ListProductsInput{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
		Featured: req.Featured,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			h.BadRequest(c, "Invalid category ID format")
			return
		}
		input.CategoryID = categoryID
	}

	page, err := h.productService.ListProducts(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// ListByCategory returns the active publications within one category
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	page, err := h.productService.ListProducts(c.Request.Context(), catalogapp.ListProductsInput{
		Page:       req.Page,
		PageSize:   req.PageSize,
		Search:     req.Search,
		CategoryID: categoryID,
		Featured:   req.Featured,
		OrderBy:    req.OrderBy,
		OrderDir:   req.OrderDir,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update edits a publication owned by the authenticated seller
func (h *ProductHandler) Update(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		h.BadRequest(c, "Invalid category ID format")
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), catalogapp.UpdateProductInput{
		ProductID:   productID,
		ActorID:     actorID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Capacity:    req.Capacity,
		Location:    req.Location,
		ImageURL:    req.ImageURL,
		CategoryID:  categoryID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a publication from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	actorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), productID, actorID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ToggleFavorite adds or removes the product from the user's favorites
func (h *ProductHandler) ToggleFavorite(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	favorited, err := h.productService.ToggleFavorite(c.Request.Context(), userID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, FavoriteResponse{
		ProductID: productID.String(),
		Favorited: favorited,
	})
}

// RequestUploadURL issues a presigned URL for a direct image upload
func (h *ProductHandler) RequestUploadURL(c *gin.Context) {
	sellerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindingError(c, err)
		return
	}

	result, err := h.imageService.RequestUploadURL(c.Request.Context(), catalogapp.UploadURLRequest{
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SellerID:    sellerID,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
