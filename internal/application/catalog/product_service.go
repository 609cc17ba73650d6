package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/catalog"
	"github.com/h2ogo/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles product publication operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	favoriteRepo catalog.FavoriteRepository
	logger       *zap.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	favoriteRepo catalog.FavoriteRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		favoriteRepo: favoriteRepo,
		logger:       logger,
	}
}

// CreateProduct publishes a new product for a seller
func (s *ProductService) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductDTO, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal number")
	}

	if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
	}

	product, err := catalog.NewProduct(input.Title, input.Description, price, input.Stock, input.CategoryID, input.SellerID)
	if err != nil {
		return nil, err
	}
	product.SetDetails(input.Capacity, input.Location)
	if err := product.SetImageURL(input.ImageURL); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to save product", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	s.logger.Info("Product published",
		zap.String("product_id", product.GetID().String()),
		zap.String("seller_id", input.SellerID.String()))

	dto := ToProductDTO(product)
	return &dto, nil
}

// GetProduct returns a single publication. Inactive publications are
// only visible to their owner.
func (s *ProductService) GetProduct(ctx context.Context, productID, viewerID uuid.UUID) (*ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}
	if !product.IsActive() && !product.IsOwnedBy(viewerID) {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}
	dto := ToProductDTO(product)
	return &dto, nil
}

// ListProducts returns a paginated catalog page of active publications
func (s *ProductService) ListProducts(ctx context.Context, input ListProductsInput) (*shared.Paginated[ProductDTO], error) {
	filter := toFilter(input)

	products, err := s.productRepo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list products", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to count products", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	page := shared.NewPaginated(ToProductDTOs(products), total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListSellerProducts returns all publications of one seller, active or not
func (s *ProductService) ListSellerProducts(ctx context.Context, sellerID uuid.UUID, input ListProductsInput) ([]ProductDTO, error) {
	filter := toFilter(input)
	delete(filter.Filters, "status")

	products, err := s.productRepo.FindBySellerID(ctx, sellerID, filter)
	if err != nil {
		s.logger.Error("Failed to list seller products", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}
	return ToProductDTOs(products), nil
}

// UpdateProduct edits a publication. Only the owner may edit.
func (s *ProductService) UpdateProduct(ctx context.Context, input UpdateProductInput) (*ProductDTO, error) {
	product, err := s.productRepo.FindByID(ctx, input.ProductID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Product not found")
	}
	if !product.IsOwnedBy(input.ActorID) {
		return nil, shared.NewDomainError("FORBIDDEN", "Only the publisher can edit this product")
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be a decimal number")
	}

	if input.CategoryID != product.CategoryID {
		if _, err := s.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
		}
	}

	if err := product.Update(input.Title, input.Description, price, input.Stock, input.CategoryID); err != nil {
		return nil, err
	}
	product.SetDetails(input.Capacity, input.Location)
	if err := product.SetImageURL(input.ImageURL); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to update product", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	s.logger.Info("Product updated", zap.String("product_id", product.GetID().String()))

	dto := ToProductDTO(product)
	return &dto, nil
}

// DeleteProduct deactivates a publication. The row stays so existing
// carts referencing it keep resolving.
func (s *ProductService) DeleteProduct(ctx context.Context, productID, actorID uuid.UUID) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return shared.NewDomainError("NOT_FOUND", "Product not found")
	}
	if !product.IsOwnedBy(actorID) {
		return shared.NewDomainError("FORBIDDEN", "Only the publisher can remove this product")
	}

	if err := product.Deactivate(); err != nil {
		return err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		s.logger.Error("Failed to deactivate product", zap.Error(err))
		return shared.ErrStorageUnavailable
	}

	s.logger.Info("Product deactivated", zap.String("product_id", productID.String()))
	return nil
}

// ToggleFavorite adds or removes a product from the user's favorites
// and reports whether it is now favorited.
func (s *ProductService) ToggleFavorite(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return false, shared.NewDomainError("NOT_FOUND", "Product not found")
	}

	existing, err := s.favoriteRepo.Find(ctx, userID, productID)
	if err == nil && existing != nil {
		if err := s.favoriteRepo.Delete(ctx, userID, productID); err != nil {
			s.logger.Error("Failed to remove favorite", zap.Error(err))
			return false, shared.ErrStorageUnavailable
		}
		return false, nil
	}

	favorite, err := catalog.NewFavorite(userID, productID)
	if err != nil {
		return false, err
	}
	if err := s.favoriteRepo.Save(ctx, favorite); err != nil {
		s.logger.Error("Failed to save favorite", zap.Error(err))
		return false, shared.ErrStorageUnavailable
	}
	return true, nil
}

// ListFavorites returns the products the user has favorited
func (s *ProductService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]ProductDTO, error) {
	favorites, err := s.favoriteRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list favorites", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}
	if len(favorites) == 0 {
		return []ProductDTO{}, nil
	}

	ids := make([]uuid.UUID, 0, len(favorites))
	for _, f := range favorites {
		ids = append(ids, f.ProductID)
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Failed to load favorited products", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}
	return ToProductDTOs(products), nil
}
