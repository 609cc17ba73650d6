package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/h2ogo/backend/internal/domain/catalog"
	"github.com/h2ogo/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// CategoryService handles category reads
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo catalog.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// ListCategories returns all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	categories, err := s.categoryRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list categories", zap.Error(err))
		return nil, shared.ErrStorageUnavailable
	}

	dtos := make([]CategoryDTO, 0, len(categories))
	for i := range categories {
		dtos = append(dtos, ToCategoryDTO(&categories[i]))
	}
	return dtos, nil
}

// GetCategory returns one category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*CategoryDTO, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
	}
	dto := ToCategoryDTO(category)
	return &dto, nil
}

// GetCategoryBySlug returns one category by its slug
func (s *CategoryService) GetCategoryBySlug(ctx context.Context, slug string) (*CategoryDTO, error) {
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "Category not found")
	}
	dto := ToCategoryDTO(category)
	return &dto, nil
}
