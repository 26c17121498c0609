package services

import (
	"context"
	"fmt"
	"time"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	portssvc "github.com/finwise-app/finwise_backend/internal/core/ports/services"
	"github.com/finwise-app/finwise_backend/internal/dto"
	"github.com/google/uuid"
)

// CategoryService provides CRUD over a user's expense and income categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*CategoryService)(nil)

// CreateCategory creates a new category for the user.
func (s *CategoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Kind:       domain.CategoryKind(req.Kind),
		Color:      req.Color,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return &category, nil
}

// GetCategoryByID retrieves one of the user's categories.
func (s *CategoryService) GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return category, nil
}

// ListCategories retrieves the user's categories, optionally filtered by kind.
func (s *CategoryService) ListCategories(ctx context.Context, userID string, kind domain.CategoryKind) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	return categories, nil
}

// UpdateCategory applies partial edits to one of the user's categories. The
// kind of a category is fixed at creation.
func (s *CategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}
	category.LastUpdatedAt = time.Now()
	category.LastUpdatedBy = userID

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		return nil, fmt.Errorf("failed to update category in service: %w", err)
	}
	return category, nil
}

// DeleteCategory removes one of the user's categories.
func (s *CategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if _, err := s.GetCategoryByID(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category in service: %w", err)
	}
	return nil
}
