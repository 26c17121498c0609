package services

import (
	"context"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
	"github.com/finwise-app/finwise_backend/internal/dto"
)

// CategorySvcFacade provides CRUD over a user's categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, userID string, kind domain.CategoryKind) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}
