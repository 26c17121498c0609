package dto

import (
	"time"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name  string `json:"name" binding:"required"`
	Kind  string `json:"kind" binding:"required,oneof=expense income"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// UpdateCategoryRequest defines the editable fields of a category.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1"`
	Color *string `json:"color" binding:"omitempty,hexcolor"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string    `json:"categoryID"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Color      string    `json:"color"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID: cat.CategoryID,
		Name:       cat.Name,
		Kind:       string(cat.Kind),
		Color:      cat.Color,
		CreatedAt:  cat.CreatedAt,
		UpdatedAt:  cat.LastUpdatedAt,
	}
}
