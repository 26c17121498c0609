package dto

import (
	"time"

	"github.com/finwise-app/finwise_backend/internal/core/domain"
)

// UpdateUserRequest defines the editable user profile fields.
type UpdateUserRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID          string    `json:"userID"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	DefaultCurrency string    `json:"defaultCurrency"`
	Provider        string    `json:"provider"`
	CreatedAt       time.Time `json:"createdAt"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:          user.UserID,
		Name:            user.Name,
		Email:           user.Email,
		DefaultCurrency: user.DefaultCurrency,
		Provider:        string(user.Provider),
		CreatedAt:       user.CreatedAt,
		LastUpdatedAt:   user.LastUpdatedAt,
	}
}
