package dto

import (
	"time"

	"surveyforge/internal/domain"
)

// UserResponse represents a user in the API response
// @Description User information
type UserResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// UserListResponse represents the user collection in the API response
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// AddUserRequest represents the request body for adding a user
type AddUserRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`
}

// UpdateUserRequest enumerates the user fields a partial update may change.
type UpdateUserRequest struct {
	Name              *string `json:"name,omitempty"`
	Email             *string `json:"email,omitempty"`
	Role              *string `json:"role,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

// FromDomainUser maps a domain user to its API representation.
func FromDomainUser(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              string(u.Role),
		ProfilePictureURL: u.ProfilePictureURL,
		CreatedAt:         u.CreatedAt,
	}
}
