package models

import "starwars-api/internal/entities"

// CreateUserRequest represents the request body for creating a user.
// Pointer fields distinguish a missing key from an empty value.
type CreateUserRequest struct {
	Email     *string `json:"email" binding:"required"`
	Password  *string `json:"password" binding:"required"`
	FirstName *string `json:"first_name,omitempty"`
	IsActive  *bool   `json:"is_active,omitempty"`
}

// UserResponse is the public projection of a user (never includes the password)
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func NewUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}
