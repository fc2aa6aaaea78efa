package dto

import (
	"time"

	"github.com/tripvault/tripvault/internal/core/domain"
)

// RegisterUserRequest creates a new user account.
type RegisterUserRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Role         string `json:"role" binding:"required"`
	CompanyID    int64  `json:"company_id" binding:"required"`
	SubsidiaryID *int64 `json:"subsidiary_id"`
	ManagerID    *int64 `json:"manager_id"`
}

// LoginRequest authenticates a user by email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is a user without credential fields.
type UserResponse struct {
	UserID       int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CompanyID    int64     `json:"company_id"`
	SubsidiaryID *int64    `json:"subsidiary_id"`
	ManagerID    *int64    `json:"manager_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginResponse carries the issued access token and the user's profile.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserScopeResponse is the role and scope resolved for a user.
type UserScopeResponse struct {
	Role         string `json:"role"`
	CompanyID    int64  `json:"company_id"`
	SubsidiaryID *int64 `json:"subsidiary_id"`
}

// ToUserResponse converts a domain user to its response DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:       u.UserID,
		Name:         u.Name,
		Email:        u.Email,
		Role:         string(u.Role),
		CompanyID:    u.CompanyID,
		SubsidiaryID: u.SubsidiaryID,
		ManagerID:    u.ManagerID,
		CreatedAt:    u.CreatedAt,
	}
}

// ToUserResponseSlice converts domain users to response DTOs.
func ToUserResponseSlice(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
