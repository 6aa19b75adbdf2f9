// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"warden/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterAdminInput defines the data required to register a new administrator.
// Only email and password are validated; full name and username are stored
// when provided.
type RegisterAdminInput struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginInput defines the data required for an administrator to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created administrator.
// The handler projects it down to {id, email, createdAt}; the password hash
// never leaves the service layer in any response.
type RegisterOutput struct {
	Admin *entity.Administrator
}

// LoginOutput returns the issued access token after a successful login.
type LoginOutput struct {
	Admin       *entity.Administrator
	AccessToken string
}

// AdminUsecase defines the interface for administrator business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AdminUsecase interface {
	Register(ctx context.Context, input *RegisterAdminInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
