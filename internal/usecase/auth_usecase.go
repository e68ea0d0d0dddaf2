// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"chapel/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"max=100"`
}

// LoginInput defines the data required for a user to log in.
// Login is form-encoded on the wire, matching the OAuth2 password flow.
type LoginInput struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

// --- Output DTOs ---

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract the delivery layer (handlers, middleware) depends on.
type AuthUsecase interface {
	// Register creates a new non-admin, active user. Fails with a conflict
	// error when the email or username is already taken.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and issues a bearer token. Any failure
	// yields the same generic unauthorized error.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// GetUser resolves a token subject to a full user record. The admin
	// gate uses it to check the admin and active flags.
	GetUser(ctx context.Context, userID uint) (*entity.User, error)
}
