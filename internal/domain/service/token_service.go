package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed, time-limited access token for a user.
	GenerateToken(userID uint) (string, error)

	// ValidateToken verifies signature and expiry and returns the embedded
	// claims. Any verification failure yields an error.
	ValidateToken(tokenString string) (*Claims, error)
}
