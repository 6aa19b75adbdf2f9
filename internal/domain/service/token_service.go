package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by issued access tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AdminID returns the token subject parsed as an administrator ID.
func (c *Claims) AdminID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for issuing and validating access tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken creates a signed, time-limited token embedding the
	// administrator's identity and role.
	GenerateAccessToken(adminID uuid.UUID) (string, error)

	// ValidateToken checks the signature and expiry of a token string and
	// returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
