package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService signs and validates the JWT access tokens that guard the
// authenticated routes.
type TokenService interface {
	// GenerateToken creates a signed access token for a user and roles.
	GenerateToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks a token string and returns the parsed token.
	ValidateToken(tokenString string) (*jwt.Token, error)

	// AccessTokenDuration returns the configured access token lifetime.
	AccessTokenDuration() time.Duration
}
