package service

import (
	"time"

	"arena/internal/domain/entity"
)

// TokenService issues and validates signed bearer tokens.
type TokenService interface {
	// Issue signs a token for subjectID carrying heroIDs, expiring after TTL().
	Issue(subjectID int64, heroIDs []entity.HeroID) (string, error)

	// Validate verifies the signature, then the expiry, and returns the embedded claims.
	// Failures wrap domain ErrInvalidToken or ErrExpiredToken.
	Validate(tokenString string) (*entity.AuthClaims, error)

	// TTL returns the configured token lifetime.
	TTL() time.Duration
}
