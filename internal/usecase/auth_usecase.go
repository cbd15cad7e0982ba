// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"arena/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the bearer token issued after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresIn time.Duration
	UserID    int64
	HeroIDs   []entity.HeroID
}

// AuthUsecase defines the credential operations the delivery layer depends on.
type AuthUsecase interface {
	// Register creates a new account. An existing username yields ErrUsernameTaken.
	Register(ctx context.Context, input *RegisterInput) error
	// Login verifies the credentials and issues a token carrying the user's current heroes.
	// Unknown usernames and wrong passwords return the same ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// ValidateBearer returns the claims embedded in a valid, unexpired token.
	ValidateBearer(ctx context.Context, token string) (*entity.AuthClaims, error)
	// AuthorizeResource reports whether claims grant access to heroID.
	AuthorizeResource(claims *entity.AuthClaims, heroID entity.HeroID) bool
}
