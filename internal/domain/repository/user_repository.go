// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"arena/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned by Create when the username already exists at insert time.
	ErrDuplicateUsername = errors.New("duplicate username")
)

// UserRepository persists user credentials. Username uniqueness is enforced atomically
// by the store, so two concurrent creates for the same name cannot both succeed.
type UserRepository interface {
	// FindByUsername retrieves a user by exact, case-sensitive username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by id.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// Create inserts a new user and sets user.ID from the store.
	Create(ctx context.Context, user *entity.User) error
}
