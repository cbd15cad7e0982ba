package repository

import (
	"context"
	"errors"

	"arena/internal/domain/entity"
)

// ErrHeroNotFound is returned when no hero matches the lookup.
var ErrHeroNotFound = errors.New("hero not found")

// HeroRepository persists heroes and answers ownership queries.
type HeroRepository interface {
	// OwnedHeroIDs returns the ids of every hero owned by userID. Empty, never nil, when none.
	OwnedHeroIDs(ctx context.Context, userID int64) ([]entity.HeroID, error)

	// FindByID retrieves a hero by id.
	FindByID(ctx context.Context, id entity.HeroID) (*entity.Hero, error)

	// Create inserts a new hero and sets hero.ID from the store.
	Create(ctx context.Context, hero *entity.Hero) error

	// UpdateName renames an existing hero.
	UpdateName(ctx context.Context, id entity.HeroID, name string) error
}
