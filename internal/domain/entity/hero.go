package entity

import (
	"time"
)

// HeroID identifies a hero. Heroes are the resources a bearer token grants access to.
type HeroID = int64

// Hero is a game character owned by exactly one user.
type Hero struct {
	ID        HeroID
	UserID    int64
	Name      string
	Wins      int
	Losses    int
	CreatedAt time.Time
	UpdatedAt time.Time
}
