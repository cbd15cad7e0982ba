package entity

import (
	"slices"
	"time"
)

// AuthClaims is the decoded, verified payload of a bearer token.
// It is a snapshot taken at issuance and is never persisted.
type AuthClaims struct {
	SubjectID    int64
	OwnedHeroIDs []HeroID
	IssuedAt     time.Time
	ExpiresAt    time.Time
}

// Owns reports whether the hero was owned by the subject when the token was issued.
func (c *AuthClaims) Owns(heroID HeroID) bool {
	if c == nil {
		return false
	}

	return slices.Contains(c.OwnedHeroIDs, heroID)
}

// NormalizeHeroIDs returns a sorted copy of ids with duplicates removed.
// A nil or empty input yields an empty, non-nil slice.
func NormalizeHeroIDs(ids []HeroID) []HeroID {
	out := make([]HeroID, 0, len(ids))
	out = append(out, ids...)
	slices.Sort(out)

	return slices.Compact(out)
}
