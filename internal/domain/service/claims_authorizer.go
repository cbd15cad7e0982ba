package service

import "arena/internal/domain/entity"

// ClaimsAuthorizer decides whether a bearer may act on a resource.
type ClaimsAuthorizer interface {
	// Authorize is true iff heroID is in claims.OwnedHeroIDs.
	Authorize(claims *entity.AuthClaims, heroID entity.HeroID) bool
}
