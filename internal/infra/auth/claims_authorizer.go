package auth

import (
	"arena/internal/domain/entity"
	"arena/internal/domain/service"
)

// claimsAuthorizer grants access to a hero only when the token's snapshot lists it.
type claimsAuthorizer struct{}

// NewClaimsAuthorizer is the constructor for claimsAuthorizer.
func NewClaimsAuthorizer() service.ClaimsAuthorizer {
	return &claimsAuthorizer{}
}

// Authorize is true iff heroID is a member of claims.OwnedHeroIDs.
func (a *claimsAuthorizer) Authorize(claims *entity.AuthClaims, heroID entity.HeroID) bool {
	return claims.Owns(heroID)
}
