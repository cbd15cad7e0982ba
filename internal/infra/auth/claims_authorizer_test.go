package auth

import (
	"testing"

	"arena/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestClaimsAuthorizer_Authorize(t *testing.T) {
	authorizer := NewClaimsAuthorizer()
	claims := &entity.AuthClaims{SubjectID: 1, OwnedHeroIDs: []entity.HeroID{3, 8, 21}}

	tests := []struct {
		name   string
		claims *entity.AuthClaims
		heroID entity.HeroID
		want   bool
	}{
		{name: "owned", claims: claims, heroID: 8, want: true},
		{name: "first owned", claims: claims, heroID: 3, want: true},
		{name: "not owned", claims: claims, heroID: 4, want: false},
		{name: "negative id", claims: claims, heroID: -8, want: false},
		{name: "zero id", claims: claims, heroID: 0, want: false},
		{name: "subject id is not a hero", claims: claims, heroID: 1, want: false},
		{name: "no heroes", claims: &entity.AuthClaims{SubjectID: 1}, heroID: 3, want: false},
		{name: "nil claims", claims: nil, heroID: 3, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, authorizer.Authorize(tt.claims, tt.heroID))
		})
	}
}

func TestClaimsAuthorizer_RoundTripThroughToken(t *testing.T) {
	svc := newTestJWTService(t, 0)
	authorizer := NewClaimsAuthorizer()

	token, err := svc.Issue(5, []entity.HeroID{11, 12})
	assert.NoError(t, err)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	assert.True(t, authorizer.Authorize(claims, 11))
	assert.True(t, authorizer.Authorize(claims, 12))
	assert.False(t, authorizer.Authorize(claims, 13))
}
