package usecase

import (
	"context"

	"arena/internal/domain/entity"
)

// CreateHeroOutput returns the new hero together with a token that already
// carries it, since the caller's previous token predates the ownership change.
type CreateHeroOutput struct {
	Hero  *entity.Hero
	Token *LoginOutput
}

// HeroUsecase defines the hero operations guarded by bearer claims.
type HeroUsecase interface {
	CreateHero(ctx context.Context, claims *entity.AuthClaims, name string) (*CreateHeroOutput, error)
	GetHero(ctx context.Context, heroID entity.HeroID) (*entity.Hero, error)
	RenameHero(ctx context.Context, claims *entity.AuthClaims, heroID entity.HeroID, name string) (*entity.Hero, error)
}
