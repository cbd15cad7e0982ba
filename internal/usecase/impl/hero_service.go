package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"arena/config"
	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/errors"
	"arena/internal/usecase"

	"go.uber.org/fx"
)

const maxHeroNameLength = 100

// heroService implements the HeroUsecase interface.
type heroService struct {
	txManager        repository.TransactionManager
	heroRepo         repository.HeroRepository
	tokens           service.TokenService
	authorizer       service.ClaimsAuthorizer
	recheckOwnership bool
	logger           *slog.Logger
}

// HeroServiceParams holds dependencies for HeroService, injected by Fx.
type HeroServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	HeroRepo   repository.HeroRepository
	Tokens     service.TokenService
	Authorizer service.ClaimsAuthorizer
	Config     *config.Config
	Logger     *slog.Logger
}

// NewHeroService is the constructor for heroService.
func NewHeroService(params HeroServiceParams) usecase.HeroUsecase {
	recheck := false
	if params.Config != nil && params.Config.Auth != nil {
		recheck = params.Config.Auth.RecheckOwnership
	}

	return &heroService{
		txManager:        params.TxManager,
		heroRepo:         params.HeroRepo,
		tokens:           params.Tokens,
		authorizer:       params.Authorizer,
		recheckOwnership: recheck,
		logger:           params.Logger,
	}
}

func (srv *heroService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateHero adds a hero for the bearer and reissues a token that includes it.
func (srv *heroService) CreateHero(ctx context.Context, claims *entity.AuthClaims, name string) (*usecase.CreateHeroOutput, error) {
	if claims == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidToken)
	}
	name, err := normalizeHeroName(name)
	if err != nil {
		return nil, err
	}

	hero := &entity.Hero{UserID: claims.SubjectID, Name: name}
	var heroIDs []entity.HeroID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		heroRepo := repoFactory.HeroRepo()
		if err := heroRepo.Create(ctx, hero); err != nil {
			return errors.Wrap(err, "failed to create hero")
		}

		ids, err := heroRepo.OwnedHeroIDs(ctx, claims.SubjectID)
		if err != nil {
			return errors.Wrap(err, "failed to load owned heroes")
		}
		heroIDs = ids

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute create hero transaction", slog.Int64("userID", claims.SubjectID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create hero transaction")
	}

	heroIDs = entity.NormalizeHeroIDs(heroIDs)
	token, err := srv.tokens.Issue(claims.SubjectID, heroIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to reissue token after hero creation", slog.Int64("userID", claims.SubjectID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}
	srv.log(ctx).Info("Hero created", slog.Int64("userID", claims.SubjectID), slog.Int64("heroID", hero.ID))

	return &usecase.CreateHeroOutput{
		Hero: hero,
		Token: &usecase.LoginOutput{
			Token:     token,
			ExpiresIn: srv.tokens.TTL(),
			UserID:    claims.SubjectID,
			HeroIDs:   heroIDs,
		},
	}, nil
}

// GetHero is a public read.
func (srv *heroService) GetHero(ctx context.Context, heroID entity.HeroID) (*entity.Hero, error) {
	hero, err := srv.heroRepo.FindByID(ctx, heroID)
	if errors.Is(err, repository.ErrHeroNotFound) {
		return nil, errors.WithStack(domainerrors.ErrHeroNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find hero")
	}

	return hero, nil
}

// RenameHero requires the bearer's claims to cover heroID.
func (srv *heroService) RenameHero(ctx context.Context, claims *entity.AuthClaims, heroID entity.HeroID, name string) (*entity.Hero, error) {
	if !srv.authorizer.Authorize(claims, heroID) {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("hero is not owned by bearer")
	}
	name, err := normalizeHeroName(name)
	if err != nil {
		return nil, err
	}

	var renamed *entity.Hero
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		heroRepo := repoFactory.HeroRepo()

		hero, err := heroRepo.FindByID(ctx, heroID)
		if errors.Is(err, repository.ErrHeroNotFound) {
			return errors.WithStack(domainerrors.ErrHeroNotFound)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find hero")
		}

		// Claims may be stale until they expire; the store is authoritative.
		if srv.recheckOwnership && hero.UserID != claims.SubjectID {
			return domainerrors.ErrUnauthorized.WrapMessage("hero ownership changed")
		}

		if err := heroRepo.UpdateName(ctx, heroID, name); err != nil {
			if errors.Is(err, repository.ErrHeroNotFound) {
				return errors.WithStack(domainerrors.ErrHeroNotFound)
			}

			return errors.Wrap(err, "failed to rename hero")
		}
		hero.Name = name
		renamed = hero

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute rename hero transaction")
	}

	return renamed, nil
}

func normalizeHeroName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > maxHeroNameLength {
		return "", domainerrors.ErrValidationFailed.WrapMessage("hero name must be 1-100 characters")
	}

	return name, nil
}
