package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	mockRepo "arena/internal/mocks/repository"
	mockSvc "arena/internal/mocks/service"
	"arena/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type heroServiceFixtures struct {
	service    usecase.HeroUsecase
	repos      txRepos
	heroRepo   *mockRepo.MockHeroRepository
	tokens     *mockSvc.MockTokenService
	authorizer *mockSvc.MockClaimsAuthorizer
}

func createTestHeroService(t *testing.T, recheckOwnership bool) heroServiceFixtures {
	repos := newTxRepos(t)
	heroRepo := mockRepo.NewMockHeroRepository(t)
	tokens := mockSvc.NewMockTokenService(t)
	authorizer := mockSvc.NewMockClaimsAuthorizer(t)

	svc := NewHeroService(HeroServiceParams{
		TxManager:  repos.txManager,
		HeroRepo:   heroRepo,
		Tokens:     tokens,
		Authorizer: authorizer,
		Config:     &config.Config{Auth: &config.AuthConfig{RecheckOwnership: recheckOwnership}},
		Logger:     newDiscardLogger(),
	})

	return heroServiceFixtures{
		service:    svc,
		repos:      repos,
		heroRepo:   heroRepo,
		tokens:     tokens,
		authorizer: authorizer,
	}
}

func TestHeroService_CreateHero_ReissuesToken(t *testing.T) {
	fx := createTestHeroService(t, false)
	ctx := context.Background()
	claims := &entity.AuthClaims{SubjectID: 7, OwnedHeroIDs: []entity.HeroID{3}}

	fx.repos.heroRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Hero")).
		Run(func(_ context.Context, hero *entity.Hero) {
			assert.Equal(t, int64(7), hero.UserID)
			assert.Equal(t, "Ragnar", hero.Name)
			hero.ID = 11
		}).
		Return(nil)
	fx.repos.heroRepo.EXPECT().OwnedHeroIDs(ctx, int64(7)).Return([]entity.HeroID{11, 3}, nil)
	fx.tokens.EXPECT().Issue(int64(7), []entity.HeroID{3, 11}).Return("fresh.jwt.token", nil)
	fx.tokens.EXPECT().TTL().Return(time.Hour)

	output, err := fx.service.CreateHero(ctx, claims, "  Ragnar ")

	require.NoError(t, err)
	assert.Equal(t, entity.HeroID(11), output.Hero.ID)
	assert.Equal(t, "fresh.jwt.token", output.Token.Token)
	assert.Equal(t, []entity.HeroID{3, 11}, output.Token.HeroIDs)
	assert.Equal(t, time.Hour, output.Token.ExpiresIn)
}

func TestHeroService_CreateHero_RejectsBadInput(t *testing.T) {
	fx := createTestHeroService(t, false)
	ctx := context.Background()

	_, err := fx.service.CreateHero(ctx, nil, "Ragnar")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	_, err = fx.service.CreateHero(ctx, &entity.AuthClaims{SubjectID: 7}, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.CreateHero(ctx, &entity.AuthClaims{SubjectID: 7}, strings.Repeat("x", maxHeroNameLength+1))
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestHeroService_GetHero(t *testing.T) {
	fx := createTestHeroService(t, false)
	ctx := context.Background()
	hero := &entity.Hero{ID: 3, UserID: 7, Name: "Ragnar"}

	fx.heroRepo.EXPECT().FindByID(ctx, entity.HeroID(3)).Return(hero, nil)
	fx.heroRepo.EXPECT().FindByID(ctx, entity.HeroID(4)).Return(nil, repository.ErrHeroNotFound)

	got, err := fx.service.GetHero(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, hero, got)

	_, err = fx.service.GetHero(ctx, 4)
	assert.ErrorIs(t, err, domainerrors.ErrHeroNotFound)
}

func TestHeroService_RenameHero_Unauthorized(t *testing.T) {
	fx := createTestHeroService(t, false)
	claims := &entity.AuthClaims{SubjectID: 7, OwnedHeroIDs: []entity.HeroID{3}}

	fx.authorizer.EXPECT().Authorize(claims, entity.HeroID(4)).Return(false)

	_, err := fx.service.RenameHero(context.Background(), claims, 4, "Bjorn")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	fx.repos.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHeroService_RenameHero_Success(t *testing.T) {
	fx := createTestHeroService(t, true)
	ctx := context.Background()
	claims := &entity.AuthClaims{SubjectID: 7, OwnedHeroIDs: []entity.HeroID{3}}

	fx.authorizer.EXPECT().Authorize(claims, entity.HeroID(3)).Return(true)
	fx.repos.heroRepo.EXPECT().FindByID(ctx, entity.HeroID(3)).Return(&entity.Hero{ID: 3, UserID: 7, Name: "Ragnar"}, nil)
	fx.repos.heroRepo.EXPECT().UpdateName(ctx, entity.HeroID(3), "Bjorn").Return(nil)

	hero, err := fx.service.RenameHero(ctx, claims, 3, "Bjorn")

	require.NoError(t, err)
	assert.Equal(t, "Bjorn", hero.Name)
}

func TestHeroService_RenameHero_RecheckOwnership(t *testing.T) {
	ctx := context.Background()
	claims := &entity.AuthClaims{SubjectID: 7, OwnedHeroIDs: []entity.HeroID{3}}
	transferred := &entity.Hero{ID: 3, UserID: 8, Name: "Ragnar"}

	t.Run("enabled rejects stale claims", func(t *testing.T) {
		fx := createTestHeroService(t, true)
		fx.authorizer.EXPECT().Authorize(claims, entity.HeroID(3)).Return(true)
		fx.repos.heroRepo.EXPECT().FindByID(ctx, entity.HeroID(3)).Return(transferred, nil)

		_, err := fx.service.RenameHero(ctx, claims, 3, "Bjorn")

		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})

	t.Run("disabled trusts claims", func(t *testing.T) {
		fx := createTestHeroService(t, false)
		fx.authorizer.EXPECT().Authorize(claims, entity.HeroID(3)).Return(true)
		fx.repos.heroRepo.EXPECT().FindByID(ctx, entity.HeroID(3)).Return(transferred, nil)
		fx.repos.heroRepo.EXPECT().UpdateName(ctx, entity.HeroID(3), "Bjorn").Return(nil)

		_, err := fx.service.RenameHero(ctx, claims, 3, "Bjorn")

		assert.NoError(t, err)
	})
}

func TestHeroService_RenameHero_StoreFailure(t *testing.T) {
	fx := createTestHeroService(t, false)
	ctx := context.Background()
	claims := &entity.AuthClaims{SubjectID: 7, OwnedHeroIDs: []entity.HeroID{3}}
	storeErr := errors.New("deadlock detected")

	fx.authorizer.EXPECT().Authorize(claims, entity.HeroID(3)).Return(true)
	fx.repos.heroRepo.EXPECT().FindByID(ctx, entity.HeroID(3)).Return(&entity.Hero{ID: 3, UserID: 7}, nil)
	fx.repos.heroRepo.EXPECT().UpdateName(ctx, entity.HeroID(3), "Bjorn").Return(storeErr)

	_, err := fx.service.RenameHero(ctx, claims, 3, "Bjorn")

	assert.ErrorIs(t, err, storeErr)
}
