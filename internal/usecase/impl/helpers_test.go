package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"arena/config"
	"arena/internal/domain/repository"
	mockRepo "arena/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.ApplyAuthDefaults(&config.AuthConfig{PasswordMinLength: 3}),
	}
}

// txRepos wires a transaction manager mock that runs the callback against
// the returned repository mocks.
type txRepos struct {
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	heroRepo  *mockRepo.MockHeroRepository
}

func newTxRepos(t *testing.T) txRepos {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	heroRepo := mockRepo.NewMockHeroRepository(t)

	factory.EXPECT().UserRepo().Return(userRepo).Maybe()
	factory.EXPECT().HeroRepo().Return(heroRepo).Maybe()
	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Maybe()

	return txRepos{txManager: txManager, userRepo: userRepo, heroRepo: heroRepo}
}
