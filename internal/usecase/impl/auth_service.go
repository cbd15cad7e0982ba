// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"arena/config"
	deliverycontext "arena/internal/delivery/context"
	"arena/internal/domain/constants"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/domain/service"
	"arena/internal/errors"
	"arena/internal/usecase"

	"go.uber.org/fx"
)

type credentialPolicy struct {
	usernameMin int
	usernameMax int
	passwordMin int
}

// authService implements the AuthUsecase interface.
type authService struct {
	txManager  repository.TransactionManager
	hasher     service.PasswordHasher
	tokens     service.TokenService
	authorizer service.ClaimsAuthorizer
	publisher  service.EventPublisher
	policy     credentialPolicy
	logger     *slog.Logger
	now        func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	Hasher     service.PasswordHasher
	Tokens     service.TokenService
	Authorizer service.ClaimsAuthorizer
	Publisher  service.EventPublisher
	Config     *config.Config
	Logger     *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var authCfg *config.AuthConfig
	if params.Config != nil {
		authCfg = params.Config.Auth
	}
	authCfg = config.ApplyAuthDefaults(authCfg)

	return &authService{
		txManager:  params.TxManager,
		hasher:     params.Hasher,
		tokens:     params.Tokens,
		authorizer: params.Authorizer,
		publisher:  params.Publisher,
		policy: credentialPolicy{
			usernameMin: authCfg.UsernameMinLength,
			usernameMax: authCfg.UsernameMaxLength,
			passwordMin: authCfg.PasswordMinLength,
		},
		logger: params.Logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account inside a single transaction and announces it after commit.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	if err := srv.policy.check(input.Username, input.Password); err != nil {
		return err
	}

	hash, salt, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Username:     input.Username,
		PasswordHash: hash,
		Salt:         salt,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByUsername(ctx, input.Username)
		if err == nil {
			return domainerrors.ErrUsernameTaken.WrapMessage("registration failed")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up username")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			// Lost the race against a concurrent registration of the same name.
			if errors.Is(err, repository.ErrDuplicateUsername) {
				return domainerrors.ErrUsernameTaken.WrapMessage("registration failed")
			}

			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			srv.log(ctx).Info("Registration rejected, username taken", slog.String("username", input.Username))
		} else {
			srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("error", err))
		}

		return errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Int64("userID", newUser.ID))
	srv.publishRegistered(ctx, newUser)

	return nil
}

func (srv *authService) publishRegistered(ctx context.Context, user *entity.User) {
	if srv.publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       constants.EventTypeUserRegistered,
		UserID:     user.ID,
		Username:   user.Username,
		OccurredAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishAccountEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish account event",
			slog.String("eventType", event.Type),
			slog.Int64("userID", user.ID),
			slog.Any("error", err),
		)
	}
}

// Unknown usernames are verified against this credential, so every failed login
// runs exactly one key derivation.
const (
	absentUserSalt = "EknNw6+8YQcn3dEd2qjIqdN4XQGYcUBs"
	absentUserHash = "y2U4d0o8SE+Z3xBgB/vKVfbk6n9gPKso4m+qqjQq2dA="
)

// Login verifies credentials and issues a token with the user's current hero ids.
// The password is checked outside any transaction.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute login lookup", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	if user == nil {
		_, _ = srv.hasher.Verify(input.Password, absentUserHash, absentUserSalt)

		return nil, srv.rejectLogin(ctx)
	}

	ok, err := srv.hasher.Verify(input.Password, user.PasswordHash, user.Salt)
	if err != nil {
		srv.log(ctx).Error("Stored credential is unreadable", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrCorruptCredential)
	}
	if !ok {
		return nil, srv.rejectLogin(ctx)
	}

	var heroIDs []entity.HeroID
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		heroIDs, err = repoFactory.HeroRepo().OwnedHeroIDs(ctx, user.ID)

		return errors.Wrap(err, "failed to load owned heroes")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to load owned heroes", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute login transaction")
	}

	output, err := srv.issue(user.ID, heroIDs)
	if err != nil {
		srv.log(ctx).Error("Failed to issue token", slog.Int64("userID", user.ID), slog.Any("error", err))

		return nil, err
	}
	srv.log(ctx).Debug("User logged in", slog.Int64("userID", user.ID), slog.Int("heroes", len(output.HeroIDs)))

	return output, nil
}

// rejectLogin is the single failure for unknown users and wrong passwords.
func (srv *authService) rejectLogin(ctx context.Context) error {
	srv.log(ctx).Info("Login rejected")

	return errors.Wrap(domainerrors.ErrInvalidCredentials, "login rejected")
}

func (srv *authService) issue(userID int64, heroIDs []entity.HeroID) (*usecase.LoginOutput, error) {
	heroIDs = entity.NormalizeHeroIDs(heroIDs)

	token, err := srv.tokens.Issue(userID, heroIDs)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresIn: srv.tokens.TTL(),
		UserID:    userID,
		HeroIDs:   heroIDs,
	}, nil
}

// ValidateBearer verifies a token and returns its claims.
func (srv *authService) ValidateBearer(ctx context.Context, token string) (*entity.AuthClaims, error) {
	claims, err := srv.tokens.Validate(token)
	if err != nil {
		srv.log(ctx).Debug("Bearer token rejected", slog.Any("error", err))

		return nil, err
	}

	return claims, nil
}

// AuthorizeResource delegates to the claims authorizer.
func (srv *authService) AuthorizeResource(claims *entity.AuthClaims, heroID entity.HeroID) bool {
	return srv.authorizer.Authorize(claims, heroID)
}

func (p credentialPolicy) check(username, password string) error {
	n := utf8.RuneCountInString(username)
	if n < p.usernameMin || n > p.usernameMax {
		return domainerrors.ErrValidationFailed.WrapMessage("username length out of range")
	}
	if utf8.RuneCountInString(password) < p.passwordMin {
		return domainerrors.ErrValidationFailed.WrapMessage("password too short")
	}

	return nil
}
