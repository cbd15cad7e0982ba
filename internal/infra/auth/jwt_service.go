package auth

import (
	"strconv"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenClaims is the JWT payload: registered claims plus the owned hero ids.
type tokenClaims struct {
	HeroIDs []entity.HeroID `json:"heroes"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	key    SigningKey       // Shared HMAC secret, immutable after construction.
	ttl    time.Duration    // Lifetime of issued tokens.
	issuer string           // Value of the iss claim, checked on validation.
	now    func() time.Time // Clock, replaced in tests.
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, key SigningKey) (service.TokenService, error) {
	if len(key) < MinSigningKeyLength {
		return nil, errors.Errorf("bearer signing key must be at least %d bytes", MinSigningKeyLength)
	}

	ttl := config.DefaultTokenTTL
	issuer := config.DefaultIssuer
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.TokenTTL > 0 {
			ttl = cfg.Auth.TokenTTL
		}
		if cfg.Auth.Issuer != "" {
			issuer = cfg.Auth.Issuer
		}
	}

	return &jwtService{
		key:    key,
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a token for subjectID carrying the given hero ids.
func (s *jwtService) Issue(subjectID int64, heroIDs []entity.HeroID) (string, error) {
	now := s.now()
	claims := tokenClaims{
		HeroIDs: entity.NormalizeHeroIDs(heroIDs),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(subjectID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.key))
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	return signed, nil
}

// Validate checks the signature before trusting any claim, then requires an unexpired exp.
func (s *jwtService) Validate(tokenString string) (*entity.AuthClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return []byte(s.key), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, "token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	subjectID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "subject is not a user id")
	}

	authClaims := &entity.AuthClaims{
		SubjectID:    subjectID,
		OwnedHeroIDs: entity.NormalizeHeroIDs(claims.HeroIDs),
	}
	if claims.IssuedAt != nil {
		authClaims.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		authClaims.ExpiresAt = claims.ExpiresAt.Time
	}

	return authClaims, nil
}

// TTL returns the configured token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}
