package auth

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"arena/config"
	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL: ttl,
			Issuer:   "arena-test",
		},
	}

	svc, err := NewJWTService(cfg, SigningKey(testSigningKey))
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := newTestJWTService(t, 15*time.Minute)

	tests := []struct {
		name    string
		userID  int64
		heroIDs []entity.HeroID
		want    []entity.HeroID
	}{
		{name: "no heroes", userID: 1, heroIDs: nil, want: []entity.HeroID{}},
		{name: "several heroes", userID: 42, heroIDs: []entity.HeroID{9, 2, 5}, want: []entity.HeroID{2, 5, 9}},
		{name: "duplicates collapse", userID: 7, heroIDs: []entity.HeroID{3, 3}, want: []entity.HeroID{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := svc.Issue(tt.userID, tt.heroIDs)
			require.NoError(t, err)
			assert.Len(t, strings.Split(token, "."), 3)

			claims, err := svc.Validate(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.SubjectID)
			assert.Equal(t, tt.want, claims.OwnedHeroIDs)
			assert.WithinDuration(t, claims.IssuedAt.Add(15*time.Minute), claims.ExpiresAt, time.Second)
		})
	}
}

func TestJWTService_ReissueProducesDistinctTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	first, err := svc.Issue(1, []entity.HeroID{1})
	require.NoError(t, err)
	second, err := svc.Issue(1, []entity.HeroID{1})
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }

	token, err := svc.Issue(1, []entity.HeroID{1})
	require.NoError(t, err)

	svc.now = time.Now
	claims, err := svc.Validate(token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExpiredToken))
	assert.False(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	token, err := svc.Issue(1, []entity.HeroID{1})
	require.NoError(t, err)

	claims, err := svc.Validate(tamperSignature(token))
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_TamperedPayload(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)

	token, err := svc.Issue(1, []entity.HeroID{1})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(payload, &body))
	body["heroes"] = []int64{1, 999}
	forged, err := json.Marshal(body)
	require.NoError(t, err)
	parts[1] = base64.RawURLEncoding.EncodeToString(forged)

	claims, err := svc.Validate(strings.Join(parts, "."))
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTService_SignatureCheckedBeforeExpiry(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.Issue(1, nil)
	require.NoError(t, err)
	svc.now = time.Now

	_, err = svc.Validate(tamperSignature(token))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	assert.False(t, errors.Is(err, domainerrors.ErrExpiredToken))
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	svc := newTestJWTService(t, time.Minute)
	claims := tokenClaims{
		HeroIDs: []entity.HeroID{1},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "arena-test",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}

	otherKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another_secret_key_that_is_long_enough_too"))
	require.NoError(t, err)

	otherAlg, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry := claims
	noExpiry.ExpiresAt = nil
	missingExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, noExpiry).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	wrongIssuer := claims
	wrongIssuer.Issuer = "someone-else"
	otherIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, wrongIssuer).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	badSubject := claims
	badSubject.Subject = "alice"
	nonNumericSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, badSubject).SignedString([]byte(testSigningKey))
	require.NoError(t, err)

	tokens := map[string]string{
		"different key":       otherKey,
		"different algorithm": otherAlg,
		"alg none":            unsigned,
		"missing exp":         missingExp,
		"different issuer":    otherIssuer,
		"non numeric subject": nonNumericSubject,
		"not a jwt":           "clearly-not-a-jwt-token-format",
		"empty":               "",
	}

	for name, token := range tokens {
		t.Run(name, func(t *testing.T) {
			got, err := svc.Validate(token)
			assert.Nil(t, got)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
		})
	}
}

func TestNewJWTService_Defaults(t *testing.T) {
	svc, err := NewJWTService(&config.Config{}, SigningKey(testSigningKey))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTokenTTL, svc.TTL())
	assert.Equal(t, config.DefaultIssuer, svc.(*jwtService).issuer)
}

func TestNewJWTService_ShortKey(t *testing.T) {
	svc, err := NewJWTService(&config.Config{}, SigningKey("short"))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func tamperSignature(token string) string {
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	parts[2] = string(sig)

	return strings.Join(parts, ".")
}
