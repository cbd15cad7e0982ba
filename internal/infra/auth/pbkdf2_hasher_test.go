package auth

import (
	"encoding/base64"
	"testing"

	"arena/config"
	domainerrors "arena/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *pbkdf2Hasher {
	return NewPBKDF2HasherWithIterations(MinPBKDF2Iterations).(*pbkdf2Hasher)
}

func TestPBKDF2Hasher_HashAndVerify(t *testing.T) {
	hasher := newTestHasher()

	passwords := []string{"pw1", "StrongPass123!", "", "пароль", "a very long passphrase with spaces in it"}
	for _, password := range passwords {
		hash, salt, err := hasher.Hash(password)
		require.NoError(t, err)
		assert.NotEmpty(t, hash)
		assert.NotEmpty(t, salt)
		assert.NotEqual(t, password, hash)

		ok, err := hasher.Verify(password, hash, salt)
		require.NoError(t, err)
		assert.True(t, ok, "password %q should verify", password)
	}
}

func TestPBKDF2Hasher_WrongPasswordIsNotAnError(t *testing.T) {
	hasher := newTestHasher()

	hash, salt, err := hasher.Hash("pw1")
	require.NoError(t, err)

	ok, err := hasher.Verify("pw2", hash, salt)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = hasher.Verify("", hash, salt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPBKDF2Hasher_FreshSaltPerHash(t *testing.T) {
	hasher := newTestHasher()

	hash1, salt1, err := hasher.Hash("same-password")
	require.NoError(t, err)
	hash2, salt2, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, salt1, salt2)
	assert.NotEqual(t, hash1, hash2)

	rawSalt, err := base64.StdEncoding.DecodeString(salt1)
	require.NoError(t, err)
	assert.Len(t, rawSalt, saltLen)

	rawHash, err := base64.StdEncoding.DecodeString(hash1)
	require.NoError(t, err)
	assert.Len(t, rawHash, keyLen)
}

func TestPBKDF2Hasher_CorruptCredential(t *testing.T) {
	hasher := newTestHasher()

	hash, salt, err := hasher.Hash("pw1")
	require.NoError(t, err)

	testCases := []struct {
		name string
		hash string
		salt string
	}{
		{name: "salt not base64", hash: hash, salt: "%%%not-base64%%%"},
		{name: "hash not base64", hash: "***", salt: salt},
		{name: "empty salt", hash: hash, salt: ""},
		{name: "empty hash", hash: "", salt: salt},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := hasher.Verify("pw1", tc.hash, tc.salt)
			assert.False(t, ok)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrCorruptCredential))
		})
	}
}

func TestPBKDF2Hasher_IterationsAffectHash(t *testing.T) {
	low := NewPBKDF2HasherWithIterations(MinPBKDF2Iterations)
	high := NewPBKDF2HasherWithIterations(MinPBKDF2Iterations + 1)

	hash, salt, err := low.Hash("pw1")
	require.NoError(t, err)

	ok, err := high.Verify("pw1", hash, salt)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewPBKDF2Hasher_Iterations(t *testing.T) {
	fromConfig := NewPBKDF2Hasher(&config.Config{Auth: &config.AuthConfig{PBKDF2Iterations: 20000}}).(*pbkdf2Hasher)
	assert.Equal(t, 20000, fromConfig.iterations)

	defaulted := NewPBKDF2Hasher(&config.Config{}).(*pbkdf2Hasher)
	assert.Equal(t, config.DefaultPBKDF2Iterations, defaulted.iterations)

	floored := NewPBKDF2HasherWithIterations(1000).(*pbkdf2Hasher)
	assert.Equal(t, MinPBKDF2Iterations, floored.iterations)
}
