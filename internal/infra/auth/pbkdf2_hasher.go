// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"arena/config"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLen = 24
	keyLen  = 32

	// MinPBKDF2Iterations is the floor for the iteration count. Configured values below it are raised.
	MinPBKDF2Iterations = 10101
)

// pbkdf2Hasher is a concrete implementation of the PasswordHasher interface using PBKDF2-HMAC-SHA256.
type pbkdf2Hasher struct {
	iterations int
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It reads the iteration count from the auth config.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := config.DefaultPBKDF2Iterations
	if cfg != nil && cfg.Auth != nil && cfg.Auth.PBKDF2Iterations > 0 {
		iterations = cfg.Auth.PBKDF2Iterations
	}

	return NewPBKDF2HasherWithIterations(iterations)
}

// NewPBKDF2HasherWithIterations creates a hasher with an explicit iteration count.
func NewPBKDF2HasherWithIterations(iterations int) service.PasswordHasher {
	if iterations < MinPBKDF2Iterations {
		iterations = MinPBKDF2Iterations
	}

	return &pbkdf2Hasher{iterations: iterations}
}

// Hash generates a random salt and derives the password hash from it.
func (h *pbkdf2Hasher) Hash(password string) (string, string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", "", errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	derived := h.derive(password, salt)

	return base64.StdEncoding.EncodeToString(derived), base64.StdEncoding.EncodeToString(salt), nil
}

// Verify re-derives the hash with the stored salt and compares in constant time.
func (h *pbkdf2Hasher) Verify(password, hash, salt string) (bool, error) {
	saltBytes, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(saltBytes) == 0 {
		return false, errors.Wrap(domainerrors.ErrCorruptCredential, "stored salt is not decodable")
	}

	expected, err := base64.StdEncoding.DecodeString(hash)
	if err != nil || len(expected) == 0 {
		return false, errors.Wrap(domainerrors.ErrCorruptCredential, "stored hash is not decodable")
	}

	derived := h.derive(password, saltBytes)

	return subtle.ConstantTimeCompare(derived, expected) == 1, nil
}

func (h *pbkdf2Hasher) derive(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, h.iterations, keyLen, sha256.New)
}
