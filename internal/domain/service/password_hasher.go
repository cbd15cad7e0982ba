// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// Hash and salt are stored separately, both as text.
type PasswordHasher interface {
	// Hash derives a hash from password using a freshly generated salt.
	Hash(password string) (hash string, salt string, err error)

	// Verify reports whether password matches the stored hash and salt.
	// A mismatch is (false, nil). Undecodable stored values return an error
	// wrapping domain ErrCorruptCredential.
	Verify(password, hash, salt string) (bool, error)
}
