// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is a registered account together with its stored password credential.
type User struct {
	ID           int64     // Assigned by the store on creation.
	Username     string    // Unique, case-sensitive login name.
	PasswordHash string    // Base64 PBKDF2 output. Never the plaintext password.
	Salt         string    // Base64 random salt, generated fresh for every user.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
