// Package service defines interfaces for domain services whose concrete
// implementations live in the infra layer.
package service

// PasswordHasher abstracts the hashing of user password credentials.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a previously generated hash.
	Check(password, hash string) bool
}
