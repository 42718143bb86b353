package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
)

// PasswordHasher provides hashing logic to securely store passwords and
// one-time codes.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(password string, hashed string) bool
}

// SHA256Hasher uses SHA256 to hash secrets with provided salt.
type SHA256Hasher struct {
	salt string
}

func NewSHA256Hasher(salt string) *SHA256Hasher {
	return &SHA256Hasher{salt: salt}
}

// Hash creates SHA256 hash of given password.
func (h *SHA256Hasher) Hash(password string) (string, error) {
	hash := sha256.New()

	if _, err := hash.Write([]byte(password)); err != nil {
		return "", err
	}

	//nolint:perfsprint
	return fmt.Sprintf("%x", hash.Sum([]byte(h.salt))), nil
}

// Compare hashes the candidate and compares the digests in constant time.
func (h *SHA256Hasher) Compare(password string, hashed string) bool {
	candidate, err := h.Hash(password)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(candidate), []byte(hashed)) == 1
}
