package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/xlzd/gotp"
)

const (
	codeMin  = 1000
	codeSpan = 9000
)

// Generator produces one-time codes for SMS verification and opaque
// single-use secrets for password resets.
type Generator interface {
	RandomCode() (string, error)
	RandomSecret(length int) string
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a 4-digit numeric code in [1000,9999] drawn from
// crypto/rand.
func (g *GOTPGenerator) RandomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("otp random read failed: %w", err)
	}

	return fmt.Sprintf("%d", codeMin+n.Int64()), nil
}

// RandomSecret returns a base32 secret of the given length, used as a
// password reset token.
func (g *GOTPGenerator) RandomSecret(length int) string {
	return gotp.RandomSecret(length)
}
