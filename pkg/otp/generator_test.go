package otp

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGOTPGenerator_RandomCode(t *testing.T) {
	generator := NewGOTPGenerator()

	for i := 0; i < 1000; i++ {
		code, err := generator.RandomCode()
		require.NoError(t, err)
		require.Len(t, code, 4)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1000)
		assert.LessOrEqual(t, n, 9999)
	}
}

func TestGOTPGenerator_RandomSecret(t *testing.T) {
	generator := NewGOTPGenerator()

	first := generator.RandomSecret(16)
	second := generator.RandomSecret(16)

	assert.Len(t, first, 16)
	assert.NotEqual(t, first, second)
}
