package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256Hasher_Hash(t *testing.T) {
	hasher := NewSHA256Hasher("salt")

	first, err := hasher.Hash("motdepasse")
	require.NoError(t, err)
	second, err := hasher.Hash("motdepasse")
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestSHA256Hasher_SaltChangesDigest(t *testing.T) {
	first, err := NewSHA256Hasher("salt-a").Hash("motdepasse")
	require.NoError(t, err)
	second, err := NewSHA256Hasher("salt-b").Hash("motdepasse")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestSHA256Hasher_Compare(t *testing.T) {
	hasher := NewSHA256Hasher("salt")

	hashed, err := hasher.Hash("motdepasse")
	require.NoError(t, err)

	assert.True(t, hasher.Compare("motdepasse", hashed))
	assert.False(t, hasher.Compare("autre", hashed))
	assert.False(t, hasher.Compare("motdepasse", ""))
}
