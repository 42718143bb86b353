package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager(t *testing.T) {
	_, err := NewManager("", time.Hour)
	assert.Error(t, err)

	_, err = NewManager("key", 0)
	assert.Error(t, err)

	_, err = NewManager("key", time.Hour)
	assert.NoError(t, err)
}

func TestManager_NewJWTAndParse(t *testing.T) {
	manager, err := NewManager("signing-key", 48*time.Hour)
	require.NoError(t, err)

	principal := Principal{
		UserID:    uuid.New(),
		CNI:       "1234567890123",
		Role:      "citoyen",
		FirstName: "Awa",
		LastName:  "Diop",
	}

	token, ttl, err := manager.NewJWT(principal)
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, ttl)
	assert.NotEmpty(t, token)

	parsed, err := manager.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, principal.UserID, parsed.UserID)
	assert.Equal(t, principal.CNI, parsed.CNI)
	assert.Equal(t, principal.Role, parsed.Role)
	assert.Equal(t, principal.FirstName, parsed.FirstName)
	assert.Equal(t, principal.LastName, parsed.LastName)
}

func TestManager_ParseRejectsWrongKey(t *testing.T) {
	issuer, err := NewManager("key-one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewManager("key-two", time.Hour)
	require.NoError(t, err)

	token, _, err := issuer.NewJWT(Principal{UserID: uuid.New(), Role: "citoyen"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestManager_ParseRejectsExpired(t *testing.T) {
	manager, err := NewManager("signing-key", time.Nanosecond)
	require.NoError(t, err)

	token, _, err := manager.NewJWT(Principal{UserID: uuid.New(), Role: "citoyen"})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = manager.Parse(token)
	assert.Error(t, err)
}
