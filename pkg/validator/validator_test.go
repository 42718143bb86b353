package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, v.RegisterValidation("phonenumber", phoneNumberValidator))
	require.NoError(t, v.RegisterValidation("cni", cniValidator))
	return v
}

func TestPhoneNumberValidator(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Var("771234567", "phonenumber"))
	assert.Error(t, v.Var("671234567", "phonenumber"), "must start with 7")
	assert.Error(t, v.Var("77123456", "phonenumber"), "too short")
	assert.Error(t, v.Var("7712345678", "phonenumber"), "too long")
	assert.Error(t, v.Var("77123456a", "phonenumber"), "digits only")
}

func TestCNIValidator(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Var("123456789012", "cni"))
	assert.NoError(t, v.Var("12345678901234", "cni"))
	assert.Error(t, v.Var("12345678901", "cni"), "too short")
	assert.Error(t, v.Var("123456789012345", "cni"), "too long")
	assert.Error(t, v.Var("12345678901a", "cni"), "digits only")
}
