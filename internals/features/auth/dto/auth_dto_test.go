package dto

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginRequest_Validate(t *testing.T) {
	ok := LoginRequest{Email: "admin@apexfit.com", Password: "admin123"}
	assert.NoError(t, ok.Validate(nil))

	missing := LoginRequest{}
	assert.Error(t, missing.Validate(nil))
}

func TestLoginRequest_Validate_BadEmailFormat(t *testing.T) {
	// email terisi tapi bukan email → harus jadi validator.ValidationErrors
	// supaya controller bisa kasih detail per field (422)
	bad := LoginRequest{Email: "bukan-email", Password: "admin123"}

	err := bad.Validate(nil)
	require.Error(t, err)

	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Email", ve[0].Field())
	assert.Equal(t, "email", ve[0].Tag())
}
