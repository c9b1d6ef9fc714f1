package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitflow_backend/internals/features/auth/model"
)

const testSecret = "unit-test-secret"

func TestGenerateAndParseToken(t *testing.T) {
	adminID := uuid.New()

	token, err := GenerateToken(adminID, model.AdminRoleAdmin, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	gotID, err := AdminIDFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, adminID, gotID)
	assert.Equal(t, model.AdminRoleAdmin, claims["role"])
}

func TestParseToken_WrongSecretFails(t *testing.T) {
	token, err := GenerateToken(uuid.New(), model.AdminRoleStaff, testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "secret-lain")
	assert.Error(t, err)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	_, err := GenerateToken(uuid.New(), model.AdminRoleAdmin, "")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestAdminIDFromClaims_MissingClaim(t *testing.T) {
	token, err := GenerateToken(uuid.New(), model.AdminRoleAdmin, testSecret)
	require.NoError(t, err)

	claims, err := ParseToken(token, testSecret)
	require.NoError(t, err)

	delete(claims, "admin_id")
	_, err = AdminIDFromClaims(claims)
	assert.Error(t, err)
}
