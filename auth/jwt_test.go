package auth

import (
	"testing"

	"partyinbangalore-backend/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	token, err := IssueToken("secret", 42, model.RoleUser)
	require.NoError(t, err)

	claims, err := VerifyToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("secret", 42, model.RoleUser)
	require.NoError(t, err)

	_, err = VerifyToken("other", token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("secret", "not.a.token")
	assert.Error(t, err)
}

func TestVerifyCarriesAdminRole(t *testing.T) {
	token, err := IssueToken("secret", 1, model.RoleSuperAdmin)
	require.NoError(t, err)

	claims, err := VerifyToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, model.RoleSuperAdmin, claims.Role)
}
