package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontor/internal/domain/access"
	"kontor/internal/shared/authorization"
)

func TestJWTService_IssueAndVerify(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	customerID := uint(3)
	principal := access.Principal{
		ID:         42,
		Role:       authorization.RoleKunde,
		Kind:       authorization.KindConsumer,
		CustomerID: &customerID,
	}

	token, expiresAt, err := service.Issue(principal, "kunde@acme.example", "Jo Acme")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, authorization.RoleKunde, claims.Role)
	assert.Equal(t, authorization.KindConsumer, claims.Kind)
	require.NotNil(t, claims.CustomerID)
	assert.Equal(t, uint(3), *claims.CustomerID)
	assert.Equal(t, "kunde@acme.example", claims.Email)

	rebuilt := claims.Principal()
	assert.Equal(t, principal, rebuilt)
}

func TestJWTService_VerifyRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 60)
	verifier := NewJWTService("secret-b", 60)

	principal := access.Principal{ID: 7, Role: authorization.RoleAdmin, Kind: authorization.KindStaff}
	token, _, err := issuer.Issue(principal, "admin@kontor.example", "Admin")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_VerifyRejectsGarbage(t *testing.T) {
	service := NewJWTService("test-secret", 60)

	_, err := service.Verify("not-a-token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher_HashAndCompare(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.NoError(t, hasher.Compare(hash, "s3cret-pass"))
	assert.Error(t, hasher.Compare(hash, "wrong-pass"))
}

func TestBcryptPasswordHasher_InvalidCostFallsBack(t *testing.T) {
	hasher := NewBcryptPasswordHasher(99)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NoError(t, hasher.Compare(hash, "pw"))
}
