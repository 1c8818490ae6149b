package jwt

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/teamhub-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-jwt"

func TestGenerateAccessToken_CarriesActorClaims(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	tokenString, expiresAt, err := svc.GenerateAccessToken("u-1", "Dana Scully", user.RoleManager, "")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)

	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)

	actor, err := auth.ActorFromClaims(claims)
	require.NoError(t, err)
	assert.Equal(t, "u-1", actor.Subject)
	assert.Equal(t, "Dana Scully", actor.Name)
	assert.Equal(t, user.RoleManager, actor.Role)
	assert.Equal(t, auth.TokenTypeAccess, claims[auth.ClaimType])
}

func TestGenerateAccessToken_InvalidTTL(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	_, _, err := svc.GenerateAccessToken("u-1", "Dana", user.RoleOwner, "forever")
	assert.Error(t, err)
}

func TestSSEToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	tokenString, expiresIn, err := svc.GenerateSSEToken("u-9")
	require.NoError(t, err)
	assert.Equal(t, 300, expiresIn)

	subject, err := svc.ValidateSSEToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "u-9", subject)
}

func TestValidateSSEToken_RejectsAccessToken(t *testing.T) {
	svc := NewJWTService(testSecret, "1h")

	access, _, err := svc.GenerateAccessToken("u-1", "Dana", user.RoleOwner, "")
	require.NoError(t, err)

	_, err = svc.ValidateSSEToken(access)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidateSSEToken_RejectsForeignSignature(t *testing.T) {
	other := NewJWTService("another-secret", "1h")
	tokenString, _, err := other.GenerateSSEToken("u-1")
	require.NoError(t, err)

	_, err = NewJWTService(testSecret, "1h").ValidateSSEToken(tokenString)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
