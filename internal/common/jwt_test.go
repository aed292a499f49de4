package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWTSecretConfigured(t *testing.T) {
	// The secret is captured at init, so this mirrors whatever the test
	// process was started with.
	require.Equal(t, os.Getenv("JWT_SECRET") != "", JWTSecretConfigured())
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "creator@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), claims.AccountID)
	require.Equal(t, "creator@example.com", claims.Email)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestValidateToken_TamperedSignature(t *testing.T) {
	token, err := GenerateToken(42, "creator@example.com")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")
	require.ErrorIs(t, err, ErrUnauthorized)
}
