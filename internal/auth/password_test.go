package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/registration-service/internal/auth"
)

func TestHashAndCompareRoundTrip(t *testing.T) {
	hashed, err := auth.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hashed)

	require.NoError(t, auth.ComparePassword(hashed, "secret1"))
}

func TestCompareRejectsOtherSecrets(t *testing.T) {
	hashed, err := auth.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.Error(t, auth.ComparePassword(hashed, "secret2"))
	require.Error(t, auth.ComparePassword(hashed, ""))
}

func TestHashIsSalted(t *testing.T) {
	first, err := auth.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := auth.HashPassword("secret1", bcrypt.MinCost)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
