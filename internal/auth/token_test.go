package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	token, expiresAt, err := tm.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, domain.RoleUser, claims.Role)
}

func TestAdminTokenGetsLongerTTL(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	_, userExp, err := tm.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)
	_, adminExp, err := tm.GenerateToken("admin-1", domain.RoleAdmin)
	require.NoError(t, err)

	require.WithinDuration(t, time.Now().Add(24*time.Hour), adminExp, 5*time.Second)
	require.True(t, adminExp.After(userExp.Add(22*time.Hour)))
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Millisecond, 24*time.Hour)

	token, _, err := tm.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = tm.ParseToken(token)
	require.Error(t, err)
}

func TestParseRejectsBadSignature(t *testing.T) {
	issuer := auth.NewTokenManager("one-secret", time.Hour, 24*time.Hour)
	verifier := auth.NewTokenManager("another-secret", time.Hour, 24*time.Hour)

	token, _, err := issuer.GenerateToken("user-1", domain.RoleUser)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	require.Error(t, err)
}

func TestParseRejectsMalformedToken(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	_, err := tm.ParseToken("not-a-jwt")
	require.Error(t, err)
}
