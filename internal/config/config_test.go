package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/registration-service/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	require.Equal(t, "registration-service", cfg.App.Name)
	require.Equal(t, 1, cfg.Auth.UserTokenTTLHours)
	require.Equal(t, 24, cfg.Auth.AdminTokenTTLHours)
	require.Equal(t, 6, cfg.Auth.MinPasswordLength)
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.False(t, cfg.Auth.DeleteRejected)
	require.Equal(t, time.Hour, cfg.Auth.UserTokenTTL())
	require.Equal(t, 24*time.Hour, cfg.Auth.AdminTokenTTL())
	require.Equal(t, 5*time.Second, cfg.Captcha.Timeout())
}

func TestLoadRequiresSecretOutsideDevelopment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("AUTH_USER_TOKEN_TTL_HOURS", "2")
	t.Setenv("AUTH_MIN_PASSWORD_LENGTH", "10")
	t.Setenv("CAPTCHA_TIMEOUT_SECONDS", "3")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 2*time.Hour, cfg.Auth.UserTokenTTL())
	require.Equal(t, 10, cfg.Auth.MinPasswordLength)
	require.Equal(t, 3*time.Second, cfg.Captcha.Timeout())
}
