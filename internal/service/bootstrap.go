package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/config"
	"github.com/spec-kit/registration-service/internal/domain"
)

// EnsureAdmin provisions the configured admin account if it does not exist.
// Admins never go through the public registration path and are created
// already approved. The routine is idempotent: it checks for the account
// before creating it, so restarts are safe.
func (s *AuthService) EnsureAdmin(ctx context.Context, cfg config.AdminConfig, logger *zap.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Info("admin seed not configured; skipping")
		return nil
	}

	email := domain.NormalizeEmail(cfg.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		logger.Info("admin account already present")
		return nil
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Name:          cfg.Name,
		Email:         email,
		PasswordHash:  hash,
		LocationState: "n/a",
		LocationCity:  "n/a",
		Role:          domain.RoleAdmin,
		Status:        domain.StatusApproved,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("seeded admin account", zap.String("user_id", admin.ID))
	return nil
}
