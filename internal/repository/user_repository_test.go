package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/repository"
)

// With POSTGRES_DSN unset the service boots with a nil pool; every
// repository call must return an error rather than panic, so the error
// middleware can answer STORE_UNAVAILABLE.
func TestNilPoolReturnsErrorInsteadOfPanicking(t *testing.T) {
	repo := repository.NewUserRepository(nil)
	ctx := context.Background()

	require.Error(t, repo.Create(ctx, &domain.User{Email: "a@x.com"}))
	require.Error(t, repo.Update(ctx, &domain.User{ID: "user-1"}))

	_, err := repo.GetByID(ctx, "user-1")
	require.Error(t, err)

	_, err = repo.GetByEmail(ctx, "a@x.com")
	require.Error(t, err)

	_, err = repo.ListByStatus(ctx, domain.StatusPending)
	require.Error(t, err)

	_, err = repo.CountByStatusSince(ctx, domain.StatusApproved, time.Now())
	require.Error(t, err)

	require.Error(t, repo.Delete(ctx, "user-1"))
}
