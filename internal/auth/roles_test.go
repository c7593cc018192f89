package auth_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/domain"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

func TestRequireRole(t *testing.T) {
	adminClaims := &auth.Claims{UserID: "admin-1", Role: domain.RoleAdmin}
	userClaims := &auth.Claims{UserID: "user-1", Role: domain.RoleUser}

	require.NoError(t, auth.RequireRole(adminClaims, domain.RoleAdmin))
	require.NoError(t, auth.RequireRole(userClaims, domain.RoleUser))

	err := auth.RequireRole(userClaims, domain.RoleAdmin)
	require.True(t, apperrors.HasCode(err, apperrors.CodeForbidden))

	err = auth.RequireRole(nil, domain.RoleAdmin)
	require.True(t, apperrors.HasCode(err, apperrors.CodeInvalidToken))
}
