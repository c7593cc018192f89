package auth

import (
	"github.com/spec-kit/registration-service/internal/domain"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// RequireRole is the capability check applied before privileged operations.
// It is a pure function over claims, deliberately not middleware, so the
// service layer can enforce it regardless of transport.
func RequireRole(claims *Claims, role domain.Role) error {
	if claims == nil {
		return apperrors.NewInvalidToken("missing credentials")
	}
	if claims.Role != role {
		return apperrors.NewForbidden("insufficient role")
	}
	return nil
}
