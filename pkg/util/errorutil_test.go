package util_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	err := apperrors.NewForbidden("insufficient role")
	wrapped := fmt.Errorf("handler: %w", err)

	domainErr := apperrors.ToDomainError(wrapped)
	require.Equal(t, apperrors.CodeForbidden, domainErr.Code)
	require.Equal(t, http.StatusForbidden, domainErr.HTTPStatus)
}

func TestToDomainErrorWrapsUnknown(t *testing.T) {
	domainErr := apperrors.ToDomainError(errors.New("boom"))
	require.Equal(t, apperrors.CodeInternalError, domainErr.Code)
	require.Equal(t, http.StatusInternalServerError, domainErr.HTTPStatus)
}

func TestHasCode(t *testing.T) {
	err := apperrors.NewInvalidCredentials()
	require.True(t, apperrors.HasCode(err, apperrors.CodeInvalidCredentials))
	require.False(t, apperrors.HasCode(err, apperrors.CodeForbidden))
	require.False(t, apperrors.HasCode(errors.New("boom"), apperrors.CodeInvalidCredentials))
}

func TestValidateStruct(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	require.Nil(t, apperrors.ValidateStruct(form{Email: "a@x.com", Name: "Alice"}))

	details := apperrors.ValidateStruct(form{Email: "nope"})
	require.Len(t, details, 2)
	require.Contains(t, details, "Email")
	require.Contains(t, details, "Name")
}
