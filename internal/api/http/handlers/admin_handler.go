package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/registration-service/internal/api/dto"
	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/service"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// AdminHandler exposes the approval review endpoints.
type AdminHandler struct {
	auth *service.AuthService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(authService *service.AuthService) *AdminHandler {
	return &AdminHandler{auth: authService}
}

// PendingUsers handles GET /admin/pending-users.
func (h *AdminHandler) PendingUsers(c *fiber.Ctx) error {
	claims, _ := auth.ClaimsFromContext(c)

	review, err := h.auth.ListPendingUsers(c.UserContext(), claims)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.PendingReviewResponse{
			Users: review.Users,
			TodayStats: dto.TodayStats{
				Approved: review.TodayApproved,
				Rejected: review.TodayRejected,
			},
		},
	})
}

// ChangeStatus handles PUT /admin/users/:id/status.
func (h *AdminHandler) ChangeStatus(c *fiber.Ctx) error {
	claims, _ := auth.ClaimsFromContext(c)

	var req dto.ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.ChangeUserStatus(c.UserContext(), claims, c.Params("id"), domain.Status(req.Status))
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"data": fiber.Map{"user": user}})
}
