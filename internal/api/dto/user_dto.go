package dto

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// RegisterRequest payload for new registrations.
type RegisterRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	LocationState string `json:"state"`
	LocationCity  string `json:"city"`
	CaptchaToken  string `json:"captcha_token"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ChangeStatusRequest payload for the admin approval decision.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PendingReviewResponse is the admin review queue with today's stats.
type PendingReviewResponse struct {
	Users      []domain.Projection `json:"users"`
	TodayStats TodayStats          `json:"today_stats"`
}

// TodayStats counts approval decisions made since midnight.
type TodayStats struct {
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}
