package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/captcha"
	"github.com/spec-kit/registration-service/internal/config"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/repository"
	apperrors "github.com/spec-kit/registration-service/pkg/util"
)

// AuthService coordinates registration, login and admin approval flows.
type AuthService struct {
	users          repository.UserRepository
	captcha        captcha.Verifier
	replayGuard    captcha.TokenConsumer
	tokenMgr       *auth.TokenManager
	dispatcher     events.Dispatcher
	logger         *zap.Logger
	bcryptCost     int
	minPasswordLen int
	captchaTimeout time.Duration
	deleteRejected bool
}

// AuthDependencies encapsulates collaborator requirements for the service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	Captcha     captcha.Verifier
	ReplayGuard captcha.TokenConsumer
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:          deps.UserRepo,
		captcha:        deps.Captcha,
		replayGuard:    deps.ReplayGuard,
		tokenMgr:       auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.UserTokenTTL(), cfg.Auth.AdminTokenTTL()),
		dispatcher:     deps.Dispatcher,
		logger:         logger,
		bcryptCost:     cfg.Auth.BcryptCost,
		minPasswordLen: cfg.Auth.MinPasswordLength,
		captchaTimeout: cfg.Captcha.Timeout(),
		deleteRejected: cfg.Auth.DeleteRejected,
	}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name          string `validate:"required"`
	Email         string `validate:"required,email"`
	Password      string `validate:"required"`
	LocationState string `validate:"required"`
	LocationCity  string `validate:"required"`
	CaptchaToken  string `validate:"required"`
}

// LoginResult bundles a signed token with the authenticated user.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      domain.Projection
}

// PendingReview is the admin dashboard view: pending registrations newest
// first, plus today's decision counts.
type PendingReview struct {
	Users         []domain.Projection
	TodayApproved int64
	TodayRejected int64
}

// Register creates a new account in pending state. It never issues a token:
// the admin gate is mandatory for every account created through this path.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (domain.Projection, error) {
	if details := apperrors.ValidateStruct(input); len(details) > 0 {
		return domain.Projection{}, apperrors.NewValidationError("invalid registration input", details)
	}
	if len(input.Password) < s.minPasswordLen {
		return domain.Projection{}, apperrors.NewValidationError(
			fmt.Sprintf("password must be at least %d characters", s.minPasswordLen), nil)
	}

	if err := s.verifyCaptcha(ctx, input.CaptchaToken); err != nil {
		return domain.Projection{}, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return domain.Projection{}, apperrors.NewInternalError(err)
	}

	user := &domain.User{
		Name:          input.Name,
		Email:         domain.NormalizeEmail(input.Email),
		PasswordHash:  hash,
		LocationState: input.LocationState,
		LocationCity:  input.LocationCity,
		Role:          domain.RoleUser,
		Status:        domain.StatusPending,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return domain.Projection{}, apperrors.NewUserAlreadyExists()
		}
		return domain.Projection{}, apperrors.NewStoreUnavailable(err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("status", string(user.Status)),
	)
	s.publish(ctx, events.EventUserRegistered, user.ID, events.UserRegisteredPayload{
		Name:          user.Name,
		Email:         user.Email,
		LocationState: user.LocationState,
		LocationCity:  user.LocationCity,
	})

	return user.Project(), nil
}

// Login authenticates by email and password. Unknown email and password
// mismatch are indistinguishable to the caller. Users that have not passed
// the approval gate cannot log in; admins are exempt.
func (s *AuthService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return LoginResult{}, apperrors.NewInvalidCredentials()
		}
		return LoginResult{}, apperrors.NewStoreUnavailable(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return LoginResult{}, apperrors.NewInvalidCredentials()
	}

	if user.Role == domain.RoleUser && user.Status != domain.StatusApproved {
		return LoginResult{}, apperrors.NewAccountNotApproved(approvalGateMessage(user.Status))
	}

	token, expiresAt, err := s.tokenMgr.GenerateToken(user.ID, user.Role)
	if err != nil {
		return LoginResult{}, apperrors.NewInternalError(err)
	}

	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user.Project()}, nil
}

// ChangeUserStatus applies an approval decision on behalf of an admin.
// Rejected accounts are retained with status=rejected by default, so a
// rejected user's login can explain the decision; the delete-on-reject
// policy is opt-in via configuration.
func (s *AuthService) ChangeUserStatus(ctx context.Context, claims *auth.Claims, targetID string, newStatus domain.Status) (domain.Projection, error) {
	if err := auth.RequireRole(claims, domain.RoleAdmin); err != nil {
		return domain.Projection{}, err
	}
	if newStatus != domain.StatusApproved && newStatus != domain.StatusRejected {
		return domain.Projection{}, apperrors.NewValidationError("status must be approved or rejected", nil)
	}

	user, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Projection{}, apperrors.NewNotFound("user")
		}
		return domain.Projection{}, apperrors.NewStoreUnavailable(err)
	}

	oldStatus := user.Status
	if err := user.Transition(newStatus, time.Now()); err != nil {
		return domain.Projection{}, apperrors.NewInvalidTransition(err.Error())
	}

	if user.Status == domain.StatusRejected && s.deleteRejected {
		err = s.users.Delete(ctx, targetID)
	} else {
		err = s.users.Update(ctx, user)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Projection{}, apperrors.NewNotFound("user")
		}
		return domain.Projection{}, apperrors.NewStoreUnavailable(err)
	}

	s.logger.Info("user status changed",
		zap.String("user_id", user.ID),
		zap.String("old_status", string(oldStatus)),
		zap.String("new_status", string(user.Status)),
		zap.String("admin_id", claims.UserID),
	)
	s.publish(ctx, events.EventUserStatusChanged, user.ID, events.UserStatusChangedPayload{
		OldStatus: oldStatus,
		NewStatus: user.Status,
		AdminID:   claims.UserID,
		Email:     user.Email,
	})

	return user.Project(), nil
}

// GetProfile loads the caller's own record. Token validity does not
// guarantee the record still exists.
func (s *AuthService) GetProfile(ctx context.Context, claims *auth.Claims) (domain.Projection, error) {
	if claims == nil {
		return domain.Projection{}, apperrors.NewInvalidToken("missing credentials")
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Projection{}, apperrors.NewNotFound("user")
		}
		return domain.Projection{}, apperrors.NewStoreUnavailable(err)
	}
	return user.Project(), nil
}

// ListPendingUsers returns the admin review queue, newest registrations
// first, with today's approved/rejected counts.
func (s *AuthService) ListPendingUsers(ctx context.Context, claims *auth.Claims) (PendingReview, error) {
	if err := auth.RequireRole(claims, domain.RoleAdmin); err != nil {
		return PendingReview{}, err
	}

	pending, err := s.users.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		return PendingReview{}, apperrors.NewStoreUnavailable(err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	approved, err := s.users.CountByStatusSince(ctx, domain.StatusApproved, todayStart)
	if err != nil {
		return PendingReview{}, apperrors.NewStoreUnavailable(err)
	}
	rejected, err := s.users.CountByStatusSince(ctx, domain.StatusRejected, todayStart)
	if err != nil {
		return PendingReview{}, apperrors.NewStoreUnavailable(err)
	}

	review := PendingReview{TodayApproved: approved, TodayRejected: rejected}
	for _, user := range pending {
		review.Users = append(review.Users, user.Project())
	}
	return review, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) verifyCaptcha(ctx context.Context, token string) error {
	ctx, cancel := context.WithTimeout(ctx, s.captchaTimeout)
	defer cancel()

	ok, err := s.captcha.Verify(ctx, token)
	if err != nil {
		return apperrors.NewCaptchaFailed(err)
	}
	if !ok {
		return apperrors.NewCaptchaFailed(nil)
	}
	if s.replayGuard != nil && !s.replayGuard.Consume(ctx, token) {
		s.logger.Warn("captcha token replayed")
		return apperrors.NewCaptchaFailed(nil)
	}
	return nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, userID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		UserID:    userID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func approvalGateMessage(status domain.Status) string {
	if status == domain.StatusRejected {
		return "your registration has been rejected"
	}
	return "your account is pending approval by an administrator"
}
