package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/registration-service/internal/config"
	"github.com/spec-kit/registration-service/internal/domain"
	"github.com/spec-kit/registration-service/internal/events"
)

// NotificationService emits notifications for registration lifecycle events:
// a notice to admins when a registration lands in the review queue, and a
// notice to the user once a decision is made.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handleUserRegistered)
	n.dispatcher.Subscribe(events.EventUserStatusChanged, n.handleUserStatusChanged)
}

func (n *NotificationService) handleUserRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("UserRegistered", zap.String("user_id", event.UserID))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleUserStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.UserStatusChangedPayload)
	if !ok {
		return nil
	}

	subject := "Your account has been approved"
	if payload.NewStatus == domain.StatusRejected {
		subject = "Your registration has been rejected"
	}
	n.logger.Info("UserStatusChanged",
		zap.String("user_id", event.UserID),
		zap.String("new_status", string(payload.NewStatus)),
	)
	n.sendEmailNotificationStub(ctx, payload.Email, subject)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

// sendEmailNotificationStub logs where a mail integration would send.
func (n *NotificationService) sendEmailNotificationStub(_ context.Context, to, subject string) {
	n.logger.Info("email notification (stub)",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("to", to),
		zap.String("subject", subject),
	)
}

// sendWebhookNotificationStub logs where a webhook delivery would go.
func (n *NotificationService) sendWebhookNotificationStub(_ context.Context, event events.Event) {
	if n.cfg.WebhookURL == "" {
		return
	}
	n.logger.Info("webhook notification (stub)",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("event_type", string(event.Type)),
	)
}
