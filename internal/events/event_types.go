package events

import (
	"time"

	"github.com/spec-kit/registration-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered    EventType = "user_registered"
	EventUserStatusChanged EventType = "user_status_changed"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	UserID    string      `json:"user_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload describes a new pending registration for the admin
// notification channel.
type UserRegisteredPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	LocationState string `json:"location_state"`
	LocationCity  string `json:"location_city"`
}

// UserStatusChangedPayload describes an approval decision.
type UserStatusChangedPayload struct {
	OldStatus domain.Status `json:"old_status"`
	NewStatus domain.Status `json:"new_status"`
	AdminID   string        `json:"admin_id"`
	Email     string        `json:"email"`
}
