package worker

import (
	"github.com/spec-kit/registration-service/internal/service"
)

// StartNotificationWorker wires the registration-lifecycle handlers onto
// the event dispatcher: the admin notice for a new pending registration
// and the user notice once an approval decision lands.
func StartNotificationWorker(notificationService *service.NotificationService) {
	if notificationService == nil {
		return
	}
	notificationService.RegisterHandlers()
}
