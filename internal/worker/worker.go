package worker

import (
	"context"

	"github.com/senservices/backend/internal/config"
	emailProvider "github.com/senservices/backend/pkg/email"
)

type Workers struct {
	NotificationSender NotificationSender
}

type Deps struct {
	EmailProvider emailProvider.Sender
	Config        *config.Config
}

type NotificationSender interface {
	SendRequestStatusEmail(ctx context.Context, email string, requestID string, state string) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		NotificationSender: newNotificationSender(deps.EmailProvider, deps.Config.Email),
	}
}
