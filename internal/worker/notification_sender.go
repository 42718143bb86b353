package worker

import (
	"context"
	"fmt"

	"github.com/senservices/backend/internal/config"
	emailProvider "github.com/senservices/backend/pkg/email"
)

type notificationSender struct {
	sender emailProvider.Sender
	config config.EmailConfig
}

func newNotificationSender(
	sender emailProvider.Sender,
	config config.EmailConfig,
) *notificationSender {
	return &notificationSender{
		sender: sender,
		config: config,
	}
}

type requestStatusEmailInput struct {
	RequestID string
	State     string
}

func (s *notificationSender) SendRequestStatusEmail(ctx context.Context, email string, requestID string, state string) error {
	if !s.config.Enabled {
		return nil
	}

	subject := "Mise à jour de votre demande"

	templateInput := requestStatusEmailInput{RequestID: requestID, State: state}
	sendInput := emailProvider.SendEmailInput{Subject: subject, To: email}

	if err := sendInput.GenerateBodyFromHTML(s.config.Templates.RequestStatus, templateInput); err != nil {
		return fmt.Errorf("generate email failed: %w", err)
	}

	if err := s.sender.Send(sendInput); err != nil {
		return fmt.Errorf("send email failed: %w", err)
	}

	return nil
}
