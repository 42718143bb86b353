package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/senservices/backend/internal/config"
	mock_email "github.com/senservices/backend/pkg/email/mock"
)

func TestNotificationSender_Disabled(t *testing.T) {
	sender := new(mock_email.EmailSender)

	s := newNotificationSender(sender, config.EmailConfig{Enabled: false})

	err := s.SendRequestStatusEmail(context.Background(), "citoyen@exemple.sn", "id", "confirme")
	assert.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything)
}
