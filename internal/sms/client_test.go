package sms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository/mocks"
)

func TestClient_SendAndRecord(t *testing.T) {
	var received sendRequest

	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	smsRepo := new(mocks.Sms)
	smsRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SmsMessage")).Return(nil)

	client := NewClient(config.SMSConfig{
		APIURL: gateway.URL,
		AppKey: "app-key",
		Sender: "SERVICEPUB",
	}, smsRepo)

	err := client.SendAndRecord(context.Background(), "Votre code de vérification est 1234", []string{"771234567"})
	require.NoError(t, err)

	assert.Equal(t, "app-key", received.AppKey)
	assert.Equal(t, "SERVICEPUB", received.Sender)
	assert.Equal(t, "Votre code de vérification est 1234", received.Content)
	assert.Equal(t, []string{"771234567"}, received.Msisdn)

	smsRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(m *domain.SmsMessage) bool {
		return m.Content == "Votre code de vérification est 1234" &&
			len(m.Receivers) == 1 && m.Receivers[0] == "771234567"
	}))
}

func TestClient_SendAndRecord_GatewayError(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gateway.Close()

	smsRepo := new(mocks.Sms)

	client := NewClient(config.SMSConfig{APIURL: gateway.URL}, smsRepo)

	err := client.SendAndRecord(context.Background(), "contenu", []string{"771234567"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateway)

	// no audit row on failure
	smsRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
