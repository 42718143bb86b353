package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/senservices/backend/internal/config"
	"github.com/senservices/backend/internal/domain"
	"github.com/senservices/backend/internal/repository"
)

// ErrGateway marks an upstream failure of the SMS provider. No audit row is
// written in that case and the caller decides any fallback.
var ErrGateway = errors.New("sms gateway failure")

type sendRequest struct {
	AppKey  string   `json:"app_key"`
	Sender  string   `json:"sender"`
	Content string   `json:"content"`
	Msisdn  []string `json:"msisdn"`
}

// Sender is what services depend on; the concrete client talks to the HTTP
// gateway and records an audit row on success.
type Sender interface {
	SendAndRecord(ctx context.Context, content string, recipients []string) error
}

type Client struct {
	config     config.SMSConfig
	smsRepo    repository.Sms
	httpClient *http.Client
}

func NewClient(cfg config.SMSConfig, smsRepo repository.Sms) *Client {
	return &Client{
		config:  cfg,
		smsRepo: smsRepo,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SendAndRecord posts the message to the gateway and, only after an HTTP 200,
// persists the write-once audit record. No retry.
func (c *Client) SendAndRecord(ctx context.Context, content string, recipients []string) error {
	payload := sendRequest{
		AppKey:  c.config.AppKey,
		Sender:  c.config.Sender,
		Content: content,
		Msisdn:  recipients,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "marshal sms payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return errors.Wrap(err, "create sms request")
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(ErrGateway, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return errors.Wrapf(ErrGateway, "unexpected status code: %d, body: %s", resp.StatusCode, string(body))
	}

	messageID, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "generate sms message id")
	}

	record := &domain.SmsMessage{
		ID:        messageID,
		Content:   content,
		Receivers: domain.StringList(recipients),
		SentAt:    time.Now(),
	}

	if err := c.smsRepo.Create(ctx, record); err != nil {
		return errors.Wrap(err, "persist sms audit record")
	}

	return nil
}
