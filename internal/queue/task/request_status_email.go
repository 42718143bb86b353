package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	RequestStatusEmailTaskName  = "requestStatusEmailTask"
	RequestStatusEmailQueueName = "notificationQueue"
)

type RequestStatusEmail struct {
	Email     string `json:"email"`
	RequestID string `json:"request_id"`
	State     string `json:"state"`
}

func NewRequestStatusEmailTask(email string, requestID string, state string) (*asynq.Task, error) {
	var data RequestStatusEmail
	data.Email = email
	data.RequestID = requestID
	data.State = state

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		RequestStatusEmailTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(RequestStatusEmailQueueName),
	), nil
}
