package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"github.com/senservices/backend/internal/queue/task"
	"github.com/senservices/backend/internal/worker"
)

type requestStatusEmailProcessor struct {
	workers *worker.Workers
}

func NewRequestStatusEmailProcessor(workers *worker.Workers) *requestStatusEmailProcessor {
	return &requestStatusEmailProcessor{
		workers: workers,
	}
}

func (p *requestStatusEmailProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.RequestStatusEmail
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process request status task json unmarshal failed: %w", err)
	}

	if err = p.workers.NotificationSender.SendRequestStatusEmail(ctx, data.Email, data.RequestID, data.State); err != nil {
		return fmt.Errorf("send request status email failed: %w", err)
	}

	return nil
}
