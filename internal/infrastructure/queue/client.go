package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"filmforge-backend/internal/shared"
)

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// InvitationNotifier hands invitation notifications to the worker.
type InvitationNotifier struct {
	client Enqueuer
}

func NewInvitationNotifier(client Enqueuer) *InvitationNotifier {
	return &InvitationNotifier{client: client}
}

func (n *InvitationNotifier) NotifyInvitation(ctx context.Context, payload shared.InvitationNotifyPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal invitation payload: %w", err)
	}

	task := asynq.NewTask(shared.TypeInvitationNotify, body)
	_, err = n.client.EnqueueContext(ctx, task,
		asynq.Queue(shared.QueueCritical),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", shared.TypeInvitationNotify, err)
	}
	return nil
}
