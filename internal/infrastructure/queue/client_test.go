package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filmforge-backend/internal/shared"
)

type capturingEnqueuer struct {
	task *asynq.Task
	opts []asynq.Option
	err  error
}

func (c *capturingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	c.task, c.opts = task, opts
	if c.err != nil {
		return nil, c.err
	}
	return &asynq.TaskInfo{ID: "t1", Type: task.Type()}, nil
}

func TestInvitationNotifier(t *testing.T) {
	enq := &capturingEnqueuer{}
	n := NewInvitationNotifier(enq)

	payload := shared.InvitationNotifyPayload{
		InvitationID: uuid.New(),
		MovieID:      uuid.New(),
		ActorID:      uuid.New(),
		Event:        shared.InvitationAccepted,
	}
	require.NoError(t, n.NotifyInvitation(context.Background(), payload))

	require.NotNil(t, enq.task)
	assert.Equal(t, shared.TypeInvitationNotify, enq.task.Type())

	var got shared.InvitationNotifyPayload
	require.NoError(t, json.Unmarshal(enq.task.Payload(), &got))
	assert.Equal(t, payload, got)

	var queue string
	for _, o := range enq.opts {
		if o.Type() == asynq.QueueOpt {
			queue = o.Value().(string)
		}
	}
	assert.Equal(t, shared.QueueCritical, queue)
}

func TestInvitationNotifier_EnqueueError(t *testing.T) {
	n := NewInvitationNotifier(&capturingEnqueuer{err: errors.New("redis down")})

	err := n.NotifyInvitation(context.Background(), shared.InvitationNotifyPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis down")
}
