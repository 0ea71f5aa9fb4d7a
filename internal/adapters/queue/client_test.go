// internal/adapters/queue/client_test.go
package queue_test

import (
	"context"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammerola/phone-inventory/internal/adapters/queue"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/workers"
	"github.com/ammerola/phone-inventory/test/helpers"
)

type recordingEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (r *recordingEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.tasks = append(r.tasks, task)
	return &asynq.TaskInfo{ID: "task-1", Queue: workers.QueueCritical, Type: task.Type()}, nil
}

func TestClient_EnqueueStockAlert(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "enqueues_task"},
		{name: "wraps_failure", err: errors.New("redis unavailable"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingEnqueuer{err: tt.err}
			client := queue.NewClient(rec, helpers.TestLogger())

			err := client.EnqueueStockAlert(context.Background(), domain.StockAlert{
				PhoneID: domain.NewID(),
				Status:  domain.StatusOutOfStock,
			})

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), workers.TypeStockAlert)
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			require.Len(t, rec.tasks, 1)
			assert.Equal(t, workers.TypeStockAlert, rec.tasks[0].Type())
		})
	}
}

func TestClient_EnqueueReportWarmup(t *testing.T) {
	rec := &recordingEnqueuer{}
	client := queue.NewClient(rec, helpers.TestLogger())

	require.NoError(t, client.EnqueueReportWarmup(context.Background()))
	require.Len(t, rec.tasks, 1)
	assert.Equal(t, workers.TypeReportWarmup, rec.tasks[0].Type())
}
