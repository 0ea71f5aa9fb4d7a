// internal/adapters/queue/client.go
package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
	"github.com/ammerola/phone-inventory/internal/workers"
)

// Enqueuer is the subset of *asynq.Client the queue client needs
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Client hands background work to Asynq
type Client struct {
	enqueuer Enqueuer
	logger   *slog.Logger
}

// Statically assert that *Client implements the TaskEnqueuer interface.
var _ ports.TaskEnqueuer = (*Client)(nil)

// NewClient creates a new queue client
func NewClient(enqueuer Enqueuer, logger *slog.Logger) *Client {
	return &Client{
		enqueuer: enqueuer,
		logger:   logger.With(slog.String("component", "queue")),
	}
}

// EnqueueStockAlert schedules a stock alert on the critical queue
func (c *Client) EnqueueStockAlert(ctx context.Context, alert domain.StockAlert) error {
	task, err := workers.NewStockAlertTask(alert)
	if err != nil {
		return err
	}
	return c.enqueue(ctx, task)
}

// EnqueueReportWarmup schedules an immediate report warmup
func (c *Client) EnqueueReportWarmup(ctx context.Context) error {
	return c.enqueue(ctx, workers.NewReportWarmupTask())
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.enqueuer.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue %s: %w", task.Type(), err)
	}

	c.logger.DebugContext(ctx, "task enqueued",
		slog.String("type", task.Type()),
		slog.String("task_id", info.ID),
		slog.String("queue", info.Queue))
	return nil
}
