// internal/workers/cleanup_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"
)

// Purger removes soft deleted phones older than a retention window
type Purger interface {
	PurgeDeleted(ctx context.Context, retention time.Duration) (int64, error)
}

// CleanupProcessor handles purging of soft deleted phones
type CleanupProcessor struct {
	purger    Purger
	retention time.Duration
	logger    *slog.Logger
}

// NewCleanupProcessor creates a new cleanup processor. A zero retention
// disables purging.
func NewCleanupProcessor(purger Purger, retention time.Duration, logger *slog.Logger) *CleanupProcessor {
	return &CleanupProcessor{
		purger:    purger,
		retention: retention,
		logger:    logger.With(slog.String("processor", "cleanup")),
	}
}

// PurgeDeleted hard deletes phones soft deleted longer than the retention
func (p *CleanupProcessor) PurgeDeleted(ctx context.Context, _ *asynq.Task) error {
	if p.retention <= 0 {
		p.logger.DebugContext(ctx, "purge disabled")
		return nil
	}

	p.logger.InfoContext(ctx, "purging deleted phones",
		slog.Duration("retention", p.retention))

	n, err := p.purger.PurgeDeleted(ctx, p.retention)
	if err != nil {
		return fmt.Errorf("failed to purge deleted phones: %w", err)
	}

	p.logger.InfoContext(ctx, "deleted phones purged",
		slog.Int64("rows_deleted", n))

	return nil
}
