// internal/core/ports/tasks.go
package ports

import (
	"context"

	"github.com/ammerola/phone-inventory/internal/core/domain"
)

// TaskEnqueuer hands background work to the task queue
type TaskEnqueuer interface {
	EnqueueStockAlert(ctx context.Context, alert domain.StockAlert) error
}
