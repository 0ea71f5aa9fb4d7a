// internal/workers/notifications_processor.go
package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	redis_a "github.com/ammerola/phone-inventory/internal/adapters/redis_adapter"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// MaxStockAlerts caps the recent alerts list
const MaxStockAlerts = 100

// StockAlertProcessor records stock alerts for operators
type StockAlertProcessor struct {
	cache  ports.CacheRepository
	logger *slog.Logger
}

// NewStockAlertProcessor creates a new stock alert processor. A nil cache
// only logs alerts.
func NewStockAlertProcessor(cache ports.CacheRepository, logger *slog.Logger) *StockAlertProcessor {
	return &StockAlertProcessor{
		cache:  cache,
		logger: logger.With(slog.String("processor", "stock_alert")),
	}
}

// ProcessStockAlert logs the alert and appends it to the recent alerts list
func (p *StockAlertProcessor) ProcessStockAlert(ctx context.Context, t *asynq.Task) error {
	var payload StockAlertPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	alert := payload.Alert()
	p.logger.WarnContext(ctx, "stock alert",
		slog.String("phone_id", alert.PhoneID.String()),
		slog.String("name", alert.Name),
		slog.String("brand", alert.Brand),
		slog.Int("quantity", alert.Quantity),
		slog.String("status", string(alert.Status)),
		slog.String("previous_status", string(alert.PreviousStatus)))

	if p.cache == nil {
		return nil
	}

	if err := p.cache.PushCapped(ctx, redis_a.StockAlertsKey, alert, MaxStockAlerts); err != nil {
		return fmt.Errorf("failed to record stock alert: %w", err)
	}

	return nil
}
