// internal/workers/analytics_processor.go
package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/phone-inventory/internal/core/ports"
)

// ReportWarmupProcessor refreshes the cached reports
type ReportWarmupProcessor struct {
	reports ports.ReportService
	logger  *slog.Logger
}

// NewReportWarmupProcessor creates a new report warmup processor
func NewReportWarmupProcessor(reports ports.ReportService, logger *slog.Logger) *ReportWarmupProcessor {
	return &ReportWarmupProcessor{
		reports: reports,
		logger:  logger.With(slog.String("processor", "report_warmup")),
	}
}

// WarmupReports recomputes every report into the cache
func (p *ReportWarmupProcessor) WarmupReports(ctx context.Context, _ *asynq.Task) error {
	start := time.Now()
	p.logger.InfoContext(ctx, "warming up reports")

	if err := p.reports.Warmup(ctx); err != nil {
		return fmt.Errorf("failed to warm up reports: %w", err)
	}

	p.logger.InfoContext(ctx, "reports warmed up",
		slog.Duration("duration", time.Since(start)))
	return nil
}
