// internal/workers/excel_processor.go
package workers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/ammerola/phone-inventory/internal/adapters/storage"
	"github.com/ammerola/phone-inventory/internal/core/ports"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
)

// Exporter renders the inventory workbook
type Exporter interface {
	Workbook(ctx context.Context) (*services.Export, error)
}

// SnapshotProcessor uploads the daily inventory workbook
type SnapshotProcessor struct {
	exporter Exporter
	storage  ports.ObjectStorage
	now      func() time.Time
	logger   *slog.Logger
}

// NewSnapshotProcessor creates a new snapshot processor. A nil storage
// disables snapshots.
func NewSnapshotProcessor(exporter Exporter, storage ports.ObjectStorage, logger *slog.Logger) *SnapshotProcessor {
	return &SnapshotProcessor{
		exporter: exporter,
		storage:  storage,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger.With(slog.String("processor", "snapshot")),
	}
}

// TakeSnapshot renders the inventory export and uploads it
func (p *SnapshotProcessor) TakeSnapshot(ctx context.Context, _ *asynq.Task) error {
	if p.storage == nil {
		p.logger.DebugContext(ctx, "snapshot storage not configured")
		return nil
	}

	export, err := p.exporter.Workbook(ctx)
	if err != nil {
		return fmt.Errorf("failed to render snapshot: %w", err)
	}

	key := storage.SnapshotKey(p.now())
	location, err := p.storage.Upload(ctx, key, bytes.NewReader(export.Data), spreadsheet.ContentType)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}

	p.logger.InfoContext(ctx, "inventory snapshot stored",
		slog.String("key", key),
		slog.String("location", location),
		slog.Int("rows", export.Rows))

	return nil
}
