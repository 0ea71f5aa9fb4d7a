// internal/core/services/export.go
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
)

// Export is a rendered inventory workbook
type Export struct {
	Filename string
	Data     []byte
	Rows     int
}

// ExportService renders the active inventory as a workbook
type ExportService struct {
	phones  ports.PhoneRepository
	reports ports.ReportRepository
	now     func() time.Time
	logger  *slog.Logger
}

// NewExportService creates a new export service
func NewExportService(phones ports.PhoneRepository, reports ports.ReportRepository, logger *slog.Logger) *ExportService {
	return &ExportService{
		phones:  phones,
		reports: reports,
		now:     defaultClock,
		logger:  logger.With(slog.String("service", "export")),
	}
}

// Workbook renders every active phone, newest first, plus a summary sheet
func (s *ExportService) Workbook(ctx context.Context) (*Export, error) {
	phones, err := s.phones.Find(ctx, domain.PhoneQuery{
		Filter:    domain.PhoneFilter{Visibility: domain.ActiveOnly},
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
	})
	if err != nil {
		return nil, domain.Internal(err, "failed to load phones for export")
	}

	summary, err := s.reports.Summary(ctx)
	if err != nil {
		return nil, domain.Internal(err, "failed to compute export summary")
	}

	now := s.now()
	data, err := spreadsheet.WriteInventory(phones, *summary, now)
	if err != nil {
		return nil, domain.Internal(err, "failed to render export")
	}

	s.logger.InfoContext(ctx, "inventory export rendered",
		slog.Int("rows", len(phones)),
		slog.Int("bytes", len(data)))

	return &Export{
		Filename: spreadsheet.Filename(now),
		Data:     data,
		Rows:     len(phones),
	}, nil
}
