// internal/handlers/export.go
package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
)

// WorkbookExporter renders the inventory workbook
type WorkbookExporter interface {
	Workbook(ctx context.Context) (*services.Export, error)
}

// ExportHandler handles export operations
type ExportHandler struct {
	exporter WorkbookExporter
	respond  *Responder
	logger   *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(exporter WorkbookExporter, respond *Responder, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
		respond:  respond,
		logger:   logger.With(slog.String("handler", "export")),
	}
}

// ExportExcel handles GET /api/reports/export
func (h *ExportHandler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	export, err := h.exporter.Workbook(ctx)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", spreadsheet.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(export.Data); err != nil {
		h.logger.ErrorContext(ctx, "failed to write export response",
			slog.String("error", err.Error()))
		return
	}

	h.logger.InfoContext(ctx, "excel export completed",
		slog.Int("rows", export.Rows),
		slog.String("filename", export.Filename))
}
