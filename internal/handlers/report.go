// internal/handlers/report.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	redis_a "github.com/ammerola/phone-inventory/internal/adapters/redis_adapter"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/ports"
)

const (
	defaultAlertLimit = 20
	maxAlertLimit     = 100
)

// ReportHandler serves inventory reports
type ReportHandler struct {
	reports ports.ReportService
	cache   ports.CacheRepository
	respond *Responder
	logger  *slog.Logger
}

// NewReportHandler creates a report handler. cache may be nil, in which case
// the stock alert feed is empty.
func NewReportHandler(reports ports.ReportService, cache ports.CacheRepository, respond *Responder, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{
		reports: reports,
		cache:   cache,
		respond: respond,
		logger:  logger.With(slog.String("handler", "report")),
	}
}

// Summary handles GET /api/reports/summary
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, r, http.StatusOK, dataResponse{Success: true, Data: summary})
}

// ByBrand handles GET /api/reports/by-brand
func (h *ReportHandler) ByBrand(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.ByBrand(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, r, http.StatusOK, dataResponse{Success: true, Data: orEmpty(report)})
}

// LowStock handles GET /api/reports/low-stock?threshold=
func (h *ReportHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold, err := queryInt(r, "threshold")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if threshold == nil {
		threshold = ptr(domain.DefaultLowStockThreshold)
	}

	phones, err := h.reports.LowStock(r.Context(), *threshold)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, r, http.StatusOK, countedResponse[domain.Phone]{
		Success: true,
		Count:   len(phones),
		Data:    orEmpty(phones),
	})
}

// OutOfStock handles GET /api/reports/out-of-stock
func (h *ReportHandler) OutOfStock(w http.ResponseWriter, r *http.Request) {
	phones, err := h.reports.OutOfStock(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, r, http.StatusOK, countedResponse[domain.Phone]{
		Success: true,
		Count:   len(phones),
		Data:    orEmpty(phones),
	})
}

// TopValue handles GET /api/reports/top-value?limit=
func (h *ReportHandler) TopValue(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if limit == nil {
		limit = ptr(domain.DefaultTopValueLimit)
	}

	phones, err := h.reports.TopValue(r.Context(), *limit)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, r, http.StatusOK, dataResponse{Success: true, Data: orEmpty(phones)})
}

// ByPriceRange handles GET /api/reports/by-price-range
func (h *ReportHandler) ByPriceRange(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.reports.ByPriceRange(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, r, http.StatusOK, dataResponse{Success: true, Data: orEmpty(buckets)})
}

// StockAlerts handles GET /api/reports/stock-alerts?limit=
func (h *ReportHandler) StockAlerts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	if limit == nil {
		limit = ptr(defaultAlertLimit)
	}
	if *limit < 1 || *limit > maxAlertLimit {
		h.respond.Error(w, r, domain.NewValidationError(
			fmt.Sprintf("limit must be between 1 and %d", maxAlertLimit)))
		return
	}

	alerts := []domain.StockAlert{}
	if h.cache != nil {
		if err := h.cache.Range(r.Context(), redis_a.StockAlertsKey, int64(*limit), &alerts); err != nil {
			h.respond.Error(w, r, domain.Internal(err, "failed to read stock alerts"))
			return
		}
	}

	h.respond.JSON(w, r, http.StatusOK, countedResponse[domain.StockAlert]{
		Success: true,
		Count:   len(alerts),
		Data:    orEmpty(alerts),
	})
}

func ptr[T any](v T) *T {
	return &v
}
