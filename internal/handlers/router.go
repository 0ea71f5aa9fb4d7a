// internal/handlers/router.go
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ammerola/phone-inventory/internal/handlers/middleware"
)

// APIName is reported by the info endpoints
const APIName = "Phone Store API"

// RouterConfig wires handlers and middleware settings into a router
type RouterConfig struct {
	Phones  *PhoneHandler
	Reports *ReportHandler
	Export  *ExportHandler
	Health  *HealthHandler
	Respond *Responder
	Logger  *slog.Logger
	Version string

	AllowedOrigins    []string
	RateLimitRequests int
	RateLimitWindow   time.Duration
	SecureHeaders     bool
	RequestTimeout    time.Duration
}

// NewRouter registers every route and wraps the mux in the middleware chain
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	registerRoutes(mux, cfg)

	var handler http.Handler = mux

	// Applied innermost first
	if cfg.RequestTimeout > 0 {
		handler = middleware.Timeout(cfg.RequestTimeout)(handler)
	}
	handler = middleware.BodyLimit(middleware.MaxBodyBytes)(handler)
	if cfg.RateLimitRequests > 0 && cfg.RateLimitWindow > 0 {
		handler = middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow)(handler)
	}
	if cfg.SecureHeaders {
		handler = middleware.SecureHeaders(handler)
	}
	if len(cfg.AllowedOrigins) > 0 {
		handler = middleware.CORS(cfg.AllowedOrigins)(handler)
	}
	handler = middleware.Recovery(cfg.Logger)(handler)
	handler = middleware.Logger(cfg.Logger)(handler)
	handler = middleware.RequestID(handler)

	return handler
}

func registerRoutes(mux *http.ServeMux, cfg RouterConfig) {
	const api = "/api"

	mux.HandleFunc("GET /{$}", welcome(cfg))
	mux.HandleFunc("GET "+api+"/{$}", apiInfo(cfg))
	mux.HandleFunc("GET "+api, apiInfo(cfg))

	if cfg.Health != nil {
		mux.HandleFunc("GET /health", cfg.Health.Health)
		mux.HandleFunc("GET /ready", cfg.Health.Readiness)
	}

	phones := api + "/phones"
	mux.HandleFunc("GET "+phones, cfg.Phones.ListPhones)
	mux.HandleFunc("GET "+phones+"/search", cfg.Phones.SearchPhones)
	mux.HandleFunc("GET "+phones+"/{id}", cfg.Phones.GetPhone)
	mux.HandleFunc("POST "+phones, cfg.Phones.CreatePhone)
	mux.HandleFunc("PUT "+phones+"/{id}", cfg.Phones.UpdatePhone)
	mux.HandleFunc("PATCH "+phones+"/{id}/stock", cfg.Phones.AdjustStock)
	mux.HandleFunc("DELETE "+phones+"/{id}", cfg.Phones.DeletePhone)
	mux.HandleFunc("DELETE "+phones+"/{id}/permanent", cfg.Phones.DeletePhonePermanent)

	reports := api + "/reports"
	mux.HandleFunc("GET "+reports+"/summary", cfg.Reports.Summary)
	mux.HandleFunc("GET "+reports+"/by-brand", cfg.Reports.ByBrand)
	mux.HandleFunc("GET "+reports+"/low-stock", cfg.Reports.LowStock)
	mux.HandleFunc("GET "+reports+"/out-of-stock", cfg.Reports.OutOfStock)
	mux.HandleFunc("GET "+reports+"/top-value", cfg.Reports.TopValue)
	mux.HandleFunc("GET "+reports+"/by-price-range", cfg.Reports.ByPriceRange)
	mux.HandleFunc("GET "+reports+"/stock-alerts", cfg.Reports.StockAlerts)
	if cfg.Export != nil {
		mux.HandleFunc("GET "+reports+"/export", cfg.Export.ExportExcel)
	}

	mux.HandleFunc("/", notFound(cfg.Respond))
}

func welcome(cfg RouterConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.Respond.JSON(w, r, http.StatusOK, map[string]string{
			"message": "Welcome to the " + APIName,
			"docs":    "/api",
			"version": cfg.Version,
		})
	}
}

func apiInfo(cfg RouterConfig) http.HandlerFunc {
	endpoints := map[string]string{
		"phones":  "/api/phones",
		"reports": "/api/reports",
	}
	return func(w http.ResponseWriter, r *http.Request) {
		cfg.Respond.JSON(w, r, http.StatusOK, map[string]interface{}{
			"name":      APIName,
			"version":   cfg.Version,
			"endpoints": endpoints,
		})
	}
}

func notFound(respond *Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond.Fail(w, r, http.StatusNotFound, fmt.Sprintf("Not found: %s", r.URL.RequestURI()))
	}
}
