// Package http exposes the tracker's consumer-facing API over JSON:
// cost entry, rates-source settings, the monthly report and the two
// chart projections.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"outlay/internal/core"
)

// Store is the write surface the handlers need.
type Store interface {
	AddCost(ctx context.Context, in core.CostInput) (core.CostRecord, error)
	SetRatesURL(ctx context.Context, url string) error
}

// Reporter is the read surface the handlers need.
type Reporter interface {
	GetReport(ctx context.Context, year, month int, currency core.Currency) (core.Report, error)
	PieChartData(ctx context.Context, year, month int, currency core.Currency) ([]core.CategorySum, error)
	BarChartData(ctx context.Context, year int, currency core.Currency) ([]core.MonthTotal, error)
}

type Server struct {
	http.Server
	store    Store
	reporter Reporter
}

func NewServer(addr string, store Store, reporter Reporter) *Server {
	s := &Server{
		store:    store,
		reporter: reporter,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/costs", s.handleAddCost)
	mux.HandleFunc("PUT /api/settings/rates-url", s.handleSetRatesURL)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/charts/pie", s.handlePieChart)
	mux.HandleFunc("GET /api/charts/bar", s.handleBarChart)
	mux.HandleFunc("GET /api/charts/pie.png", s.handlePieChartPNG)
	mux.HandleFunc("GET /api/charts/bar.png", s.handleBarChartPNG)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.Server = http.Server{
		Addr:    addr,
		Handler: logRequests(mux),
	}
	return s
}

// statusRecorder captures the response status for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		level := slog.LevelInfo
		switch {
		case rec.status >= 500:
			level = slog.LevelError
		case rec.status >= 400:
			level = slog.LevelWarn
		}
		slog.Log(r.Context(), level, "HTTP request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
