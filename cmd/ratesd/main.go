// ratesd is the companion rates micro-service: one GET route serving a
// static exchange-rate document with permissive CORS headers, so a
// browser-hosted tracker can fetch it directly.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

// Mirrors the tracker's built-in default table.
const defaultDocument = `{"USD":1,"GBP":0.6,"EURO":0.7,"ILS":3.4}`

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8082"
	}
	ratesFile := os.Getenv("RATES_FILE")

	serveRates := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		body := []byte(defaultDocument)
		if ratesFile != "" {
			data, err := os.ReadFile(ratesFile)
			if err != nil {
				logger.Error("Failed to read rates file", "error", err, "path", ratesFile)
				http.Error(w, "rates document unavailable", http.StatusInternalServerError)
				return
			}
			body = data
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", serveRates)
	mux.HandleFunc("/rates.json", serveRates)

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting rates server", "port", port, "file", ratesFile)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
