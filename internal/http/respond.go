package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"outlay/internal/core"
	"outlay/internal/fx"
	"outlay/internal/rates"
	"outlay/internal/storage"
)

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: msg})
}

// writeError maps the failure kinds of the data layer onto statuses:
// validation 422, store-not-open 503, rates fetch and rate lookup 502,
// anything else 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, core.ErrInvalidSum), errors.Is(err, core.ErrUnknownCurrency):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, storage.ErrNotOpen):
		status = http.StatusServiceUnavailable
	case errors.Is(err, rates.ErrFetch), errors.Is(err, fx.ErrRateMissing):
		status = http.StatusBadGateway
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}
