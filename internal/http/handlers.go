package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"outlay/internal/core"
	"outlay/internal/render"
)

func (s *Server) handleAddCost(w http.ResponseWriter, r *http.Request) {
	var in core.CostInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}

	rec, err := s.store.AddCost(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleSetRatesURL(w http.ResponseWriter, r *http.Request) {
	var body struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(body.URL) == "" {
		badRequest(w, "url is required")
		return
	}

	if err := s.store.SetRatesURL(r.Context(), body.URL); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	currency, ok := ParseCurrencyParam(r.URL.Query())
	if !ok {
		badRequest(w, "unsupported currency")
		return
	}

	rep, err := s.reporter.GetReport(r.Context(), params.Year, params.Month, currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handlePieChart(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	currency, ok := ParseCurrencyParam(r.URL.Query())
	if !ok {
		badRequest(w, "unsupported currency")
		return
	}

	slices, err := s.reporter.PieChartData(r.Context(), params.Year, params.Month, currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slices)
}

func (s *Server) handleBarChart(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	currency, ok := ParseCurrencyParam(r.URL.Query())
	if !ok {
		badRequest(w, "unsupported currency")
		return
	}

	months, err := s.reporter.BarChartData(r.Context(), params.Year, currency)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, months)
}

func (s *Server) handlePieChartPNG(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	currency, ok := ParseCurrencyParam(r.URL.Query())
	if !ok {
		badRequest(w, "unsupported currency")
		return
	}

	slices, err := s.reporter.PieChartData(r.Context(), params.Year, params.Month, currency)
	if err != nil {
		writeError(w, err)
		return
	}
	if len(slices) == 0 {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no costs recorded for this period"})
		return
	}

	title := fmt.Sprintf("Expenses by category - %04d-%02d (%s)", params.Year, params.Month, currency)
	png, err := render.PieChart(slices, title)
	if err != nil {
		writeError(w, err)
		return
	}
	servePNG(w, png)
}

func (s *Server) handleBarChartPNG(w http.ResponseWriter, r *http.Request) {
	params := ParseMonthParams(r.URL.Query())
	currency, ok := ParseCurrencyParam(r.URL.Query())
	if !ok {
		badRequest(w, "unsupported currency")
		return
	}

	months, err := s.reporter.BarChartData(r.Context(), params.Year, currency)
	if err != nil {
		writeError(w, err)
		return
	}

	title := fmt.Sprintf("Expenses by month - %04d (%s)", params.Year, currency)
	png, err := render.BarChart(months, title)
	if err != nil {
		writeError(w, err)
		return
	}
	servePNG(w, png)
}

func servePNG(w http.ResponseWriter, png []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
