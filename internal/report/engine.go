// Package report builds the monthly report and the two chart
// projections on top of the cost store and the rates provider.
package report

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"outlay/internal/core"
	"outlay/internal/fx"
)

// CostScanner is the slice of the store the engine reads from.
type CostScanner interface {
	ScanCosts(ctx context.Context, pred func(core.CostRecord) bool) ([]core.CostRecord, error)
}

// RatesResolver resolves the rates table for one logical request.
type RatesResolver interface {
	Resolve(ctx context.Context) (fx.Table, error)
}

type Engine struct {
	store CostScanner
	rates RatesResolver
}

func NewEngine(store CostScanner, rates RatesResolver) *Engine {
	return &Engine{store: store, rates: rates}
}

// GetReport returns the costs recorded in the given year and month with
// sums converted into the requested currency, and their total. Each
// converted sum is rounded to 2 decimals before summing and the total
// is rounded again, matching the figures the original tracker displays.
func (e *Engine) GetReport(ctx context.Context, year, month int, currency core.Currency) (core.Report, error) {
	rep := core.Report{
		Year:  year,
		Month: month,
		Total: core.Total{Currency: currency},
	}

	costs, err := e.store.ScanCosts(ctx, func(r core.CostRecord) bool {
		return r.Year == year && r.Month == month
	})
	if err != nil {
		return core.Report{}, fmt.Errorf("report %d-%02d: %w", year, month, err)
	}

	// Rates are resolved once per request, strictly after the scan has
	// completed.
	table, err := e.rates.Resolve(ctx)
	if err != nil {
		return core.Report{}, fmt.Errorf("report %d-%02d: %w", year, month, err)
	}

	rep.Costs = make([]core.CostRecord, 0, len(costs))
	total := decimal.Zero
	for _, c := range costs {
		converted, err := fx.Convert(c.Sum, c.Currency, currency, table)
		if err != nil {
			return core.Report{}, fmt.Errorf("report %d-%02d: %w", year, month, err)
		}
		c.Sum = converted.Round(2)
		c.Currency = currency
		rep.Costs = append(rep.Costs, c)
		total = total.Add(c.Sum)
	}
	rep.Total.Total = total.Round(2)

	return rep, nil
}

// PieChartData groups the month's converted costs by category, in
// first-seen order. Categories without costs in the period produce no
// entry.
func (e *Engine) PieChartData(ctx context.Context, year, month int, currency core.Currency) ([]core.CategorySum, error) {
	rep, err := e.GetReport(ctx, year, month, currency)
	if err != nil {
		return nil, fmt.Errorf("pie chart: %w", err)
	}

	index := make(map[string]int)
	slices := make([]core.CategorySum, 0)
	for _, c := range rep.Costs {
		i, ok := index[c.Category]
		if !ok {
			i = len(slices)
			index[c.Category] = i
			slices = append(slices, core.CategorySum{Name: c.Category})
		}
		slices[i].Value = slices[i].Value.Add(c.Sum)
	}
	for i := range slices {
		slices[i].Value = slices[i].Value.Round(2)
	}
	return slices, nil
}

// BarChartData returns exactly 12 month totals for the given year, in
// month order, with zero totals for empty months. The costs collection
// is scanned once and the rates table resolved once, not per month.
func (e *Engine) BarChartData(ctx context.Context, year int, currency core.Currency) ([]core.MonthTotal, error) {
	costs, err := e.store.ScanCosts(ctx, func(r core.CostRecord) bool {
		return r.Year == year
	})
	if err != nil {
		return nil, fmt.Errorf("bar chart %d: %w", year, err)
	}

	table, err := e.rates.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("bar chart %d: %w", year, err)
	}

	var buckets [12][]core.CostRecord
	for _, c := range costs {
		if c.Month < 1 || c.Month > 12 {
			continue
		}
		buckets[c.Month-1] = append(buckets[c.Month-1], c)
	}

	out := make([]core.MonthTotal, 0, 12)
	for m := 1; m <= 12; m++ {
		total := decimal.Zero
		for _, c := range buckets[m-1] {
			converted, err := fx.Convert(c.Sum, c.Currency, currency, table)
			if err != nil {
				return nil, fmt.Errorf("bar chart %d: %w", year, err)
			}
			total = total.Add(converted.Round(2))
		}
		out = append(out, core.MonthTotal{Month: m, Total: total.Round(2)})
	}
	return out, nil
}
