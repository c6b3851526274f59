// Package render draws the chart projections as PNG images.
package render

import (
	"fmt"

	"github.com/go-analyze/charts"

	"outlay/internal/core"
)

var monthLabels = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// PieChart renders the category breakdown as a PNG pie chart.
func PieChart(slices []core.CategorySum, title string) ([]byte, error) {
	if len(slices) == 0 {
		return nil, fmt.Errorf("no costs to chart")
	}

	values := make([]float64, 0, len(slices))
	names := make([]string, 0, len(slices))
	for _, s := range slices {
		values = append(values, s.Value.InexactFloat64())
		names = append(names, s.Name)
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{Text: title}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("render pie chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode pie chart: %w", err)
	}
	return buf, nil
}

// BarChart renders the 12-month series as a PNG bar chart. The input is
// expected in month order, one entry per month.
func BarChart(months []core.MonthTotal, title string) ([]byte, error) {
	if len(months) == 0 {
		return nil, fmt.Errorf("no month totals to chart")
	}

	values := make([]float64, 0, len(months))
	labels := make([]string, 0, len(months))
	for _, m := range months {
		values = append(values, m.Total.InexactFloat64())
		if m.Month >= 1 && m.Month <= 12 {
			labels = append(labels, monthLabels[m.Month-1])
		} else {
			labels = append(labels, fmt.Sprintf("%d", m.Month))
		}
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{Text: title}),
		charts.XAxisDataOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("render bar chart: %w", err)
	}

	buf, err := p.Bytes()
	if err != nil {
		return nil, fmt.Errorf("encode bar chart: %w", err)
	}
	return buf, nil
}
