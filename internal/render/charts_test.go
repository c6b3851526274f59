package render

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"outlay/internal/core"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestPieChart(t *testing.T) {
	slices := []core.CategorySum{
		{Name: "FOOD", Value: decimal.RequireFromString("183.33")},
		{Name: "TRAVEL", Value: decimal.RequireFromString("40")},
	}

	png, err := PieChart(slices, "Expenses by category - 2026-08 (USD)")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, pngMagic), "output is not a PNG")
}

func TestPieChart_Empty(t *testing.T) {
	_, err := PieChart(nil, "empty")
	require.Error(t, err)
}

func TestBarChart(t *testing.T) {
	months := make([]core.MonthTotal, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, core.MonthTotal{Month: m, Total: decimal.Zero})
	}
	months[0].Total = decimal.RequireFromString("183.33")

	png, err := BarChart(months, "Expenses by month - 2026 (USD)")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(png, pngMagic), "output is not a PNG")
}

func TestBarChart_Empty(t *testing.T) {
	_, err := BarChart(nil, "empty")
	require.Error(t, err)
}
