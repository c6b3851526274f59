package core

import "github.com/shopspring/decimal"

// Total is a report's grand total in the requested currency.
type Total struct {
	Currency Currency        `json:"currency"`
	Total    decimal.Decimal `json:"total"`
}

// Report is the computed monthly view: the matching costs with sums
// converted into one target currency, plus their total. Never persisted.
type Report struct {
	Year  int          `json:"year"`
	Month int          `json:"month"` // 1-12
	Costs []CostRecord `json:"costs"`
	Total Total        `json:"total"`
}

// CategorySum is one pie slice: a category and its converted total.
type CategorySum struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// MonthTotal is one bar of the yearly chart.
type MonthTotal struct {
	Month int             `json:"month"` // 1-12
	Total decimal.Decimal `json:"total"`
}
