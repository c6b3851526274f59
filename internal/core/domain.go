package core

import (
	"errors"

	"github.com/shopspring/decimal"
)

const (
	USD  Currency = "USD"
	GBP  Currency = "GBP"
	EURO Currency = "EURO"
	ILS  Currency = "ILS"
)

type (
	Currency string

	// CostInput is the shape the caller provides when recording a cost.
	// Date components are stamped by the store at creation time.
	CostInput struct {
		Sum         decimal.Decimal `json:"sum"`
		Currency    Currency        `json:"currency"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
	}

	// CostRecord is one persisted expense entry. Year/month/day are stored
	// denormalized so reports can filter on direct equality.
	CostRecord struct {
		ID          int64           `json:"id"`
		Sum         decimal.Decimal `json:"sum"`
		Currency    Currency        `json:"currency"`
		Category    string          `json:"category"`
		Description string          `json:"description"`
		Year        int             `json:"year"`
		Month       int             `json:"month"`
		Day         int             `json:"day"`
	}
)

var (
	ErrInvalidSum      = errors.New("sum must be a positive number")
	ErrUnknownCurrency = errors.New("unknown currency")
)

// Currencies lists every currency the tracker accepts, in display order.
func Currencies() []Currency {
	return []Currency{USD, GBP, EURO, ILS}
}

func (c Currency) Valid() bool {
	switch c {
	case USD, GBP, EURO, ILS:
		return true
	}
	return false
}

func (in CostInput) Validate() error {
	if in.Sum.Sign() <= 0 {
		return ErrInvalidSum
	}
	if !in.Currency.Valid() {
		return ErrUnknownCurrency
	}
	return nil
}
