// Package fx implements two-step currency conversion through a common
// reference currency, driven by a flat rates table.
package fx

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"outlay/internal/core"
)

// Table maps a currency code to its value relative to the reference
// currency (the entry whose value is 1). Conversion only requires that
// every code involved has an entry in a common unit.
type Table map[core.Currency]decimal.Decimal

// ErrRateMissing reports a currency code absent from the rates table.
var ErrRateMissing = errors.New("currency missing from rates table")

// DefaultTable returns the built-in rates table used when no rates URL
// has been configured. USD is the reference.
func DefaultTable() Table {
	return Table{
		core.USD:  decimal.NewFromInt(1),
		core.GBP:  decimal.RequireFromString("0.6"),
		core.EURO: decimal.RequireFromString("0.7"),
		core.ILS:  decimal.RequireFromString("3.4"),
	}
}

// Convert converts amount from one currency to another: the amount is
// first expressed in the reference unit (amount / rates[from]) and then
// multiplied by rates[to]. No rounding happens here; callers round once
// per aggregate so rounding error does not compound across additions.
func Convert(amount decimal.Decimal, from, to core.Currency, rates Table) (decimal.Decimal, error) {
	fromRate, ok := rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRateMissing, from)
	}
	toRate, ok := rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrRateMissing, to)
	}
	return amount.Div(fromRate).Mul(toRate), nil
}
