package http

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"outlay/internal/core"
)

// MonthParams holds parsed year/month values from request parameters.
type MonthParams struct {
	Year  int
	Month int
}

// ParseMonthParams extracts year and month from query parameters, using
// the current date as defaults.
func ParseMonthParams(query url.Values) MonthParams {
	now := time.Now()
	params := MonthParams{
		Year:  now.Year(),
		Month: int(now.Month()),
	}

	if v := strings.TrimSpace(query.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			params.Year = y
		}
	}
	if v := strings.TrimSpace(query.Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			params.Month = m
		}
	}

	return params
}

// ParseCurrencyParam extracts the target currency, defaulting to USD.
// The second return value is false for codes outside the supported set.
func ParseCurrencyParam(query url.Values) (core.Currency, bool) {
	v := strings.ToUpper(strings.TrimSpace(query.Get("currency")))
	if v == "" {
		return core.USD, true
	}
	c := core.Currency(v)
	return c, c.Valid()
}
