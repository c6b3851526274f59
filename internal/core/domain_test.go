package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCostInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		input   CostInput
		wantErr error
	}{
		{
			name:  "valid",
			input: CostInput{Sum: decimal.RequireFromString("12.50"), Currency: USD, Category: "FOOD"},
		},
		{
			name:  "valid without category",
			input: CostInput{Sum: decimal.NewFromInt(1), Currency: ILS},
		},
		{
			name:    "zero sum",
			input:   CostInput{Sum: decimal.Zero, Currency: USD},
			wantErr: ErrInvalidSum,
		},
		{
			name:    "negative sum",
			input:   CostInput{Sum: decimal.RequireFromString("-3"), Currency: GBP},
			wantErr: ErrInvalidSum,
		},
		{
			name:    "unknown currency",
			input:   CostInput{Sum: decimal.NewFromInt(5), Currency: "EUR"},
			wantErr: ErrUnknownCurrency,
		},
		{
			name:    "empty currency",
			input:   CostInput{Sum: decimal.NewFromInt(5)},
			wantErr: ErrUnknownCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCurrency_Valid(t *testing.T) {
	for _, c := range Currencies() {
		require.True(t, c.Valid(), "%s should be valid", c)
	}
	for _, c := range []Currency{"EUR", "usd", "", "SGD"} {
		require.False(t, c.Valid(), "%s should be invalid", c)
	}
}
