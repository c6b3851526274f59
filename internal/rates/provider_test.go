package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"outlay/internal/core"
	"outlay/internal/fx"
)

type fakeSettings struct {
	url string
	ok  bool
	err error
}

func (f fakeSettings) RatesURL(context.Context) (string, bool, error) {
	return f.url, f.ok, f.err
}

func TestProvider_DefaultTableWhenUnconfigured(t *testing.T) {
	p := NewProvider(fakeSettings{}, time.Second)

	table, err := p.Resolve(context.Background())
	require.NoError(t, err)
	require.Equal(t, fx.DefaultTable(), table)
}

func TestProvider_FetchesConfiguredURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"USD":1,"GBP":0.5,"EURO":0.7,"ILS":3.4,"CHF":0.9}`))
	}))
	defer server.Close()

	p := NewProvider(fakeSettings{url: server.URL, ok: true}, time.Second)
	table, err := p.Resolve(context.Background())
	require.NoError(t, err)

	require.True(t, table[core.GBP].Equal(decimal.RequireFromString("0.5")))
	require.True(t, table[core.USD].Equal(decimal.NewFromInt(1)))
	// Extra keys are just extra table entries.
	require.True(t, table[core.Currency("CHF")].Equal(decimal.RequireFromString("0.9")))
}

func TestProvider_FetchErrorIsNotSwallowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	p := NewProvider(fakeSettings{url: server.URL, ok: true}, time.Second)
	_, err := p.Resolve(context.Background())
	require.ErrorIs(t, err, ErrFetch, "a configured URL must never fall back to the default table")
	require.Contains(t, err.Error(), "404")
}

func TestProvider_UnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<!doctype html>`))
	}))
	defer server.Close()

	p := NewProvider(fakeSettings{url: server.URL, ok: true}, time.Second)
	_, err := p.Resolve(context.Background())
	require.ErrorIs(t, err, ErrFetch)
}

func TestProvider_RejectsNonPositiveRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"USD":1,"GBP":0}`))
	}))
	defer server.Close()

	p := NewProvider(fakeSettings{url: server.URL, ok: true}, time.Second)
	_, err := p.Resolve(context.Background())
	require.ErrorIs(t, err, ErrFetch)
	require.Contains(t, err.Error(), "GBP")
}

func TestProvider_SettingsErrorPropagates(t *testing.T) {
	settingsErr := errors.New("store is not open")
	p := NewProvider(fakeSettings{err: settingsErr}, time.Second)

	_, err := p.Resolve(context.Background())
	require.ErrorIs(t, err, settingsErr)
}
