// Package storage owns the persistent schema: the costs collection and
// the settings collection, both in a single local SQLite file.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"outlay/internal/core"
)

// ErrNotOpen is returned by every operation invoked before Open.
var ErrNotOpen = errors.New("store is not open")

const ratesURLKey = "ratesUrl"

// Store is an explicit handle to the local cost database. A zero-value
// or freshly constructed Store is unopened; every operation fails with
// ErrNotOpen until Open succeeds.
type Store struct {
	path string
	db   *sql.DB
}

func New(path string) *Store {
	return &Store{path: path}
}

// Open creates the database file if needed, runs schema migrations and
// makes the store ready for use. Safe to call against an already
// current schema; calling Open on an open store is a no-op.
func (s *Store) Open(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(s.path); err != nil {
		db.Close()
		return fmt.Errorf("run migrations: %w", err)
	}

	s.db = db
	return nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// AddCost validates the input, stamps it with the current local date,
// persists it and returns the stored record including its assigned id.
func (s *Store) AddCost(ctx context.Context, in core.CostInput) (core.CostRecord, error) {
	if s.db == nil {
		return core.CostRecord{}, fmt.Errorf("add cost: %w", ErrNotOpen)
	}
	if err := in.Validate(); err != nil {
		return core.CostRecord{}, fmt.Errorf("add cost: %w", err)
	}

	now := time.Now()
	rec := core.CostRecord{
		Sum:         in.Sum,
		Currency:    in.Currency,
		Category:    in.Category,
		Description: in.Description,
		Year:        now.Year(),
		Month:       int(now.Month()),
		Day:         now.Day(),
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO costs (sum, currency, category, description, year, month, day)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Sum.String(), string(rec.Currency), rec.Category, rec.Description,
		rec.Year, rec.Month, rec.Day)
	if err != nil {
		return core.CostRecord{}, fmt.Errorf("insert cost: %w", err)
	}

	rec.ID, err = res.LastInsertId()
	if err != nil {
		return core.CostRecord{}, fmt.Errorf("read inserted id: %w", err)
	}

	slog.InfoContext(ctx, "Cost saved",
		"id", rec.ID,
		"sum", rec.Sum.String(),
		"currency", rec.Currency,
		"category", rec.Category)

	return rec, nil
}

// SetRatesURL upserts the singleton rates-source setting, overwriting
// any prior value. The URL is not validated here; a bad URL surfaces
// later as a fetch failure.
func (s *Store) SetRatesURL(ctx context.Context, url string) error {
	if s.db == nil {
		return fmt.Errorf("set rates url: %w", ErrNotOpen)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		ratesURLKey, url)
	if err != nil {
		return fmt.Errorf("upsert rates url: %w", err)
	}

	slog.InfoContext(ctx, "Rates URL configured", "url", url)
	return nil
}

// RatesURL returns the configured rates-source URL. The second return
// value is false when no URL has ever been configured.
func (s *Store) RatesURL(ctx context.Context) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("get rates url: %w", ErrNotOpen)
	}

	var url string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = ?`, ratesURLKey).Scan(&url)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query rates url: %w", err)
	}
	return url, true, nil
}

// ScanCosts walks the whole costs collection in insertion order and
// returns the records matching pred. Every call re-scans; there is no
// cursor state between calls.
func (s *Store) ScanCosts(ctx context.Context, pred func(core.CostRecord) bool) ([]core.CostRecord, error) {
	if s.db == nil {
		return nil, fmt.Errorf("scan costs: %w", ErrNotOpen)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, sum, currency, category, description, year, month, day
		 FROM costs ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query costs: %w", err)
	}
	defer rows.Close()

	var out []core.CostRecord
	for rows.Next() {
		var (
			rec core.CostRecord
			sum string
			cur string
		)
		if err := rows.Scan(&rec.ID, &sum, &cur, &rec.Category, &rec.Description,
			&rec.Year, &rec.Month, &rec.Day); err != nil {
			return nil, fmt.Errorf("scan cost row: %w", err)
		}
		rec.Sum, err = decimal.NewFromString(sum)
		if err != nil {
			return nil, fmt.Errorf("parse stored sum %q: %w", sum, err)
		}
		rec.Currency = core.Currency(cur)
		if pred == nil || pred(rec) {
			out = append(out, rec)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate costs: %w", err)
	}
	return out, nil
}
