// Package storage persists transaction classifications keyed by
// fingerprint, so charges recognized in one billing period are
// auto-classified in the next.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Recognition maps a transaction fingerprint to the classification
// chosen when the charge was first seen. Amount and installment are
// stored for auditing only; the fingerprint already folds them in.
type Recognition struct {
	Fingerprint string
	Amount      string
	Installment string
	Beneficiary string
	Category    string
}

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) the recognition
// database and runs pending migrations. A store that cannot be opened is
// fatal for the session, so failures surface here rather than on first
// lookup.
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Lookup reads the classification recorded for a fingerprint. Absence is
// not an error: an unrecognized charge returns (nil, nil).
func (r *SQLiteRepository) Lookup(ctx context.Context, fingerprint string) (*Recognition, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT fingerprint, amount, installment, beneficiary, category
		 FROM recognitions WHERE fingerprint = ?`, fingerprint)

	var rec Recognition
	err := row.Scan(&rec.Fingerprint, &rec.Amount, &rec.Installment, &rec.Beneficiary, &rec.Category)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup recognition: %w", err)
	}
	return &rec, nil
}

// Record inserts a classification for a fingerprint not seen before.
// If the fingerprint is already present the call is a no-op: the first
// classification wins and is never overwritten. The write is durable
// when the call returns.
func (r *SQLiteRepository) Record(ctx context.Context, rec Recognition) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO recognitions (fingerprint, amount, installment, beneficiary, category)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(fingerprint) DO NOTHING`,
		rec.Fingerprint, rec.Amount, rec.Installment, rec.Beneficiary, rec.Category)
	if err != nil {
		return fmt.Errorf("record recognition: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record recognition: %w", err)
	}
	if inserted == 0 {
		slog.DebugContext(ctx, "Fingerprint already recorded, keeping first classification",
			"beneficiary", rec.Beneficiary, "category", rec.Category)
		return nil
	}

	slog.InfoContext(ctx, "Recognition recorded",
		"beneficiary", rec.Beneficiary,
		"category", rec.Category,
		"installment", rec.Installment)
	return nil
}

// Count returns the number of stored recognitions.
func (r *SQLiteRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recognitions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count recognitions: %w", err)
	}
	return n, nil
}
