package pg

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
	"github.com/achaudhary7/SilverInfo-sub002/internal/domain"
)

// HistoryRepo is the durable daily price ledger. One row per calendar date;
// a repeated write for a date replaces the previous one.
type HistoryRepo struct{ db *DB }

var _ application.HistoryRepo = (*HistoryRepo)(nil)

func NewHistoryRepo(db *DB) *HistoryRepo { return &HistoryRepo{db: db} }

func (r *HistoryRepo) RecordDay(ctx context.Context, e domain.HistoricalEntry) error {
	const up = `
        INSERT INTO daily_prices(day, gram_price, source, formula_version, recorded_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (day) DO UPDATE
          SET gram_price=EXCLUDED.gram_price,
              source=EXCLUDED.source,
              formula_version=EXCLUDED.formula_version,
              recorded_at=EXCLUDED.recorded_at`
	_, err := r.db.Pool.Exec(ctx, up,
		domain.Day(e.Date), e.Gram, string(e.Source), e.FormulaVersion, e.RecordedAt)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *HistoryRepo) Entry(ctx context.Context, date time.Time) (domain.HistoricalEntry, error) {
	const q = `
        SELECT day, gram_price::float8, source, formula_version, recorded_at
        FROM daily_prices WHERE day=$1`
	var out domain.HistoricalEntry
	var source string
	err := r.db.Pool.QueryRow(ctx, q, domain.Day(date)).
		Scan(&out.Date, &out.Gram, &source, &out.FormulaVersion, &out.RecordedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.HistoricalEntry{}, domain.ErrNotFound
		}
		return domain.HistoricalEntry{}, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	out.Source = domain.Provenance(source)
	return out, nil
}

func (r *HistoryRepo) Range(ctx context.Context, days int) ([]domain.HistoricalEntry, error) {
	const q = `
        SELECT day, gram_price::float8, source, formula_version, recorded_at
        FROM (
            SELECT * FROM daily_prices ORDER BY day DESC LIMIT $1
        ) recent
        ORDER BY day ASC`
	rows, err := r.db.Pool.Query(ctx, q, days)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var out []domain.HistoricalEntry
	for rows.Next() {
		var e domain.HistoricalEntry
		var source string
		if err := rows.Scan(&e.Date, &e.Gram, &source, &e.FormulaVersion, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
		}
		e.Source = domain.Provenance(source)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return out, nil
}
