package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vesrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RateRepository struct {
	pool *pgxpool.Pool
}

// GetLatest returns the most recent rate entry by as_of_date then created_at,
// or nil when the table is empty.
func (r *RateRepository) GetLatest(ctx context.Context) (*domain.RateEntry, error) {
	const q = `
        select as_of_date, rate, source, created_at
        from ves_rates
        order by as_of_date desc, created_at desc
        limit 1;
    `

	var entry domain.RateEntry
	if err := r.pool.QueryRow(ctx, q).Scan(
		&entry.AsOfDate,
		&entry.Rate,
		&entry.Source,
		&entry.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select latest rate: %w", err)
	}

	return &entry, nil
}

// UpsertForDate stores the rate for a calendar date as a delete-then-insert
// inside one transaction. Replacing the whole row keeps created_at honest:
// a consumer can always tell when the value was last written, even though
// the date key stays the same.
func (r *RateRepository) UpsertForDate(ctx context.Context, date time.Time, rate float64, source domain.RateSource) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err = tx.Exec(ctx, `delete from ves_rates where as_of_date = $1`, date); err != nil {
		return fmt.Errorf("failed to delete existing rate for %s: %w", date.Format(time.DateOnly), err)
	}
	if _, err = tx.Exec(ctx,
		`insert into ves_rates (as_of_date, rate, source, created_at) values ($1, $2, $3, now())`,
		date, rate, string(source),
	); err != nil {
		return fmt.Errorf("failed to insert rate for %s: %w", date.Format(time.DateOnly), err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteManualForDate removes the manual override for a date, if any.
// Automated entries are left untouched.
func (r *RateRepository) DeleteManualForDate(ctx context.Context, date time.Time) error {
	_, err := r.pool.Exec(ctx,
		`delete from ves_rates where as_of_date = $1 and source = $2`,
		date, string(domain.SourceManual),
	)
	if err != nil {
		return fmt.Errorf("failed to delete manual rate for %s: %w", date.Format(time.DateOnly), err)
	}
	return nil
}

func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{pool: pool}
}
