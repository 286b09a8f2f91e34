package kv

import (
	"context"
	"errors"

	"room-booking/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps one row per key in booking_state.
// Conditional writes are single statements guarded on the revision column.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	return &PostgresBackend{pool: pool}
}

const (
	pgSelect = `SELECT value, revision FROM booking_state WHERE key = $1`

	pgUpsert = `INSERT INTO booking_state (key, value, revision, updated_at)
VALUES ($1, $2, 1, now())
ON CONFLICT (key) DO UPDATE
SET value = EXCLUDED.value, revision = booking_state.revision + 1, updated_at = now()
RETURNING revision`

	pgInsertNew = `INSERT INTO booking_state (key, value, revision, updated_at)
VALUES ($1, $2, 1, now())
ON CONFLICT (key) DO NOTHING
RETURNING revision`

	pgUpdateAt = `UPDATE booking_state
SET value = $2, revision = revision + 1, updated_at = now()
WHERE key = $1 AND revision = $3
RETURNING revision`

	// the row stays so that its revision keeps counting
	pgClear = `UPDATE booking_state
SET value = '', revision = revision + 1, updated_at = now()
WHERE key = $1`
)

func (p *PostgresBackend) Get(ctx context.Context, key string) (Record, error) {
	var value string
	var rev int64
	err := p.pool.QueryRow(ctx, pgSelect, key).Scan(&value, &rev)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, notFound(key)
	}
	if err != nil {
		return Record{}, infra.WrapRepoErr("failed to select "+key, err)
	}
	return Record{Value: []byte(value), Revision: rev}, nil
}

func (p *PostgresBackend) Put(ctx context.Context, key string, value []byte, expected int64) (int64, error) {
	var row pgx.Row
	switch expected {
	case AnyRevision:
		row = p.pool.QueryRow(ctx, pgUpsert, key, string(value))
	case 0:
		row = p.pool.QueryRow(ctx, pgInsertNew, key, string(value))
	default:
		row = p.pool.QueryRow(ctx, pgUpdateAt, key, string(value), expected)
	}

	var next int64
	err := row.Scan(&next)
	if errors.Is(err, pgx.ErrNoRows) {
		// the guard matched nothing: the key exists (insert) or moved on (update)
		return 0, staleWrite(key, expected)
	}
	if err != nil {
		return 0, infra.WrapRepoErr("failed to write "+key, err)
	}
	return next, nil
}

func (p *PostgresBackend) Delete(ctx context.Context, key string) error {
	if _, err := p.pool.Exec(ctx, pgClear, key); err != nil {
		return infra.WrapRepoErr("failed to delete "+key, err)
	}
	return nil
}

// Close is a no-op; the pool belongs to whoever opened it.
func (p *PostgresBackend) Close() error { return nil }
