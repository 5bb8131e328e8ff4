package repo

import (
	"context"
	"fmt"

	"github.com/example/storefront-state/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSnapshotRepo хранит по одному JSON-снимку на срез состояния.
type PostgresSnapshotRepo struct {
	Pool *pgxpool.Pool
}

func NewPostgresSnapshotRepo(pool *pgxpool.Pool) *PostgresSnapshotRepo {
	return &PostgresSnapshotRepo{Pool: pool}
}

func (r *PostgresSnapshotRepo) Upsert(ctx context.Context, key string, raw []byte) error {
	_, err := r.Pool.Exec(ctx, `INSERT INTO store_snapshots(slice, payload, updated_at) VALUES($1, $2, now())
        ON CONFLICT (slice) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`, key, raw)
	if err != nil {
		return fmt.Errorf("upsert snapshot %s: %w", key, err)
	}
	return nil
}

// LoadAll обходит снимки в порядке имени среза.
func (r *PostgresSnapshotRepo) LoadAll(ctx context.Context, fn func(key string, raw []byte) error) error {
	rows, err := r.Pool.Query(ctx, `SELECT slice, payload FROM store_snapshots ORDER BY slice`)
	if err != nil {
		return fmt.Errorf("load snapshots: %w", err)
	}
	var (
		key string
		raw []byte
	)
	if _, err := pgx.ForEachRow(rows, []any{&key, &raw}, func() error {
		return fn(key, raw)
	}); err != nil {
		return fmt.Errorf("load snapshots: %w", err)
	}
	return nil
}

var _ domain.SnapshotRepository = (*PostgresSnapshotRepo)(nil)

// EnsureSchema создаёт таблицу снимков, если её нет.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS store_snapshots (
  slice text PRIMARY KEY,
  payload jsonb NOT NULL,
  updated_at timestamptz NOT NULL DEFAULT now()
);`)
	return err
}
