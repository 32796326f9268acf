// Package postgres provides a shared ExpiringKV for deployments running
// more than one pfsync process.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fr0stylo/pfsync/internal/app/ports"
)

const schema = `CREATE TABLE IF NOT EXISTS pfsync_kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	expires_at TIMESTAMPTZ
)`

const expiryExpr = `CASE WHEN $3::bigint > 0 THEN now() + ($3::bigint * interval '1 millisecond') ELSE NULL END`

const (
	getSQL = `SELECT value FROM pfsync_kv WHERE key = $1 AND (expires_at IS NULL OR expires_at > now())`

	setSQL = `INSERT INTO pfsync_kv (key, value, expires_at) VALUES ($1, $2, ` + expiryExpr + `)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at`

	setIfAbsentSQL = `INSERT INTO pfsync_kv (key, value, expires_at) VALUES ($1, $2, ` + expiryExpr + `)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, expires_at = EXCLUDED.expires_at
WHERE pfsync_kv.expires_at IS NOT NULL AND pfsync_kv.expires_at <= now()`

	deleteSQL = `DELETE FROM pfsync_kv WHERE key = $1`
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// KV implements ports.ExpiringKV on Postgres. Expiry uses the database
// clock so that every process agrees on it.
type KV struct {
	db    querier
	close func()
}

// Open connects to dsn and creates the backing table.
func Open(ctx context.Context, dsn string) (*KV, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &KV{db: pool, close: pool.Close}, nil
}

// NewKV wraps an existing pool or transaction. The table must exist.
func NewKV(db querier) *KV {
	return &KV{db: db}
}

// Close releases the pool opened by Open.
func (kv *KV) Close() error {
	if kv.close != nil {
		kv.close()
	}
	return nil
}

func (kv *KV) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := kv.db.QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (kv *KV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	_, err := kv.db.Exec(ctx, setSQL, key, value, ttlMillis(ttl))
	return err
}

func (kv *KV) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	tag, err := kv.db.Exec(ctx, setIfAbsentSQL, key, value, ttlMillis(ttl))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	_, err := kv.db.Exec(ctx, deleteSQL, key)
	return err
}

func ttlMillis(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return ttl.Milliseconds()
}

var _ ports.ExpiringKV = (*KV)(nil)
