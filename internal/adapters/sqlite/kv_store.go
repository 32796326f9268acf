package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/db/queries"
)

type kvDatabase interface {
	GetKVEntry(ctx context.Context, arg queries.GetKVEntryParams) (queries.KvEntry, error)
	SetKVEntry(ctx context.Context, arg queries.SetKVEntryParams) error
	InsertKVEntryIfAbsent(ctx context.Context, arg queries.InsertKVEntryIfAbsentParams) (int64, error)
	DeleteKVEntry(ctx context.Context, key string) error
	DeleteExpiredKVEntries(ctx context.Context, expiresAt sql.NullInt64) (int64, error)
}

// KV implements ports.ExpiringKV on SQLite. Expiry is stored as unix
// milliseconds and compared against the injected clock.
type KV struct {
	db  kvDatabase
	now func() time.Time
}

// NewKV wraps a migrated database. A nil clock uses time.Now.
func NewKV(database kvDatabase, now func() time.Time) *KV {
	if now == nil {
		now = time.Now
	}
	return &KV{db: database, now: now}
}

func (kv *KV) Get(ctx context.Context, key string) (string, bool, error) {
	entry, err := kv.db.GetKVEntry(ctx, queries.GetKVEntryParams{Key: key, ExpiresAt: kv.nowMillis()})
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (kv *KV) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return kv.db.SetKVEntry(ctx, queries.SetKVEntryParams{Key: key, Value: value, ExpiresAt: kv.expiry(ttl)})
}

// SetIfAbsent relies on a single INSERT ... ON CONFLICT statement, so
// concurrent callers cannot both win.
func (kv *KV) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	rows, err := kv.db.InsertKVEntryIfAbsent(ctx, queries.InsertKVEntryIfAbsentParams{
		Key:         key,
		Value:       value,
		ExpiresAt:   kv.expiry(ttl),
		ExpiresAt_2: kv.nowMillis(),
	})
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (kv *KV) Delete(ctx context.Context, key string) error {
	return kv.db.DeleteKVEntry(ctx, key)
}

// PurgeExpired removes expired entries and returns how many were dropped.
func (kv *KV) PurgeExpired(ctx context.Context) (int64, error) {
	return kv.db.DeleteExpiredKVEntries(ctx, kv.nowMillis())
}

func (kv *KV) nowMillis() sql.NullInt64 {
	return sql.NullInt64{Int64: kv.now().UnixMilli(), Valid: true}
}

func (kv *KV) expiry(ttl time.Duration) sql.NullInt64 {
	if ttl <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: kv.now().Add(ttl).UnixMilli(), Valid: true}
}

var _ ports.ExpiringKV = (*KV)(nil)
