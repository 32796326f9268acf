// Package synclock serializes batch sync runs per entity kind.
package synclock

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/ports"
)

// DefaultTTL bounds how long a crashed holder can block new runs.
const DefaultTTL = 300 * time.Second

const keyPrefix = "synclock:"

// Lock is a named TTL lock on top of an ExpiringKV. Expiry is the only
// recovery path for crashed holders, so two runs may overlap right at the
// TTL boundary.
type Lock struct {
	kv    ports.ExpiringKV
	owner string
	now   func() time.Time
}

// New returns a lock backed by kv.
func New(kv ports.ExpiringKV) *Lock {
	host, _ := os.Hostname()
	return &Lock{
		kv:    kv,
		owner: host + ":" + strconv.Itoa(os.Getpid()),
		now:   time.Now,
	}
}

// TryAcquire takes the lock unless an unexpired holder exists.
func (l *Lock) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	value := l.owner + "@" + l.now().UTC().Format(time.RFC3339)
	ok, err := l.kv.SetIfAbsent(ctx, keyPrefix+key, value, ttl)
	if err != nil {
		return false, fmt.Errorf("acquire %s: %w", key, err)
	}
	return ok, nil
}

// Release drops the lock regardless of holder.
func (l *Lock) Release(ctx context.Context, key string) error {
	if err := l.kv.Delete(ctx, keyPrefix+key); err != nil {
		return fmt.Errorf("release %s: %w", key, err)
	}
	return nil
}

// IsHeld reports whether an unexpired holder exists.
func (l *Lock) IsHeld(ctx context.Context, key string) (bool, error) {
	_, ok, err := l.kv.Get(ctx, keyPrefix+key)
	if err != nil {
		return false, fmt.Errorf("inspect %s: %w", key, err)
	}
	return ok, nil
}

// Holder returns the owner tag of the current holder, if any.
func (l *Lock) Holder(ctx context.Context, key string) (string, bool, error) {
	return l.kv.Get(ctx, keyPrefix+key)
}
