package memory

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// KV is an in-process ExpiringKV.
type KV struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]entry
}

// NewKV returns an empty store. A nil clock uses time.Now.
func NewKV(now func() time.Time) *KV {
	if now == nil {
		now = time.Now
	}
	return &KV{now: now, entries: map[string]entry{}}
}

func (kv *KV) Get(_ context.Context, key string) (string, bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	e, ok := kv.live(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

func (kv *KV) Set(_ context.Context, key, value string, ttl time.Duration) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	kv.entries[key] = kv.newEntry(value, ttl)
	return nil
}

func (kv *KV) SetIfAbsent(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	if _, ok := kv.live(key); ok {
		return false, nil
	}
	kv.entries[key] = kv.newEntry(value, ttl)
	return true, nil
}

func (kv *KV) Delete(_ context.Context, key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()
	delete(kv.entries, key)
	return nil
}

func (kv *KV) newEntry(value string, ttl time.Duration) entry {
	e := entry{value: value}
	if ttl > 0 {
		e.expiresAt = kv.now().Add(ttl)
	}
	return e
}

// live must be called with mu held.
func (kv *KV) live(key string) (entry, bool) {
	e, ok := kv.entries[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !kv.now().Before(e.expiresAt) {
		delete(kv.entries, key)
		return entry{}, false
	}
	return e, true
}
