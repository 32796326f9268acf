package memory

import (
	"context"
	"testing"
	"time"
)

func TestKVExpiry(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	kv := NewKV(func() time.Time { return now })
	ctx := context.Background()

	if err := kv.Set(ctx, "a", "1", time.Minute); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if v, ok, _ := kv.Get(ctx, "a"); !ok || v != "1" {
		t.Fatalf("expected live entry, got %q %v", v, ok)
	}
	now = now.Add(time.Minute)
	if _, ok, _ := kv.Get(ctx, "a"); ok {
		t.Fatalf("expected entry to expire at ttl")
	}
}

func TestKVSetIfAbsent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	kv := NewKV(func() time.Time { return now })
	ctx := context.Background()

	if ok, _ := kv.SetIfAbsent(ctx, "lock", "a", 5*time.Minute); !ok {
		t.Fatalf("first SetIfAbsent should succeed")
	}
	if ok, _ := kv.SetIfAbsent(ctx, "lock", "b", 5*time.Minute); ok {
		t.Fatalf("second SetIfAbsent should fail while entry is live")
	}
	now = now.Add(5 * time.Minute)
	if ok, _ := kv.SetIfAbsent(ctx, "lock", "c", 5*time.Minute); !ok {
		t.Fatalf("SetIfAbsent should succeed after expiry")
	}
	if v, _, _ := kv.Get(ctx, "lock"); v != "c" {
		t.Fatalf("expected replaced value c, got %q", v)
	}
}

func TestKVNoTTL(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	kv := NewKV(func() time.Time { return now })
	ctx := context.Background()
	_ = kv.Set(ctx, "k", "v", 0)
	now = now.Add(24 * time.Hour)
	if _, ok, _ := kv.Get(ctx, "k"); !ok {
		t.Fatalf("entry without ttl must not expire")
	}
	_ = kv.Delete(ctx, "k")
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("expected entry deleted")
	}
}
