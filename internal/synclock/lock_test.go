package synclock

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/fr0stylo/pfsync/internal/adapters/memory"
	portmocks "github.com/fr0stylo/pfsync/internal/app/ports/mocks"
)

func TestLockMutualExclusion(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lock := New(memory.NewKV(func() time.Time { return now }))
	ctx := context.Background()

	ok, err := lock.TryAcquire(ctx, "listing-import", 300*time.Second)
	if err != nil || !ok {
		t.Fatalf("first acquire: ok=%v err=%v", ok, err)
	}
	if ok, _ := lock.TryAcquire(ctx, "listing-import", 300*time.Second); ok {
		t.Fatalf("second acquire must fail while held")
	}
	if ok, _ := lock.TryAcquire(ctx, "agent-import", 300*time.Second); !ok {
		t.Fatalf("locks for different kinds must be independent")
	}
	if held, _ := lock.IsHeld(ctx, "listing-import"); !held {
		t.Fatalf("expected lock to be held")
	}

	if err := lock.Release(ctx, "listing-import"); err != nil {
		t.Fatalf("release: %v", err)
	}
	if ok, _ := lock.TryAcquire(ctx, "listing-import", 300*time.Second); !ok {
		t.Fatalf("acquire after release must succeed")
	}
}

func TestLockExpires(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	lock := New(memory.NewKV(func() time.Time { return now }))
	ctx := context.Background()

	if ok, _ := lock.TryAcquire(ctx, "agent-import", DefaultTTL); !ok {
		t.Fatalf("first acquire failed")
	}
	now = now.Add(DefaultTTL - time.Second)
	if ok, _ := lock.TryAcquire(ctx, "agent-import", DefaultTTL); ok {
		t.Fatalf("acquire before ttl must fail")
	}
	now = now.Add(time.Second)
	if ok, _ := lock.TryAcquire(ctx, "agent-import", DefaultTTL); !ok {
		t.Fatalf("acquire after ttl must succeed")
	}
}

func TestLockConcurrentAcquire(t *testing.T) {
	lock := New(memory.NewKV(nil))
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := lock.TryAcquire(ctx, "listing-import", time.Minute); ok {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if winners != 1 {
		t.Fatalf("expected exactly one winner, got %d", winners)
	}
}

func TestLockHolderTag(t *testing.T) {
	lock := New(memory.NewKV(nil))
	ctx := context.Background()
	_, _ = lock.TryAcquire(ctx, "listing-import", time.Minute)
	holder, ok, err := lock.Holder(ctx, "listing-import")
	if err != nil || !ok {
		t.Fatalf("expected holder, ok=%v err=%v", ok, err)
	}
	if !strings.Contains(holder, "@") {
		t.Fatalf("unexpected holder tag %q", holder)
	}
}

func TestLockPropagatesStoreErrors(t *testing.T) {
	kv := portmocks.NewMockExpiringKV(t)
	kv.EXPECT().SetIfAbsent(mock.Anything, "synclock:listing-import", mock.Anything, DefaultTTL).Return(false, errors.New("disk full"))

	ok, err := New(kv).TryAcquire(context.Background(), "listing-import", 0)
	if ok || err == nil {
		t.Fatalf("expected acquire error, ok=%v err=%v", ok, err)
	}
}
