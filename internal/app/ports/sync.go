package ports

import (
	"context"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
)

// PageQuery selects one page of remote entities.
type PageQuery struct {
	Page    int
	PerPage int
	Status  string
}

// RemoteCatalog reads entities from the remote API.
type RemoteCatalog interface {
	// ListPage returns the raw page document for kind.
	ListPage(ctx context.Context, kind domain.Kind, query PageQuery) ([]byte, error)
	// FetchOne returns a single entity or ErrNotFound.
	FetchOne(ctx context.Context, kind domain.Kind, externalID string) (domain.RemoteEntity, error)
}

// EntityUpserter maps remote entities of one kind onto local records.
type EntityUpserter interface {
	Kind() domain.Kind
	UpsertOne(ctx context.Context, entity domain.RemoteEntity) domain.UpsertResult
}

// SyncLock is a named mutual-exclusion lock with expiry.
type SyncLock interface {
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
	IsHeld(ctx context.Context, key string) (bool, error)
}
