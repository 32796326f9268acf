package ports

import (
	"context"
	"errors"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
)

// ErrNotFound is returned by lookups that match nothing.
var ErrNotFound = errors.New("not found")

// FieldExternalID is the lookup field holding the remote entity id.
const FieldExternalID = "external_id"

// RecordStore persists local records. Implementations keep at most one
// record per (kind, external id).
type RecordStore interface {
	FindOneByField(ctx context.Context, kind domain.Kind, field, value string) (domain.LocalRecord, error)
	Get(ctx context.Context, id int64) (domain.LocalRecord, error)
	Create(ctx context.Context, write domain.RecordWrite) (int64, error)
	Update(ctx context.Context, id int64, write domain.RecordWrite) (bool, error)
	SetStatus(ctx context.Context, id int64, status domain.Status) error
	AttachImage(ctx context.Context, id int64, image domain.Image) error
	CountByKind(ctx context.Context, kind domain.Kind) (int64, error)
}

// ExpiringKV is a key-value store whose entries may expire.
// A ttl <= 0 stores the entry without expiry.
type ExpiringKV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetIfAbsent stores the entry only when no unexpired entry exists.
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// SyncState is the persisted freshness marker for one kind.
type SyncState struct {
	Kind        domain.Kind
	LastSyncAt  time.Time
	LastSummary string
}

// SyncStateStore persists last-sync metadata per kind.
type SyncStateStore interface {
	LastSyncAt(ctx context.Context, kind domain.Kind) (time.Time, bool, error)
	MarkSynced(ctx context.Context, kind domain.Kind, at time.Time, summary string) error
	Touch(ctx context.Context, kind domain.Kind, at time.Time) error
	ListSyncStates(ctx context.Context) ([]SyncState, error)
}

// WebhookReceipt is one audited inbound webhook.
type WebhookReceipt struct {
	EventType  string
	EntityID   string
	Result     string
	ReceivedAt time.Time
}

// WebhookReceiptStore records inbound webhook outcomes.
type WebhookReceiptStore interface {
	RecordWebhookReceipt(ctx context.Context, receipt WebhookReceipt) error
}

// ImageFetcher downloads remote images.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) (domain.Image, error)
}
