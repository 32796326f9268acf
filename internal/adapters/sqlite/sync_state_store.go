package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/db/queries"
)

type syncStateDatabase interface {
	GetSyncState(ctx context.Context, kind string) (queries.SyncState, error)
	ListSyncStates(ctx context.Context) ([]queries.SyncState, error)
	UpsertSyncState(ctx context.Context, arg queries.UpsertSyncStateParams) error
	TouchSyncState(ctx context.Context, arg queries.TouchSyncStateParams) error
	InsertWebhookReceipt(ctx context.Context, arg queries.InsertWebhookReceiptParams) error
}

// SyncStateStore persists sync freshness and webhook receipts.
type SyncStateStore struct {
	db syncStateDatabase
}

// NewSyncStateStore wraps a migrated database.
func NewSyncStateStore(database syncStateDatabase) *SyncStateStore {
	return &SyncStateStore{db: database}
}

func (s *SyncStateStore) LastSyncAt(ctx context.Context, kind domain.Kind) (time.Time, bool, error) {
	row, err := s.db.GetSyncState(ctx, string(kind))
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	at := parseTime(row.LastSyncAt)
	return at, !at.IsZero(), nil
}

func (s *SyncStateStore) MarkSynced(ctx context.Context, kind domain.Kind, at time.Time, summary string) error {
	return s.db.UpsertSyncState(ctx, queries.UpsertSyncStateParams{
		Kind:        string(kind),
		LastSyncAt:  formatTime(at),
		LastSummary: summary,
	})
}

func (s *SyncStateStore) Touch(ctx context.Context, kind domain.Kind, at time.Time) error {
	return s.db.TouchSyncState(ctx, queries.TouchSyncStateParams{Kind: string(kind), LastSyncAt: formatTime(at)})
}

func (s *SyncStateStore) ListSyncStates(ctx context.Context) ([]ports.SyncState, error) {
	rows, err := s.db.ListSyncStates(ctx)
	if err != nil {
		return nil, err
	}
	states := make([]ports.SyncState, 0, len(rows))
	for _, row := range rows {
		states = append(states, ports.SyncState{
			Kind:        domain.Kind(row.Kind),
			LastSyncAt:  parseTime(row.LastSyncAt),
			LastSummary: row.LastSummary,
		})
	}
	return states, nil
}

func (s *SyncStateStore) RecordWebhookReceipt(ctx context.Context, receipt ports.WebhookReceipt) error {
	at := receipt.ReceivedAt
	if at.IsZero() {
		at = time.Now()
	}
	return s.db.InsertWebhookReceipt(ctx, queries.InsertWebhookReceiptParams{
		EventType:  receipt.EventType,
		EntityID:   receipt.EntityID,
		Result:     receipt.Result,
		ReceivedAt: formatTime(at),
	})
}

var (
	_ ports.SyncStateStore      = (*SyncStateStore)(nil)
	_ ports.WebhookReceiptStore = (*SyncStateStore)(nil)
)
