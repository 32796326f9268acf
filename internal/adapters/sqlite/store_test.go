package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/db"
	"github.com/fr0stylo/pfsync/internal/upsert"
)

func openTestDB(t *testing.T) *db.Database {
	t.Helper()
	database, err := db.New(filepath.Join(t.TempDir(), "pfsync"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestRecordStoreCreateAndFind(t *testing.T) {
	store := NewRecordStore(openTestDB(t))
	ctx := context.Background()
	syncedAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	id, err := store.Create(ctx, domain.RecordWrite{
		Kind:         domain.KindListing,
		ExternalID:   "L1",
		Title:        "Villa",
		Fields:       map[string]string{"bedrooms": "3", "reference": "REF-1"},
		RawJSON:      `{"id":"L1"}`,
		LastSyncedAt: syncedAt,
	})
	require.NoError(t, err)

	byExternal, err := store.FindOneByField(ctx, domain.KindListing, ports.FieldExternalID, "L1")
	require.NoError(t, err)
	require.Equal(t, id, byExternal.ID)
	require.Equal(t, domain.StatusPublish, byExternal.Status)
	require.Equal(t, "3", byExternal.Fields["bedrooms"])
	require.True(t, byExternal.LastSyncedAt.Equal(syncedAt))

	byField, err := store.FindOneByField(ctx, domain.KindListing, "reference", "REF-1")
	require.NoError(t, err)
	require.Equal(t, id, byField.ID)

	_, err = store.FindOneByField(ctx, domain.KindAgent, ports.FieldExternalID, "L1")
	require.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRecordStoreRejectsDuplicateExternalID(t *testing.T) {
	store := NewRecordStore(openTestDB(t))
	ctx := context.Background()

	_, err := store.Create(ctx, domain.RecordWrite{Kind: domain.KindListing, ExternalID: "L1", Title: "a"})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.RecordWrite{Kind: domain.KindListing, ExternalID: "L1", Title: "b"})
	require.Error(t, err)

	_, err = store.Create(ctx, domain.RecordWrite{Kind: domain.KindAgent, ExternalID: "L1", Title: "c"})
	require.NoError(t, err, "external ids are unique per kind only")
}

func TestRecordStoreUpdateKeepsBlanks(t *testing.T) {
	store := NewRecordStore(openTestDB(t))
	ctx := context.Background()

	id, err := store.Create(ctx, domain.RecordWrite{
		Kind: domain.KindListing, ExternalID: "L1", Title: "Villa", Body: "Sea view",
		Fields: map[string]string{"bedrooms": "3", "bathrooms": "2"},
	})
	require.NoError(t, err)

	ok, err := store.Update(ctx, id, domain.RecordWrite{Fields: map[string]string{"bathrooms": "3"}})
	require.NoError(t, err)
	require.True(t, ok)

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "Villa", record.Title)
	require.Equal(t, "Sea view", record.Body)
	require.Equal(t, "3", record.Fields["bedrooms"])
	require.Equal(t, "3", record.Fields["bathrooms"])

	ok, err = store.Update(ctx, 9999, domain.RecordWrite{Title: "ghost"})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRecordStoreStatusAndImage(t *testing.T) {
	store := NewRecordStore(openTestDB(t))
	ctx := context.Background()

	id, err := store.Create(ctx, domain.RecordWrite{Kind: domain.KindAgent, ExternalID: "U1", Title: "Mona"})
	require.NoError(t, err)

	require.NoError(t, store.SetStatus(ctx, id, domain.StatusTrash))
	require.NoError(t, store.AttachImage(ctx, id, domain.Image{SourceURL: "https://img.example.com/u1.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}))

	record, err := store.Get(ctx, id)
	require.NoError(t, err)
	require.Equal(t, domain.StatusTrash, record.Status)
	require.True(t, record.HasImage)

	err = store.SetStatus(ctx, 4242, domain.StatusDraft)
	require.True(t, errors.Is(err, ports.ErrNotFound))

	count, err := store.CountByKind(ctx, domain.KindAgent)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestUpsertIsIdempotent(t *testing.T) {
	store := NewRecordStore(openTestDB(t))
	upserter := upsert.NewListingUpserter(store)
	ctx := context.Background()
	entity := domain.RemoteEntity(`{"id":"L1","title":{"en":"Villa"},"bedrooms":3}`)

	first := upserter.UpsertOne(ctx, entity)
	require.Equal(t, domain.UpsertImported, first.Status)
	second := upserter.UpsertOne(ctx, entity)
	require.Equal(t, domain.UpsertUpdated, second.Status)
	require.Equal(t, first.LocalID, second.LocalID)

	count, err := store.CountByKind(ctx, domain.KindListing)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	record, err := store.FindOneByField(ctx, domain.KindListing, ports.FieldExternalID, "L1")
	require.NoError(t, err)
	require.Equal(t, "Villa", record.Title)
	require.Equal(t, "3", record.Fields["bedrooms"])
	require.JSONEq(t, string(entity), record.RawJSON)
}

func TestKVExpiryAndSetIfAbsent(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	kv := NewKV(openTestDB(t), func() time.Time { return now })
	ctx := context.Background()

	ok, err := kv.SetIfAbsent(ctx, "synclock:listing-import", "a", 300*time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = kv.SetIfAbsent(ctx, "synclock:listing-import", "b", 300*time.Second)
	require.NoError(t, err)
	require.False(t, ok)

	now = now.Add(300 * time.Second)
	_, live, err := kv.Get(ctx, "synclock:listing-import")
	require.NoError(t, err)
	require.False(t, live)

	ok, err = kv.SetIfAbsent(ctx, "synclock:listing-import", "c", 300*time.Second)
	require.NoError(t, err)
	require.True(t, ok)
	value, live, err := kv.Get(ctx, "synclock:listing-import")
	require.NoError(t, err)
	require.True(t, live)
	require.Equal(t, "c", value)

	require.NoError(t, kv.Delete(ctx, "synclock:listing-import"))
	_, live, _ = kv.Get(ctx, "synclock:listing-import")
	require.False(t, live)
}

func TestKVPurgeExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	kv := NewKV(openTestDB(t), func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "short", "1", time.Second))
	require.NoError(t, kv.Set(ctx, "forever", "1", 0))
	now = now.Add(time.Minute)

	purged, err := kv.PurgeExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, purged)
	_, live, _ := kv.Get(ctx, "forever")
	require.True(t, live)
}

func TestSyncStateStore(t *testing.T) {
	store := NewSyncStateStore(openTestDB(t))
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, ok, err := store.LastSyncAt(ctx, domain.KindAgent)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.MarkSynced(ctx, domain.KindListing, at, `{"imported":1}`))
	require.NoError(t, store.Touch(ctx, domain.KindAgent, at.Add(time.Minute)))

	last, ok, err := store.LastSyncAt(ctx, domain.KindAgent)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, last.Equal(at.Add(time.Minute)))

	states, err := store.ListSyncStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	require.Equal(t, domain.KindAgent, states[0].Kind)
	require.Equal(t, `{"imported":1}`, states[1].LastSummary)

	require.NoError(t, store.RecordWebhookReceipt(ctx, ports.WebhookReceipt{EventType: "listing.updated", EntityID: "L1", Result: "imported"}))
}
