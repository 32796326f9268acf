package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	portmocks "github.com/fr0stylo/pfsync/internal/app/ports/mocks"
	"github.com/fr0stylo/pfsync/internal/pfapi"
)

type webhookFixture struct {
	catalog  *portmocks.MockRemoteCatalog
	listings *portmocks.MockEntityUpserter
	agents   *portmocks.MockEntityUpserter
	records  *portmocks.MockRecordStore
	state    *portmocks.MockSyncStateStore
	receipts *portmocks.MockWebhookReceiptStore
}

func newWebhookFixture(t *testing.T) webhookFixture {
	t.Helper()
	f := webhookFixture{
		catalog:  portmocks.NewMockRemoteCatalog(t),
		listings: portmocks.NewMockEntityUpserter(t),
		agents:   portmocks.NewMockEntityUpserter(t),
		records:  portmocks.NewMockRecordStore(t),
		state:    portmocks.NewMockSyncStateStore(t),
		receipts: portmocks.NewMockWebhookReceiptStore(t),
	}
	f.listings.EXPECT().Kind().Return(domain.KindListing).Maybe()
	f.agents.EXPECT().Kind().Return(domain.KindAgent).Maybe()
	return f
}

func (f webhookFixture) service(cfg WebhookConfig) *WebhookService {
	return NewWebhookService(
		f.catalog,
		[]ports.EntityUpserter{f.listings, f.agents},
		f.records,
		f.state,
		f.receipts,
		cfg,
		WithWebhookClock(func() time.Time { return fixedNow }),
	)
}

func (f webhookFixture) expectReceipt(eventType, entityID, result string) {
	f.receipts.EXPECT().RecordWebhookReceipt(mock.Anything, ports.WebhookReceipt{
		EventType:  eventType,
		EntityID:   entityID,
		Result:     result,
		ReceivedAt: fixedNow,
	}).Return(nil)
}

func TestParseEventFamily(t *testing.T) {
	cases := map[string]EventFamily{
		"listing.published":   FamilyListingUpsert,
		"listing.created":     FamilyListingUpsert,
		"listing.updated":     FamilyListingUpsert,
		"listing.unpublished": FamilyListingRemove,
		"listing.deleted":     FamilyListingRemove,
		"user.created":        FamilyAgentUpsert,
		"user.updated":        FamilyAgentUpsert,
		"user.activated":      FamilyAgentUpsert,
		"user.deleted":        FamilyAgentRemove,
		"user.deactivated":    FamilyAgentRemove,
		" Listing.Updated ":   FamilyListingUpsert,
		"lead.created":        FamilyUnhandled,
		"":                    FamilyUnhandled,
	}
	for name, want := range cases {
		if got := ParseEventFamily(name); got != want {
			t.Fatalf("ParseEventFamily(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestValidateEvent(t *testing.T) {
	if err := (WebhookEvent{}).Validate(); !errors.Is(err, ErrMissingEventType) {
		t.Fatalf("expected missing type, got %v", err)
	}
	if err := (WebhookEvent{Type: "listing.updated"}).Validate(); !errors.Is(err, ErrMissingEntityID) {
		t.Fatalf("expected missing entity id, got %v", err)
	}
	if err := (WebhookEvent{Type: "lead.created"}).Validate(); err != nil {
		t.Fatalf("unhandled events need no entity: %v", err)
	}
}

func TestDispatchListingUpdateUpserts(t *testing.T) {
	f := newWebhookFixture(t)
	entity := domain.RemoteEntity(`{"id":"L1"}`)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindListing, "L1").Return(entity, nil)
	f.listings.EXPECT().UpsertOne(mock.Anything, entity).Return(domain.UpsertResult{Status: domain.UpsertUpdated, LocalID: 10, ExternalID: "L1"})
	f.expectReceipt("listing.updated", "L1", "updated")

	result, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "listing.updated", EntityID: "L1"})
	require.NoError(t, err)
	require.Equal(t, FamilyListingUpsert, result.Family)
	require.Equal(t, "updated", result.Result)
	require.EqualValues(t, 10, result.LocalID)
}

func TestDispatchPublishedRestoresSuppressedListing(t *testing.T) {
	f := newWebhookFixture(t)
	entity := domain.RemoteEntity(`{"id":"L1"}`)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindListing, "L1").Return(entity, nil)
	f.listings.EXPECT().UpsertOne(mock.Anything, entity).Return(domain.UpsertResult{Status: domain.UpsertUpdated, LocalID: 10})
	f.records.EXPECT().Get(mock.Anything, int64(10)).Return(domain.LocalRecord{ID: 10, Status: domain.StatusDraft}, nil)
	f.records.EXPECT().SetStatus(mock.Anything, int64(10), domain.StatusPublish).Return(nil)
	f.expectReceipt("listing.published", "L1", ResultRestored)

	result, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "listing.published", EntityID: "L1"})
	require.NoError(t, err)
	require.Equal(t, ResultRestored, result.Result)
}

func TestDispatchPublishedLeavesVisibleListing(t *testing.T) {
	f := newWebhookFixture(t)
	entity := domain.RemoteEntity(`{"id":"L1"}`)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindListing, "L1").Return(entity, nil)
	f.listings.EXPECT().UpsertOne(mock.Anything, entity).Return(domain.UpsertResult{Status: domain.UpsertImported, LocalID: 11})
	f.records.EXPECT().Get(mock.Anything, int64(11)).Return(domain.LocalRecord{ID: 11, Status: domain.StatusPublish}, nil)
	f.expectReceipt("listing.published", "L1", "imported")

	result, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "listing.published", EntityID: "L1"})
	require.NoError(t, err)
	require.Equal(t, "imported", result.Result)
}

func TestDispatchUserUpdateTouchesAgentTimestamp(t *testing.T) {
	f := newWebhookFixture(t)
	entity := domain.RemoteEntity(`{"id":"7"}`)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindAgent, "7").Return(entity, nil)
	f.agents.EXPECT().UpsertOne(mock.Anything, entity).Return(domain.UpsertResult{Status: domain.UpsertImported, LocalID: 3})
	f.state.EXPECT().Touch(mock.Anything, domain.KindAgent, fixedNow).Return(nil)
	f.expectReceipt("user.updated", "7", "imported")

	_, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "user.updated", EntityID: "7"})
	require.NoError(t, err)
}

func TestDispatchRemoteAbsentIsNoop(t *testing.T) {
	f := newWebhookFixture(t)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindListing, "gone").Return(nil, ports.ErrNotFound)
	f.expectReceipt("listing.created", "gone", ResultNotFound)

	result, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "listing.created", EntityID: "gone"})
	require.NoError(t, err)
	require.Equal(t, ResultNotFound, result.Result)
}

func TestDispatchFetchFailureIsInternal(t *testing.T) {
	f := newWebhookFixture(t)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindAgent, "7").Return(nil, &pfapi.StatusError{Path: "/users", Status: 503})
	f.expectReceipt("user.created", "7", ResultFailed)

	_, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "user.created", EntityID: "7"})
	require.ErrorIs(t, err, ErrDispatchFailed)
	require.ErrorIs(t, err, pfapi.ErrRequestFailed)
	require.Equal(t, WebhookErrorKindInternal, ClassifyWebhookError(err))
}

func TestDispatchUpsertErrorIsInternal(t *testing.T) {
	f := newWebhookFixture(t)
	entity := domain.RemoteEntity(`{"id":"L1"}`)
	f.catalog.EXPECT().FetchOne(mock.Anything, domain.KindListing, "L1").Return(entity, nil)
	f.listings.EXPECT().UpsertOne(mock.Anything, entity).Return(domain.UpsertResult{Status: domain.UpsertError, Message: "disk full"})
	f.expectReceipt("listing.updated", "L1", ResultFailed)

	_, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "listing.updated", EntityID: "L1"})
	require.ErrorIs(t, err, ErrDispatchFailed)
}

func TestDispatchDeleteIsSoft(t *testing.T) {
	cases := map[string]struct {
		cfg  WebhookConfig
		want domain.Status
	}{
		"default draft": {cfg: WebhookConfig{}, want: domain.StatusDraft},
		"trash":         {cfg: WebhookConfig{DeleteStatus: domain.StatusTrash}, want: domain.StatusTrash},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newWebhookFixture(t)
			f.records.EXPECT().FindOneByField(mock.Anything, domain.KindListing, ports.FieldExternalID, "L1").
				Return(domain.LocalRecord{ID: 10, ExternalID: "L1", Status: domain.StatusPublish}, nil)
			f.records.EXPECT().SetStatus(mock.Anything, int64(10), tc.want).Return(nil)
			f.expectReceipt("listing.unpublished", "L1", ResultSuppressed)

			result, err := f.service(tc.cfg).Dispatch(context.Background(), WebhookEvent{Type: "listing.unpublished", EntityID: "L1"})
			require.NoError(t, err)
			require.Equal(t, ResultSuppressed, result.Result)
			require.EqualValues(t, 10, result.LocalID)
		})
	}
}

func TestDispatchDeleteOfUnknownRecordSucceeds(t *testing.T) {
	f := newWebhookFixture(t)
	f.records.EXPECT().FindOneByField(mock.Anything, domain.KindAgent, ports.FieldExternalID, "99").
		Return(domain.LocalRecord{}, ports.ErrNotFound)
	f.expectReceipt("user.deactivated", "99", ResultNotFound)

	result, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "user.deactivated", EntityID: "99"})
	require.NoError(t, err)
	require.Equal(t, ResultNotFound, result.Result)
}

func TestDispatchUnhandledEventIsAccepted(t *testing.T) {
	f := newWebhookFixture(t)
	f.expectReceipt("lead.created", "", ResultIgnored)

	result, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "lead.created"})
	require.NoError(t, err)
	require.Equal(t, FamilyUnhandled, result.Family)
	require.Equal(t, ResultIgnored, result.Result)
}

func TestDispatchRejectsInvalidEvents(t *testing.T) {
	f := newWebhookFixture(t)
	_, err := f.service(WebhookConfig{}).Dispatch(context.Background(), WebhookEvent{Type: "user.deleted"})
	require.ErrorIs(t, err, ErrMissingEntityID)
	require.Equal(t, WebhookErrorKindBadRequest, ClassifyWebhookError(err))
}
