package routes

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/pfsync/internal/adapters/memory"
	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	portmocks "github.com/fr0stylo/pfsync/internal/app/ports/mocks"
	"github.com/fr0stylo/pfsync/internal/app/services"
	"github.com/fr0stylo/pfsync/internal/synclock"
)

const adminToken = "admin-token"

type stubRunner struct {
	kind   domain.Kind
	result services.RunResult
	params []services.RunParams
}

func (s *stubRunner) Kind() domain.Kind { return s.kind }

func (s *stubRunner) Run(_ context.Context, params services.RunParams) services.RunResult {
	s.params = append(s.params, params)
	out := s.result
	out.Kind = s.kind
	return out
}

type stubCatalog struct {
	result services.CatalogResult
	params []services.CatalogParams
}

func (s *stubCatalog) RunAll(_ context.Context, params services.CatalogParams) services.CatalogResult {
	s.params = append(s.params, params)
	return s.result
}

type routeFixture struct {
	e        *echo.Echo
	lock     *synclock.Lock
	state    *portmocks.MockSyncStateStore
	records  *portmocks.MockRecordStore
	listings *stubRunner
	catalog  *stubCatalog
}

func newRouteFixture(t *testing.T, token string) routeFixture {
	t.Helper()
	f := routeFixture{
		e:        echo.New(),
		lock:     synclock.New(memory.NewKV(time.Now)),
		state:    portmocks.NewMockSyncStateStore(t),
		records:  portmocks.NewMockRecordStore(t),
		listings: &stubRunner{kind: domain.KindListing},
		catalog:  &stubCatalog{},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewSyncRoutes(SyncRoutesConfig{AdminToken: token, PerPage: 25}, f.lock, f.state, f.records, log).
		WithKind(f.listings, f.catalog).
		RegisterRoutes(f.e)
	return f
}

func (f routeFixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func TestSyncRoutesRequireAdminToken(t *testing.T) {
	f := newRouteFixture(t, adminToken)

	rec := f.do(http.MethodPost, "/api/sync/listings", "", "wrong")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = f.do(http.MethodPost, "/api/sync/listings", "", "")
	require.NotEqual(t, http.StatusOK, rec.Code)
	require.Empty(t, f.listings.params)
}

func TestSyncRouteRunsOnePage(t *testing.T) {
	f := newRouteFixture(t, adminToken)
	f.listings.result = services.RunResult{Success: true, SyncCounters: domain.SyncCounters{Imported: 2}, Total: 2}

	rec := f.do(http.MethodPost, "/api/sync/listings?page=3", `{"status":"live"}`, adminToken)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, []services.RunParams{{Page: 3, PerPage: 25, Status: "live"}}, f.listings.params)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, true, body["success"])
	require.EqualValues(t, 2, body["imported"])
	require.Equal(t, "listing", body["kind"])
}

func TestSyncRouteMapsRunFailures(t *testing.T) {
	cases := map[string]struct {
		result services.RunResult
		code   int
	}{
		"busy":       {result: services.RunResult{Busy: true, Reason: services.ReasonAlreadyRunning}, code: http.StatusConflict},
		"fetch":      {result: services.RunResult{Reason: services.ReasonFetchFailed}, code: http.StatusBadGateway},
		"empty page": {result: services.RunResult{Reason: services.ReasonNoEntities}, code: http.StatusOK},
		"panic":      {result: services.RunResult{Reason: "boom"}, code: http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f := newRouteFixture(t, "")
			f.listings.result = tc.result
			rec := f.do(http.MethodPost, "/api/sync/listing", "", "")
			require.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestSyncRouteRejectsUnknownKind(t *testing.T) {
	f := newRouteFixture(t, "")
	require.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/api/sync/leads", "", "").Code)
	require.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/api/sync/agents", "", "").Code)
}

func TestSyncRouteRunsFullCatalog(t *testing.T) {
	f := newRouteFixture(t, "")
	f.catalog.result = services.CatalogResult{Kind: domain.KindListing, Completed: true, StopReason: services.StopNoChanges}

	rec := f.do(http.MethodPost, "/api/sync/listings/all?perPage=10", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, []services.CatalogParams{{PerPage: 10}}, f.catalog.params)
	require.Contains(t, rec.Body.String(), `"completed":true`)
}

func TestSyncStatusReportsLocksAndTimestamps(t *testing.T) {
	f := newRouteFixture(t, "")
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	f.state.EXPECT().ListSyncStates(mock.Anything).Return([]ports.SyncState{
		{Kind: domain.KindListing, LastSyncAt: at, LastSummary: `{"imported":3}`},
	}, nil)
	f.records.EXPECT().CountByKind(mock.Anything, domain.KindListing).Return(int64(3), nil)
	f.records.EXPECT().CountByKind(mock.Anything, domain.KindAgent).Return(int64(0), nil)
	_, err := f.lock.TryAcquire(context.Background(), domain.KindAgent.LockKey(), time.Minute)
	require.NoError(t, err)

	rec := f.do(http.MethodGet, "/api/sync/status", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Kinds []kindStatus `json:"kinds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Kinds, 2)
	require.Equal(t, domain.KindListing, body.Kinds[0].Kind)
	require.NotNil(t, body.Kinds[0].LastSyncAt)
	require.True(t, body.Kinds[0].LastSyncAt.Equal(at))
	require.JSONEq(t, `{"imported":3}`, string(body.Kinds[0].LastSummary))
	require.False(t, body.Kinds[0].Locked)
	require.Nil(t, body.Kinds[1].LastSyncAt)
	require.True(t, body.Kinds[1].Locked)
}

func TestReleaseLockRoute(t *testing.T) {
	f := newRouteFixture(t, "")
	ctx := context.Background()
	_, err := f.lock.TryAcquire(ctx, domain.KindListing.LockKey(), time.Minute)
	require.NoError(t, err)

	rec := f.do(http.MethodDelete, "/api/sync/listings/lock", "", "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	held, err := f.lock.IsHeld(ctx, domain.KindListing.LockKey())
	require.NoError(t, err)
	require.False(t, held)
}
