package pfapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fr0stylo/pfsync/internal/adapters/memory"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

type fakeAPI struct {
	server      *httptest.Server
	tokenCalls  atomic.Int32
	lastQuery   url.Values
	lastHeaders http.Header
}

func newFakeAPI(t *testing.T, routes map[string]http.HandlerFunc) *fakeAPI {
	t.Helper()
	api := &fakeAPI{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		api.tokenCalls.Add(1)
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["apiKey"] != "key" || body["apiSecret"] != "secret" {
			http.Error(w, `{"error":"bad credentials"}`, http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"accessToken":"tok-` + string(rune('0'+api.tokenCalls.Load())) + `","expiresIn":3600}`))
	})
	for pattern, handler := range routes {
		handler := handler
		mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
			api.lastQuery = r.URL.Query()
			api.lastHeaders = r.Header.Clone()
			handler(w, r)
		})
	}
	api.server = httptest.NewServer(mux)
	t.Cleanup(api.server.Close)
	return api
}

func newTestClient(api *fakeAPI, now func() time.Time, opts ...Option) *Client {
	tokens := NewTokenCache(memory.NewKV(now), now)
	creds := Credentials{Endpoint: api.server.URL + "/", APIKey: "key", APISecret: "secret"}
	return New(creds, tokens, opts...)
}

func okJSON(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}
}

func TestClientReusesTokenUntilExpiry(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /listings": okJSON(`{"results":[]}`),
	})
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	client := newTestClient(api, func() time.Time { return now })
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := client.Request(ctx, "/listings", RequestOptions{}); err != nil {
			t.Fatalf("request %d returned error: %v", i, err)
		}
	}
	if got := api.tokenCalls.Load(); got != 1 {
		t.Fatalf("expected 1 token request, got %d", got)
	}
	if got := api.lastHeaders.Get("Authorization"); got != "Bearer tok-1" {
		t.Fatalf("unexpected authorization header %q", got)
	}

	now = now.Add(time.Hour)
	if _, err := client.Request(ctx, "/listings", RequestOptions{}); err != nil {
		t.Fatalf("request after expiry returned error: %v", err)
	}
	if got := api.tokenCalls.Load(); got != 2 {
		t.Fatalf("expected a second token request after expiry, got %d", got)
	}
}

func TestClientRefreshesInsideSafetyMargin(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /users": okJSON(`{"data":[]}`),
	})
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	client := newTestClient(api, func() time.Time { return now })

	_, err := client.Request(context.Background(), "/users", RequestOptions{})
	require.NoError(t, err)
	now = now.Add(time.Hour - TokenSafetyMargin)
	_, err = client.Request(context.Background(), "/users", RequestOptions{})
	require.NoError(t, err)
	require.EqualValues(t, 2, api.tokenCalls.Load())
}

func TestClientAuthFailure(t *testing.T) {
	api := newFakeAPI(t, nil)
	tokens := NewTokenCache(memory.NewKV(nil), nil)
	client := New(Credentials{Endpoint: api.server.URL, APIKey: "key", APISecret: "wrong"}, tokens)

	_, err := client.Request(context.Background(), "/listings", RequestOptions{})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrAuth)
	require.Equal(t, ErrorKindAuth, Classify(err))

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, http.StatusUnauthorized, authErr.Status)
}

func TestClientMissingCredentials(t *testing.T) {
	client := New(Credentials{Endpoint: "http://127.0.0.1:1"}, NewTokenCache(memory.NewKV(nil), nil))
	_, err := client.AccessToken(context.Background())
	if !errors.Is(err, ErrAuth) || !errors.Is(err, ErrMissingCredentials) {
		t.Fatalf("expected missing credentials auth error, got %v", err)
	}
}

func TestClientClassifiesResponses(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /limited": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "slow down", http.StatusTooManyRequests)
		},
		"GET /broken": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		},
		"GET /created": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusCreated)
			_, _ = io.WriteString(w, `{}`)
		},
		"GET /garbage": okJSON(`<html>`),
	})
	client := newTestClient(api, nil)
	ctx := context.Background()

	_, err := client.Request(ctx, "/limited", RequestOptions{})
	require.ErrorIs(t, err, ErrRateLimited)
	require.Equal(t, ErrorKindRateLimited, Classify(err))

	_, err = client.Request(ctx, "/broken", RequestOptions{})
	require.ErrorIs(t, err, ErrRequestFailed)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusInternalServerError, statusErr.Status)
	require.Contains(t, statusErr.Body, "boom")

	_, err = client.Request(ctx, "/created", RequestOptions{})
	require.Equal(t, ErrorKindRequestFailed, Classify(err))

	_, err = client.Request(ctx, "/garbage", RequestOptions{})
	require.Equal(t, ErrorKindRequestFailed, Classify(err))
}

func TestClientTransportError(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	tokens := NewTokenCache(memory.NewKV(func() time.Time { return now }), func() time.Time { return now })
	if _, err := tokens.Set(context.Background(), "cached", time.Hour); err != nil {
		t.Fatalf("seed token: %v", err)
	}
	doer := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, errors.New("connection reset by peer")
	})
	client := New(Credentials{Endpoint: "https://api.invalid", APIKey: "k", APISecret: "s"}, tokens, WithHTTPClient(doer))

	_, err := client.Request(context.Background(), "/listings", RequestOptions{})
	if Classify(err) != ErrorKindTransport {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestClientUnauthorizedClearsToken(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /listings": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "expired", http.StatusUnauthorized)
		},
	})
	client := newTestClient(api, nil)
	ctx := context.Background()

	_, _ = client.Request(ctx, "/listings", RequestOptions{})
	_, _ = client.Request(ctx, "/listings", RequestOptions{})
	if got := api.tokenCalls.Load(); got != 2 {
		t.Fatalf("expected token refetch after 401, got %d token calls", got)
	}
}

func TestClientSendsJSONBody(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"POST /leads": func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get("Content-Type")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_, _ = io.WriteString(w, `{"ok":true}`)
		},
	})
	client := newTestClient(api, nil)

	_, err := client.Request(context.Background(), "/leads", RequestOptions{Method: http.MethodPost, Body: map[string]string{"name": "x"}})
	require.NoError(t, err)
	require.Equal(t, "application/json", gotContentType)
	require.Equal(t, "x", gotBody["name"])
	require.Equal(t, "application/json", api.lastHeaders.Get("Accept"))
}

func TestClientResponseFilter(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /listings": okJSON(`{"results":[{"id":"L1"}]}`),
	})
	client := newTestClient(api, nil, WithResponseFilter(func(path string, _ []byte) []byte {
		return []byte(`{"data":[{"id":"filtered"}]}`)
	}))

	raw, err := client.Request(context.Background(), "/listings", RequestOptions{})
	require.NoError(t, err)
	entities, ok := ExtractEntities(raw)
	require.True(t, ok)
	require.Equal(t, "filtered", entities[0].ID())
}

func TestListListingsAppliesDefaults(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /listings": okJSON(`{"results":[]}`),
	})
	client := newTestClient(api, nil)

	_, err := client.ListListings(context.Background(), url.Values{"page": {"3"}})
	require.NoError(t, err)
	require.Equal(t, "3", api.lastQuery.Get("page"))
	require.Equal(t, "50", api.lastQuery.Get("perPage"))
	require.Equal(t, "false", api.lastQuery.Get("draft"))
	require.Equal(t, "false", api.lastQuery.Get("archived"))
}

func TestFetchListingUsesIDFilter(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /listings": okJSON(`{"results":[{"id":"L9","title":{"en":"Loft"}}]}`),
	})
	client := newTestClient(api, nil)

	entity, err := client.FetchOne(context.Background(), "listing", "L9")
	require.NoError(t, err)
	require.Equal(t, "L9", api.lastQuery.Get("filter[ids]"))
	require.Equal(t, "Loft", entity.Get("title.en").String())

	_, err = client.FetchListing(context.Background(), "L404")
	require.Error(t, err)
}

func TestFetchUserFallsBackToFilter(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /users/{id}": func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "not here", http.StatusNotFound)
		},
		"GET /users": okJSON(`{"data":[{"id":"U1","firstName":"Mona"}]}`),
	})
	client := newTestClient(api, nil)

	entity, err := client.FetchUser(context.Background(), "U1")
	require.NoError(t, err)
	require.Equal(t, "U1", entity.ID())
	require.Equal(t, "U1", api.lastQuery.Get("filter[ids]"))
}

func TestFetchUserSingleResource(t *testing.T) {
	api := newFakeAPI(t, map[string]http.HandlerFunc{
		"GET /users/{id}": okJSON(`{"data":{"id":"U2","firstName":"Omar"}}`),
	})
	client := newTestClient(api, nil)

	entity, err := client.FetchUser(context.Background(), "U2")
	require.NoError(t, err)
	require.Equal(t, "Omar", entity.Get("firstName").String())
}
