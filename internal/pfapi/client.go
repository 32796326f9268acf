package pfapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/fr0stylo/pfsync/internal/observability"
)

const (
	// DefaultEndpoint is the production API base URL.
	DefaultEndpoint = "https://atlas.propertyfinder.com/v1"
	// DefaultTimeout bounds every outbound call.
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 16 << 20
	maxLoggedBody    = 512
)

// Credentials identify this deployment against the remote API.
type Credentials struct {
	Endpoint  string
	APIKey    string
	APISecret string
}

// Configured reports whether every credential field is set.
func (c Credentials) Configured() bool {
	return strings.TrimSpace(c.Endpoint) != "" && strings.TrimSpace(c.APIKey) != "" && strings.TrimSpace(c.APISecret) != ""
}

// HTTPDoer matches net/http.Client Do for testability.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// ResponseFilter may rewrite a successful response body before it is returned.
type ResponseFilter func(path string, body []byte) []byte

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default instrumented http.Client.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		if doer != nil {
			c.http = doer
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithResponseFilter installs a hook applied to every 200 response body.
func WithResponseFilter(filter ResponseFilter) Option {
	return func(c *Client) {
		if filter != nil {
			c.filter = filter
		}
	}
}

// Client issues authenticated calls to the remote API.
type Client struct {
	creds   Credentials
	tokens  *TokenCache
	http    HTTPDoer
	log     *slog.Logger
	timeout time.Duration
	filter  ResponseFilter
	refresh singleflight.Group
}

// New builds a client. The token cache is owned by the client from here on.
func New(creds Credentials, tokens *TokenCache, opts ...Option) *Client {
	creds.Endpoint = strings.TrimRight(strings.TrimSpace(creds.Endpoint), "/")
	creds.APIKey = strings.TrimSpace(creds.APIKey)
	creds.APISecret = strings.TrimSpace(creds.APISecret)
	c := &Client{
		creds:   creds,
		tokens:  tokens,
		log:     slog.Default(),
		timeout: DefaultTimeout,
		filter:  func(_ string, body []byte) []byte { return body },
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{
			Timeout:   c.timeout,
			Transport: observability.InstrumentTransport(http.DefaultTransport),
		}
	}
	return c
}

// AccessToken returns a usable bearer token, requesting a new one when the
// cached token is missing or about to expire.
func (c *Client) AccessToken(ctx context.Context) (string, error) {
	token, err := c.Token(ctx)
	if err != nil {
		return "", err
	}
	return token.Value, nil
}

// Token is AccessToken with expiry details.
func (c *Client) Token(ctx context.Context) (AccessToken, error) {
	if token, ok := c.tokens.Get(ctx); ok {
		return token, nil
	}
	result, err, _ := c.refresh.Do(tokenCacheKey, func() (any, error) {
		return c.requestToken(ctx)
	})
	if err != nil {
		return AccessToken{}, err
	}
	return result.(AccessToken), nil
}

func (c *Client) requestToken(ctx context.Context) (AccessToken, error) {
	if !c.creds.Configured() {
		return AccessToken{}, &AuthError{Err: ErrMissingCredentials}
	}

	payload, _ := json.Marshal(map[string]string{
		"apiKey":    c.creds.APIKey,
		"apiSecret": c.creds.APISecret,
	})
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx, span := observability.StartAPISpan(ctx, http.MethodPost, "/auth/token")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.Endpoint+"/auth/token", bytes.NewReader(payload))
	if err != nil {
		return AccessToken{}, &AuthError{Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		c.log.ErrorContext(ctx, "token request failed", "path", "/auth/token", "error", err)
		return AccessToken{}, &AuthError{Err: &TransportError{Path: "/auth/token", Err: err}}
	}
	defer resp.Body.Close()
	span.SetHTTPStatus(resp.StatusCode)
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "token request rejected", "path", "/auth/token", "status", resp.StatusCode, "body", truncate(body))
		return AccessToken{}, &AuthError{Status: resp.StatusCode, Body: truncate(body)}
	}

	var parsed struct {
		AccessToken string `json:"accessToken"`
		ExpiresIn   int64  `json:"expiresIn"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil || strings.TrimSpace(parsed.AccessToken) == "" {
		c.log.ErrorContext(ctx, "token response unusable", "path", "/auth/token", "body", truncate(body))
		return AccessToken{}, &AuthError{Status: resp.StatusCode, Body: truncate(body)}
	}

	token, err := c.tokens.Set(ctx, parsed.AccessToken, time.Duration(parsed.ExpiresIn)*time.Second)
	if err != nil {
		c.log.WarnContext(ctx, "token cache write failed", "error", err)
	}
	return token, nil
}

// RequestOptions describes one data call.
type RequestOptions struct {
	Method string
	Query  url.Values
	Body   any
}

// Request performs an authenticated call and returns the 200 response body.
func (c *Client) Request(ctx context.Context, path string, opts RequestOptions) ([]byte, error) {
	token, err := c.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	endpoint := c.creds.Endpoint + path
	if len(opts.Query) > 0 {
		endpoint += "?" + opts.Query.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		raw, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	ctx, span := observability.StartAPISpan(ctx, method, path)
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		span.RecordError(err)
		c.log.ErrorContext(ctx, "api request failed", "method", method, "path", path, "error", err)
		return nil, &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()
	span.SetHTTPStatus(resp.StatusCode)

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		span.RecordError(err)
		return nil, &TransportError{Path: path, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusTooManyRequests:
		c.log.WarnContext(ctx, "api rate limited", "method", method, "path", path)
		return nil, &StatusError{Path: path, Status: resp.StatusCode, Body: truncate(payload)}
	default:
		if resp.StatusCode == http.StatusUnauthorized {
			_ = c.tokens.Clear(ctx)
		}
		c.log.ErrorContext(ctx, "api request rejected", "method", method, "path", path, "status", resp.StatusCode, "body", truncate(payload))
		return nil, &StatusError{Path: path, Status: resp.StatusCode, Body: truncate(payload)}
	}

	if !gjson.ValidBytes(payload) {
		c.log.ErrorContext(ctx, "api response is not json", "method", method, "path", path, "body", truncate(payload))
		return nil, fmt.Errorf("%w: %s returned invalid json", ErrRequestFailed, path)
	}
	return c.filter(path, payload), nil
}

func truncate(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > maxLoggedBody {
		return text[:maxLoggedBody] + "..."
	}
	return text
}
