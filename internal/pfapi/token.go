package pfapi

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/ports"
)

const (
	tokenCacheKey = "pfapi:access_token"
	// TokenSafetyMargin is subtracted from the remote expiry before a token is handed out.
	TokenSafetyMargin = 60 * time.Second
)

// AccessToken is a bearer token and the instant the remote side expires it.
type AccessToken struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TokenCache holds the shared bearer token in an ExpiringKV.
type TokenCache struct {
	kv  ports.ExpiringKV
	now func() time.Time
}

// NewTokenCache wraps kv. A nil clock uses time.Now.
func NewTokenCache(kv ports.ExpiringKV, now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}
	return &TokenCache{kv: kv, now: now}
}

// Get returns the cached token while it is usable.
func (c *TokenCache) Get(ctx context.Context) (AccessToken, bool) {
	raw, ok, err := c.kv.Get(ctx, tokenCacheKey)
	if err != nil || !ok {
		return AccessToken{}, false
	}
	var token AccessToken
	if err := json.Unmarshal([]byte(raw), &token); err != nil || token.Value == "" {
		return AccessToken{}, false
	}
	if !c.now().Before(token.ExpiresAt.Add(-TokenSafetyMargin)) {
		return AccessToken{}, false
	}
	return token, true
}

// Set stores a token that the remote side expires after expiresIn.
// Tokens living no longer than the safety margin are not cached.
func (c *TokenCache) Set(ctx context.Context, value string, expiresIn time.Duration) (AccessToken, error) {
	token := AccessToken{Value: value, ExpiresAt: c.now().Add(expiresIn)}
	ttl := expiresIn - TokenSafetyMargin
	if ttl <= 0 {
		return token, nil
	}
	raw, err := json.Marshal(token)
	if err != nil {
		return token, err
	}
	return token, c.kv.Set(ctx, tokenCacheKey, string(raw), ttl)
}

// Clear drops the cached token.
func (c *TokenCache) Clear(ctx context.Context) error {
	return c.kv.Delete(ctx, tokenCacheKey)
}
