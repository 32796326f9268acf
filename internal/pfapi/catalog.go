package pfapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
)

// DefaultPerPage is the page size used when the caller does not set one.
const DefaultPerPage = 50

func listingDefaults() url.Values {
	return url.Values{
		"page":     {"1"},
		"perPage":  {strconv.Itoa(DefaultPerPage)},
		"draft":    {"false"},
		"archived": {"false"},
	}
}

func userDefaults() url.Values {
	return url.Values{
		"page":    {"1"},
		"perPage": {strconv.Itoa(DefaultPerPage)},
	}
}

func merge(defaults, overrides url.Values) url.Values {
	for key, values := range overrides {
		if len(values) == 0 {
			continue
		}
		defaults[key] = values
	}
	return defaults
}

// ListListings fetches one page of listings. Overrides replace the default
// page, perPage, draft and archived parameters.
func (c *Client) ListListings(ctx context.Context, overrides url.Values) ([]byte, error) {
	return c.Request(ctx, "/listings", RequestOptions{Method: http.MethodGet, Query: merge(listingDefaults(), overrides)})
}

// ListUsers fetches one page of users.
func (c *Client) ListUsers(ctx context.Context, overrides url.Values) ([]byte, error) {
	return c.Request(ctx, "/users", RequestOptions{Method: http.MethodGet, Query: merge(userDefaults(), overrides)})
}

// GetListing fetches /listings/{id}.
func (c *Client) GetListing(ctx context.Context, id string) ([]byte, error) {
	return c.Request(ctx, "/listings/"+url.PathEscape(id), RequestOptions{Method: http.MethodGet})
}

// GetUser fetches /users/{id}.
func (c *Client) GetUser(ctx context.Context, id string) ([]byte, error) {
	return c.Request(ctx, "/users/"+url.PathEscape(id), RequestOptions{Method: http.MethodGet})
}

// FetchListing resolves one listing through the filtered list endpoint.
func (c *Client) FetchListing(ctx context.Context, id string) (domain.RemoteEntity, error) {
	raw, err := c.ListListings(ctx, url.Values{"filter[ids]": {id}})
	if err != nil {
		return nil, err
	}
	entity, ok := findByID(raw, id)
	if !ok {
		return nil, fmt.Errorf("listing %s: %w", id, ports.ErrNotFound)
	}
	return entity, nil
}

// FetchUser resolves one user, falling back to the filtered list endpoint
// when the single-resource endpoint fails or returns no usable shape.
func (c *Client) FetchUser(ctx context.Context, id string) (domain.RemoteEntity, error) {
	raw, err := c.GetUser(ctx, id)
	switch {
	case err == nil:
		if entity, ok := ExtractSingle(raw); ok {
			return entity, nil
		}
	case errors.Is(err, ErrRequestFailed):
		c.log.DebugContext(ctx, "single user endpoint unusable, falling back to filter", "external_id", id, "error", err)
	default:
		return nil, err
	}

	raw, err = c.ListUsers(ctx, url.Values{"filter[ids]": {id}})
	if err != nil {
		return nil, err
	}
	entity, ok := findByID(raw, id)
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, ports.ErrNotFound)
	}
	return entity, nil
}

// ListPage implements ports.RemoteCatalog.
func (c *Client) ListPage(ctx context.Context, kind domain.Kind, query ports.PageQuery) ([]byte, error) {
	overrides := url.Values{}
	if query.Page > 0 {
		overrides.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		overrides.Set("perPage", strconv.Itoa(query.PerPage))
	}
	if query.Status != "" {
		overrides.Set("filter[status]", query.Status)
	}
	switch kind {
	case domain.KindListing:
		return c.ListListings(ctx, overrides)
	case domain.KindAgent:
		return c.ListUsers(ctx, overrides)
	}
	return nil, fmt.Errorf("unsupported kind %q", kind)
}

// FetchOne implements ports.RemoteCatalog.
func (c *Client) FetchOne(ctx context.Context, kind domain.Kind, externalID string) (domain.RemoteEntity, error) {
	switch kind {
	case domain.KindListing:
		return c.FetchListing(ctx, externalID)
	case domain.KindAgent:
		return c.FetchUser(ctx, externalID)
	}
	return nil, fmt.Errorf("unsupported kind %q", kind)
}
