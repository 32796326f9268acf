package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/time/rate"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/pfapi"
)

// Catalog loop defaults.
const (
	DefaultPageDelay        = time.Second
	DefaultMaxPages         = 200
	DefaultRateLimitRetries = 3
	DefaultRateLimitBackoff = 2 * time.Second
)

// Catalog stop reasons.
const (
	StopEndOfCatalog = "end of catalog"
	StopNoChanges    = "no changes"
	StopPageLimit    = "page limit reached"
	StopCancelled    = "cancelled"
)

var errPageRateLimited = errors.New("page rate limited")

// PageRunner runs a single page import.
type PageRunner interface {
	Kind() domain.Kind
	Run(ctx context.Context, params RunParams) RunResult
}

// CatalogParams configures a full-catalog pass.
type CatalogParams struct {
	StartPage int    `json:"startPage"`
	PerPage   int    `json:"perPage"`
	Status    string `json:"status,omitempty"`
}

// CatalogResult aggregates every page run in a full-catalog pass.
type CatalogResult struct {
	Kind       domain.Kind         `json:"kind"`
	Completed  bool                `json:"completed"`
	StopReason string              `json:"stopReason"`
	Totals     domain.SyncCounters `json:"totals"`
	Pages      []RunResult         `json:"pages"`
}

// CatalogOption customizes a CatalogSync.
type CatalogOption func(*CatalogSync)

// WithPageDelay sets the minimum spacing between page runs.
func WithPageDelay(delay time.Duration) CatalogOption {
	return func(c *CatalogSync) { c.pageDelay = delay }
}

// WithMaxPages bounds the number of pages in one pass.
func WithMaxPages(limit int) CatalogOption {
	return func(c *CatalogSync) {
		if limit > 0 {
			c.maxPages = limit
		}
	}
}

// WithRateLimitRetry configures retries of a page rejected with 429.
func WithRateLimitRetry(retries int, base time.Duration) CatalogOption {
	return func(c *CatalogSync) {
		if retries >= 0 {
			c.retries = retries
		}
		if base > 0 {
			c.backoff = base
		}
	}
}

// WithCatalogLogger sets the logger.
func WithCatalogLogger(log *slog.Logger) CatalogOption {
	return func(c *CatalogSync) {
		if log != nil {
			c.log = log
		}
	}
}

// CatalogSync walks the remote catalog page by page until a page changes
// nothing.
type CatalogSync struct {
	runner    PageRunner
	pageDelay time.Duration
	maxPages  int
	retries   int
	backoff   time.Duration
	log       *slog.Logger
}

// NewCatalogSync wraps a page runner.
func NewCatalogSync(runner PageRunner, opts ...CatalogOption) *CatalogSync {
	c := &CatalogSync{
		runner:    runner,
		pageDelay: DefaultPageDelay,
		maxPages:  DefaultMaxPages,
		retries:   DefaultRateLimitRetries,
		backoff:   DefaultRateLimitBackoff,
		log:       slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// RunAll runs consecutive pages starting at params.StartPage. It stops on
// the first page with zero imported and updated entities, on an empty
// page, on a busy or failed page, or at the page limit.
func (c *CatalogSync) RunAll(ctx context.Context, params CatalogParams) CatalogResult {
	kind := c.runner.Kind()
	result := CatalogResult{Kind: kind}
	start := params.StartPage
	if start <= 0 {
		start = 1
	}

	limit := rate.Inf
	if c.pageDelay > 0 {
		limit = rate.Every(c.pageDelay)
	}
	pacer := rate.NewLimiter(limit, 1)
	log := c.log.With("kind", string(kind))

	for page := start; page < start+c.maxPages; page++ {
		if err := pacer.Wait(ctx); err != nil {
			result.StopReason = StopCancelled
			return result
		}
		run := c.runPage(ctx, RunParams{Page: page, PerPage: params.PerPage, Status: params.Status})
		result.Pages = append(result.Pages, run)
		result.Totals.Add(run.SyncCounters)

		switch {
		case run.Busy:
			result.StopReason = run.Reason
			return result
		case !run.Success && run.Reason == ReasonNoEntities:
			result.Completed = true
			result.StopReason = StopEndOfCatalog
			return result
		case !run.Success:
			result.StopReason = run.Reason
			return result
		case run.Changed() == 0:
			result.Completed = true
			result.StopReason = StopNoChanges
			return result
		}
		log.InfoContext(ctx, "catalog page done", "page", page, "imported", run.Imported, "updated", run.Updated)
	}
	result.StopReason = StopPageLimit
	return result
}

func (c *CatalogSync) runPage(ctx context.Context, params RunParams) RunResult {
	var run RunResult
	backoff := retry.WithMaxRetries(uint64(c.retries), retry.NewExponential(c.backoff))
	_ = retry.Do(ctx, backoff, func(ctx context.Context) error {
		run = c.runner.Run(ctx, params)
		if !run.Success && run.ErrorKind == string(pfapi.ErrorKindRateLimited) {
			c.log.WarnContext(ctx, "page rate limited, backing off", "kind", string(run.Kind), "page", params.Page)
			return retry.RetryableError(errPageRateLimited)
		}
		return nil
	})
	return run
}
