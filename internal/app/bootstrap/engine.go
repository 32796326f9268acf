// Package bootstrap wires the sync engine from configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fr0stylo/pfsync/internal/adapters/postgres"
	"github.com/fr0stylo/pfsync/internal/adapters/sqlite"
	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/app/services"
	"github.com/fr0stylo/pfsync/internal/config"
	"github.com/fr0stylo/pfsync/internal/db"
	"github.com/fr0stylo/pfsync/internal/media"
	"github.com/fr0stylo/pfsync/internal/observability"
	"github.com/fr0stylo/pfsync/internal/pfapi"
	"github.com/fr0stylo/pfsync/internal/synclock"
	"github.com/fr0stylo/pfsync/internal/upsert"
)

// Engine holds every wired component of one process.
type Engine struct {
	Config   config.Config
	Database *db.Database
	KV       ports.ExpiringKV
	Lock     *synclock.Lock
	Tokens   *pfapi.TokenCache
	Client   *pfapi.Client
	Records  *sqlite.RecordStore
	State    *sqlite.SyncStateStore
	Webhooks *services.WebhookService

	runners  map[domain.Kind]*services.SyncService
	catalogs map[domain.Kind]*services.CatalogSync
	sqlKV    *sqlite.KV
	closers  []func() error
	log      *slog.Logger
}

// Options tweak wiring for a specific binary.
type Options struct {
	// KV overrides the configured key-value backend.
	KV ports.ExpiringKV
}

// New opens storage and wires clients and services.
func New(ctx context.Context, cfg config.Config, log *slog.Logger, opts Options) (*Engine, error) {
	if log == nil {
		log = slog.Default()
	}
	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	e := &Engine{
		Config:   cfg,
		Database: database,
		Records:  sqlite.NewRecordStore(database),
		State:    sqlite.NewSyncStateStore(database),
		runners:  make(map[domain.Kind]*services.SyncService),
		catalogs: make(map[domain.Kind]*services.CatalogSync),
		log:      log,
	}
	e.closers = append(e.closers, database.Close)

	switch {
	case opts.KV != nil:
		e.KV = opts.KV
	case cfg.Database.LockURL != "":
		pgKV, err := postgres.Open(ctx, cfg.Database.LockURL)
		if err != nil {
			_ = e.Close()
			return nil, fmt.Errorf("open lock database: %w", err)
		}
		e.closers = append(e.closers, pgKV.Close)
		e.KV = pgKV
		log.Info("using postgres for locks and tokens")
	default:
		e.sqlKV = sqlite.NewKV(database, time.Now)
		e.KV = e.sqlKV
	}

	metrics := observability.NewSyncMetrics()
	e.Lock = synclock.New(e.KV)
	e.Tokens = pfapi.NewTokenCache(e.KV, time.Now)
	e.Client = pfapi.New(cfg.API, e.Tokens,
		pfapi.WithLogger(log),
		pfapi.WithTimeout(cfg.APITimeout),
	)

	upsertOpts := []upsert.Option{
		upsert.WithLogger(log),
		upsert.WithDefaultStatus(cfg.Sync.DefaultStatus),
	}
	agentOpts := upsertOpts
	if cfg.Media.Enabled {
		agentOpts = append(append([]upsert.Option{}, upsertOpts...), upsert.WithImageFetcher(media.NewFetcher(cfg.Media.MaxBytes, cfg.APITimeout)))
	}
	upserters := []ports.EntityUpserter{
		upsert.NewListingUpserter(e.Records, upsertOpts...),
		upsert.NewAgentUpserter(e.Records, agentOpts...),
	}

	for _, u := range upserters {
		runner := services.NewSyncService(e.Client, u, e.Lock, e.State,
			services.WithSyncLogger(log),
			services.WithLockTTL(cfg.Sync.LockTTL),
			services.WithSyncMetrics(metrics),
		)
		e.runners[u.Kind()] = runner
		e.catalogs[u.Kind()] = services.NewCatalogSync(runner,
			services.WithPageDelay(cfg.Sync.PageDelay),
			services.WithMaxPages(cfg.Sync.MaxPages),
			services.WithCatalogLogger(log),
		)
	}

	e.Webhooks = services.NewWebhookService(e.Client, upserters, e.Records, e.State, e.State,
		services.WebhookConfig{DeleteStatus: cfg.Webhook.DeleteStatus, DefaultStatus: cfg.Sync.DefaultStatus},
		services.WithWebhookLogger(log),
		services.WithWebhookMetrics(metrics),
	)
	return e, nil
}

// Runner returns the single-page sync for kind.
func (e *Engine) Runner(kind domain.Kind) *services.SyncService {
	return e.runners[kind]
}

// Catalog returns the full-catalog sync for kind.
func (e *Engine) Catalog(kind domain.Kind) *services.CatalogSync {
	return e.catalogs[kind]
}

// PurgeExpiredLoop removes expired SQLite key-value rows until ctx ends.
// It is a no-op for other backends.
func (e *Engine) PurgeExpiredLoop(ctx context.Context, every time.Duration) {
	if e.sqlKV == nil {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := e.sqlKV.PurgeExpired(ctx)
			if err != nil {
				e.log.WarnContext(ctx, "purge expired kv entries failed", "error", err)
				continue
			}
			if removed > 0 {
				e.log.DebugContext(ctx, "purged expired kv entries", "count", removed)
			}
		}
	}
}

// LogQueryTimings writes the slowest queries when timing is enabled.
func (e *Engine) LogQueryTimings() {
	if !e.Config.Database.LogTiming {
		return
	}
	for _, q := range e.Database.SlowestQueries(10) {
		e.log.Info("query latency", "query", q.Name, "count", q.Count, "p50", q.P50, "p95", q.P95, "max", q.Max)
	}
}

// Close releases storage in reverse order of opening.
func (e *Engine) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		errs = append(errs, e.closers[i]())
	}
	e.closers = nil
	return errors.Join(errs...)
}
