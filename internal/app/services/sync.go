package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/observability"
	"github.com/fr0stylo/pfsync/internal/pfapi"
)

// Run failure reasons.
const (
	ReasonAlreadyRunning = "already running"
	ReasonFetchFailed    = "fetch failed"
	ReasonNoEntities     = "no entities returned"
	ReasonLockFailed     = "lock unavailable"
)

// RunParams selects the remote page processed by one run.
type RunParams struct {
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
	Status  string `json:"status,omitempty"`
}

// RunResult summarizes one run. It is returned for every outcome.
type RunResult struct {
	Kind      domain.Kind `json:"kind"`
	Success   bool        `json:"success"`
	Busy      bool        `json:"busy,omitempty"`
	Reason    string      `json:"reason,omitempty"`
	ErrorKind string      `json:"errorKind,omitempty"`
	domain.SyncCounters
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PerPage    int       `json:"perPage"`
	StartedAt  time.Time `json:"startedAt"`
	DurationMS int64     `json:"durationMs"`
}

// SyncOption customizes a SyncService.
type SyncOption func(*SyncService)

// WithSyncLogger sets the logger.
func WithSyncLogger(log *slog.Logger) SyncOption {
	return func(s *SyncService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithLockTTL overrides the lock expiry.
func WithLockTTL(ttl time.Duration) SyncOption {
	return func(s *SyncService) {
		if ttl > 0 {
			s.lockTTL = ttl
		}
	}
}

// WithSyncMetrics records run and entity counters.
func WithSyncMetrics(metrics observability.SyncMetrics) SyncOption {
	return func(s *SyncService) { s.metrics = metrics }
}

// WithSyncClock overrides time.Now.
func WithSyncClock(now func() time.Time) SyncOption {
	return func(s *SyncService) {
		if now != nil {
			s.now = now
		}
	}
}

// SyncService runs single-page batch imports for one kind.
type SyncService struct {
	catalog  ports.RemoteCatalog
	upserter ports.EntityUpserter
	lock     ports.SyncLock
	state    ports.SyncStateStore
	log      *slog.Logger
	metrics  observability.SyncMetrics
	lockTTL  time.Duration
	now      func() time.Time
}

// NewSyncService wires a run for upserter.Kind().
func NewSyncService(catalog ports.RemoteCatalog, upserter ports.EntityUpserter, lock ports.SyncLock, state ports.SyncStateStore, opts ...SyncOption) *SyncService {
	s := &SyncService{
		catalog:  catalog,
		upserter: upserter,
		lock:     lock,
		state:    state,
		log:      slog.Default(),
		lockTTL:  300 * time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Kind is the entity kind this service imports.
func (s *SyncService) Kind() domain.Kind { return s.upserter.Kind() }

// Run imports one page. Entities are processed in page order; a failing
// entity is counted and does not stop the page. The lock is released on
// every path.
func (s *SyncService) Run(ctx context.Context, params RunParams) (result RunResult) {
	kind := s.Kind()
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PerPage <= 0 {
		params.PerPage = pfapi.DefaultPerPage
	}
	started := s.now()
	result = RunResult{Kind: kind, Page: params.Page, PerPage: params.PerPage, StartedAt: started.UTC()}
	log := s.log.With("kind", string(kind), "page", params.Page)

	key := kind.LockKey()
	acquired, err := s.lock.TryAcquire(ctx, key, s.lockTTL)
	if err != nil {
		log.ErrorContext(ctx, "sync lock unavailable", "error", err)
		result.Reason = ReasonLockFailed
		s.metrics.RecordRun(ctx, string(kind), "lock_failed")
		return result
	}
	if !acquired {
		log.InfoContext(ctx, "sync already running")
		result.Busy = true
		result.Reason = ReasonAlreadyRunning
		s.metrics.RecordRun(ctx, string(kind), "busy")
		return result
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			log.ErrorContext(ctx, "sync run panicked", "panic", recovered)
			result.Success = false
			result.Reason = fmt.Sprint(recovered)
		}
		if err := s.lock.Release(context.WithoutCancel(ctx), key); err != nil {
			log.ErrorContext(ctx, "sync lock release failed", "error", err)
		}
		result.Total = result.SyncCounters.Total()
		result.DurationMS = s.now().Sub(started).Milliseconds()
		s.metrics.RecordRun(ctx, string(kind), runOutcome(result))
	}()

	raw, err := s.catalog.ListPage(ctx, kind, ports.PageQuery{Page: params.Page, PerPage: params.PerPage, Status: params.Status})
	if err != nil {
		log.ErrorContext(ctx, "sync page fetch failed", "error", err)
		result.Reason = ReasonFetchFailed
		result.ErrorKind = string(pfapi.Classify(err))
		return result
	}
	entities, ok := pfapi.ExtractEntities(raw)
	if !ok {
		log.ErrorContext(ctx, "sync page has no entity container")
		result.Reason = ReasonFetchFailed
		return result
	}
	if len(entities) == 0 {
		result.Reason = ReasonNoEntities
		return result
	}

	for i, entity := range entities {
		upserted := s.upserter.UpsertOne(ctx, entity)
		result.Record(upserted.Status)
		s.metrics.RecordEntity(ctx, string(kind), string(upserted.Status))
		if upserted.Status == domain.UpsertError {
			log.WarnContext(ctx, "entity import failed", "index", i, "external_id", upserted.ExternalID, "error", upserted.Message)
		}
	}
	result.Success = true

	summary, _ := json.Marshal(result.SyncCounters)
	if err := s.state.MarkSynced(ctx, kind, s.now().UTC(), string(summary)); err != nil {
		log.WarnContext(ctx, "last sync timestamp not saved", "error", err)
	}
	log.InfoContext(ctx, "sync page complete",
		"imported", result.Imported,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"errors", result.Errors,
	)
	return result
}

func runOutcome(result RunResult) string {
	switch {
	case result.Success:
		return "success"
	case result.Busy:
		return "busy"
	case result.Reason == ReasonNoEntities:
		return "empty"
	case result.Reason == ReasonFetchFailed:
		return "fetch_failed"
	default:
		return "error"
	}
}
