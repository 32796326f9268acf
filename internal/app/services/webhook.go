package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/observability"
)

var (
	ErrMissingEventType = errors.New("missing event type")
	ErrMissingEntityID  = errors.New("missing entity id")
	ErrDispatchFailed   = errors.New("webhook dispatch failed")
)

// EventFamily groups recognized webhook event names by the action they
// trigger.
type EventFamily int

const (
	FamilyUnhandled EventFamily = iota
	FamilyListingUpsert
	FamilyListingRemove
	FamilyAgentUpsert
	FamilyAgentRemove
)

var eventFamilies = map[string]EventFamily{
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
}

// restoringEvents bring a suppressed record back to the default status.
var restoringEvents = map[string]bool{
	"listing.published": true,
	"user.activated":    true,
}

// ParseEventFamily resolves an event name. Unknown names map to
// FamilyUnhandled.
func ParseEventFamily(eventType string) EventFamily {
	return eventFamilies[strings.ToLower(strings.TrimSpace(eventType))]
}

func (f EventFamily) String() string {
	switch f {
	case FamilyListingUpsert:
		return "listing_upsert"
	case FamilyListingRemove:
		return "listing_remove"
	case FamilyAgentUpsert:
		return "agent_upsert"
	case FamilyAgentRemove:
		return "agent_remove"
	default:
		return "unhandled"
	}
}

// Kind is the entity kind the family targets.
func (f EventFamily) Kind() (domain.Kind, bool) {
	switch f {
	case FamilyListingUpsert, FamilyListingRemove:
		return domain.KindListing, true
	case FamilyAgentUpsert, FamilyAgentRemove:
		return domain.KindAgent, true
	default:
		return "", false
	}
}

func (f EventFamily) removes() bool {
	return f == FamilyListingRemove || f == FamilyAgentRemove
}

// Webhook dispatch results.
const (
	ResultIgnored    = "ignored"
	ResultNotFound   = "not_found"
	ResultSuppressed = "suppressed"
	ResultRestored   = "restored"
	ResultFailed     = "failed"
)

// WebhookEvent is a parsed inbound notification.
type WebhookEvent struct {
	Type     string
	EntityID string
}

// Validate checks the fields dispatch needs.
func (e WebhookEvent) Validate() error {
	if strings.TrimSpace(e.Type) == "" {
		return ErrMissingEventType
	}
	if ParseEventFamily(e.Type) != FamilyUnhandled && strings.TrimSpace(e.EntityID) == "" {
		return ErrMissingEntityID
	}
	return nil
}

// DispatchResult describes what one webhook changed.
type DispatchResult struct {
	Family  EventFamily
	Result  string
	LocalID int64
}

// WebhookConfig holds status policy for webhook-driven changes.
type WebhookConfig struct {
	DeleteStatus  domain.Status
	DefaultStatus domain.Status
}

// WebhookOption customizes a WebhookService.
type WebhookOption func(*WebhookService)

// WithWebhookLogger sets the logger.
func WithWebhookLogger(log *slog.Logger) WebhookOption {
	return func(s *WebhookService) {
		if log != nil {
			s.log = log
		}
	}
}

// WithWebhookMetrics records webhook counters.
func WithWebhookMetrics(metrics observability.SyncMetrics) WebhookOption {
	return func(s *WebhookService) { s.metrics = metrics }
}

// WithWebhookClock overrides time.Now.
func WithWebhookClock(now func() time.Time) WebhookOption {
	return func(s *WebhookService) {
		if now != nil {
			s.now = now
		}
	}
}

// WebhookService applies single-entity changes announced by webhooks.
// It does not take the sync lock.
type WebhookService struct {
	catalog   ports.RemoteCatalog
	upserters map[domain.Kind]ports.EntityUpserter
	records   ports.RecordStore
	state     ports.SyncStateStore
	receipts  ports.WebhookReceiptStore
	cfg       WebhookConfig
	log       *slog.Logger
	metrics   observability.SyncMetrics
	now       func() time.Time
}

// NewWebhookService wires webhook dispatch.
func NewWebhookService(
	catalog ports.RemoteCatalog,
	upserters []ports.EntityUpserter,
	records ports.RecordStore,
	state ports.SyncStateStore,
	receipts ports.WebhookReceiptStore,
	cfg WebhookConfig,
	opts ...WebhookOption,
) *WebhookService {
	if cfg.DeleteStatus != domain.StatusTrash {
		cfg.DeleteStatus = domain.StatusDraft
	}
	if cfg.DefaultStatus == "" {
		cfg.DefaultStatus = domain.StatusPublish
	}
	byKind := make(map[domain.Kind]ports.EntityUpserter, len(upserters))
	for _, u := range upserters {
		byKind[u.Kind()] = u
	}
	s := &WebhookService{
		catalog:   catalog,
		upserters: byKind,
		records:   records,
		state:     state,
		receipts:  receipts,
		cfg:       cfg,
		log:       slog.Default(),
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Dispatch routes one event to its family handler. A nil error means the
// sender should get a 200, including unhandled events and removals of
// records that do not exist locally.
func (s *WebhookService) Dispatch(ctx context.Context, event WebhookEvent) (DispatchResult, error) {
	if err := event.Validate(); err != nil {
		return DispatchResult{}, err
	}
	event.EntityID = strings.TrimSpace(event.EntityID)
	family := ParseEventFamily(event.Type)
	log := s.log.With("event_type", event.Type, "external_id", event.EntityID, "family", family.String())

	var (
		result DispatchResult
		err    error
	)
	kind, ok := family.Kind()
	switch {
	case !ok:
		log.InfoContext(ctx, "unhandled webhook event")
		result = DispatchResult{Family: family, Result: ResultIgnored}
	case family.removes():
		result, err = s.suppress(ctx, family, kind, event.EntityID)
	default:
		result, err = s.refresh(ctx, family, kind, event)
	}

	outcome := result.Result
	if err != nil {
		outcome = ResultFailed
		log.ErrorContext(ctx, "webhook dispatch failed", "error", err)
	} else {
		log.InfoContext(ctx, "webhook dispatched", "result", outcome, "local_id", result.LocalID)
	}
	s.metrics.RecordWebhook(ctx, family.String(), outcome)
	if s.receipts != nil {
		receipt := ports.WebhookReceipt{EventType: event.Type, EntityID: event.EntityID, Result: outcome, ReceivedAt: s.now().UTC()}
		if rerr := s.receipts.RecordWebhookReceipt(context.WithoutCancel(ctx), receipt); rerr != nil {
			log.WarnContext(ctx, "webhook receipt not saved", "error", rerr)
		}
	}
	return result, err
}

func (s *WebhookService) refresh(ctx context.Context, family EventFamily, kind domain.Kind, event WebhookEvent) (DispatchResult, error) {
	result := DispatchResult{Family: family}
	upserter, ok := s.upserters[kind]
	if !ok {
		return result, fmt.Errorf("%w: no upserter for %s", ErrDispatchFailed, kind)
	}
	ctx = observability.WithEntity(ctx, string(kind), event.EntityID)

	entity, err := s.catalog.FetchOne(ctx, kind, event.EntityID)
	if errors.Is(err, ports.ErrNotFound) {
		result.Result = ResultNotFound
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("%w: fetch %s %s: %w", ErrDispatchFailed, kind, event.EntityID, err)
	}

	upserted := upserter.UpsertOne(ctx, entity)
	result.LocalID = upserted.LocalID
	result.Result = string(upserted.Status)
	if upserted.Status == domain.UpsertError {
		return result, fmt.Errorf("%w: upsert %s %s: %s", ErrDispatchFailed, kind, event.EntityID, upserted.Message)
	}

	if restoringEvents[strings.ToLower(strings.TrimSpace(event.Type))] && upserted.LocalID > 0 {
		restored, err := s.restore(ctx, upserted.LocalID)
		if err != nil {
			return result, fmt.Errorf("%w: restore %d: %w", ErrDispatchFailed, upserted.LocalID, err)
		}
		if restored {
			result.Result = ResultRestored
		}
	}

	if kind == domain.KindAgent && upserted.Status != domain.UpsertSkipped {
		if err := s.state.Touch(ctx, domain.KindAgent, s.now().UTC()); err != nil {
			s.log.WarnContext(ctx, "agent sync timestamp not updated", "error", err)
		}
	}
	return result, nil
}

func (s *WebhookService) restore(ctx context.Context, id int64) (bool, error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if !record.Status.Suppressed() {
		return false, nil
	}
	return true, s.records.SetStatus(ctx, id, s.cfg.DefaultStatus)
}

func (s *WebhookService) suppress(ctx context.Context, family EventFamily, kind domain.Kind, externalID string) (DispatchResult, error) {
	result := DispatchResult{Family: family}
	record, err := s.records.FindOneByField(ctx, kind, ports.FieldExternalID, externalID)
	if errors.Is(err, ports.ErrNotFound) {
		result.Result = ResultNotFound
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("%w: lookup %s %s: %w", ErrDispatchFailed, kind, externalID, err)
	}
	result.LocalID = record.ID
	if err := s.records.SetStatus(ctx, record.ID, s.cfg.DeleteStatus); err != nil {
		return result, fmt.Errorf("%w: suppress %d: %w", ErrDispatchFailed, record.ID, err)
	}
	result.Result = ResultSuppressed
	return result, nil
}

// WebhookErrorKind is a transport-neutral webhook error category.
type WebhookErrorKind string

const (
	WebhookErrorKindNone       WebhookErrorKind = ""
	WebhookErrorKindBadRequest WebhookErrorKind = "bad_request"
	WebhookErrorKindInternal   WebhookErrorKind = "internal"
)

// ClassifyWebhookError maps dispatch errors to categories for transport
// adapters.
func ClassifyWebhookError(err error) WebhookErrorKind {
	switch {
	case err == nil:
		return WebhookErrorKindNone
	case errors.Is(err, ErrMissingEventType), errors.Is(err, ErrMissingEntityID):
		return WebhookErrorKindBadRequest
	default:
		return WebhookErrorKindInternal
	}
}
