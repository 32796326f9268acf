// Package upsert maps remote entities onto local records, creating or
// updating by external id.
package upsert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/observability"
)

// Hook may rewrite an entity before mapping. Returning false skips it.
type Hook func(ctx context.Context, entity domain.RemoteEntity) (domain.RemoteEntity, bool)

// Option customizes an Upserter.
type Option func(*Upserter)

// WithHook installs a pre-mapping hook.
func WithHook(hook Hook) Option {
	return func(u *Upserter) {
		if hook != nil {
			u.hook = hook
		}
	}
}

// WithImageFetcher enables profile image attachment.
func WithImageFetcher(images ports.ImageFetcher) Option {
	return func(u *Upserter) { u.images = images }
}

// WithDefaultStatus sets the status of newly created records.
func WithDefaultStatus(status domain.Status) Option {
	return func(u *Upserter) {
		if status != "" {
			u.defaultStatus = status
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(u *Upserter) {
		if log != nil {
			u.log = log
		}
	}
}

// WithClock overrides time.Now for lastSyncedAt stamps.
func WithClock(now func() time.Time) Option {
	return func(u *Upserter) {
		if now != nil {
			u.now = now
		}
	}
}

// Upserter implements ports.EntityUpserter for one kind.
type Upserter struct {
	profile       Profile
	store         ports.RecordStore
	images        ports.ImageFetcher
	hook          Hook
	defaultStatus domain.Status
	log           *slog.Logger
	now           func() time.Time
}

// New builds an upserter for profile.
func New(profile Profile, store ports.RecordStore, opts ...Option) *Upserter {
	u := &Upserter{
		profile:       profile,
		store:         store,
		hook:          func(_ context.Context, e domain.RemoteEntity) (domain.RemoteEntity, bool) { return e, true },
		defaultStatus: domain.StatusPublish,
		log:           slog.Default(),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// NewListingUpserter builds the listing upserter.
func NewListingUpserter(store ports.RecordStore, opts ...Option) *Upserter {
	return New(ListingProfile, store, opts...)
}

// NewAgentUpserter builds the agent upserter.
func NewAgentUpserter(store ports.RecordStore, opts ...Option) *Upserter {
	return New(AgentProfile, store, opts...)
}

func (u *Upserter) Kind() domain.Kind { return u.profile.Kind }

// DefaultStatus is the status given to new and restored records.
func (u *Upserter) DefaultStatus() domain.Status { return u.defaultStatus }

// UpsertOne creates or updates the local record for entity. Failures are
// reported in the result and never returned as errors.
func (u *Upserter) UpsertOne(ctx context.Context, entity domain.RemoteEntity) domain.UpsertResult {
	kind := string(u.profile.Kind)
	id := ""
	if entity.Valid() {
		id = entity.ID()
	}
	if id == "" {
		u.log.ErrorContext(ctx, "remote entity has no id", "kind", kind)
		return domain.UpsertResult{Status: domain.UpsertError, Message: "missing id"}
	}
	ctx = observability.WithEntity(ctx, kind, id)

	entity, keep := u.hook(ctx, entity)
	if !keep {
		u.log.DebugContext(ctx, "entity skipped by hook")
		return domain.UpsertResult{Status: domain.UpsertSkipped, ExternalID: id, Message: "skipped"}
	}

	write := domain.RecordWrite{
		Kind:         u.profile.Kind,
		ExternalID:   id,
		Title:        u.profile.Title(entity),
		Body:         u.profile.Body(entity),
		Fields:       u.profile.Fields.Apply(entity),
		RawJSON:      string(entity),
		LastSyncedAt: u.now().UTC(),
	}
	if u.profile.ImageURL != nil {
		write.ImageURL = u.profile.ImageURL(entity)
	}

	result, record, err := u.write(ctx, write)
	if err != nil {
		u.log.ErrorContext(ctx, "upsert failed", "error", err)
		return domain.UpsertResult{Status: domain.UpsertError, ExternalID: id, Message: err.Error()}
	}
	u.attachImage(ctx, record, write.ImageURL)
	return result
}

func (u *Upserter) write(ctx context.Context, write domain.RecordWrite) (domain.UpsertResult, domain.LocalRecord, error) {
	existing, err := u.store.FindOneByField(ctx, write.Kind, ports.FieldExternalID, write.ExternalID)
	switch {
	case err == nil:
		return u.update(ctx, existing, write)
	case !errors.Is(err, ports.ErrNotFound):
		return domain.UpsertResult{}, domain.LocalRecord{}, fmt.Errorf("lookup: %w", err)
	}

	create := write
	if create.Title == "" {
		create.Title = u.profile.FallbackTitle(write.ExternalID)
	}
	create.Status = u.defaultStatus
	localID, err := u.store.Create(ctx, create)
	if err != nil {
		// A concurrent webhook may have created the record first.
		if existing, lookupErr := u.store.FindOneByField(ctx, write.Kind, ports.FieldExternalID, write.ExternalID); lookupErr == nil {
			return u.update(ctx, existing, write)
		}
		return domain.UpsertResult{}, domain.LocalRecord{}, fmt.Errorf("create: %w", err)
	}
	u.log.InfoContext(ctx, "record imported", "local_id", localID)
	record := domain.LocalRecord{ID: localID, Kind: write.Kind, ExternalID: write.ExternalID}
	return domain.UpsertResult{Status: domain.UpsertImported, LocalID: localID, ExternalID: write.ExternalID}, record, nil
}

func (u *Upserter) update(ctx context.Context, existing domain.LocalRecord, write domain.RecordWrite) (domain.UpsertResult, domain.LocalRecord, error) {
	ok, err := u.store.Update(ctx, existing.ID, write)
	if err != nil {
		return domain.UpsertResult{}, existing, fmt.Errorf("update %d: %w", existing.ID, err)
	}
	if !ok {
		return domain.UpsertResult{}, existing, fmt.Errorf("update %d: %w", existing.ID, ports.ErrNotFound)
	}
	u.log.DebugContext(ctx, "record updated", "local_id", existing.ID)
	return domain.UpsertResult{Status: domain.UpsertUpdated, LocalID: existing.ID, ExternalID: write.ExternalID}, existing, nil
}

func (u *Upserter) attachImage(ctx context.Context, record domain.LocalRecord, imageURL string) {
	if u.images == nil || imageURL == "" || record.HasImage {
		return
	}
	image, err := u.images.Fetch(ctx, imageURL)
	if err != nil {
		u.log.WarnContext(ctx, "profile image download failed", "url", imageURL, "error", err)
		return
	}
	if err := u.store.AttachImage(ctx, record.ID, image); err != nil {
		u.log.WarnContext(ctx, "profile image attach failed", "local_id", record.ID, "error", err)
	}
}
