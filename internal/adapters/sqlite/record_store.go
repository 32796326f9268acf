package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/db/queries"
)

type recordDatabase interface {
	WithTx(ctx context.Context, fn func(*queries.Queries) error) error
	GetRecordByID(ctx context.Context, id int64) (queries.Record, error)
	GetRecordByExternalID(ctx context.Context, arg queries.GetRecordByExternalIDParams) (queries.Record, error)
	GetRecordByField(ctx context.Context, arg queries.GetRecordByFieldParams) (queries.Record, error)
	ListRecordFields(ctx context.Context, recordID int64) (map[string]string, error)
	HasRecordImage(ctx context.Context, recordID int64) (bool, error)
	SetRecordStatus(ctx context.Context, arg queries.SetRecordStatusParams) (int64, error)
	UpsertRecordImage(ctx context.Context, arg queries.UpsertRecordImageParams) error
	CountRecordsByKind(ctx context.Context, kind string) (int64, error)
}

// RecordStore implements ports.RecordStore on SQLite.
type RecordStore struct {
	db recordDatabase
}

// NewRecordStore wraps a migrated database.
func NewRecordStore(database recordDatabase) *RecordStore {
	return &RecordStore{db: database}
}

// FindOneByField looks records up by external id or by a mapped field.
func (s *RecordStore) FindOneByField(ctx context.Context, kind domain.Kind, field, value string) (domain.LocalRecord, error) {
	var (
		row queries.Record
		err error
	)
	if field == ports.FieldExternalID {
		row, err = s.db.GetRecordByExternalID(ctx, queries.GetRecordByExternalIDParams{Kind: string(kind), ExternalID: value})
	} else {
		row, err = s.db.GetRecordByField(ctx, queries.GetRecordByFieldParams{Kind: string(kind), Name: field, Value: value})
	}
	if err != nil {
		return domain.LocalRecord{}, notFound(err)
	}
	return s.hydrate(ctx, row)
}

// Get loads one record with its fields.
func (s *RecordStore) Get(ctx context.Context, id int64) (domain.LocalRecord, error) {
	row, err := s.db.GetRecordByID(ctx, id)
	if err != nil {
		return domain.LocalRecord{}, notFound(err)
	}
	return s.hydrate(ctx, row)
}

// Create inserts a record and its fields in one transaction.
func (s *RecordStore) Create(ctx context.Context, write domain.RecordWrite) (int64, error) {
	status := write.Status
	if status == "" {
		status = domain.StatusPublish
	}
	var id int64
	err := s.db.WithTx(ctx, func(q *queries.Queries) error {
		var err error
		id, err = q.CreateRecord(ctx, queries.CreateRecordParams{
			Kind:         string(write.Kind),
			ExternalID:   write.ExternalID,
			Title:        write.Title,
			Body:         write.Body,
			Status:       string(status),
			RawJson:      write.RawJSON,
			ImageUrl:     write.ImageURL,
			LastSyncedAt: formatTime(write.LastSyncedAt),
		})
		if err != nil {
			return err
		}
		return upsertFields(ctx, q, id, write.Fields)
	})
	if err != nil {
		return 0, fmt.Errorf("create %s %s: %w", write.Kind, write.ExternalID, err)
	}
	return id, nil
}

// Update overwrites the record. Empty title, body and image url keep the
// stored values; fields not present in write are left untouched.
func (s *RecordStore) Update(ctx context.Context, id int64, write domain.RecordWrite) (bool, error) {
	updated := false
	err := s.db.WithTx(ctx, func(q *queries.Queries) error {
		current, err := q.GetRecordByID(ctx, id)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		params := queries.UpdateRecordParams{
			ID:           id,
			Title:        keep(write.Title, current.Title),
			Body:         keep(write.Body, current.Body),
			RawJson:      keep(write.RawJSON, current.RawJson),
			ImageUrl:     keep(write.ImageURL, current.ImageUrl),
			LastSyncedAt: formatTime(write.LastSyncedAt),
		}
		rows, err := q.UpdateRecord(ctx, params)
		if err != nil {
			return err
		}
		updated = rows > 0
		return upsertFields(ctx, q, id, write.Fields)
	})
	if err != nil {
		return false, fmt.Errorf("update record %d: %w", id, err)
	}
	return updated, nil
}

// SetStatus changes the publication status.
func (s *RecordStore) SetStatus(ctx context.Context, id int64, status domain.Status) error {
	rows, err := s.db.SetRecordStatus(ctx, queries.SetRecordStatusParams{ID: id, Status: string(status)})
	if err != nil {
		return fmt.Errorf("set status of record %d: %w", id, err)
	}
	if rows == 0 {
		return fmt.Errorf("set status of record %d: %w", id, ports.ErrNotFound)
	}
	return nil
}

// AttachImage stores the image blob for a record.
func (s *RecordStore) AttachImage(ctx context.Context, id int64, image domain.Image) error {
	return s.db.UpsertRecordImage(ctx, queries.UpsertRecordImageParams{
		RecordID:    id,
		SourceUrl:   image.SourceURL,
		ContentType: image.ContentType,
		Data:        image.Data,
	})
}

// CountByKind returns the number of records of kind.
func (s *RecordStore) CountByKind(ctx context.Context, kind domain.Kind) (int64, error) {
	return s.db.CountRecordsByKind(ctx, string(kind))
}

func (s *RecordStore) hydrate(ctx context.Context, row queries.Record) (domain.LocalRecord, error) {
	fields, err := s.db.ListRecordFields(ctx, row.ID)
	if err != nil {
		return domain.LocalRecord{}, err
	}
	hasImage, err := s.db.HasRecordImage(ctx, row.ID)
	if err != nil {
		return domain.LocalRecord{}, err
	}
	return domain.LocalRecord{
		ID:           row.ID,
		Kind:         domain.Kind(row.Kind),
		ExternalID:   row.ExternalID,
		Title:        row.Title,
		Body:         row.Body,
		Status:       domain.Status(row.Status),
		Fields:       fields,
		RawJSON:      row.RawJson,
		ImageURL:     row.ImageUrl,
		HasImage:     hasImage,
		LastSyncedAt: parseTime(row.LastSyncedAt),
	}, nil
}

func upsertFields(ctx context.Context, q *queries.Queries, recordID int64, fields map[string]string) error {
	for name, value := range fields {
		if err := q.UpsertRecordField(ctx, queries.UpsertRecordFieldParams{RecordID: recordID, Name: name, Value: value}); err != nil {
			return fmt.Errorf("write field %s: %w", name, err)
		}
	}
	return nil
}

func keep(next, current string) string {
	if next == "" {
		return current
	}
	return next
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ports.ErrNotFound
	}
	return err
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.DateTime, raw); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

var _ ports.RecordStore = (*RecordStore)(nil)
