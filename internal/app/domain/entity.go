package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Kind is a synchronized entity kind.
type Kind string

const (
	// KindListing is a property listing.
	KindListing Kind = "listing"
	// KindAgent is an agent, exposed remotely as a user.
	KindAgent Kind = "agent"
)

// Kinds lists every kind in a stable order.
var Kinds = []Kind{KindListing, KindAgent}

// ParseKind accepts singular, plural and remote spellings.
func ParseKind(raw string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "listing", "listings":
		return KindListing, nil
	case "agent", "agents", "user", "users":
		return KindAgent, nil
	}
	return "", fmt.Errorf("unknown entity kind %q", raw)
}

// LockKey is the sync lock name guarding batch runs for the kind.
func (k Kind) LockKey() string {
	return string(k) + "-import"
}

// Plural returns the plural form used in routes and CLI output.
func (k Kind) Plural() string {
	return string(k) + "s"
}

// Status is the publication state of a local record.
type Status string

const (
	StatusPublish Status = "publish"
	StatusDraft   Status = "draft"
	StatusTrash   Status = "trash"
)

// ParseStatus validates a status value.
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case StatusPublish:
		return StatusPublish, nil
	case StatusDraft:
		return StatusDraft, nil
	case StatusTrash, "trashed":
		return StatusTrash, nil
	}
	return "", fmt.Errorf("unknown status %q", raw)
}

// Suppressed reports whether the status hides the record.
func (s Status) Suppressed() bool {
	return s == StatusDraft || s == StatusTrash
}

// RemoteEntity is one JSON object returned by the remote API.
type RemoteEntity []byte

// ID returns the entity id, or "" when absent.
func (e RemoteEntity) ID() string {
	return strings.TrimSpace(e.Get("id").String())
}

// Get resolves a gjson path against the entity.
func (e RemoteEntity) Get(path string) gjson.Result {
	return gjson.GetBytes(e, path)
}

// Valid reports whether the entity is a JSON object.
func (e RemoteEntity) Valid() bool {
	return gjson.ValidBytes(e) && gjson.ParseBytes(e).IsObject()
}

// LocalRecord is the persisted mirror of a remote entity.
type LocalRecord struct {
	ID           int64
	Kind         Kind
	ExternalID   string
	Title        string
	Body         string
	Status       Status
	Fields       map[string]string
	RawJSON      string
	ImageURL     string
	HasImage     bool
	LastSyncedAt time.Time
}

// RecordWrite carries the values written on create or update.
// On update, empty Title, Body and ImageURL keep the stored values.
type RecordWrite struct {
	Kind         Kind
	ExternalID   string
	Title        string
	Body         string
	Status       Status
	Fields       map[string]string
	RawJSON      string
	ImageURL     string
	LastSyncedAt time.Time
}

// Image is a downloaded image ready to attach to a record.
type Image struct {
	SourceURL   string
	ContentType string
	Data        []byte
}
