package webhookpublisher

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cloudevents/sdk-go/v2/event"
	"github.com/google/uuid"
)

type envelope struct {
	Type   string         `json:"type"`
	Entity envelopeEntity `json:"entity"`
}

type envelopeEntity struct {
	ID string `json:"id"`
}

// BuildEventBody renders the native {"type","entity":{"id"}} envelope and
// returns the resolved event type.
func BuildEventBody(e Event) ([]byte, string, error) {
	resolved, id, err := resolve(e)
	if err != nil {
		return nil, "", err
	}
	body, err := json.Marshal(envelope{Type: resolved, Entity: envelopeEntity{ID: id}})
	if err != nil {
		return nil, "", fmt.Errorf("encode envelope: %w", err)
	}
	return body, resolved, nil
}

// BuildCloudEvent renders the notification as a structured CloudEvent.
func BuildCloudEvent(e Event) ([]byte, string, error) {
	resolved, id, err := resolve(e)
	if err != nil {
		return nil, "", err
	}
	source := strings.TrimSpace(e.Source)
	if source == "" {
		source = "pfsync/publisher"
	}

	ce := event.New()
	ce.SetID(uuid.NewString())
	ce.SetSource(source)
	ce.SetType(resolved)
	ce.SetSubject(id)
	ce.SetTime(time.Now().UTC())
	if err := ce.SetData(event.ApplicationJSON, envelope{Type: resolved, Entity: envelopeEntity{ID: id}}); err != nil {
		return nil, "", fmt.Errorf("encode cloud event data: %w", err)
	}
	if err := ce.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid cloud event: %w", err)
	}
	body, err := json.Marshal(ce)
	if err != nil {
		return nil, "", fmt.Errorf("encode cloud event: %w", err)
	}
	return body, resolved, nil
}

func resolve(e Event) (string, string, error) {
	resolved := normalizeType(e.Type)
	if resolved == "" {
		return "", "", fmt.Errorf("event type is required")
	}
	id := strings.TrimSpace(e.EntityID)
	if id == "" && !isEntityFree(resolved) {
		return "", "", fmt.Errorf("entity id is required for %s", resolved)
	}
	return resolved, id, nil
}
