package webhookpublisher

import (
	"net/http"
	"time"
)

// Client sends signed webhook notifications to a pfsync server.
type Client struct {
	Endpoint   string
	Secret     string
	Timeout    time.Duration
	HTTPClient *http.Client
	// CloudEvents sends a structured CloudEvent instead of the native envelope.
	CloudEvents bool
}

// Event is a single-entity change notification.
type Event struct {
	Type     string
	EntityID string
	Source   string
}
