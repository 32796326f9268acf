package inbound

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	cebinding "github.com/cloudevents/sdk-go/v2/binding"
	ceevent "github.com/cloudevents/sdk-go/v2/event"
	cehttp "github.com/cloudevents/sdk-go/v2/protocol/http"
	"github.com/tidwall/gjson"

	"github.com/fr0stylo/pfsync/internal/app/services"
)

const (
	// SignatureHeader carries the hex HMAC-SHA256 of the raw body.
	SignatureHeader = "X-Signature"
	signaturePrefix = "sha256="
	maxPayloadBytes = 1 << 20
)

var errInvalidPayload = errors.New("invalid payload")

// Dispatcher applies a parsed webhook event.
type Dispatcher interface {
	Dispatch(ctx context.Context, event services.WebhookEvent) (services.DispatchResult, error)
}

// Handler verifies and dispatches remote API webhooks.
type Handler struct {
	secret     string
	dispatcher Dispatcher
	log        *slog.Logger
}

// NewHandler constructs a webhook handler. An empty secret disables
// signature verification.
func NewHandler(secret string, dispatcher Dispatcher, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{secret: strings.TrimSpace(secret), dispatcher: dispatcher, log: log}
}

// Handle validates and dispatches a webhook request.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return nil
	}

	if h.secret == "" {
		h.log.WarnContext(ctx, "webhook signature not verified, no secret configured (insecure)")
	} else if !validSignature(body, h.secret, r.Header.Get(SignatureHeader)) {
		h.log.WarnContext(ctx, "webhook signature rejected")
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return nil
	}

	event, err := parseIncomingEvent(ctx, r.Header, body)
	if err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return nil
	}
	if err := event.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	if _, err := h.dispatcher.Dispatch(ctx, event); err != nil {
		if services.ClassifyWebhookError(err) == services.WebhookErrorKindBadRequest {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return nil
		}
		http.Error(w, "processing failed", http.StatusInternalServerError)
		return nil
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, err = w.Write([]byte(`{"success":true}`))
	return err
}

// parseIncomingEvent accepts the native {"type","entity":{"id"}} envelope
// and falls back to binary or structured CloudEvents.
func parseIncomingEvent(ctx context.Context, headers http.Header, body []byte) (services.WebhookEvent, error) {
	if gjson.ValidBytes(body) {
		root := gjson.ParseBytes(body)
		if root.IsObject() && root.Get("type").Exists() && !root.Get("specversion").Exists() {
			return services.WebhookEvent{
				Type:     strings.TrimSpace(root.Get("type").String()),
				EntityID: entityID(root),
			}, nil
		}
	}

	req := &http.Request{
		Method: http.MethodPost,
		Header: headers.Clone(),
		Body:   io.NopCloser(bytes.NewReader(body)),
	}
	message := cehttp.NewMessageFromHttpRequest(req)
	defer func() {
		_ = message.Finish(nil)
	}()

	cloudEvent, err := cebinding.ToEvent(ctx, message)
	if err != nil {
		return services.WebhookEvent{}, errInvalidPayload
	}
	data, err := cloudEventData(cloudEvent)
	if err != nil {
		return services.WebhookEvent{}, err
	}
	event := services.WebhookEvent{Type: cloudEvent.Type(), EntityID: entityID(gjson.ParseBytes(data))}
	if event.EntityID == "" {
		event.EntityID = strings.TrimSpace(cloudEvent.Subject())
	}
	return event, nil
}

func entityID(root gjson.Result) string {
	for _, path := range []string{"entity.id", "id"} {
		if v := root.Get(path); v.Exists() && v.Type != gjson.Null {
			return strings.TrimSpace(v.String())
		}
	}
	return ""
}

func cloudEventData(event *ceevent.Event) ([]byte, error) {
	if event == nil {
		return nil, errInvalidPayload
	}
	if len(event.Data()) == 0 {
		return []byte(`{}`), nil
	}
	raw := json.RawMessage{}
	if err := event.DataAs(&raw); err != nil {
		return nil, errInvalidPayload
	}
	return raw, nil
}

func validSignature(body []byte, secret, signature string) bool {
	signature = strings.ToLower(strings.TrimSpace(signature))
	signature = strings.TrimPrefix(signature, signaturePrefix)
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
