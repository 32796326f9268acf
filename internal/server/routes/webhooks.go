package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/fr0stylo/pfsync/internal/webhooks/inbound"
)

// WebhookRoutes registers webhook endpoints.
type WebhookRoutes struct {
	inbound *inbound.Handler
}

// NewWebhookRoutes constructs webhook routes.
func NewWebhookRoutes(handler *inbound.Handler) *WebhookRoutes {
	return &WebhookRoutes{inbound: handler}
}

// RegisterRoutes registers webhook endpoints.
func (w *WebhookRoutes) RegisterRoutes(s *echo.Echo) {
	s.POST("/webhooks/propertyfinder", w.handleWebhook)
	s.POST("/webhook", w.handleWebhook)
}

func (w *WebhookRoutes) handleWebhook(c echo.Context) error {
	return w.inbound.Handle(c.Response(), c.Request())
}
