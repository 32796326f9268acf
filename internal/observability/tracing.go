package observability

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	dbTracerName  = "pfsync/db"
	apiTracerName = "pfsync/pfapi"
)

type contextKey string

const (
	requestIDKey  contextKey = "observability.request_id"
	routeKey      contextKey = "observability.route"
	entityKindKey contextKey = "observability.entity_kind"
	externalIDKey contextKey = "observability.external_id"
)

// Span is the application-level tracing span contract.
type Span interface {
	End()
	RecordError(error)
	SetHTTPStatus(int)
}

type otelSpan struct {
	inner trace.Span
}

// StartDBSpan starts a database tracing span for one query operation.
func StartDBSpan(ctx context.Context, queryName, operation string) (context.Context, Span) {
	queryName = strings.TrimSpace(queryName)
	if queryName == "" {
		queryName = "unknown"
	}
	attrs := []attribute.KeyValue{
		attribute.String("db.system.name", "sqlite"),
		attribute.String("db.query_name", queryName),
		attribute.String("db.operation", strings.TrimSpace(operation)),
	}
	attrs = append(attrs, entityAttributes(ctx)...)

	ctx, span := otel.Tracer(dbTracerName).Start(ctx, "db."+queryName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// StartAPISpan starts a client span for one outbound remote API call.
func StartAPISpan(ctx context.Context, method, path string) (context.Context, Span) {
	attrs := []attribute.KeyValue{
		attribute.String("http.request.method", method),
		attribute.String("pfapi.path", path),
	}
	attrs = append(attrs, entityAttributes(ctx)...)

	ctx, span := otel.Tracer(apiTracerName).Start(ctx, "pfapi."+method+" "+path,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	return ctx, otelSpan{inner: span}
}

// WithRequestMetadata enriches context and current span with request metadata.
func WithRequestMetadata(ctx context.Context, requestID, route string) context.Context {
	requestID = strings.TrimSpace(requestID)
	route = strings.TrimSpace(route)
	if requestID != "" {
		ctx = context.WithValue(ctx, requestIDKey, requestID)
	}
	if route != "" {
		ctx = context.WithValue(ctx, routeKey, route)
	}

	attrs := make([]attribute.KeyValue, 0, 2)
	if requestID != "" {
		attrs = append(attrs, attribute.String("request.id", requestID))
	}
	if route != "" {
		attrs = append(attrs, attribute.String("http.route", route))
	}
	if len(attrs) > 0 {
		trace.SpanFromContext(ctx).SetAttributes(attrs...)
	}
	return ctx
}

// WithEntity tags the context with the entity being synchronized so that
// logs and spans emitted further down carry it.
func WithEntity(ctx context.Context, kind, externalID string) context.Context {
	kind = strings.TrimSpace(kind)
	externalID = strings.TrimSpace(externalID)
	if kind != "" {
		ctx = context.WithValue(ctx, entityKindKey, kind)
	}
	if externalID != "" {
		ctx = context.WithValue(ctx, externalIDKey, externalID)
	}
	return ctx
}

// RequestIDFromContext extracts request id.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, requestIDKey)
}

// RouteFromContext extracts normalized route path.
func RouteFromContext(ctx context.Context) (string, bool) {
	return stringValue(ctx, routeKey)
}

// EntityFromContext extracts the entity kind and external id, if any.
func EntityFromContext(ctx context.Context) (kind, externalID string) {
	kind, _ = stringValue(ctx, entityKindKey)
	externalID, _ = stringValue(ctx, externalIDKey)
	return kind, externalID
}

func stringValue(ctx context.Context, key contextKey) (string, bool) {
	value, ok := ctx.Value(key).(string)
	value = strings.TrimSpace(value)
	return value, ok && value != ""
}

func entityAttributes(ctx context.Context) []attribute.KeyValue {
	kind, externalID := EntityFromContext(ctx)
	attrs := make([]attribute.KeyValue, 0, 2)
	if kind != "" {
		attrs = append(attrs, attribute.String("pfsync.entity.kind", kind))
	}
	if externalID != "" {
		attrs = append(attrs, attribute.String("pfsync.entity.external_id", externalID))
	}
	return attrs
}

func (s otelSpan) End() {
	if s.inner == nil {
		return
	}
	s.inner.End()
}

func (s otelSpan) RecordError(err error) {
	if s.inner == nil || err == nil {
		return
	}
	s.inner.RecordError(err)
	s.inner.SetStatus(codes.Error, err.Error())
}

func (s otelSpan) SetHTTPStatus(code int) {
	if s.inner == nil || code == 0 {
		return
	}
	s.inner.SetAttributes(attribute.Int("http.response.status_code", code))
}
