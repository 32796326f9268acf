package config

import (
	"testing"
	"time"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/pfapi"
)

func TestLoadDefaultsForLocalDevelopment(t *testing.T) {
	t.Setenv("PFSYNC_ENV", "dev")
	t.Setenv("PFSYNC_ADMIN_TOKEN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.API.Endpoint != pfapi.DefaultEndpoint {
		t.Fatalf("expected default endpoint, got %q", cfg.API.Endpoint)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Fatalf("expected 30s api timeout, got %s", cfg.APITimeout)
	}
	if cfg.Sync.LockTTL != 300*time.Second {
		t.Fatalf("expected 300s lock ttl, got %s", cfg.Sync.LockTTL)
	}
	if cfg.Sync.PerPage != 50 || cfg.Sync.MaxPages != 200 || cfg.Sync.PageDelay != time.Second {
		t.Fatalf("unexpected sync defaults %+v", cfg.Sync)
	}
	if cfg.Webhook.DeleteStatus != domain.StatusDraft {
		t.Fatalf("expected draft delete action, got %q", cfg.Webhook.DeleteStatus)
	}
	if cfg.Sync.DefaultStatus != domain.StatusPublish {
		t.Fatalf("expected publish default status, got %q", cfg.Sync.DefaultStatus)
	}
	if cfg.API.Configured() {
		t.Fatal("expected credentials to be unconfigured by default")
	}
}

func TestLoadRequiresAdminTokenOutsideLocal(t *testing.T) {
	t.Setenv("PFSYNC_ENV", "production")
	t.Setenv("PFSYNC_ADMIN_TOKEN", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing admin token in production")
	}
}

func TestLoadForToolAllowsMissingAdminTokenOutsideLocal(t *testing.T) {
	t.Setenv("PFSYNC_ENV", "production")
	t.Setenv("PFSYNC_ADMIN_TOKEN", "")

	if _, err := LoadForTool(); err != nil {
		t.Fatalf("expected no error for tool config load, got %v", err)
	}
}

func TestLoadReadsCredentialsAndWebhookPolicy(t *testing.T) {
	t.Setenv("PFSYNC_ENV", "dev")
	t.Setenv("PFSYNC_API_ENDPOINT", "https://api.example.test/v1/")
	t.Setenv("PFSYNC_API_KEY", " key ")
	t.Setenv("PFSYNC_API_SECRET", "secret")
	t.Setenv("PFSYNC_WEBHOOK_SECRET", "hook")
	t.Setenv("PFSYNC_WEBHOOK_DELETE_ACTION", "trash")
	t.Setenv("PFSYNC_SYNC_PER_PAGE", "500")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	want := pfapi.Credentials{Endpoint: "https://api.example.test/v1", APIKey: "key", APISecret: "secret"}
	if cfg.API != want {
		t.Fatalf("credentials = %+v, want %+v", cfg.API, want)
	}
	if cfg.Webhook.Secret != "hook" || cfg.Webhook.DeleteStatus != domain.StatusTrash {
		t.Fatalf("unexpected webhook config %+v", cfg.Webhook)
	}
	if cfg.Sync.PerPage != 100 {
		t.Fatalf("expected per page capped at 100, got %d", cfg.Sync.PerPage)
	}
}

func TestLoadRejectsInvalidStatusPolicy(t *testing.T) {
	t.Setenv("PFSYNC_ENV", "dev")
	t.Setenv("PFSYNC_WEBHOOK_DELETE_ACTION", "publish")
	if _, err := Load(); err == nil {
		t.Fatal("expected publish to be rejected as a delete action")
	}

	t.Setenv("PFSYNC_WEBHOOK_DELETE_ACTION", "draft")
	t.Setenv("PFSYNC_DEFAULT_STATUS", "trash")
	if _, err := Load(); err == nil {
		t.Fatal("expected trash to be rejected as a default status")
	}
}

func TestLoadParsesOTLPHeadersAndMetricsConsole(t *testing.T) {
	t.Setenv("PFSYNC_ENV", "dev")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common,x-org=abc")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_HEADERS", "x-trace=trace-only")
	t.Setenv("OTEL_EXPORTER_OTLP_METRICS_HEADERS", "x-metric=metric-only")
	t.Setenv("PFSYNC_OTEL_METRICS_CONSOLE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled {
		t.Fatal("expected observability enabled when console metrics is true")
	}
	if cfg.Observability.OTLPTraceHeaders["authorization"] != "Bearer common" {
		t.Fatalf("expected common header to be in trace headers, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPTraceHeaders["x-trace"] != "trace-only" {
		t.Fatalf("expected trace-specific header, got %#v", cfg.Observability.OTLPTraceHeaders)
	}
	if cfg.Observability.OTLPMetricHeaders["x-metric"] != "metric-only" {
		t.Fatalf("expected metric-specific header, got %#v", cfg.Observability.OTLPMetricHeaders)
	}
}
