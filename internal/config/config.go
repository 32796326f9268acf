package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/pfapi"
)

type Config struct {
	Environment   string
	Server        ServerConfig
	Database      DatabaseConfig
	API           pfapi.Credentials
	APITimeout    time.Duration
	Webhook       WebhookConfig
	Sync          SyncConfig
	Media         MediaConfig
	Observability ObservabilityConfig
}

type ServerConfig struct {
	Port       int
	AdminToken string
}

type DatabaseConfig struct {
	Path      string
	LogTiming bool
	// LockURL selects the Postgres key-value backend for locks and tokens.
	LockURL string
}

type WebhookConfig struct {
	Secret       string
	DeleteStatus domain.Status
}

type SyncConfig struct {
	DefaultStatus domain.Status
	LockTTL       time.Duration
	PerPage       int
	PageDelay     time.Duration
	MaxPages      int
}

type MediaConfig struct {
	Enabled  bool
	MaxBytes int64
}

type ObservabilityConfig struct {
	Enabled           bool
	OTLPEndpoint      string
	OTLPTraceHeaders  map[string]string
	OTLPMetricHeaders map[string]string
	ServiceName       string
	ServiceVer        string
	SamplingRatio     float64
	MetricsConsole    bool
}

func Load() (Config, error) {
	return load(true)
}

// LoadForTool loads config for CLI tools that do not serve the admin API.
func LoadForTool() (Config, error) {
	return load(false)
}

func load(requireAdminToken bool) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("pfsync_env", "")
	v.SetDefault("app_env", "")
	v.SetDefault("go_env", "")
	v.SetDefault("pfsync_port", 8080)
	v.SetDefault("pfsync_admin_token", "")
	v.SetDefault("pfsync_db_path", "data/pfsync")
	v.SetDefault("pfsync_db_timing", false)
	v.SetDefault("pfsync_lock_database_url", "")
	v.SetDefault("pfsync_api_endpoint", pfapi.DefaultEndpoint)
	v.SetDefault("pfsync_api_key", "")
	v.SetDefault("pfsync_api_secret", "")
	v.SetDefault("pfsync_api_timeout_seconds", 30)
	v.SetDefault("pfsync_webhook_secret", "")
	v.SetDefault("pfsync_webhook_delete_action", "draft")
	v.SetDefault("pfsync_default_status", "publish")
	v.SetDefault("pfsync_lock_ttl_seconds", 300)
	v.SetDefault("pfsync_sync_per_page", pfapi.DefaultPerPage)
	v.SetDefault("pfsync_sync_page_delay_ms", 1000)
	v.SetDefault("pfsync_sync_max_pages", 200)
	v.SetDefault("pfsync_image_import", true)
	v.SetDefault("pfsync_image_max_bytes", 5<<20)
	v.SetDefault("pfsync_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_exporter_otlp_traces_headers", "")
	v.SetDefault("otel_exporter_otlp_metrics_headers", "")
	v.SetDefault("otel_service_name", "pfsync")
	v.SetDefault("pfsync_service_name", "pfsync")
	v.SetDefault("pfsync_version", "dev")
	v.SetDefault("otel_service_version", "")
	v.SetDefault("pfsync_otel_sampling_ratio", 1.0)
	v.SetDefault("pfsync_otel_metrics_console", false)

	env := resolveEnvironment(v)
	port := v.GetInt("pfsync_port")
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PFSYNC_PORT: %d", port)
	}

	deleteStatus, err := domain.ParseStatus(v.GetString("pfsync_webhook_delete_action"))
	if err != nil || !deleteStatus.Suppressed() {
		return Config{}, fmt.Errorf("invalid PFSYNC_WEBHOOK_DELETE_ACTION: %q (want draft or trash)", v.GetString("pfsync_webhook_delete_action"))
	}
	defaultStatus, err := domain.ParseStatus(v.GetString("pfsync_default_status"))
	if err != nil || defaultStatus == domain.StatusTrash {
		return Config{}, fmt.Errorf("invalid PFSYNC_DEFAULT_STATUS: %q (want publish or draft)", v.GetString("pfsync_default_status"))
	}

	samplingRatio := v.GetFloat64("pfsync_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	apiTimeout := v.GetInt("pfsync_api_timeout_seconds")
	if apiTimeout <= 0 {
		apiTimeout = 30
	}
	lockTTL := v.GetInt("pfsync_lock_ttl_seconds")
	if lockTTL <= 0 {
		lockTTL = 300
	}
	perPage := v.GetInt("pfsync_sync_per_page")
	if perPage <= 0 {
		perPage = pfapi.DefaultPerPage
	}
	if perPage > 100 {
		perPage = 100
	}
	pageDelay := v.GetInt("pfsync_sync_page_delay_ms")
	if pageDelay < 0 {
		pageDelay = 0
	}
	maxPages := v.GetInt("pfsync_sync_max_pages")
	if maxPages <= 0 {
		maxPages = 200
	}
	imageMax := v.GetInt64("pfsync_image_max_bytes")
	if imageMax <= 0 {
		imageMax = 5 << 20
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = strings.TrimSpace(v.GetString("pfsync_service_name"))
	}
	if serviceName == "" {
		serviceName = "pfsync"
	}

	serviceVersion := strings.TrimSpace(v.GetString("pfsync_version"))
	if serviceVersion == "" {
		serviceVersion = strings.TrimSpace(v.GetString("otel_service_version"))
	}
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	otlpCommonHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers"))
	otlpTraceHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_traces_headers"))
	otlpMetricHeaders := parseOTLPHeaders(v.GetString("otel_exporter_otlp_metrics_headers"))
	metricsConsole := v.GetBool("pfsync_otel_metrics_console")
	otelEnabled := v.GetBool("pfsync_otel_enabled") || otlpEndpoint != "" || metricsConsole

	cfg := Config{
		Environment: env,
		Server: ServerConfig{
			Port:       port,
			AdminToken: strings.TrimSpace(v.GetString("pfsync_admin_token")),
		},
		Database: DatabaseConfig{
			Path:      strings.TrimSpace(v.GetString("pfsync_db_path")),
			LogTiming: v.GetBool("pfsync_db_timing"),
			LockURL:   strings.TrimSpace(v.GetString("pfsync_lock_database_url")),
		},
		API: pfapi.Credentials{
			Endpoint:  strings.TrimRight(strings.TrimSpace(v.GetString("pfsync_api_endpoint")), "/"),
			APIKey:    strings.TrimSpace(v.GetString("pfsync_api_key")),
			APISecret: strings.TrimSpace(v.GetString("pfsync_api_secret")),
		},
		APITimeout: time.Duration(apiTimeout) * time.Second,
		Webhook: WebhookConfig{
			Secret:       strings.TrimSpace(v.GetString("pfsync_webhook_secret")),
			DeleteStatus: deleteStatus,
		},
		Sync: SyncConfig{
			DefaultStatus: defaultStatus,
			LockTTL:       time.Duration(lockTTL) * time.Second,
			PerPage:       perPage,
			PageDelay:     time.Duration(pageDelay) * time.Millisecond,
			MaxPages:      maxPages,
		},
		Media: MediaConfig{
			Enabled:  v.GetBool("pfsync_image_import"),
			MaxBytes: imageMax,
		},
		Observability: ObservabilityConfig{
			Enabled:           otelEnabled,
			OTLPEndpoint:      otlpEndpoint,
			OTLPTraceHeaders:  mergeHeaderMaps(otlpCommonHeaders, otlpTraceHeaders),
			OTLPMetricHeaders: mergeHeaderMaps(otlpCommonHeaders, otlpMetricHeaders),
			ServiceName:       serviceName,
			ServiceVer:        serviceVersion,
			SamplingRatio:     samplingRatio,
			MetricsConsole:    metricsConsole,
		},
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = "data/pfsync"
	}
	if cfg.API.Endpoint == "" {
		cfg.API.Endpoint = pfapi.DefaultEndpoint
	}
	if requireAdminToken && !cfg.IsLocalDevelopment() && cfg.Server.AdminToken == "" {
		return Config{}, fmt.Errorf("PFSYNC_ADMIN_TOKEN is required outside local/dev environments")
	}

	return cfg, nil
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pair := strings.SplitN(part, "=", 2)
		if len(pair) != 2 {
			continue
		}
		key := strings.TrimSpace(pair[0])
		value := strings.TrimSpace(pair[1])
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func mergeHeaderMaps(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}

func (c Config) IsLocalDevelopment() bool {
	switch strings.ToLower(strings.TrimSpace(c.Environment)) {
	case "", "local", "dev", "development", "test":
		return true
	default:
		return false
	}
}

func resolveEnvironment(v *viper.Viper) string {
	for _, key := range []string{"pfsync_env", "app_env", "go_env"} {
		value := strings.TrimSpace(v.GetString(key))
		if value != "" {
			return strings.ToLower(value)
		}
	}
	return ""
}
