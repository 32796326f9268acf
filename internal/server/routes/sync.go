package routes

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/fr0stylo/pfsync/internal/app/domain"
	"github.com/fr0stylo/pfsync/internal/app/ports"
	"github.com/fr0stylo/pfsync/internal/app/services"
)

// CatalogSyncer runs a full-catalog pass.
type CatalogSyncer interface {
	RunAll(ctx context.Context, params services.CatalogParams) services.CatalogResult
}

// SyncRoutesConfig configures the admin sync API.
type SyncRoutesConfig struct {
	AdminToken string
	PerPage    int
}

type kindSync struct {
	page    services.PageRunner
	catalog CatalogSyncer
}

// SyncRoutes registers the bearer-protected admin sync API.
type SyncRoutes struct {
	cfg     SyncRoutesConfig
	lock    ports.SyncLock
	state   ports.SyncStateStore
	records ports.RecordStore
	kinds   map[domain.Kind]kindSync
	log     *slog.Logger
}

// NewSyncRoutes constructs admin sync routes. An empty admin token leaves
// the API open, which config only allows in local environments.
func NewSyncRoutes(cfg SyncRoutesConfig, lock ports.SyncLock, state ports.SyncStateStore, records ports.RecordStore, log *slog.Logger) *SyncRoutes {
	if log == nil {
		log = slog.Default()
	}
	return &SyncRoutes{
		cfg:     cfg,
		lock:    lock,
		state:   state,
		records: records,
		kinds:   make(map[domain.Kind]kindSync),
		log:     log,
	}
}

// WithKind exposes sync endpoints for the runner's kind.
func (r *SyncRoutes) WithKind(page services.PageRunner, catalog CatalogSyncer) *SyncRoutes {
	r.kinds[page.Kind()] = kindSync{page: page, catalog: catalog}
	return r
}

// RegisterRoutes registers admin sync endpoints.
func (r *SyncRoutes) RegisterRoutes(s *echo.Echo) {
	if r.cfg.AdminToken == "" {
		r.log.Warn("admin sync API is not protected, PFSYNC_ADMIN_TOKEN is empty")
	}
	api := s.Group("/api/sync", middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Skipper: func(echo.Context) bool {
			return r.cfg.AdminToken == ""
		},
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(r.cfg.AdminToken)) == 1, nil
		},
	}))

	api.GET("/status", r.handleStatus)
	api.POST("/:kind", r.handleRun)
	api.POST("/:kind/all", r.handleRunAll)
	api.DELETE("/:kind/lock", r.handleReleaseLock)
}

type runRequest struct {
	Page    int    `json:"page"`
	PerPage int    `json:"perPage"`
	Status  string `json:"status"`
}

func (r *SyncRoutes) bindRun(c echo.Context) (runRequest, error) {
	req := runRequest{}
	if c.Request().ContentLength > 0 {
		if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
			return req, err
		}
	}
	err := echo.QueryParamsBinder(c).
		Int("page", &req.Page).
		Int("perPage", &req.PerPage).
		Int("per_page", &req.PerPage).
		String("status", &req.Status).
		BindError()
	if err != nil {
		return req, err
	}
	if req.PerPage <= 0 {
		req.PerPage = r.cfg.PerPage
	}
	return req, nil
}

func (r *SyncRoutes) resolveKind(c echo.Context) (kindSync, error) {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		return kindSync{}, echo.NewHTTPError(http.StatusNotFound, "unknown kind")
	}
	entry, ok := r.kinds[kind]
	if !ok {
		return kindSync{}, echo.NewHTTPError(http.StatusNotFound, "unknown kind")
	}
	return entry, nil
}

func (r *SyncRoutes) handleRun(c echo.Context) error {
	entry, err := r.resolveKind(c)
	if err != nil {
		return err
	}
	req, err := r.bindRun(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sync parameters")
	}

	result := entry.page.Run(c.Request().Context(), services.RunParams{Page: req.Page, PerPage: req.PerPage, Status: req.Status})
	return c.JSON(runStatusCode(result), result)
}

func (r *SyncRoutes) handleRunAll(c echo.Context) error {
	entry, err := r.resolveKind(c)
	if err != nil {
		return err
	}
	req, err := r.bindRun(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid sync parameters")
	}

	result := entry.catalog.RunAll(c.Request().Context(), services.CatalogParams{StartPage: req.Page, PerPage: req.PerPage, Status: req.Status})
	code := http.StatusOK
	if len(result.Pages) == 1 && result.Pages[0].Busy {
		code = http.StatusConflict
	}
	return c.JSON(code, result)
}

type kindStatus struct {
	Kind        domain.Kind     `json:"kind"`
	LastSyncAt  *time.Time      `json:"lastSyncAt"`
	LastSummary json.RawMessage `json:"lastSummary,omitempty"`
	Locked      bool            `json:"locked"`
	Records     int64           `json:"records"`
}

func (r *SyncRoutes) handleStatus(c echo.Context) error {
	ctx := c.Request().Context()
	states, err := r.state.ListSyncStates(ctx)
	if err != nil {
		return err
	}
	byKind := make(map[domain.Kind]ports.SyncState, len(states))
	for _, state := range states {
		byKind[state.Kind] = state
	}

	out := make([]kindStatus, 0, len(domain.Kinds))
	for _, kind := range domain.Kinds {
		status := kindStatus{Kind: kind}
		if state, ok := byKind[kind]; ok {
			at := state.LastSyncAt
			status.LastSyncAt = &at
			if json.Valid([]byte(state.LastSummary)) {
				status.LastSummary = json.RawMessage(state.LastSummary)
			}
		}
		if status.Locked, err = r.lock.IsHeld(ctx, kind.LockKey()); err != nil {
			return err
		}
		if status.Records, err = r.records.CountByKind(ctx, kind); err != nil {
			return err
		}
		out = append(out, status)
	}
	return c.JSON(http.StatusOK, map[string]any{"kinds": out})
}

func (r *SyncRoutes) handleReleaseLock(c echo.Context) error {
	kind, err := domain.ParseKind(c.Param("kind"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "unknown kind")
	}
	if err := r.lock.Release(c.Request().Context(), kind.LockKey()); err != nil {
		return err
	}
	r.log.WarnContext(c.Request().Context(), "sync lock force released", "kind", string(kind))
	return c.NoContent(http.StatusNoContent)
}

func runStatusCode(result services.RunResult) int {
	switch {
	case result.Success:
		return http.StatusOK
	case result.Busy:
		return http.StatusConflict
	case result.Reason == services.ReasonFetchFailed:
		return http.StatusBadGateway
	case result.Reason == services.ReasonNoEntities:
		return http.StatusOK
	case result.Reason == services.ReasonLockFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
