package testutil

import (
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/dashboard"
	"contoso.dev/claims-admin/internal/admin/httpserver"
	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithAuthenticator overrides the authenticator used by the admin server.
func WithAuthenticator(auth middleware.Authenticator) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Authenticator = auth
	}
}

// WithBasePath sets a custom base path for the admin routes.
func WithBasePath(path string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.BasePath = path
	}
}

// WithDashboardService wires a custom dashboard service implementation.
func WithDashboardService(service dashboard.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.DashboardService = service
	}
}

// WithBreadcrumbs replaces the breadcrumb builder.
func WithBreadcrumbs(builder *breadcrumbs.Builder) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Breadcrumbs = builder
	}
}

// WithEnvironment sets the environment shown in the header badge.
func WithEnvironment(environment string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = environment
	}
}

// WithMetrics enables the metrics endpoint backed by registry.
func WithMetrics(registry *prometheus.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.MetricsEnabled = true
		cfg.Registry = registry
	}
}

// WithLogger routes server logs to logger.
func WithLogger(logger log.FieldLogger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// NewServer constructs an httptest server running the admin HTTP stack with sensible defaults.
// Logs are discarded unless WithLogger is given.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	quiet, _ := test.NewNullLogger()

	cfg := httpserver.Config{
		Address:          ":0",
		BasePath:         "/admin",
		LoginPath:        "",
		Environment:      "development",
		Authenticator:    middleware.DefaultAuthenticator(),
		DashboardService: dashboard.NewStaticService(),
		Logger:           quiet,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	srv := httpserver.New(cfg)
	ts := httptest.NewServer(srv.Handler)
	t.Cleanup(ts.Close)
	return ts
}
