package httpserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/dashboard"
	custommw "contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/httpserver/ui"
	"contoso.dev/claims-admin/internal/admin/rbac"
	"contoso.dev/claims-admin/public"
)

// Config holds runtime options for the admin HTTP server.
type Config struct {
	Address         string
	BasePath        string
	LoginPath       string
	Environment     string
	FirebaseProject string

	Authenticator    custommw.Authenticator
	DashboardService dashboard.Service
	Breadcrumbs      *breadcrumbs.Builder
	Logger           log.FieldLogger

	MetricsEnabled bool
	MetricsPath    string
	// Registry receives the server collectors. When nil and metrics are
	// enabled a fresh registry with the Go and process collectors is used.
	Registry *prometheus.Registry

	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) *http.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	var registry *prometheus.Registry
	if cfg.MetricsEnabled {
		registry = cfg.Registry
		if registry == nil {
			registry = prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
		}
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.RequestLogger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(durationOr(cfg.RequestTimeout, 60*time.Second)))
	if registry != nil {
		router.Use(custommw.NewHTTPMetrics(registry).Middleware)
	}

	staticContent, err := public.StaticFS()
	if err != nil {
		logger.WithError(err).Fatal("embed static")
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))
	router.Get("/healthz", healthz)
	if registry != nil {
		metricsPath := firstNonEmpty(cfg.MetricsPath, "/metrics")
		router.Handle(metricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
	}

	basePath := normalizeBasePath(cfg.BasePath)
	loginPath := resolveLoginPath(basePath, cfg.LoginPath)

	authenticator := cfg.Authenticator
	if authenticator == nil {
		authenticator = custommw.DefaultAuthenticator()
	}
	builder := cfg.Breadcrumbs
	if builder == nil {
		builder = breadcrumbs.NewBuilder(breadcrumbs.DefaultConfig())
	}

	deps := ui.Dependencies{
		DashboardService: cfg.DashboardService,
		Breadcrumbs:      builder,
		Logger:           logger,
	}
	if registry != nil {
		deps.Registerer = registry
	}

	mountAdminRoutes(router, basePath, routeOptions{
		Authenticator:   authenticator,
		LoginPath:       loginPath,
		Environment:     cfg.Environment,
		FirebaseProject: cfg.FirebaseProject,
		Breadcrumbs:     builder,
		Handlers:        ui.NewHandlers(deps),
		Logger:          logger,
	})

	return &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  durationOr(cfg.ReadTimeout, 10*time.Second),
		WriteTimeout: durationOr(cfg.WriteTimeout, 30*time.Second),
		IdleTimeout:  durationOr(cfg.IdleTimeout, 60*time.Second),
	}
}

type routeOptions struct {
	Authenticator   custommw.Authenticator
	LoginPath       string
	Environment     string
	FirebaseProject string
	Breadcrumbs     *breadcrumbs.Builder
	Handlers        *ui.Handlers
	Logger          log.FieldLogger
}

func mountAdminRoutes(router chi.Router, base string, opts routeOptions) {
	pageMiddleware := chi.Chain(
		custommw.RequestInfoMiddleware(base, opts.Breadcrumbs),
		custommw.Environment(opts.Environment),
		custommw.HTMX(),
		custommw.NoStore(),
	)
	authHandlers := newAuthHandlers(opts.Authenticator, base, opts.LoginPath, opts.FirebaseProject)
	h := opts.Handlers

	relLogin, loginUnderBase := relativeTo(base, opts.LoginPath)
	if !loginUnderBase {
		router.With(pageMiddleware...).Get(opts.LoginPath, authHandlers.LoginPage)
	}

	mount := func(r chi.Router) {
		r.Use(pageMiddleware...)
		if loginUnderBase {
			r.Get(relLogin, authHandlers.LoginPage)
		}

		r.Group(func(r chi.Router) {
			r.Use(custommw.Auth(opts.Authenticator, opts.LoginPath, opts.Logger))

			r.Post("/logout", authHandlers.Logout)

			r.With(custommw.RequireCapability(rbac.CapDashboardView)).Get("/", h.Dashboard)
			r.Group(func(r chi.Router) {
				r.Use(custommw.RequireCapability(rbac.CapAgentsDemo))
				r.Get("/agents", h.AgentsIndex)
				r.Get("/agents/{agent}", h.Agent)
			})
			r.With(custommw.RequireCapability(rbac.CapWorkflowDemo)).Get("/demo", h.Demo)
			r.With(custommw.RequireCapability(rbac.CapDocumentsView)).Get("/documents", h.Documents)
			r.With(custommw.RequireCapability(rbac.CapDocumentsAdmin)).Get("/documents/{view}", h.DocumentView)
			r.With(custommw.RequireCapability(rbac.CapTasksReview)).Get("/tasks", h.Tasks)
			r.With(custommw.RequireCapability(rbac.CapFeedbackView)).Get("/feedback", h.Feedback)

			RegisterFragment(r, "/fragments/breadcrumbs", h.BreadcrumbsFragment)
			r.Get("/api/breadcrumbs", h.BreadcrumbsJSON)
		})
	}

	if base == "/" {
		router.Group(mount)
		return
	}
	router.Route(base, mount)
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func normalizeBasePath(path string) string {
	p := strings.TrimSpace(path)
	if p == "" {
		return "/admin"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 && strings.HasSuffix(p, "/") {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		return "/"
	}
	return p
}

func resolveLoginPath(base string, override string) string {
	if strings.TrimSpace(override) != "" {
		return override
	}
	if base == "/" {
		return "/login"
	}
	return base + "/login"
}

// relativeTo returns p relative to base when p lies below it.
func relativeTo(base, p string) (string, bool) {
	if base == "/" {
		return p, strings.HasPrefix(p, "/")
	}
	if rest, ok := strings.CutPrefix(p, base); ok && strings.HasPrefix(rest, "/") && rest != "/" {
		return rest, true
	}
	return "", false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func durationOr(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

// RegisterFragment registers a GET handler intended for htmx fragment rendering.
func RegisterFragment(r chi.Router, pattern string, handler http.HandlerFunc) {
	r.With(custommw.RequireHTMX()).Get(pattern, handler)
}
