package ui

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/dashboard"
	custommw "contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	dashboardtpl "contoso.dev/claims-admin/internal/admin/templates/dashboard"
	"contoso.dev/claims-admin/internal/admin/templates/sections"
)

const activeClaimsLimit = 10

// Dependencies collects external services required by the UI handlers.
type Dependencies struct {
	DashboardService dashboard.Service
	Breadcrumbs      *breadcrumbs.Builder
	Logger           log.FieldLogger
	// Registerer receives the breadcrumb metrics. Nil disables them.
	Registerer prometheus.Registerer
}

// Handlers exposes HTTP handlers for admin UI pages and fragments.
type Handlers struct {
	dashboard   dashboard.Service
	breadcrumbs *breadcrumbs.Builder
	logger      log.FieldLogger
	trailDepth  prometheus.Histogram
}

// NewHandlers wires the UI handler set.
func NewHandlers(deps Dependencies) *Handlers {
	service := deps.DashboardService
	if service == nil {
		service = dashboard.NewStaticService()
	}
	builder := deps.Breadcrumbs
	if builder == nil {
		builder = breadcrumbs.NewBuilder(breadcrumbs.DefaultConfig())
	}
	logger := deps.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	h := &Handlers{
		dashboard:   service,
		breadcrumbs: builder,
		logger:      logger,
	}
	if deps.Registerer != nil {
		h.trailDepth = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "claims_admin",
			Subsystem: "breadcrumbs",
			Name:      "trail_depth",
			Help:      "Number of entries in breadcrumb trails served by the breadcrumb endpoints.",
			Buckets:   prometheus.LinearBuckets(1, 1, 8),
		})
		deps.Registerer.MustRegister(h.trailDepth)
	}
	return h
}

// Dashboard renders the live dashboard. Section failures are shown inline so
// one broken source does not blank the page.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.logger.WithField("handler", "dashboard")

	kpis, kpiErr := h.dashboard.FetchKPIs(ctx)
	if kpiErr != nil {
		logger.WithError(kpiErr).Error("fetch kpis failed")
	}
	agents, agentErr := h.dashboard.FetchAgentStatuses(ctx)
	if agentErr != nil {
		logger.WithError(agentErr).Error("fetch agent statuses failed")
	}
	claims, claimErr := h.dashboard.FetchActiveClaims(ctx, activeClaimsLimit)
	if claimErr != nil {
		logger.WithError(claimErr).Error("fetch active claims failed")
	}

	data := dashboardtpl.BuildPageData(custommw.BasePathFromContext(ctx), kpis, agents, claims)
	if kpiErr != nil {
		data.KPIError = "Metrics are unavailable right now."
	}
	if agentErr != nil {
		data.AgentsError = "Agent status is unavailable right now."
	}
	if claimErr != nil {
		data.ClaimsError = "Active claims could not be loaded."
	}

	templ.Handler(dashboardtpl.Index(data)).ServeHTTP(w, r)
}

// AgentsIndex renders the agent demos overview.
func (h *Handlers) AgentsIndex(w http.ResponseWriter, r *http.Request) {
	data := sections.AgentsIndex(custommw.BasePathFromContext(r.Context()), h.breadcrumbs)
	h.renderSection(w, r, data)
}

// Agent renders a single agent demo page.
func (h *Handlers) Agent(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "agent")
	if !sections.HasAgent(slug) {
		http.NotFound(w, r)
		return
	}
	h.renderSection(w, r, sections.Agent(slug))
}

// Demo renders the workflow demo page.
func (h *Handlers) Demo(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, sections.Demo())
}

// Documents renders the policy documents overview.
func (h *Handlers) Documents(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, sections.Documents(custommw.BasePathFromContext(r.Context())))
}

// DocumentView renders a page below the documents section.
func (h *Handlers) DocumentView(w http.ResponseWriter, r *http.Request) {
	view := chi.URLParam(r, "view")
	if !sections.HasDocumentView(view) {
		http.NotFound(w, r)
		return
	}
	h.renderSection(w, r, sections.DocumentView(view))
}

// Tasks renders the task queue page.
func (h *Handlers) Tasks(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, sections.Tasks())
}

// Feedback renders the feedback system page.
func (h *Handlers) Feedback(w http.ResponseWriter, r *http.Request) {
	h.renderSection(w, r, sections.Feedback())
}

func (h *Handlers) renderSection(w http.ResponseWriter, r *http.Request, data sections.PageData) {
	templ.Handler(sections.Index(data)).ServeHTTP(w, r)
}
