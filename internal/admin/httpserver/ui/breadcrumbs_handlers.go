package ui

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	custommw "contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/templates/helpers"
	"contoso.dev/claims-admin/internal/admin/templates/partials"
)

// BreadcrumbsResponse is the JSON payload of the breadcrumb endpoint.
type BreadcrumbsResponse struct {
	Path    string              `json:"path"`
	Entries []breadcrumbs.Entry `json:"entries"`
}

// BreadcrumbsFragment renders the header trail for the path in the "path"
// query parameter, or for HX-Current-URL when absent. Used by htmx to refresh
// the header after boosted navigation.
func (h *Handlers) BreadcrumbsFragment(w http.ResponseWriter, r *http.Request) {
	path := h.targetPath(r)
	trail := h.trail(r, path)
	templ.Handler(helpers.Node(partials.Breadcrumbs(trail))).ServeHTTP(w, r)
}

// BreadcrumbsJSON serves the trail for the "path" query parameter.
func (h *Handlers) BreadcrumbsJSON(w http.ResponseWriter, r *http.Request) {
	path := h.targetPath(r)
	payload := BreadcrumbsResponse{
		Path:    path,
		Entries: h.trail(r, path),
	}

	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.WithError(err).Error("breadcrumbs: marshal response failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, _ = w.Write(data)
}

func (h *Handlers) trail(r *http.Request, path string) []breadcrumbs.Entry {
	trail := h.breadcrumbs.BuildUnder(custommw.BasePathFromContext(r.Context()), path)
	if h.trailDepth != nil {
		h.trailDepth.Observe(float64(len(trail)))
	}
	return trail
}

func (h *Handlers) targetPath(r *http.Request) string {
	if path := strings.TrimSpace(r.URL.Query().Get("path")); path != "" {
		return path
	}
	if current := custommw.HTMXInfoFromContext(r.Context()).CurrentURL; current != "" {
		return pathFromURL(current)
	}
	return "/"
}
