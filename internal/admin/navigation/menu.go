// Package navigation defines the sidebar menu of the claims dashboard.
package navigation

import (
	"strings"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/rbac"
)

// MenuGroup is a titled block of sidebar entries.
type MenuGroup struct {
	Key   string
	Label string
	Items []MenuItem
}

// MenuItem is a single sidebar link. Items with children render as an
// expandable section; their own Href may be empty. Capability, when set,
// hides the item from users who lack it.
type MenuItem struct {
	Key         string
	Label       string
	Icon        string
	Href        string
	Pattern     string
	MatchPrefix bool
	Capability  rbac.Capability
	Children    []MenuItem
}

// BuildMenu returns the sidebar definition with links rooted at basePath.
// Section labels come from the breadcrumb title table so the sidebar and the
// trail agree; a nil builder uses the default titles.
func BuildMenu(basePath string, labels *breadcrumbs.Builder) []MenuGroup {
	if labels == nil {
		labels = breadcrumbs.NewBuilder(breadcrumbs.DefaultConfig())
	}
	link := func(suffix string) string {
		return joinBasePath(basePath, suffix)
	}

	agents := make([]MenuItem, 0, len(AgentSlugs()))
	for _, slug := range AgentSlugs() {
		agents = append(agents, agentItem(link, slug, labels.Label(slug)))
	}

	return []MenuGroup{
		{
			Key:   "main",
			Label: "Platform",
			Items: []MenuItem{
				{
					Key:        "dashboard",
					Label:      "Live Dashboard",
					Icon:       "dashboard",
					Href:       link("/"),
					Pattern:    link("/"),
					Capability: rbac.CapDashboardView,
				},
				{
					Key:         "agents",
					Label:       labels.Label("agents"),
					Icon:        "users",
					Pattern:     link("/agents"),
					MatchPrefix: true,
					Capability:  rbac.CapAgentsDemo,
					Children:    agents,
				},
				{
					Key:         "demo",
					Label:       labels.Label("demo"),
					Icon:        "file-ai",
					Href:        link("/demo"),
					Pattern:     link("/demo"),
					MatchPrefix: true,
					Capability:  rbac.CapWorkflowDemo,
				},
			},
		},
		{
			Key:   "documents",
			Label: "Documents",
			Items: []MenuItem{
				{
					Key:        "policy-documents",
					Label:      labels.Label("documents"),
					Icon:       "file-description",
					Href:       link("/documents"),
					Pattern:    link("/documents"),
					Capability: rbac.CapDocumentsView,
				},
				{
					Key:         "document-management",
					Label:       labels.Label("manage"),
					Icon:        "file-ai",
					Href:        link("/documents/manage"),
					Pattern:     link("/documents/manage"),
					MatchPrefix: true,
					Capability:  rbac.CapDocumentsAdmin,
				},
				{
					Key:         "index-management",
					Label:       labels.Label("index-management"),
					Icon:        "dashboard",
					Href:        link("/documents/index-management"),
					Pattern:     link("/documents/index-management"),
					MatchPrefix: true,
					Capability:  rbac.CapDocumentsAdmin,
				},
			},
		},
	}
}

func agentItem(link func(string) string, slug, label string) MenuItem {
	return MenuItem{
		Key:         slug,
		Label:       label,
		Href:        link("/agents/" + slug),
		Pattern:     link("/agents/" + slug),
		MatchPrefix: true,
		Capability:  rbac.CapAgentsDemo,
	}
}

// AgentSlugs lists the agent demo pages linked from the sidebar.
func AgentSlugs() []string {
	return []string{"claim-assessor", "policy-checker", "risk-analyst", "communication-agent"}
}

func joinBasePath(basePath, suffix string) string {
	base := strings.TrimSpace(basePath)
	if base == "" {
		base = "/"
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	base = strings.TrimRight(base, "/")
	if suffix == "/" {
		if base == "" {
			return "/"
		}
		return base
	}
	return base + suffix
}
