package sections

import (
	"strings"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/navigation"
	"contoso.dev/claims-admin/internal/admin/rbac"
)

// PageData describes a simple section page. An empty Heading falls back to
// the current breadcrumb label.
type PageData struct {
	Heading     string
	Description string
	Cards       []Card
}

// Card links to a page below the section. Cards with a Capability are only
// shown to users holding it.
type Card struct {
	Title       string
	Description string
	Href        string
	Capability  rbac.Capability
}

var agentDescriptions = map[string]string{
	"claim-assessor":      "Evaluates damage photos, repair estimates and incident reports to judge claim validity.",
	"policy-checker":      "Searches the indexed policy documents to confirm coverage, limits and exclusions.",
	"risk-analyst":        "Scores fraud indicators using claimant history and claim patterns.",
	"communication-agent": "Drafts clear customer communication once a decision is reached.",
	"assessment":          "Runs the assessment step of the claims workflow on its own.",
	"communication":       "Runs the communication step of the claims workflow on its own.",
	"orchestrator":        "Routes a claim between the specialist agents and collects their findings.",
}

// AgentsIndex lists the agent demos.
func AgentsIndex(basePath string, labels *breadcrumbs.Builder) PageData {
	cards := make([]Card, 0, len(navigation.AgentSlugs()))
	for _, slug := range navigation.AgentSlugs() {
		cards = append(cards, Card{
			Title:       labels.Label(slug),
			Description: agentDescriptions[slug],
			Href:        join(basePath, "/agents/"+slug),
			Capability:  rbac.CapAgentsDemo,
		})
	}
	return PageData{
		Description: "Try each claims agent on its own before running the full workflow.",
		Cards:       cards,
	}
}

// HasAgent reports whether slug names an agent demo page.
func HasAgent(slug string) bool {
	_, ok := agentDescriptions[slug]
	return ok
}

// HasDocumentView reports whether view names a page below the documents section.
func HasDocumentView(view string) bool {
	return view == "manage" || view == "index-management"
}

// Agent describes a single agent demo page.
func Agent(slug string) PageData {
	description, ok := agentDescriptions[slug]
	if !ok {
		description = "This agent has no demo description yet."
	}
	return PageData{Description: description}
}

// Demo describes the multi-agent workflow demo.
func Demo() PageData {
	return PageData{
		Description: "Submit a sample claim and follow it through assessment, policy check, risk analysis and communication.",
	}
}

// Documents lists the policy document tools.
func Documents(basePath string) PageData {
	return PageData{
		Description: "Policy documents used by the agents for coverage checks.",
		Cards: []Card{
			{
				Title:       "Document Management",
				Description: "Upload, replace and remove policy PDFs.",
				Href:        join(basePath, "/documents/manage"),
				Capability:  rbac.CapDocumentsAdmin,
			},
			{
				Title:       "Index Management",
				Description: "Rebuild and inspect the policy search index.",
				Href:        join(basePath, "/documents/index-management"),
				Capability:  rbac.CapDocumentsAdmin,
			},
		},
	}
}

// DocumentView describes a page below the documents section.
func DocumentView(view string) PageData {
	switch view {
	case "manage":
		return PageData{Description: "Upload, replace and remove policy PDFs."}
	case "index-management":
		return PageData{Description: "Rebuild and inspect the policy search index."}
	default:
		return PageData{}
	}
}

// Tasks describes the task queue page.
func Tasks() PageData {
	return PageData{Description: "Claims waiting for a human decision."}
}

// Feedback describes the feedback system page.
func Feedback() PageData {
	return PageData{Description: "Ratings and comments collected after each agent run."}
}

func join(base, suffix string) string {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	return base + suffix
}
