package dashboard

import (
	"strings"
	"time"

	admindashboard "contoso.dev/claims-admin/internal/admin/dashboard"
	"contoso.dev/claims-admin/internal/admin/rbac"
	"contoso.dev/claims-admin/internal/admin/templates/helpers"
)

// PageData represents the full dashboard SSR payload.
type PageData struct {
	KPIs         []KPIView
	KPIError     string
	Agents       []AgentView
	AgentsError  string
	Claims       []ClaimView
	ClaimsError  string
	QuickActions []QuickAction
}

// KPIView is the rendered representation of a metric card.
type KPIView struct {
	ID        string
	Label     string
	Value     string
	DeltaText string
	Trend     string
	Footnote  string
}

// AgentView is a row of the agent status panel.
type AgentView struct {
	Name       string
	Href       string
	State      string
	Tone       string
	Handled    int
	AvgTime    string
	LastActive string
}

// ClaimView is a row of the active claims table.
type ClaimView struct {
	ID         string
	Claimant   string
	PolicyType string
	Amount     string
	Stage      string
	Priority   string
	Tone       string
	Submitted  string
}

// QuickAction links to one of the demo pages.
type QuickAction struct {
	Title       string
	Description string
	Href        string
	Capability  rbac.Capability
}

// BuildPageData prepares the template payload for SSR rendering.
func BuildPageData(basePath string, kpis []admindashboard.KPI, agents []admindashboard.AgentStatus, claims []admindashboard.Claim) PageData {
	return PageData{
		KPIs:         toKPIViews(kpis),
		Agents:       toAgentViews(basePath, agents),
		Claims:       toClaimViews(claims),
		QuickActions: quickActions(basePath),
	}
}

func toKPIViews(list []admindashboard.KPI) []KPIView {
	result := make([]KPIView, 0, len(list))
	for _, item := range list {
		result = append(result, KPIView{
			ID:        item.ID,
			Label:     item.Label,
			Value:     item.Value,
			DeltaText: item.DeltaText,
			Trend:     string(item.Trend),
			Footnote:  item.Footnote,
		})
	}
	return result
}

func toAgentViews(basePath string, list []admindashboard.AgentStatus) []AgentView {
	result := make([]AgentView, 0, len(list))
	for _, item := range list {
		result = append(result, AgentView{
			Name:       item.Name,
			Href:       joinBase(basePath, "/agents/"+item.Slug),
			State:      string(item.State),
			Tone:       agentTone(item.State),
			Handled:    item.ClaimsHandled,
			AvgTime:    helpers.Seconds(item.AverageSeconds),
			LastActive: helpers.Relative(item.LastActive),
		})
	}
	return result
}

func toClaimViews(list []admindashboard.Claim) []ClaimView {
	result := make([]ClaimView, 0, len(list))
	for _, item := range list {
		result = append(result, ClaimView{
			ID:         item.ID,
			Claimant:   item.Claimant,
			PolicyType: item.PolicyType,
			Amount:     helpers.Money(item.Amount),
			Stage:      item.Stage,
			Priority:   item.Priority,
			Tone:       helpers.PriorityTone(item.Priority),
			Submitted:  item.Submitted.Format(time.DateOnly),
		})
	}
	return result
}

func agentTone(state admindashboard.AgentState) string {
	switch state {
	case admindashboard.AgentBusy:
		return "success"
	case admindashboard.AgentOffline:
		return "danger"
	default:
		return ""
	}
}

func quickActions(basePath string) []QuickAction {
	return []QuickAction{
		{
			Title:       "Multi-Agent Workflow",
			Description: "Run a claim through every agent and watch the hand-offs.",
			Href:        joinBase(basePath, "/demo"),
			Capability:  rbac.CapWorkflowDemo,
		},
		{
			Title:       "Claim Assessor",
			Description: "Evaluate damage reports and estimate claim validity.",
			Href:        joinBase(basePath, "/agents/claim-assessor"),
			Capability:  rbac.CapAgentsDemo,
		},
		{
			Title:       "Policy Checker",
			Description: "Verify coverage against the indexed policy documents.",
			Href:        joinBase(basePath, "/agents/policy-checker"),
			Capability:  rbac.CapAgentsDemo,
		},
		{
			Title:       "Risk Analyst",
			Description: "Score fraud indicators and claimant history.",
			Href:        joinBase(basePath, "/agents/risk-analyst"),
			Capability:  rbac.CapAgentsDemo,
		},
		{
			Title:       "Communication Agent",
			Description: "Draft customer updates for the claim decision.",
			Href:        joinBase(basePath, "/agents/communication-agent"),
			Capability:  rbac.CapAgentsDemo,
		},
	}
}

func joinBase(base, suffix string) string {
	base = strings.TrimSpace(base)
	if base == "" || base == "/" {
		base = ""
	}
	if !strings.HasPrefix(suffix, "/") {
		suffix = "/" + suffix
	}
	path := base + suffix
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}
