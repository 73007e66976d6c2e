package dashboard

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/templates/helpers"
	"contoso.dev/claims-admin/internal/admin/templates/layouts"
)

var claimHeadings = []string{"Claim", "Claimant", "Policy", "Amount", "Stage", "Priority", "Submitted"}

// Index renders the live dashboard page inside the base layout.
func Index(data PageData) templ.Component {
	return helpers.Component(func(ctx context.Context) g.Node {
		return layouts.Base(ctx, Content(ctx, data))
	})
}

// Content renders the dashboard body without the layout. Quick actions the
// user cannot open are left out.
func Content(ctx context.Context, data PageData) g.Node {
	return g.Group([]g.Node{
		html.H1(html.Class("page-title"), g.Text("Live Dashboard")),
		kpiCards(data),
		agentStatus(data),
		activeClaims(data),
		quickActionsPanel(ctx, data),
	})
}

func kpiCards(data PageData) g.Node {
	cards := make([]g.Node, 0, len(data.KPIs))
	for _, kpi := range data.KPIs {
		cards = append(cards, html.Article(
			html.Class("card"),
			html.Data("kpi", kpi.ID),
			html.P(html.Class("card__label"), g.Text(kpi.Label)),
			html.P(html.Class("card__value"), g.Text(kpi.Value)),
			html.Span(html.Class("card__delta card__delta--"+kpi.Trend), g.Text(kpi.DeltaText)),
			html.P(html.Class("card__footnote"), g.Text(kpi.Footnote)),
		))
	}

	return html.Section(
		html.Class("section-cards"),
		g.Attr("data-kpi-cards"),
		alert(data.KPIError),
		g.Group(cards),
	)
}

func agentStatus(data PageData) g.Node {
	rows := make([]g.Node, 0, len(data.Agents))
	for _, agent := range data.Agents {
		rows = append(rows, html.Li(
			html.Class("agent-list__item"),
			html.A(helpers.Href(agent.Href), g.Text(agent.Name)),
			html.Span(html.Class(helpers.BadgeClass(agent.Tone)), g.Text(agent.State)),
			html.Span(
				html.Class("agent-list__meta"),
				g.Text(strconv.Itoa(agent.Handled)+" claims · avg "+agent.AvgTime+" · "+agent.LastActive),
			),
		))
	}

	return html.Section(
		html.Class("panel"),
		g.Attr("data-agent-status"),
		html.H2(html.Class("panel__title"), g.Text("Agent Status")),
		alert(data.AgentsError),
		html.Ul(html.Class("agent-list"), g.Group(rows)),
	)
}

func activeClaims(data PageData) g.Node {
	headings := make([]g.Node, 0, len(claimHeadings))
	for _, heading := range claimHeadings {
		headings = append(headings, html.Th(g.Attr("scope", "col"), g.Text(heading)))
	}

	rows := make([]g.Node, 0, len(data.Claims)+1)
	if len(data.Claims) == 0 {
		rows = append(rows, html.Tr(html.Td(
			html.ColSpan(strconv.Itoa(len(claimHeadings))),
			html.Class("data-table__empty"),
			g.Text("No active claims."),
		)))
	}
	for _, claim := range data.Claims {
		rows = append(rows, html.Tr(
			html.Data("claim-id", claim.ID),
			html.Td(g.Text(claim.ID)),
			html.Td(g.Text(claim.Claimant)),
			html.Td(g.Text(claim.PolicyType)),
			html.Td(g.Text(claim.Amount)),
			html.Td(g.Text(claim.Stage)),
			html.Td(html.Span(html.Class(helpers.BadgeClass(claim.Tone)), g.Text(claim.Priority))),
			html.Td(g.Text(claim.Submitted)),
		))
	}

	return html.Section(
		html.Class("panel"),
		g.Attr("data-active-claims"),
		html.H2(html.Class("panel__title"), g.Text("Active Claims")),
		alert(data.ClaimsError),
		html.Table(
			html.Class("data-table"),
			html.THead(html.Tr(g.Group(headings))),
			html.TBody(g.Group(rows)),
		),
	)
}

func quickActionsPanel(ctx context.Context, data PageData) g.Node {
	actions := make([]g.Node, 0, len(data.QuickActions))
	for _, action := range data.QuickActions {
		if !helpers.HasCapability(ctx, action.Capability) {
			continue
		}
		actions = append(actions, html.A(
			html.Class("quick-action"),
			helpers.Href(action.Href),
			html.Strong(g.Text(action.Title)),
			html.Span(g.Text(action.Description)),
		))
	}

	return html.Section(
		html.Class("panel"),
		g.Attr("data-quick-actions"),
		html.H2(html.Class("panel__title"), g.Text("Quick Actions")),
		html.Div(html.Class("quick-actions"), g.Group(actions)),
	)
}

func alert(message string) g.Node {
	if message == "" {
		return nil
	}
	return html.P(html.Class("alert alert--danger"), html.Role("alert"), g.Text(message))
}
