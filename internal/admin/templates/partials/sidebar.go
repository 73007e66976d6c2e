package partials

import (
	"context"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/navigation"
	"contoso.dev/claims-admin/internal/admin/templates/helpers"
)

// Sidebar renders the navigation menu and highlights the active entry. Items
// guarded by a capability the user lacks are left out, and groups left empty
// are dropped.
func Sidebar(ctx context.Context, menu []navigation.MenuGroup) g.Node {
	groups := make([]g.Node, 0, len(menu))
	for _, group := range menu {
		items := renderItems(ctx, group.Items)
		if len(items) == 0 {
			continue
		}
		groups = append(groups, html.Section(
			html.Class("sidebar__group"),
			html.Data("nav-group", group.Key),
			html.H2(html.Class("sidebar__group-label"), g.Text(group.Label)),
			html.Ul(g.Group(items)),
		))
	}

	return html.Aside(
		html.ID("app-sidebar"),
		html.Class("sidebar"),
		g.Attr("data-sidebar"),
		html.A(
			html.Class("sidebar__brand"),
			helpers.Href(helpers.BasePath(ctx)),
			html.Span(html.Class("sidebar__logo"), html.Aria("hidden", "true")),
			html.Span(g.Text("Contoso AI Claims")),
		),
		html.Nav(html.Class("sidebar__nav"), html.Aria("label", "Main"), g.Group(groups)),
		renderUser(ctx),
	)
}

func renderItems(ctx context.Context, items []navigation.MenuItem) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for _, item := range items {
		if !helpers.HasCapability(ctx, item.Capability) {
			continue
		}
		nodes = append(nodes, renderItem(ctx, item))
	}
	return nodes
}

func renderItem(ctx context.Context, item navigation.MenuItem) g.Node {
	active := helpers.NavActive(ctx, item.Pattern, item.MatchPrefix)

	var link g.Node
	if item.Href == "" {
		link = html.Span(html.Class(helpers.NavClass(active)), renderIcon(item.Icon), g.Text(item.Label))
	} else {
		link = html.A(
			html.Class(helpers.NavClass(active)),
			helpers.Href(item.Href),
			g.If(active && !hasActiveChild(ctx, item), html.Aria("current", "page")),
			renderIcon(item.Icon),
			g.Text(item.Label),
		)
	}

	var children g.Node
	if nodes := renderItems(ctx, item.Children); len(nodes) > 0 {
		children = html.Ul(html.Class("sidebar__children"), g.Group(nodes))
	}

	return html.Li(html.Data("nav-item", item.Key), link, children)
}

func hasActiveChild(ctx context.Context, item navigation.MenuItem) bool {
	for _, child := range item.Children {
		if helpers.NavActive(ctx, child.Pattern, child.MatchPrefix) {
			return true
		}
	}
	return false
}

func renderIcon(icon string) g.Node {
	if icon == "" {
		return nil
	}
	return html.Span(html.Class("icon icon--"+icon), html.Aria("hidden", "true"))
}

func renderUser(ctx context.Context) g.Node {
	user, ok := middleware.UserFromContext(ctx)
	if !ok {
		return nil
	}
	return html.Footer(
		html.Class("sidebar__footer"),
		g.Attr("data-user-menu"),
		html.Span(html.Class("sidebar__user"), g.Text(user.DisplayName())),
	)
}
