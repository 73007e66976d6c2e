package partials

import (
	"context"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/templates/helpers"
)

// SiteHeader renders the top bar: sidebar toggle, breadcrumb trail for the
// current request and the environment badge.
func SiteHeader(ctx context.Context) g.Node {
	environment := middleware.EnvironmentFromContext(ctx)

	return html.Header(
		html.Class("site-header"),
		g.Attr("data-site-header"),
		html.Div(
			html.Class("site-header__inner"),
			html.Button(
				html.Type("button"),
				html.Class("sidebar-trigger"),
				g.Attr("data-sidebar-trigger"),
				html.Aria("controls", "app-sidebar"),
				html.Aria("label", "Toggle sidebar"),
				html.Span(html.Aria("hidden", "true"), g.Raw("&#9776;")),
			),
			html.Span(html.Class("site-header__divider"), html.Aria("hidden", "true")),
			Breadcrumbs(helpers.Breadcrumbs(ctx)),
			html.Span(
				html.Class("environment-badge"),
				g.Attr("data-environment-badge"),
				html.Title(environment),
				html.Span(html.Aria("hidden", "true"), g.Text(middleware.EnvironmentBadge(environment))),
				html.Span(html.Class("sr-only"), g.Text(environment)),
			),
		),
	)
}
