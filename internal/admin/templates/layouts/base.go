package layouts

import (
	"context"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/navigation"
	"contoso.dev/claims-admin/internal/admin/templates/helpers"
	"contoso.dev/claims-admin/internal/admin/templates/partials"
)

// AppName is appended to every document title.
const AppName = "Contoso AI Claims"

// Document renders a bare HTML document without the dashboard chrome.
func Document(title string, body ...g.Node) g.Node {
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(DocumentTitle(title))),
				html.Link(html.Rel("stylesheet"), html.Href("/public/static/admin.css")),
				html.Script(html.Src("https://unpkg.com/htmx.org@1.9.12"), html.Defer()),
				html.Script(html.Src("/public/static/admin.js"), html.Defer()),
			),
			html.Body(body...),
		),
	)
}

// Base wraps page content with the sidebar and the breadcrumb header. The
// document title comes from the current breadcrumb entry.
func Base(ctx context.Context, content ...g.Node) g.Node {
	basePath := helpers.BasePath(ctx)
	menu := navigation.BuildMenu(basePath, middleware.BreadcrumbBuilderFromContext(ctx))

	return Document(helpers.PageTitle(ctx),
		html.Div(
			html.Class("app-shell"),
			g.Attr("data-app-shell"),
			html.Data("base-path", basePath),
			partials.Sidebar(ctx, menu),
			html.Div(
				html.Class("app-inset"),
				partials.SiteHeader(ctx),
				html.Main(html.Class("app-main"), html.ID("main-content"), g.Group(content)),
			),
		),
	)
}

// DocumentTitle formats the <title> text for a page.
func DocumentTitle(page string) string {
	if page == "" {
		return AppName
	}
	return page + " | " + AppName
}
