package partials

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/templates/helpers"
)

// BreadcrumbsID is the element id targeted by htmx when the trail is swapped.
const BreadcrumbsID = "header-breadcrumbs"

// Breadcrumbs renders a trail as an ordered list. Entries with an href become
// links, the current entry is plain text marked aria-current, and a separator
// item sits between consecutive entries.
func Breadcrumbs(trail []breadcrumbs.Entry) g.Node {
	items := make([]g.Node, 0, len(trail)*2)
	for i, entry := range trail {
		if i > 0 {
			items = append(items, html.Li(
				html.Class("breadcrumb__separator"),
				html.Role("presentation"),
				html.Aria("hidden", "true"),
				g.Attr("data-breadcrumb-separator"),
				g.Text("/"),
			))
		}
		items = append(items, html.Li(
			html.Class("breadcrumb__item"),
			g.Attr("data-breadcrumb-item"),
			breadcrumbEntry(entry),
		))
	}

	return html.Nav(
		html.ID(BreadcrumbsID),
		html.Class("breadcrumb"),
		html.Aria("label", "breadcrumb"),
		g.Attr("data-breadcrumbs"),
		html.Ol(html.Class("breadcrumb__list"), g.Group(items)),
	)
}

func breadcrumbEntry(entry breadcrumbs.Entry) g.Node {
	if entry.Current || entry.Href == "" {
		return html.Span(
			html.Class("breadcrumb__page"),
			html.Aria("current", "page"),
			html.Aria("disabled", "true"),
			html.Role("link"),
			g.Text(entry.Label),
		)
	}
	return html.A(
		html.Class("breadcrumb__link"),
		helpers.Href(entry.Href),
		g.Attr("hx-boost", "true"),
		g.Text(entry.Label),
	)
}
