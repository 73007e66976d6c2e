package sections

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/templates/helpers"
	"contoso.dev/claims-admin/internal/admin/templates/layouts"
)

// Index renders a section page inside the base layout.
func Index(data PageData) templ.Component {
	return helpers.Component(func(ctx context.Context) g.Node {
		return layouts.Base(ctx, Content(ctx, data))
	})
}

// Content renders the section body.
func Content(ctx context.Context, data PageData) g.Node {
	heading := data.Heading
	if heading == "" {
		heading = helpers.PageTitle(ctx)
	}

	cards := make([]g.Node, 0, len(data.Cards))
	for _, card := range data.Cards {
		if !helpers.HasCapability(ctx, card.Capability) {
			continue
		}
		cards = append(cards, html.A(
			html.Class("card card--link"),
			helpers.Href(card.Href),
			html.P(html.Class("card__value"), g.Text(card.Title)),
			html.P(html.Class("card__footnote"), g.Text(card.Description)),
		))
	}

	nodes := []g.Node{html.H1(html.Class("page-title"), g.Text(heading))}
	if data.Description != "" {
		nodes = append(nodes, html.P(html.Class("page-description"), g.Text(data.Description)))
	}
	if len(cards) > 0 {
		nodes = append(nodes, html.Div(html.Class("section-cards"), g.Attr("data-section-cards"), g.Group(cards)))
	}
	return g.Group(nodes)
}
