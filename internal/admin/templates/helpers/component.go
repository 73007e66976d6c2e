package helpers

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// Component adapts a node tree built from the request context into a templ
// component, so handlers can serve it with templ.Handler.
func Component(build func(ctx context.Context) g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return build(ctx).Render(w)
	})
}

// Node wraps a context-free node tree as a templ component.
func Node(node g.Node) templ.Component {
	return Component(func(context.Context) g.Node { return node })
}

// Href sanitises url and returns it as an href attribute.
func Href(url string) g.Node {
	return html.Href(string(templ.URL(url)))
}
