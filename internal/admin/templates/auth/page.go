package auth

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"contoso.dev/claims-admin/internal/admin/templates/helpers"
	"contoso.dev/claims-admin/internal/admin/templates/layouts"
)

// Login renders the standalone sign-in page.
func Login(data LoginPageData) templ.Component {
	return helpers.Node(layouts.Document("Sign in", LoginForm(data)))
}

// LoginForm renders the sign-in panel that hosts the Firebase widget.
func LoginForm(data LoginPageData) g.Node {
	var loginError g.Node
	if data.Error != "" {
		loginError = html.P(
			html.Class("alert alert--danger"),
			html.Role("alert"),
			g.Attr("data-login-error"),
			g.Text(data.Error),
		)
	}

	return html.Main(
		html.Class("login"),
		g.Attr("data-login"),
		html.Data("firebase-project", data.FirebaseProject),
		html.Data("redirect", string(templ.URL(data.BasePath))),
		html.H1(html.Class("page-title"), g.Text("Sign in")),
		html.P(html.Class("page-description"), g.Text(data.Message)),
		loginError,
		html.Div(html.ID("firebase-auth-container")),
	)
}
