package httpserver

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"

	custommw "contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/templates/auth"
)

const tokenCookieName = "Authorization"

type authHandlers struct {
	authenticator   custommw.Authenticator
	basePath        string
	loginPath       string
	firebaseProject string
}

func newAuthHandlers(authenticator custommw.Authenticator, basePath, loginPath, firebaseProject string) *authHandlers {
	if authenticator == nil {
		panic("auth: authenticator is required")
	}
	if strings.TrimSpace(basePath) == "" {
		basePath = "/"
	}
	if strings.TrimSpace(loginPath) == "" {
		loginPath = resolveLoginPath(basePath, "")
	}
	return &authHandlers{
		authenticator:   authenticator,
		basePath:        basePath,
		loginPath:       loginPath,
		firebaseProject: firebaseProject,
	}
}

// LoginPage renders the sign-in screen, or sends already signed-in users to
// the dashboard.
func (h *authHandlers) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.isAuthenticated(r) {
		http.Redirect(w, r, h.basePath, http.StatusFound)
		return
	}

	data := auth.BuildLoginPageData(h.basePath, r.URL.Query().Get("reason"), h.firebaseProject)
	templ.Handler(auth.Login(data)).ServeHTTP(w, r)
}

// Logout clears the token cookie and returns to the sign-in screen.
func (h *authHandlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     h.cookiePath(),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	if custommw.IsHTMXRequest(r.Context()) {
		w.Header().Set("HX-Redirect", h.loginPath)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, h.loginPath, http.StatusSeeOther)
}

func (h *authHandlers) isAuthenticated(r *http.Request) bool {
	c, err := r.Cookie(tokenCookieName)
	if err != nil || strings.TrimSpace(c.Value) == "" {
		return false
	}
	token := strings.TrimSpace(c.Value)
	if len(token) > 7 && strings.EqualFold(token[:7], "bearer ") {
		token = strings.TrimSpace(token[7:])
	}
	user, err := h.authenticator.Authenticate(r, token)
	return err == nil && user != nil
}

func (h *authHandlers) cookiePath() string {
	if h.basePath == "" {
		return "/"
	}
	return h.basePath
}
