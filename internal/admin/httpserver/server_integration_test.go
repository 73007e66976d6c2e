package httpserver_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/testutil"
)

func TestDashboardRedirectsWithoutAuth(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := noRedirectClient().Get(ts.URL + "/admin")
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/login", resp.Header.Get("Location"))
}

func TestExpiredTokenRedirectsWithReason(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token", Expired: "old-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/admin/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer old-token")

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin/login?reason=expired", resp.Header.Get("Location"))
}

func TestLoginPageRendersWithoutAuth(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := http.Get(ts.URL + "/admin/login?reason=expired")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseResponse(t, resp)
	require.Equal(t, "Sign in | Contoso AI Claims", doc.Find("title").Text())
	require.Equal(t, 1, doc.Find("main[data-login]").Length())
	require.Contains(t, doc.Find("[data-login-error]").Text(), "expired")
}

func TestLoginPageRedirectsSignedInUsers(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/admin/login", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: "Authorization", Value: "test-token"})

	resp, err := noRedirectClient().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/admin", resp.Header.Get("Location"))
}

func TestDashboardRendersForAuthenticatedUser(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth), testutil.WithEnvironment("staging"))

	resp := authedGet(t, ts.URL+"/admin", auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "no-store, max-age=0", resp.Header.Get("Cache-Control"))

	doc := testutil.ParseResponse(t, resp)

	require.Equal(t, "Dashboard | Contoso AI Claims", doc.Find("title").First().Text())
	require.Equal(t, "Live Dashboard", doc.Find("h1").First().Text())
	require.Greater(t, doc.Find("table").Length(), 0, "dashboard should render the active claims table")
	require.Equal(t, []string{"Dashboard"}, testutil.TrailLabels(doc))
	require.Equal(t, "STG", doc.Find("[data-environment-badge] [aria-hidden]").Text())
	require.Contains(t, doc.Find("[data-user-menu]").Text(), "Tester")
}

func TestAgentPagesOmitDashboardCrumb(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	resp := authedGet(t, ts.URL+"/admin/agents/assessment", auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseResponse(t, resp)
	require.Equal(t, []string{"Agent Demos", "Assessment Agent"}, testutil.TrailLabels(doc))
	require.Equal(t, "/admin/agents", doc.Find("[data-breadcrumbs] a").First().AttrOr("href", ""))
}

func TestDocumentPagesIncludeDashboardCrumb(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	resp := authedGet(t, ts.URL+"/admin/documents/index-management", auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseResponse(t, resp)
	require.Equal(t, []string{"Dashboard", "Policy Documents", "Index Management"}, testutil.TrailLabels(doc))
	require.Equal(t, "Index Management | Contoso AI Claims", doc.Find("title").Text())
}

func TestDocumentManagementRequiresSupervisor(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token", Roles: []string{"adjuster"}}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	resp := authedGet(t, ts.URL+"/admin/documents/manage", auth.Token)
	resp.Body.Close()
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = authedGet(t, ts.URL+"/admin/documents", auth.Token)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestViewerAccess(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token", Roles: []string{"viewer"}}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	cases := []struct {
		path   string
		status int
	}{
		{path: "/admin", status: http.StatusOK},
		{path: "/admin/agents", status: http.StatusOK},
		{path: "/admin/agents/risk-analyst", status: http.StatusOK},
		{path: "/admin/documents", status: http.StatusOK},
		{path: "/admin/demo", status: http.StatusForbidden},
		{path: "/admin/documents/manage", status: http.StatusForbidden},
		{path: "/admin/tasks", status: http.StatusForbidden},
		{path: "/admin/feedback", status: http.StatusForbidden},
	}
	for _, tc := range cases {
		resp := authedGet(t, ts.URL+tc.path, auth.Token)
		resp.Body.Close()
		require.Equal(t, tc.status, resp.StatusCode, tc.path)
	}

	resp := authedGet(t, ts.URL+"/admin/documents", auth.Token)
	doc := testutil.ParseResponse(t, resp)
	require.Equal(t, 0, doc.Find(`a[href="/admin/documents/manage"]`).Length(), "no links to pages the viewer cannot open")
	require.Equal(t, 0, doc.Find(`a[href="/admin/demo"]`).Length())
	require.Equal(t, 1, doc.Find(`[data-nav-item="policy-documents"] a[aria-current="page"]`).Length())
}

func TestUnknownRoleIsForbiddenEverywhere(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token", Roles: []string{"contractor"}}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth))

	for _, path := range []string{"/admin", "/admin/agents", "/admin/documents"} {
		resp := authedGet(t, ts.URL+path, auth.Token)
		resp.Body.Close()
		require.Equal(t, http.StatusForbidden, resp.StatusCode, path)
	}
}

func TestBreadcrumbAPIUsesConfiguredBuilder(t *testing.T) {
	t.Parallel()

	cfg := breadcrumbs.DefaultConfig()
	cfg.StandaloneSections = append(cfg.StandaloneSections, "documents")
	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t,
		testutil.WithAuthenticator(auth),
		testutil.WithBreadcrumbs(breadcrumbs.NewBuilder(cfg)),
	)

	resp := authedGet(t, ts.URL+"/admin/api/breadcrumbs?path=/admin/documents/manage", auth.Token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Path    string              `json:"path"`
		Entries []breadcrumbs.Entry `json:"entries"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, []breadcrumbs.Entry{
		{Label: "Policy Documents", Href: "/admin/documents"},
		{Label: "Document Management", Current: true},
	}, payload.Entries)
}

func TestCustomBasePath(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth), testutil.WithBasePath("/claims/"))

	resp := authedGet(t, ts.URL+"/claims/tasks", auth.Token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc := testutil.ParseResponse(t, resp)
	require.Equal(t, []string{"Dashboard", "Tasks"}, testutil.TrailLabels(doc))
	require.Equal(t, "/claims", doc.Find("[data-breadcrumbs] a").First().AttrOr("href", ""))
}

func TestHealthzAndMetrics(t *testing.T) {
	t.Parallel()

	auth := &tokenAuthenticator{Token: "test-token"}
	ts := testutil.NewServer(t, testutil.WithAuthenticator(auth), testutil.WithMetrics(prometheus.NewRegistry()))

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = authedGet(t, ts.URL+"/admin/api/breadcrumbs?path=/admin/demo", auth.Token)
	resp.Body.Close()

	resp, err = http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	metrics := string(body)
	require.Contains(t, metrics, "claims_admin_http_requests_total")
	require.Contains(t, metrics, `route="/admin/api/breadcrumbs"`)
	require.Contains(t, metrics, "claims_admin_breadcrumbs_trail_depth_count 1")
}

func TestStaticAssetsAreServed(t *testing.T) {
	t.Parallel()

	ts := testutil.NewServer(t)

	resp, err := http.Get(ts.URL + "/public/static/admin.css")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func authedGet(t *testing.T, url, token string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

type tokenAuthenticator struct {
	Token   string
	Expired string
	Roles   []string
}

func (t *tokenAuthenticator) Authenticate(_ *http.Request, token string) (*middleware.User, error) {
	if t.Expired != "" && token == t.Expired {
		return nil, middleware.NewAuthError(middleware.ReasonTokenExpired, middleware.ErrUnauthorized)
	}
	if token != t.Token {
		return nil, middleware.ErrUnauthorized
	}
	roles := t.Roles
	if roles == nil {
		roles = []string{"admin"}
	}
	return &middleware.User{
		UID:   "tester",
		Email: "tester@example.com",
		Name:  "Tester",
		Token: token,
		Roles: roles,
	}, nil
}
