package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
)

type mockAuthenticator struct {
	token string
	user  *User
	err   error
}

func (m *mockAuthenticator) Authenticate(_ *http.Request, token string) (*User, error) {
	if token != m.token {
		return nil, ErrUnauthorized
	}
	return m.user, m.err
}

func discardLogger() *log.Logger {
	logger := log.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestAuthMiddleware(t *testing.T) {
	auth := &mockAuthenticator{
		token: "valid",
		user:  &User{UID: "user-1"},
	}

	handler := HTMX()(Auth(auth, "/login", discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFromContext(r.Context()); !ok {
			t.Fatalf("expected user in context")
		}
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("missing token redirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusFound, rr.Code)
		require.Equal(t, "/login", rr.Header().Get("Location"))
	})

	t.Run("htmx unauthorized returns 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("HX-Request", "true")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		require.Equal(t, "/login", rr.Header().Get("HX-Redirect"))
	})

	t.Run("valid token passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer valid")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("token from cookie passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: "__session", Value: "valid"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("expired token triggers refresh header", func(t *testing.T) {
		auth.err = NewAuthError(ReasonTokenExpired, errors.New("expired"))
		defer func() { auth.err = nil }()

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer valid")
		req.Header.Set("HX-Request", "true")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusUnauthorized, rr.Code)
		require.Equal(t, "true", rr.Header().Get("HX-Refresh"))
	})

	t.Run("expired token redirects with reason", func(t *testing.T) {
		auth.err = NewAuthError(ReasonTokenExpired, errors.New("expired"))
		defer func() { auth.err = nil }()

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer valid")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusFound, rr.Code)
		require.Equal(t, "/login?reason=expired", rr.Header().Get("Location"))
	})
}

func TestAuthLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)

	handler := Auth(&mockAuthenticator{token: "valid"}, "/login", logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatalf("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/admin/tasks", nil)
	req.Header.Set("Authorization", "Bearer other")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.Contains(t, buf.String(), "reason=token_invalid")
	require.Contains(t, buf.String(), "path=/admin/tasks")
}

func TestUserDisplayName(t *testing.T) {
	t.Parallel()

	var nilUser *User
	require.Equal(t, "", nilUser.DisplayName())
	require.Equal(t, "Ana", (&User{UID: "u", Email: "a@example.com", Name: "Ana"}).DisplayName())
	require.Equal(t, "a@example.com", (&User{UID: "u", Email: "a@example.com"}).DisplayName())
	require.Equal(t, "u", (&User{UID: "u"}).DisplayName())
}

func TestHTMXMiddleware(t *testing.T) {
	base := HTMX()

	t.Run("detects htmx", func(t *testing.T) {
		handler := base(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := HTMXInfoFromContext(r.Context())
			require.True(t, info.IsHTMX)
			require.Equal(t, "header-breadcrumbs", info.Target)
			w.WriteHeader(http.StatusOK)
		}))

		req := httptest.NewRequest(http.MethodGet, "/admin/fragments/breadcrumbs", nil)
		req.Header.Set("HX-Request", "true")
		req.Header.Set("HX-Target", "header-breadcrumbs")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("RequireHTMX blocks non-htmx", func(t *testing.T) {
		handler := base(RequireHTMX()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		})))
		req := httptest.NewRequest(http.MethodGet, "/admin/fragments/breadcrumbs", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestNoStoreMiddleware(t *testing.T) {
	handler := NoStore()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, "no-store, max-age=0", rr.Header().Get("Cache-Control"))
	require.Equal(t, "no-cache", rr.Header().Get("Pragma"))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRequestInfoMiddleware(t *testing.T) {
	t.Parallel()

	builder := breadcrumbs.NewBuilder(breadcrumbs.Config{RootLabel: "Home"})

	var ctx context.Context
	handler := RequestInfoMiddleware("admin/", builder)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		ctx = r.Context()
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/tasks", nil))

	require.Equal(t, "/admin/tasks", RequestPathFromContext(ctx))
	require.Equal(t, "/admin", BasePathFromContext(ctx))
	require.Same(t, builder, BreadcrumbBuilderFromContext(ctx))

	require.Equal(t, "", RequestPathFromContext(context.Background()))
	require.Equal(t, "/", BasePathFromContext(context.Background()))
	require.Nil(t, BreadcrumbBuilderFromContext(context.Background()))
}

func TestRequestInfoMiddlewareDefaultsBuilder(t *testing.T) {
	t.Parallel()

	var builder *breadcrumbs.Builder
	handler := RequestInfoMiddleware("", nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		builder = BreadcrumbBuilderFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, builder)
	require.Equal(t, "Agent Demos", builder.Label("agents"))
}

func TestEnvironment(t *testing.T) {
	t.Parallel()

	var label string
	handler := Environment("  ")(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		label = EnvironmentFromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, "Development", label)

	require.Equal(t, "PRD", EnvironmentBadge("Production"))
	require.Equal(t, "STG", EnvironmentBadge("staging"))
	require.Equal(t, "DEV", EnvironmentBadge(""))
	require.Equal(t, "QA", EnvironmentBadge("qa"))
	require.Equal(t, "SAN", EnvironmentBadge("sandbox"))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	handler := RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/admin/missing", nil))

	out := buf.String()
	require.Contains(t, out, "level=warning")
	require.Contains(t, out, "status=404")
	require.Contains(t, out, "path=/admin/missing")
}

func TestHTTPMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics := NewHTTPMetrics(reg)

	router := chi.NewRouter()
	router.Use(metrics.Middleware)
	router.Get("/agents/{agent}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, path := range []string{"/agents/risk-analyst", "/agents/policy-checker", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Equal(t, float64(2), testutil.ToFloat64(metrics.requests.WithLabelValues("/agents/{agent}", http.MethodGet, "200")))
	require.Equal(t, float64(1), testutil.ToFloat64(metrics.requests.WithLabelValues("unmatched", http.MethodGet, "404")))

	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, family := range families {
		names = append(names, family.GetName())
	}
	require.Contains(t, strings.Join(names, ","), "claims_admin_http_request_duration_seconds")
}
