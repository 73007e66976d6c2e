package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"contoso.dev/claims-admin/internal/admin/rbac"
)

func TestRequireCapability(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := HTMX()(RequireCapability(rbac.CapDocumentsAdmin)(ok))

	tests := []struct {
		name    string
		user    *User
		htmx    bool
		want    int
		refresh string
	}{
		{name: "no user", want: http.StatusForbidden},
		{name: "supervisor", user: &User{Roles: []string{"supervisor"}}, want: http.StatusNoContent},
		{name: "adjuster", user: &User{Roles: []string{"adjuster"}}, want: http.StatusForbidden},
		{name: "adjuster via htmx", user: &User{Roles: []string{"adjuster"}}, htmx: true, want: http.StatusForbidden, refresh: "true"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/admin/documents/manage", nil)
			if tc.user != nil {
				req = req.WithContext(ContextWithUser(req.Context(), tc.user))
			}
			if tc.htmx {
				req.Header.Set("HX-Request", "true")
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tc.want, rec.Code)
			require.Equal(t, tc.refresh, rec.Header().Get("HX-Refresh"))
		})
	}
}
