package middleware

import (
	"context"
	"net/http"
	"strings"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
)

type requestInfoKeyType int

const requestInfoKey requestInfoKeyType = iota

// RequestInfo holds lightweight request metadata exposed to templates.
type RequestInfo struct {
	Path        string
	BasePath    string
	Method      string
	Breadcrumbs *breadcrumbs.Builder
}

// RequestInfoMiddleware annotates the context with the current request path,
// the base path and the breadcrumb builder used by the header.
// A nil builder falls back to the default breadcrumb labels.
func RequestInfoMiddleware(basePath string, builder *breadcrumbs.Builder) func(http.Handler) http.Handler {
	base := normaliseBase(basePath)
	if builder == nil {
		builder = breadcrumbs.NewBuilder(breadcrumbs.DefaultConfig())
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info := &RequestInfo{
				Path:        r.URL.Path,
				Method:      r.Method,
				BasePath:    base,
				Breadcrumbs: builder,
			}
			ctx := context.WithValue(r.Context(), requestInfoKey, info)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestInfoFromContext returns the request metadata stored by RequestInfoMiddleware.
func RequestInfoFromContext(ctx context.Context) (*RequestInfo, bool) {
	info, ok := ctx.Value(requestInfoKey).(*RequestInfo)
	return info, ok && info != nil
}

// RequestPathFromContext returns the request path or empty string when unavailable.
func RequestPathFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.Path
	}
	return ""
}

// BasePathFromContext returns the resolved admin base path or "/" when unavailable.
func BasePathFromContext(ctx context.Context) string {
	if info, ok := RequestInfoFromContext(ctx); ok && info.BasePath != "" {
		return info.BasePath
	}
	return "/"
}

// BreadcrumbBuilderFromContext returns the configured builder, or nil.
func BreadcrumbBuilderFromContext(ctx context.Context) *breadcrumbs.Builder {
	if info, ok := RequestInfoFromContext(ctx); ok {
		return info.Breadcrumbs
	}
	return nil
}

func normaliseBase(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return "/"
	}
	if !strings.HasPrefix(base, "/") {
		base = "/" + base
	}
	if base != "/" {
		base = strings.TrimRight(base, "/")
		if base == "" {
			return "/"
		}
	}
	return base
}
