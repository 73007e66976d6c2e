package helpers

import (
	"context"
	"strings"

	"contoso.dev/claims-admin/internal/admin/breadcrumbs"
	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
)

// RequestPath returns the current request URL path for template helpers.
func RequestPath(ctx context.Context) string {
	return normalizeRoute(middleware.RequestPathFromContext(ctx))
}

// BasePath returns the configured admin base path.
func BasePath(ctx context.Context) string {
	return normalizeRoute(middleware.BasePathFromContext(ctx))
}

// Breadcrumbs returns the trail for the current request, relative to the
// admin base path.
func Breadcrumbs(ctx context.Context) []breadcrumbs.Entry {
	return BreadcrumbsFor(ctx, RequestPath(ctx))
}

// BreadcrumbsFor returns the trail for path using the builder configured on
// the request. Path is interpreted below the base path.
func BreadcrumbsFor(ctx context.Context, path string) []breadcrumbs.Entry {
	builder := middleware.BreadcrumbBuilderFromContext(ctx)
	if builder == nil {
		builder = breadcrumbs.NewBuilder(breadcrumbs.DefaultConfig())
	}
	return builder.BuildUnder(BasePath(ctx), path)
}

// PageTitle returns the label of the current breadcrumb entry.
func PageTitle(ctx context.Context) string {
	trail := Breadcrumbs(ctx)
	return trail[len(trail)-1].Label
}

// NavActive reports whether the current request should highlight the menu item.
func NavActive(ctx context.Context, pattern string, prefix bool) bool {
	current := RequestPath(ctx)
	target := normalizeRoute(pattern)

	if target == "" {
		return false
	}

	if prefix {
		if target == "/" {
			return current == "/"
		}
		if current == target {
			return true
		}
		return strings.HasPrefix(current, target+"/")
	}

	return current == target
}

func normalizeRoute(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
		if path == "" {
			return "/"
		}
	}
	return path
}
