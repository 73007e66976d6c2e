package middleware

import (
	"context"
	"net/http"
	"strings"
)

type environmentContextKey struct{}

const defaultEnvironment = "Development"

// Environment attaches the deployment environment label to the request context.
// Empty values default to "Development".
func Environment(value string) func(http.Handler) http.Handler {
	label := strings.TrimSpace(value)
	if label == "" {
		label = defaultEnvironment
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), environmentContextKey{}, label)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// EnvironmentFromContext returns the environment label for the request.
func EnvironmentFromContext(ctx context.Context) string {
	if ctx == nil {
		return defaultEnvironment
	}
	if value, ok := ctx.Value(environmentContextKey{}).(string); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return defaultEnvironment
}

// EnvironmentBadge returns the short label shown in the header badge.
func EnvironmentBadge(environment string) string {
	switch strings.ToLower(strings.TrimSpace(environment)) {
	case "production", "prod", "prd":
		return "PRD"
	case "staging", "stage", "stg":
		return "STG"
	case "", "development", "dev", "local":
		return "DEV"
	default:
		label := strings.ToUpper(strings.TrimSpace(environment))
		if len(label) > 3 {
			label = label[:3]
		}
		return label
	}
}
