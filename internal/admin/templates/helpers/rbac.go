package helpers

import (
	"context"

	"contoso.dev/claims-admin/internal/admin/httpserver/middleware"
	"contoso.dev/claims-admin/internal/admin/rbac"
)

// HasCapability reports whether the authenticated user possesses the capability.
// Empty capabilities default to true so unguarded entries always render.
func HasCapability(ctx context.Context, capability rbac.Capability) bool {
	if capability == "" {
		return true
	}
	user, ok := middleware.UserFromContext(ctx)
	if !ok || user == nil {
		return false
	}
	return rbac.HasCapability(user.Roles, capability)
}
