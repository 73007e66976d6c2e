// Package rbac maps staff roles onto the dashboard areas they may open.
package rbac

import (
	"slices"
	"strings"
)

// Role represents a staff access tier.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleAdjuster   Role = "adjuster"
	RoleViewer     Role = "viewer"
)

// Capability represents a discrete feature toggle which can be checked in handlers and templates.
type Capability string

const (
	CapDashboardView  Capability = "dashboard.view"
	CapAgentsDemo     Capability = "agents.demo"
	CapWorkflowDemo   Capability = "workflow.demo"
	CapDocumentsView  Capability = "documents.view"
	CapDocumentsAdmin Capability = "documents.manage"
	CapTasksReview    Capability = "tasks.review"
	CapFeedbackView   Capability = "feedback.view"
)

var capabilityRoles = map[Capability]Roles{
	CapDashboardView:  {RoleSupervisor, RoleAdjuster, RoleViewer},
	CapAgentsDemo:     {RoleSupervisor, RoleAdjuster, RoleViewer},
	CapWorkflowDemo:   {RoleSupervisor, RoleAdjuster},
	CapDocumentsView:  {RoleSupervisor, RoleAdjuster, RoleViewer},
	CapDocumentsAdmin: {RoleSupervisor},
	CapTasksReview:    {RoleSupervisor, RoleAdjuster},
	CapFeedbackView:   {RoleSupervisor},
}

// Roles is a set of roles held by a user.
type Roles []Role

// Has returns true if the provided role exists in the set.
func (rs Roles) Has(role Role) bool {
	return slices.Contains(rs, role)
}

// Intersects returns true if any role in the candidate slice is also present in the set.
func (rs Roles) Intersects(candidate Roles) bool {
	for _, role := range candidate {
		if rs.Has(role) {
			return true
		}
	}
	return false
}

// NormaliseRoles converts raw role strings into canonical Role values.
func NormaliseRoles(raw []string) Roles {
	if len(raw) == 0 {
		return nil
	}
	seen := make(map[Role]struct{}, len(raw))
	roles := make(Roles, 0, len(raw))
	for _, val := range raw {
		role := Role(strings.ToLower(strings.TrimSpace(val)))
		if role == "" {
			continue
		}
		if _, ok := seen[role]; ok {
			continue
		}
		seen[role] = struct{}{}
		roles = append(roles, role)
	}
	return roles
}

// HasCapability reports whether the provided roles grant access to the capability.
// Admin users hold every defined capability; undefined capabilities are denied.
func HasCapability(userRoles []string, capability Capability) bool {
	if capability == "" {
		return true
	}
	allowed, ok := capabilityRoles[capability]
	if !ok {
		return false
	}
	roles := NormaliseRoles(userRoles)
	if roles.Has(RoleAdmin) {
		return true
	}
	return allowed.Intersects(roles)
}
