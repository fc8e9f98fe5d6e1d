package auth

import "github.com/jtan/courtcast/go/internal/models"

// Permission names an action a write path can require.
type Permission string

const (
	PermissionManageMatches     Permission = "matches:manage"
	PermissionManageTournaments Permission = "tournaments:manage"
	PermissionManageSponsors    Permission = "sponsors:manage"
	PermissionManageUsers       Permission = "users:manage"
)

// Policy decides whether a role may exercise a permission.
type Policy func(role models.UserRole, perm Permission) bool

// AllowAuthenticated is the current production policy: every authenticated
// user is treated as an admin. The boundary stays in place so tightening it
// later is a one-line change.
func AllowAuthenticated(models.UserRole, Permission) bool {
	return true
}

// RoleBased grants admins everything and organizers everything except user
// management. Kept for tests and for the day AllowAuthenticated retires.
func RoleBased(role models.UserRole, perm Permission) bool {
	switch role {
	case models.UserRoleAdmin:
		return true
	case models.UserRoleOrganizer:
		return perm != PermissionManageUsers
	default:
		return false
	}
}
