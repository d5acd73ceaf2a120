// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a staff account can have in the system.
type Role string

const (
	// RoleSuperAdmin indicates a super administrator.
	RoleSuperAdmin Role = "super admin"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
	// RoleHost indicates a staff member who receives visitors and owns an availability schedule.
	RoleHost Role = "host"
	// RoleReceptionist indicates a front-desk receptionist.
	RoleReceptionist Role = "receptionist"
	// RoleSoldier indicates a gate officer who checks visitors in and out.
	RoleSoldier Role = "soldier"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleHost, RoleReceptionist, RoleSoldier:
		return true
	default:
		return false
	}
}

// IsAdministrative reports whether the role carries administrator rights.
func (r Role) IsAdministrative() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
