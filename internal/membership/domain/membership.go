package domain

import (
	"time"
)

// Membership links a user to a unit with a role. At most one membership
// exists per (unit, user) pair; the repositories enforce this on insert.
type Membership struct {
	ID        string
	UnitID    string
	UserID    string
	Role      Role
	CreatedAt time.Time
}

type Role string

const (
	RoleOwner  Role = "owner"
	RoleEditor Role = "editor"
	RoleReader Role = "reader"
)

// Valid reports whether r is one of the known roles. Roles are compared
// only for equality; no ordering between them is defined.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleEditor, RoleReader:
		return true
	}
	return false
}
