package entities

import "strings"

type Role string

const (
	RolePM      Role = "PM"
	RoleBA      Role = "BA"
	RoleBiller  Role = "BILLER"
	RoleManager Role = "MANAGER"
)

// ParseRole normalizes a transport-level role string into a Role.
func ParseRole(value string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(value)))
}

// MatchesAssigneeRole reports whether a directory role satisfies the
// assignee role a reassignment targets.
func (r Role) MatchesAssigneeRole(target AssigneeRole) bool {
	switch target {
	case AssigneeBA:
		return r == RoleBA
	case AssigneeBiller:
		return r == RoleBiller
	default:
		return false
	}
}
