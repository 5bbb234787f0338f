package entities

import "time"

// AssigneeRole distinguishes the two assignment relations a BRD carries.
type AssigneeRole string

const (
	AssigneeBA     AssigneeRole = "ba"
	AssigneeBiller AssigneeRole = "biller"
)

// DisplayName is the user-facing role name used in error messages.
func (r AssigneeRole) DisplayName() string {
	switch r {
	case AssigneeBA:
		return "BA"
	case AssigneeBiller:
		return "Biller"
	default:
		return string(r)
	}
}

func IsSupportedAssigneeRole(value AssigneeRole) bool {
	switch value {
	case AssigneeBA, AssigneeBiller:
		return true
	default:
		return false
	}
}

// Assignment links one BRD to one assignee identity. At most one assignment
// per (BRD, role type) is active at a time; replacement deactivates the prior
// row and keeps it for audit.
type Assignment struct {
	AssignmentID  string
	BRDID         string
	AssigneeEmail string
	AssigneeRole  AssigneeRole
	Active        bool
	AssignedAt    time.Time
	UpdatedAt     time.Time
}
