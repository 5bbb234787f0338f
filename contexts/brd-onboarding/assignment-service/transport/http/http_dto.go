package httptransport

import "time"

// ReassignRequest replaces the active assignee for one (BRD, role type) pair.
type ReassignRequest struct {
	BRDID         string `json:"brd_id"`
	AssigneeEmail string `json:"assignee_email"`
	AssigneeRole  string `json:"assignee_role"`
}

// ReassignManyRequest reassigns a list of BRDs in one call.
type ReassignManyRequest struct {
	Items []ReassignRequest `json:"items"`
}

type AssignmentDTO struct {
	AssignmentID  string    `json:"assignment_id"`
	BRDID         string    `json:"brd_id"`
	AssigneeEmail string    `json:"assignee_email"`
	AssigneeRole  string    `json:"assignee_role"`
	Active        bool      `json:"active"`
	AssignedAt    time.Time `json:"assigned_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ReassignResponse struct {
	Assignment AssignmentDTO `json:"assignment"`
}

type ReassignItemResultDTO struct {
	BRDID         string         `json:"brd_id"`
	AssigneeEmail string         `json:"assignee_email"`
	Success       bool           `json:"success"`
	Error         string         `json:"error,omitempty"`
	Assignment    *AssignmentDTO `json:"assignment,omitempty"`
}

// ReassignManyResponse reports the batch outcome. Errors carries failure
// messages keyed "error1".."errorN" in failure order.
type ReassignManyResponse struct {
	Status string                  `json:"status"`
	Items  []ReassignItemResultDTO `json:"items"`
	Errors map[string]string       `json:"errors,omitempty"`
}

type AssignmentStatusResponse struct {
	BRDID    string `json:"brd_id"`
	Assigned bool   `json:"assigned"`
}

type ListAssignmentsResponse struct {
	AssigneeEmail string          `json:"assignee_email"`
	AssigneeRole  string          `json:"assignee_role"`
	Assignments   []AssignmentDTO `json:"assignments"`
}

type ListAssigneeEmailsResponse struct {
	AssigneeRole string   `json:"assignee_role"`
	Emails       []string `json:"emails"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
