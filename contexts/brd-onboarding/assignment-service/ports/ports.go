// Package ports defines the boundary interfaces of assignment-service.
package ports

import (
	"context"
	"time"

	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// BRDView is the minimal BRD projection the assignment engine needs.
type BRDView struct {
	BRDID  string
	Title  string
	Status string
}

// BRDReader resolves BRD existence before any assignment is touched.
type BRDReader interface {
	GetBRD(ctx context.Context, brdID string) (BRDView, error)
}

// UserDirectory resolves the platform role a user identity holds.
// Unknown identities surface domain errors.ErrUserNotFound.
type UserDirectory interface {
	GetUserRole(ctx context.Context, email string) (entities.Role, error)
}

// ReplaceInput carries one replacement of the active assignee for a
// (BRD, role type) pair. AssignedAt is preserved from the prior active
// assignment when one exists.
type ReplaceInput struct {
	AssignmentID  string
	BRDID         string
	AssigneeEmail string
	AssigneeRole  entities.AssigneeRole
	AssignedAt    time.Time
	UpdatedAt     time.Time
}

// AssignmentRepository stores assignment rows. Replacement deactivates the
// prior active row for the (BRD, role type) pair and inserts the new one;
// deactivated rows are retained for audit.
type AssignmentRepository interface {
	GetActive(ctx context.Context, brdID string, roleType entities.AssigneeRole) (entities.Assignment, bool, error)
	Replace(ctx context.Context, input ReplaceInput) (entities.Assignment, error)
	IsAssigned(ctx context.Context, brdID string, email string, roleType entities.AssigneeRole) (bool, error)
	ListByAssignee(ctx context.Context, email string, roleType entities.AssigneeRole) ([]entities.Assignment, error)
	ListAssigneeEmails(ctx context.Context, roleType entities.AssigneeRole) ([]string, error)
}
