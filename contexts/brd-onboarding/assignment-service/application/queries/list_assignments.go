package queries

import (
	"context"
	"log/slog"
	"strings"

	"brdflow/contexts/brd-onboarding/assignment-service/application"
	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"
)

// ListAssignmentsQuery lists the active assignments held by one assignee.
type ListAssignmentsQuery struct {
	Role          entities.Role
	Identity      string
	AssigneeEmail string
	AssigneeRole  entities.AssigneeRole
}

// ListAssignmentsUseCase serves manager dashboards and assignee self-views.
// A BA or Biller may only list their own assignments; managers may list any.
type ListAssignmentsUseCase struct {
	Assignments ports.AssignmentRepository
	Logger      *slog.Logger
}

func (uc ListAssignmentsUseCase) Execute(ctx context.Context, query ListAssignmentsQuery) ([]entities.Assignment, error) {
	logger := application.ResolveLogger(uc.Logger)

	email := strings.TrimSpace(strings.ToLower(query.AssigneeEmail))
	if email == "" {
		email = strings.TrimSpace(strings.ToLower(query.Identity))
	}
	if email == "" {
		return nil, domainerrors.ErrInvalidAssignmentRequest
	}
	if !entities.IsSupportedAssigneeRole(query.AssigneeRole) {
		return nil, domainerrors.ErrInvalidAssignmentRequest
	}

	switch query.Role {
	case entities.RoleManager:
	case entities.RoleBA, entities.RoleBiller:
		if email != strings.TrimSpace(strings.ToLower(query.Identity)) {
			return nil, domainerrors.Forbidden("Assignees can only list their own assignments")
		}
	default:
		return nil, domainerrors.Forbidden("role is not permitted to list assignments")
	}

	assignments, err := uc.Assignments.ListByAssignee(ctx, email, query.AssigneeRole)
	if err != nil {
		return nil, err
	}

	logger.Debug("assignments listed",
		"event", "assignments_listed",
		"module", "brd-onboarding/assignment-service",
		"layer", "application",
		"assignee_email", email,
		"assignee_role", string(query.AssigneeRole),
		"count", len(assignments),
	)
	return assignments, nil
}
