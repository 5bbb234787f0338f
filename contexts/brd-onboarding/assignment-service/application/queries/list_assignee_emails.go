package queries

import (
	"context"
	"log/slog"
	"sort"

	"brdflow/contexts/brd-onboarding/assignment-service/application"
	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"
)

// ListAssigneeEmailsQuery lists distinct emails currently holding active
// assignments of one role type. Manager-only; feeds reassignment pickers.
type ListAssigneeEmailsQuery struct {
	Role         entities.Role
	AssigneeRole entities.AssigneeRole
}

type ListAssigneeEmailsUseCase struct {
	Assignments ports.AssignmentRepository
	Logger      *slog.Logger
}

func (uc ListAssigneeEmailsUseCase) Execute(ctx context.Context, query ListAssigneeEmailsQuery) ([]string, error) {
	logger := application.ResolveLogger(uc.Logger)

	if query.Role != entities.RoleManager {
		return nil, domainerrors.Forbidden("Only managers can list assignee emails")
	}
	if !entities.IsSupportedAssigneeRole(query.AssigneeRole) {
		return nil, domainerrors.ErrInvalidAssignmentRequest
	}

	emails, err := uc.Assignments.ListAssigneeEmails(ctx, query.AssigneeRole)
	if err != nil {
		return nil, err
	}
	sort.Strings(emails)

	logger.Debug("assignee emails listed",
		"event", "assignee_emails_listed",
		"module", "brd-onboarding/assignment-service",
		"layer", "application",
		"assignee_role", string(query.AssigneeRole),
		"count", len(emails),
	)
	return emails, nil
}
