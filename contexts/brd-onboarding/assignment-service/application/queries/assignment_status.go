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

// AssignmentStatusQuery asks whether the calling BA is the active BA on a BRD.
type AssignmentStatusQuery struct {
	Role     entities.Role
	Identity string
	BRDID    string
}

type AssignmentStatusResult struct {
	BRDID    string
	Assigned bool
}

// AssignmentStatusUseCase answers the BA self-lookup. The empty-id check
// fires before any collaborator call.
type AssignmentStatusUseCase struct {
	Assignments ports.AssignmentRepository
	Logger      *slog.Logger
}

func (uc AssignmentStatusUseCase) Execute(ctx context.Context, query AssignmentStatusQuery) (AssignmentStatusResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	brdID := strings.TrimSpace(query.BRDID)
	if brdID == "" {
		return AssignmentStatusResult{}, domainerrors.ErrEmptyBRDID
	}
	if query.Role != entities.RoleBA {
		return AssignmentStatusResult{}, domainerrors.Forbidden("Only BAs can query their BRD assignment status")
	}

	assigned, err := uc.Assignments.IsAssigned(ctx, brdID, strings.TrimSpace(strings.ToLower(query.Identity)), entities.AssigneeBA)
	if err != nil {
		return AssignmentStatusResult{}, err
	}

	logger.Debug("assignment status resolved",
		"event", "assignment_status_resolved",
		"module", "brd-onboarding/assignment-service",
		"layer", "application",
		"brd_id", brdID,
		"assigned", assigned,
	)
	return AssignmentStatusResult{BRDID: brdID, Assigned: assigned}, nil
}
