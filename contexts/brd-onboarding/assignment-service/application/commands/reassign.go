package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"brdflow/contexts/brd-onboarding/assignment-service/application"
	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"
)

// ReassignCommand replaces the active assignee of one (BRD, role type) pair.
type ReassignCommand struct {
	ActorRole     entities.Role
	ActorIdentity string
	BRDID         string
	AssigneeEmail string
	AssigneeRole  entities.AssigneeRole
}

// ReassignUseCase validates manager authority, target existence and target
// role, then swaps the active assignment while preserving the original
// assignment timestamp.
type ReassignUseCase struct {
	BRDs        ports.BRDReader
	Users       ports.UserDirectory
	Assignments ports.AssignmentRepository
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	Logger      *slog.Logger
}

func (uc ReassignUseCase) Execute(ctx context.Context, cmd ReassignCommand) (entities.Assignment, error) {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.ActorRole != entities.RoleManager {
		return entities.Assignment{}, domainerrors.Forbidden("Only managers can reassign BRDs")
	}

	brdID := strings.TrimSpace(cmd.BRDID)
	if brdID == "" {
		return entities.Assignment{}, domainerrors.ErrEmptyBRDID
	}
	email := strings.TrimSpace(strings.ToLower(cmd.AssigneeEmail))
	if email == "" {
		return entities.Assignment{}, fmt.Errorf("%w: assignee email cannot be empty", domainerrors.ErrInvalidAssignmentRequest)
	}
	if !entities.IsSupportedAssigneeRole(cmd.AssigneeRole) {
		return entities.Assignment{}, fmt.Errorf("%w: unsupported assignee role %q", domainerrors.ErrInvalidAssignmentRequest, string(cmd.AssigneeRole))
	}

	if _, err := uc.BRDs.GetBRD(ctx, brdID); err != nil {
		return entities.Assignment{}, err
	}

	targetRole, err := uc.Users.GetUserRole(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return entities.Assignment{}, domainerrors.RoleMismatch(email, cmd.AssigneeRole.DisplayName())
		}
		return entities.Assignment{}, err
	}
	if !targetRole.MatchesAssigneeRole(cmd.AssigneeRole) {
		return entities.Assignment{}, domainerrors.RoleMismatch(email, cmd.AssigneeRole.DisplayName())
	}

	now := uc.Clock.Now().UTC()
	assignedAt := now
	if prior, ok, err := uc.Assignments.GetActive(ctx, brdID, cmd.AssigneeRole); err != nil {
		return entities.Assignment{}, err
	} else if ok {
		assignedAt = prior.AssignedAt
	}

	assignmentID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.Assignment{}, err
	}

	assignment, err := uc.Assignments.Replace(ctx, ports.ReplaceInput{
		AssignmentID:  assignmentID,
		BRDID:         brdID,
		AssigneeEmail: email,
		AssigneeRole:  cmd.AssigneeRole,
		AssignedAt:    assignedAt,
		UpdatedAt:     now,
	})
	if err != nil {
		return entities.Assignment{}, err
	}

	logger.Info("brd reassigned",
		"event", "brd_reassigned",
		"module", "brd-onboarding/assignment-service",
		"layer", "application",
		"brd_id", brdID,
		"assignee_role", string(cmd.AssigneeRole),
		"assignee_email", email,
		"actor", cmd.ActorIdentity,
	)
	return assignment, nil
}
