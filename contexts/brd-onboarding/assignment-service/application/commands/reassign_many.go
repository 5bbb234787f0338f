package commands

import (
	"context"
	"fmt"
	"log/slog"

	"brdflow/contexts/brd-onboarding/assignment-service/application"
	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
)

const (
	BatchStatusSuccess = "SUCCESS"
	BatchStatusFailure = "FAILURE"
)

// ReassignItem is one entry of a batch reassignment request.
type ReassignItem struct {
	BRDID         string
	AssigneeEmail string
	AssigneeRole  entities.AssigneeRole
}

// ReassignManyCommand reassigns a list of BRDs in one call. Items are
// processed in input order and independently of each other.
type ReassignManyCommand struct {
	ActorRole     entities.Role
	ActorIdentity string
	Items         []ReassignItem
}

// ItemResult reports one item's outcome. Assignment is only populated when
// Success is true.
type ItemResult struct {
	BRDID         string
	AssigneeEmail string
	Success       bool
	Error         string
	Assignment    entities.Assignment
}

// ReassignManyResult aggregates the batch. Errors maps "error1".."errorN"
// to per-item failure messages, numbered in failure order.
type ReassignManyResult struct {
	Status  string
	Items   []ItemResult
	Errors  map[string]string
	Applied int
	Failed  int
}

// ReassignManyUseCase runs the single-item reassignment per entry and folds
// outcomes fail-soft: one bad item never aborts the rest.
type ReassignManyUseCase struct {
	Reassign ReassignUseCase
	Logger   *slog.Logger
}

func (uc ReassignManyUseCase) Execute(ctx context.Context, cmd ReassignManyCommand) (ReassignManyResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if cmd.ActorRole != entities.RoleManager {
		return ReassignManyResult{}, domainerrors.Forbidden("Only managers can reassign BRDs")
	}
	if len(cmd.Items) == 0 {
		return ReassignManyResult{}, fmt.Errorf("%w: batch cannot be empty", domainerrors.ErrInvalidAssignmentRequest)
	}

	result := ReassignManyResult{
		Status: BatchStatusSuccess,
		Items:  make([]ItemResult, 0, len(cmd.Items)),
		Errors: map[string]string{},
	}

	for _, item := range cmd.Items {
		assignment, err := uc.Reassign.Execute(ctx, ReassignCommand{
			ActorRole:     cmd.ActorRole,
			ActorIdentity: cmd.ActorIdentity,
			BRDID:         item.BRDID,
			AssigneeEmail: item.AssigneeEmail,
			AssigneeRole:  item.AssigneeRole,
		})
		if err != nil {
			result.Failed++
			result.Status = BatchStatusFailure
			message := fmt.Sprintf("Failed to reassign BRD %s: %s", item.BRDID, err.Error())
			result.Errors[fmt.Sprintf("error%d", result.Failed)] = message
			result.Items = append(result.Items, ItemResult{
				BRDID:         item.BRDID,
				AssigneeEmail: item.AssigneeEmail,
				Success:       false,
				Error:         message,
			})
			continue
		}
		result.Applied++
		result.Items = append(result.Items, ItemResult{
			BRDID:         item.BRDID,
			AssigneeEmail: item.AssigneeEmail,
			Success:       true,
			Assignment:    assignment,
		})
	}

	logger.Info("batch reassignment finished",
		"event", "brd_batch_reassigned",
		"module", "brd-onboarding/assignment-service",
		"layer", "application",
		"status", result.Status,
		"applied", result.Applied,
		"failed", result.Failed,
		"actor", cmd.ActorIdentity,
	)
	return result, nil
}
