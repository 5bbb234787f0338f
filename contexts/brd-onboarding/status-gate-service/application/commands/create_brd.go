package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brdflow/contexts/brd-onboarding/status-gate-service/application"
	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"
)

type CreateBRDCommand struct {
	BRDID    string
	Title    string
	Role     entities.Role
	Identity string
}

type CreateBRDUseCase struct {
	BRDs   ports.BRDRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute creates a new BRD in Draft for the requesting PM.
func (uc CreateBRDUseCase) Execute(ctx context.Context, cmd CreateBRDCommand) (entities.BRD, error) {
	logger := application.ResolveLogger(uc.Logger)

	brdID := strings.TrimSpace(cmd.BRDID)
	if brdID == "" {
		return entities.BRD{}, domainerrors.ErrEmptyBRDID
	}
	if cmd.Role != entities.RolePM {
		return entities.BRD{}, domainerrors.Forbidden("only PM can create BRDs")
	}
	identity := strings.TrimSpace(cmd.Identity)
	if identity == "" {
		return entities.BRD{}, domainerrors.ErrInvalidStatusRequest
	}

	now := uc.Clock.Now().UTC()
	brd := entities.BRD{
		BRDID:           brdID,
		Title:           strings.TrimSpace(cmd.Title),
		Status:          entities.StatusDraft,
		CreatorUsername: identity,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.BRDs.CreateBRD(ctx, brd); err != nil {
		return entities.BRD{}, err
	}

	logger.Info("brd created",
		"event", "brd_created",
		"module", "brd-onboarding/status-gate-service",
		"layer", "application",
		"brd_id", brdID,
		"creator", identity,
	)
	return brd, nil
}
