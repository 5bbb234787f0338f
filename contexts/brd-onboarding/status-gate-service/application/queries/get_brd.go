package queries

import (
	"context"
	"log/slog"
	"strings"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"
)

type GetBRDUseCase struct {
	BRDs   ports.BRDRepository
	Logger *slog.Logger
}

func (uc GetBRDUseCase) Execute(ctx context.Context, brdID string) (entities.BRD, error) {
	if strings.TrimSpace(brdID) == "" {
		return entities.BRD{}, domainerrors.ErrEmptyBRDID
	}
	return uc.BRDs.GetBRD(ctx, strings.TrimSpace(brdID))
}
