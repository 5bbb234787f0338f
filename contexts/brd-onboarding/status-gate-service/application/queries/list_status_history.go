package queries

import (
	"context"
	"log/slog"
	"strings"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"
)

type ListStatusHistoryUseCase struct {
	BRDs    ports.BRDRepository
	History ports.HistoryRepository
	Logger  *slog.Logger
}

// Execute returns the transition audit trail for one BRD, oldest first.
func (uc ListStatusHistoryUseCase) Execute(ctx context.Context, brdID string) ([]entities.StatusHistory, error) {
	id := strings.TrimSpace(brdID)
	if id == "" {
		return nil, domainerrors.ErrEmptyBRDID
	}
	if _, err := uc.BRDs.GetBRD(ctx, id); err != nil {
		return nil, err
	}
	return uc.History.ListByBRD(ctx, id)
}
