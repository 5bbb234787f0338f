package httpadapter

import (
	"context"
	"log/slog"

	application "brdflow/contexts/brd-onboarding/status-gate-service/application"
	"brdflow/contexts/brd-onboarding/status-gate-service/application/commands"
	"brdflow/contexts/brd-onboarding/status-gate-service/application/queries"
	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	httptransport "brdflow/contexts/brd-onboarding/status-gate-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	CreateBRD         commands.CreateBRDUseCase
	AttemptTransition commands.AttemptTransitionUseCase
	GetBRD            queries.GetBRDUseCase
	ListHistory       queries.ListStatusHistoryUseCase
	Logger            *slog.Logger
}

// CreateBRDHandler creates a Draft BRD for the requesting PM.
func (h Handler) CreateBRDHandler(
	ctx context.Context,
	role string,
	identity string,
	request httptransport.CreateBRDRequest,
) (httptransport.BRDResponse, error) {
	brd, err := h.CreateBRD.Execute(ctx, commands.CreateBRDCommand{
		BRDID:    request.BRDID,
		Title:    request.Title,
		Role:     entities.ParseRole(role),
		Identity: identity,
	})
	if err != nil {
		return httptransport.BRDResponse{}, err
	}
	return brdResponse(brd), nil
}

// UpdateStatusHandler attempts one role-gated status transition.
func (h Handler) UpdateStatusHandler(
	ctx context.Context,
	brdID string,
	role string,
	identity string,
	request httptransport.UpdateStatusRequest,
) (httptransport.UpdateStatusResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http status update received",
		"event", "brd_http_status_update_received",
		"module", "brd-onboarding/status-gate-service",
		"layer", "transport",
		"brd_id", brdID,
		"role", role,
		"target_status", request.Status,
	)

	result, err := h.AttemptTransition.Execute(ctx, commands.AttemptTransitionCommand{
		BRDID:        brdID,
		Role:         entities.ParseRole(role),
		Identity:     identity,
		TargetStatus: request.Status,
		Comment:      request.Comment,
	})
	if err != nil {
		logger.Warn("http status update rejected",
			"event", "brd_http_status_update_rejected",
			"module", "brd-onboarding/status-gate-service",
			"layer", "transport",
			"brd_id", brdID,
			"role", role,
			"error", err.Error(),
		)
		return httptransport.UpdateStatusResponse{}, err
	}
	return httptransport.UpdateStatusResponse{
		BRDID:      result.BRDID,
		FromStatus: string(result.FromStatus),
		ToStatus:   string(result.ToStatus),
		ChangedBy:  result.ChangedBy,
	}, nil
}

// GetBRDHandler returns one BRD document view.
func (h Handler) GetBRDHandler(ctx context.Context, brdID string) (httptransport.BRDResponse, error) {
	brd, err := h.GetBRD.Execute(ctx, brdID)
	if err != nil {
		return httptransport.BRDResponse{}, err
	}
	return brdResponse(brd), nil
}

// ListHistoryHandler returns the transition audit trail, oldest first.
func (h Handler) ListHistoryHandler(ctx context.Context, brdID string) (httptransport.StatusHistoryResponse, error) {
	items, err := h.ListHistory.Execute(ctx, brdID)
	if err != nil {
		return httptransport.StatusHistoryResponse{}, err
	}

	history := make([]httptransport.StatusHistoryDTO, 0, len(items))
	for _, item := range items {
		history = append(history, httptransport.StatusHistoryDTO{
			HistoryID:  item.HistoryID,
			BRDID:      item.BRDID,
			FromStatus: string(item.FromStatus),
			ToStatus:   string(item.ToStatus),
			ChangedBy:  item.ChangedBy,
			Comment:    item.Comment,
			CreatedAt:  item.CreatedAt,
		})
	}
	return httptransport.StatusHistoryResponse{
		BRDID:   brdID,
		History: history,
	}, nil
}

func brdResponse(brd entities.BRD) httptransport.BRDResponse {
	return httptransport.BRDResponse{
		BRDID:           brd.BRDID,
		Title:           brd.Title,
		Status:          string(brd.Status),
		CreatorUsername: brd.CreatorUsername,
		CreatedAt:       brd.CreatedAt,
		UpdatedAt:       brd.UpdatedAt,
	}
}
