package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "brdflow/contexts/brd-onboarding/status-gate-service/application"
	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/domain/services"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"
)

const statusChangedEventType = "brd.status_changed"

type AttemptTransitionCommand struct {
	BRDID        string
	Role         entities.Role
	Identity     string
	TargetStatus string
	Comment      string
}

type AttemptTransitionResult struct {
	BRDID      string
	FromStatus entities.BRDStatus
	ToStatus   entities.BRDStatus
	ChangedBy  string
}

type AttemptTransitionUseCase struct {
	BRDs    ports.BRDRepository
	History ports.HistoryRepository
	Outbox  ports.OutboxRepository
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Logger  *slog.Logger
}

// Execute validates, gates, and performs one status transition.
// Validation order is contractual: empty id, then target status value, then
// BRD existence, then role eligibility. No port is consulted before the
// local checks pass.
func (uc AttemptTransitionUseCase) Execute(ctx context.Context, cmd AttemptTransitionCommand) (AttemptTransitionResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	brdID := strings.TrimSpace(cmd.BRDID)
	if brdID == "" {
		return AttemptTransitionResult{}, domainerrors.ErrEmptyBRDID
	}
	target := strings.TrimSpace(cmd.TargetStatus)
	if !entities.IsRecognizedStatus(target) {
		return AttemptTransitionResult{}, domainerrors.ErrInvalidStatusRequest
	}

	brd, err := uc.BRDs.GetBRD(ctx, brdID)
	if err != nil {
		return AttemptTransitionResult{}, err
	}

	eligible, reason := services.TransitionEligibility(cmd.Role, brd.Status)
	if !eligible {
		logger.Warn("status transition denied",
			"event", "brd_status_transition_denied",
			"module", "brd-onboarding/status-gate-service",
			"layer", "application",
			"brd_id", brdID,
			"role", string(cmd.Role),
			"current_status", string(brd.Status),
			"target_status", target,
		)
		return AttemptTransitionResult{}, domainerrors.Forbidden(reason)
	}

	now := uc.Clock.Now().UTC()
	from := brd.Status
	to := entities.BRDStatus(target)
	if err := uc.BRDs.UpdateStatus(ctx, brdID, to, now); err != nil {
		// The repository's own target-status validation surfaces as a user
		// error, not an internal one.
		if errors.Is(err, domainerrors.ErrStatusRejected) {
			return AttemptTransitionResult{}, domainerrors.ErrInvalidStatusRequest
		}
		return AttemptTransitionResult{}, err
	}

	historyID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return AttemptTransitionResult{}, err
	}
	if err := uc.History.AppendStatus(ctx, entities.StatusHistory{
		HistoryID:  historyID,
		BRDID:      brdID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  strings.TrimSpace(cmd.Identity),
		Comment:    strings.TrimSpace(cmd.Comment),
		CreatedAt:  now,
	}); err != nil {
		return AttemptTransitionResult{}, err
	}

	if uc.Outbox != nil {
		if err := uc.enqueueStatusChanged(ctx, brd, from, to, cmd.Identity, now); err != nil {
			return AttemptTransitionResult{}, err
		}
	}

	logger.Info("brd status changed",
		"event", "brd_status_changed",
		"module", "brd-onboarding/status-gate-service",
		"layer", "application",
		"brd_id", brdID,
		"role", string(cmd.Role),
		"from_status", string(from),
		"to_status", string(to),
	)
	return AttemptTransitionResult{
		BRDID:      brdID,
		FromStatus: from,
		ToStatus:   to,
		ChangedBy:  strings.TrimSpace(cmd.Identity),
	}, nil
}

func (uc AttemptTransitionUseCase) enqueueStatusChanged(
	ctx context.Context,
	brd entities.BRD,
	from entities.BRDStatus,
	to entities.BRDStatus,
	changedBy string,
	now time.Time,
) error {
	eventID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(ports.EventEnvelope{
		EventID:       eventID,
		EventType:     statusChangedEventType,
		SourceService: "brd-onboarding/status-gate-service",
		OccurredAtUTC: now,
		EntityType:    "brd",
		EntityID:      brd.BRDID,
		Payload: map[string]string{
			"brd_id":      brd.BRDID,
			"from_status": string(from),
			"to_status":   string(to),
			"changed_by":  strings.TrimSpace(changedBy),
		},
	})
	if err != nil {
		return err
	}
	outboxID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return err
	}
	return uc.Outbox.EnqueueOutbox(ctx, ports.OutboxMessage{
		OutboxID:  outboxID,
		EventType: statusChangedEventType,
		Payload:   payload,
		CreatedAt: now,
	})
}
