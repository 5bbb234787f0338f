package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/services"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"
)

// AccessGuard runs the shared precondition chain for every comment operation:
// non-empty BRD id, BRD existence, then the role/status/assignment decision.
// The empty-id check happens before any port call.
type AccessGuard struct {
	BRDs        ports.BRDReader
	Assignments ports.AssignmentLookup
	Clock       ports.Clock
	Logger      *slog.Logger
}

// Require returns the BRD view when access is granted, or a typed error:
// ErrEmptyBRDID, ErrBRDNotFound, or ErrForbidden wrapped with the decision
// engine's reason.
func (g AccessGuard) Require(
	ctx context.Context,
	brdID string,
	role entities.Role,
	identity string,
) (entities.BRDView, error) {
	logger := ResolveLogger(g.Logger)

	id := strings.TrimSpace(brdID)
	if id == "" {
		return entities.BRDView{}, domainerrors.ErrEmptyBRDID
	}

	brd, err := g.BRDs.GetBRD(ctx, id)
	if err != nil {
		return entities.BRDView{}, err
	}

	decision, err := services.DecideCommentAccess(ctx, services.AccessInput{
		Role:     role,
		Identity: strings.TrimSpace(identity),
		BRD:      brd,
		Now:      g.now(),
	}, g.Assignments)
	if err != nil {
		logger.Error("comment access lookup failed",
			"event", "comment_access_lookup_failed",
			"module", "brd-onboarding/comment-access-service",
			"layer", "application",
			"brd_id", id,
			"role", string(role),
			"error", err.Error(),
		)
		return entities.BRDView{}, err
	}
	if !decision.Allowed {
		logger.Warn("comment access denied",
			"event", "comment_access_denied",
			"module", "brd-onboarding/comment-access-service",
			"layer", "application",
			"brd_id", id,
			"role", string(role),
			"brd_status", string(brd.Status),
			"reason", decision.Reason,
		)
		return entities.BRDView{}, domainerrors.Forbidden(decision.Reason)
	}
	return brd, nil
}

func (g AccessGuard) now() time.Time {
	if g.Clock != nil {
		return g.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
