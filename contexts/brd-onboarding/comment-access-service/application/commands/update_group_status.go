package commands

import (
	"context"
	"log/slog"
	"strings"

	application "brdflow/contexts/brd-onboarding/comment-access-service/application"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"
)

type UpdateGroupStatusCommand struct {
	BRDID    string
	GroupID  string
	Role     entities.Role
	Identity string
	Status   string
}

type UpdateGroupStatusUseCase struct {
	Guard    application.AccessGuard
	Comments ports.CommentRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Execute updates a comment group's resolution status. The repository's
// not-found stays a not-found for the caller.
func (uc UpdateGroupStatusUseCase) Execute(ctx context.Context, cmd UpdateGroupStatusCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	if _, err := uc.Guard.Require(ctx, cmd.BRDID, cmd.Role, cmd.Identity); err != nil {
		return err
	}

	status := entities.GroupStatus(strings.ToLower(strings.TrimSpace(cmd.Status)))
	if !entities.IsSupportedGroupStatus(status) {
		return domainerrors.ErrInvalidCommentRequest
	}
	groupID := strings.TrimSpace(cmd.GroupID)
	if groupID == "" {
		return domainerrors.ErrInvalidCommentRequest
	}

	if err := uc.Comments.UpdateGroupStatus(ctx, groupID, status, uc.Clock.Now().UTC()); err != nil {
		return err
	}

	logger.Info("comment group status updated",
		"event", "comment_group_status_updated",
		"module", "brd-onboarding/comment-access-service",
		"layer", "application",
		"brd_id", cmd.BRDID,
		"group_id", groupID,
		"status", string(status),
	)
	return nil
}
