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

type MarkEntriesReadCommand struct {
	BRDID    string
	GroupID  string
	Role     entities.Role
	Identity string
}

type MarkEntriesReadUseCase struct {
	Guard    application.AccessGuard
	Comments ports.CommentRepository
	Logger   *slog.Logger
}

// Execute flags all entries of one group as read by the requesting identity.
// Re-reading is idempotent.
func (uc MarkEntriesReadUseCase) Execute(ctx context.Context, cmd MarkEntriesReadCommand) error {
	logger := application.ResolveLogger(uc.Logger)

	if _, err := uc.Guard.Require(ctx, cmd.BRDID, cmd.Role, cmd.Identity); err != nil {
		return err
	}

	groupID := strings.TrimSpace(cmd.GroupID)
	if groupID == "" {
		return domainerrors.ErrInvalidCommentRequest
	}

	if err := uc.Comments.MarkEntriesRead(ctx, groupID, strings.TrimSpace(cmd.Identity)); err != nil {
		return err
	}

	logger.Debug("comment entries marked read",
		"event", "comment_entries_marked_read",
		"module", "brd-onboarding/comment-access-service",
		"layer", "application",
		"brd_id", cmd.BRDID,
		"group_id", groupID,
		"reader", cmd.Identity,
	)
	return nil
}
