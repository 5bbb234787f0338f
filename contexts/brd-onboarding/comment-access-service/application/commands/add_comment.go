package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	application "brdflow/contexts/brd-onboarding/comment-access-service/application"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"
)

type AddCommentCommand struct {
	BRDID       string
	Role        entities.Role
	Identity    string
	SourceType  string
	SiteID      string
	SectionName string
	FieldPath   string
	Text        string
}

type AddCommentUseCase struct {
	Guard    application.AccessGuard
	Comments ports.CommentRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

// Execute appends one comment entry, creating the group on first use of the
// tuple key. Entries are append-only.
func (uc AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (entities.CommentEntry, error) {
	logger := application.ResolveLogger(uc.Logger)

	if _, err := uc.Guard.Require(ctx, cmd.BRDID, cmd.Role, cmd.Identity); err != nil {
		return entities.CommentEntry{}, err
	}

	sourceType := entities.SourceType(strings.ToUpper(strings.TrimSpace(cmd.SourceType)))
	if !entities.IsSupportedSourceType(sourceType) {
		return entities.CommentEntry{}, domainerrors.ErrInvalidCommentRequest
	}
	if sourceType == entities.SourceSite && strings.TrimSpace(cmd.SiteID) == "" {
		return entities.CommentEntry{}, domainerrors.ErrInvalidCommentRequest
	}
	if strings.TrimSpace(cmd.SectionName) == "" || strings.TrimSpace(cmd.FieldPath) == "" {
		return entities.CommentEntry{}, domainerrors.ErrInvalidCommentRequest
	}
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		return entities.CommentEntry{}, domainerrors.ErrInvalidCommentRequest
	}

	now := uc.Clock.Now().UTC()
	key := ports.GroupKey{
		BRDID:       strings.TrimSpace(cmd.BRDID),
		SourceType:  sourceType,
		SiteID:      strings.TrimSpace(cmd.SiteID),
		SectionName: strings.TrimSpace(cmd.SectionName),
		FieldPath:   strings.TrimSpace(cmd.FieldPath),
	}

	group, err := uc.Comments.GetGroupByKey(ctx, key)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrCommentGroupNotFound) {
			return entities.CommentEntry{}, err
		}
		groupID, idErr := uc.IDGen.NewID(ctx)
		if idErr != nil {
			return entities.CommentEntry{}, idErr
		}
		group = entities.CommentGroup{
			GroupID:     groupID,
			BRDID:       key.BRDID,
			SourceType:  key.SourceType,
			SiteID:      key.SiteID,
			SectionName: key.SectionName,
			FieldPath:   key.FieldPath,
			Status:      entities.GroupStatusOpen,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := uc.Comments.CreateGroup(ctx, group); err != nil {
			return entities.CommentEntry{}, err
		}
	}

	entryID, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return entities.CommentEntry{}, err
	}
	entry := entities.CommentEntry{
		EntryID:     entryID,
		GroupID:     group.GroupID,
		AuthorEmail: strings.TrimSpace(cmd.Identity),
		AuthorRole:  cmd.Role,
		Text:        text,
		ReadBy:      []string{strings.TrimSpace(cmd.Identity)},
		CreatedAt:   now,
	}
	if err := uc.Comments.AppendEntry(ctx, group.GroupID, entry); err != nil {
		return entities.CommentEntry{}, err
	}

	logger.Info("comment added",
		"event", "comment_entry_added",
		"module", "brd-onboarding/comment-access-service",
		"layer", "application",
		"brd_id", cmd.BRDID,
		"group_id", group.GroupID,
		"role", string(cmd.Role),
	)
	return entry, nil
}
