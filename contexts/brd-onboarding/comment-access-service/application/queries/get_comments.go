package queries

import (
	"context"
	"log/slog"
	"strings"

	application "brdflow/contexts/brd-onboarding/comment-access-service/application"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"
)

type GetCommentsQuery struct {
	BRDID       string
	Role        entities.Role
	Identity    string
	SourceType  string
	SiteID      string
	SectionName string
	FieldPath   string
}

type GetCommentsUseCase struct {
	Guard    application.AccessGuard
	Comments ports.CommentRepository
	Logger   *slog.Logger
}

// Execute lists comment groups for one BRD after the access decision passes.
// The repository result passes through unchanged.
func (uc GetCommentsUseCase) Execute(ctx context.Context, query GetCommentsQuery) ([]entities.CommentGroup, error) {
	logger := application.ResolveLogger(uc.Logger)

	if _, err := uc.Guard.Require(ctx, query.BRDID, query.Role, query.Identity); err != nil {
		return nil, err
	}

	groups, err := uc.Comments.ListGroups(ctx, strings.TrimSpace(query.BRDID), ports.GroupFilter{
		SourceType:  entities.SourceType(strings.TrimSpace(query.SourceType)),
		SiteID:      strings.TrimSpace(query.SiteID),
		SectionName: strings.TrimSpace(query.SectionName),
		FieldPath:   strings.TrimSpace(query.FieldPath),
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("comments listed",
		"event", "comment_groups_listed",
		"module", "brd-onboarding/comment-access-service",
		"layer", "application",
		"brd_id", query.BRDID,
		"role", string(query.Role),
		"group_count", len(groups),
	)
	return groups, nil
}
