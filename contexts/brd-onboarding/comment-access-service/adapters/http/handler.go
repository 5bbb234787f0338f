package httpadapter

import (
	"context"
	"log/slog"

	application "brdflow/contexts/brd-onboarding/comment-access-service/application"
	"brdflow/contexts/brd-onboarding/comment-access-service/application/commands"
	"brdflow/contexts/brd-onboarding/comment-access-service/application/queries"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	httptransport "brdflow/contexts/brd-onboarding/comment-access-service/transport/http"
)

// Handler maps HTTP DTOs to application commands/queries.
type Handler struct {
	GetComments       queries.GetCommentsUseCase
	AddComment        commands.AddCommentUseCase
	UpdateGroupStatus commands.UpdateGroupStatusUseCase
	MarkEntriesRead   commands.MarkEntriesReadUseCase
	Logger            *slog.Logger
}

// GetCommentsHandler lists comment groups for one BRD.
func (h Handler) GetCommentsHandler(
	ctx context.Context,
	brdID string,
	role string,
	identity string,
	sourceType string,
	siteID string,
	sectionName string,
	fieldPath string,
) (httptransport.ListCommentsResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	logger.Debug("http get comments received",
		"event", "comment_http_list_received",
		"module", "brd-onboarding/comment-access-service",
		"layer", "transport",
		"brd_id", brdID,
		"role", role,
	)

	groups, err := h.GetComments.Execute(ctx, queries.GetCommentsQuery{
		BRDID:       brdID,
		Role:        entities.ParseRole(role),
		Identity:    identity,
		SourceType:  sourceType,
		SiteID:      siteID,
		SectionName: sectionName,
		FieldPath:   fieldPath,
	})
	if err != nil {
		return httptransport.ListCommentsResponse{}, err
	}

	items := make([]httptransport.CommentGroupDTO, 0, len(groups))
	for _, group := range groups {
		items = append(items, groupDTO(group))
	}
	return httptransport.ListCommentsResponse{
		BRDID:  brdID,
		Groups: items,
	}, nil
}

// AddCommentHandler appends one comment entry.
func (h Handler) AddCommentHandler(
	ctx context.Context,
	brdID string,
	role string,
	identity string,
	request httptransport.AddCommentRequest,
) (httptransport.AddCommentResponse, error) {
	entry, err := h.AddComment.Execute(ctx, commands.AddCommentCommand{
		BRDID:       brdID,
		Role:        entities.ParseRole(role),
		Identity:    identity,
		SourceType:  request.SourceType,
		SiteID:      request.SiteID,
		SectionName: request.SectionName,
		FieldPath:   request.FieldPath,
		Text:        request.Text,
	})
	if err != nil {
		return httptransport.AddCommentResponse{}, err
	}
	return httptransport.AddCommentResponse{Entry: entryDTO(entry)}, nil
}

// UpdateGroupStatusHandler sets a group's resolution status.
func (h Handler) UpdateGroupStatusHandler(
	ctx context.Context,
	brdID string,
	groupID string,
	role string,
	identity string,
	request httptransport.UpdateGroupStatusRequest,
) error {
	return h.UpdateGroupStatus.Execute(ctx, commands.UpdateGroupStatusCommand{
		BRDID:    brdID,
		GroupID:  groupID,
		Role:     entities.ParseRole(role),
		Identity: identity,
		Status:   request.Status,
	})
}

// MarkEntriesReadHandler flags a group's entries as read by the caller.
func (h Handler) MarkEntriesReadHandler(
	ctx context.Context,
	brdID string,
	groupID string,
	role string,
	identity string,
) error {
	return h.MarkEntriesRead.Execute(ctx, commands.MarkEntriesReadCommand{
		BRDID:    brdID,
		GroupID:  groupID,
		Role:     entities.ParseRole(role),
		Identity: identity,
	})
}

func groupDTO(group entities.CommentGroup) httptransport.CommentGroupDTO {
	entries := make([]httptransport.CommentEntryDTO, 0, len(group.Entries))
	for _, entry := range group.Entries {
		entries = append(entries, entryDTO(entry))
	}
	return httptransport.CommentGroupDTO{
		GroupID:     group.GroupID,
		BRDID:       group.BRDID,
		SourceType:  string(group.SourceType),
		SiteID:      group.SiteID,
		SectionName: group.SectionName,
		FieldPath:   group.FieldPath,
		Status:      string(group.Status),
		Entries:     entries,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

func entryDTO(entry entities.CommentEntry) httptransport.CommentEntryDTO {
	return httptransport.CommentEntryDTO{
		EntryID:     entry.EntryID,
		GroupID:     entry.GroupID,
		AuthorEmail: entry.AuthorEmail,
		AuthorRole:  string(entry.AuthorRole),
		Text:        entry.Text,
		ReadBy:      entry.ReadBy,
		CreatedAt:   entry.CreatedAt,
	}
}
