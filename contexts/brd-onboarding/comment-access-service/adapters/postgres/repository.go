package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

type brdViewModel struct {
	BRDID           string `gorm:"column:brd_id;primaryKey"`
	Status          string `gorm:"column:status"`
	CreatorUsername string `gorm:"column:creator_username"`
}

func (brdViewModel) TableName() string { return "brds" }

type assignmentViewModel struct {
	AssignmentID  string `gorm:"column:assignment_id;primaryKey"`
	BRDID         string `gorm:"column:brd_id;index"`
	AssigneeEmail string `gorm:"column:assignee_email"`
	AssigneeRole  string `gorm:"column:assignee_role"`
	Active        bool   `gorm:"column:active"`
}

func (assignmentViewModel) TableName() string { return "brd_assignments" }

type commentGroupModel struct {
	GroupID     string `gorm:"column:group_id;primaryKey"`
	BRDID       string `gorm:"column:brd_id;index"`
	SourceType  string `gorm:"column:source_type"`
	SiteID      string `gorm:"column:site_id"`
	SectionName string `gorm:"column:section_name"`
	FieldPath   string `gorm:"column:field_path"`
	Status      string `gorm:"column:status"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (commentGroupModel) TableName() string { return "brd_comment_groups" }

type commentEntryModel struct {
	EntryID     string `gorm:"column:entry_id;primaryKey"`
	GroupID     string `gorm:"column:group_id;index"`
	AuthorEmail string `gorm:"column:author_email"`
	AuthorRole  string `gorm:"column:author_role"`
	Text        string `gorm:"column:text"`
	ReadBy      string `gorm:"column:read_by"`
	CreatedAt   time.Time
}

func (commentEntryModel) TableName() string { return "brd_comment_entries" }

func (r *Repository) GetBRD(ctx context.Context, brdID string) (entities.BRDView, error) {
	var row brdViewModel
	err := r.db.WithContext(ctx).
		Where("brd_id = ?", strings.TrimSpace(brdID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BRDView{}, domainerrors.ErrBRDNotFound
		}
		return entities.BRDView{}, err
	}
	return entities.BRDView{
		BRDID:           row.BRDID,
		Status:          entities.BRDStatus(row.Status),
		CreatorUsername: row.CreatorUsername,
	}, nil
}

func (r *Repository) IsBAAssigned(ctx context.Context, brdID string, email string) (bool, error) {
	return r.isAssigned(ctx, brdID, email, "ba")
}

func (r *Repository) IsBillerAssigned(ctx context.Context, brdID string, email string) (bool, error) {
	return r.isAssigned(ctx, brdID, email, "biller")
}

func (r *Repository) isAssigned(ctx context.Context, brdID string, email string, roleType string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&assignmentViewModel{}).
		Where("brd_id = ? AND assignee_email = ? AND assignee_role = ? AND active", strings.TrimSpace(brdID), strings.TrimSpace(email), roleType).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListGroups(ctx context.Context, brdID string, filter ports.GroupFilter) ([]entities.CommentGroup, error) {
	tx := r.db.WithContext(ctx).
		Model(&commentGroupModel{}).
		Where("brd_id = ?", strings.TrimSpace(brdID))
	if filter.SourceType != "" {
		tx = tx.Where("source_type = ?", string(filter.SourceType))
	}
	if filter.SiteID != "" {
		tx = tx.Where("site_id = ?", filter.SiteID)
	}
	if filter.SectionName != "" {
		tx = tx.Where("section_name = ?", filter.SectionName)
	}
	if filter.FieldPath != "" {
		tx = tx.Where("field_path = ?", filter.FieldPath)
	}

	var rows []commentGroupModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.CommentGroup, 0, len(rows))
	for _, row := range rows {
		group, err := r.loadGroup(ctx, row)
		if err != nil {
			return nil, err
		}
		items = append(items, group)
	}
	return items, nil
}

func (r *Repository) GetGroupByKey(ctx context.Context, key ports.GroupKey) (entities.CommentGroup, error) {
	var row commentGroupModel
	err := r.db.WithContext(ctx).
		Where("brd_id = ? AND source_type = ? AND site_id = ? AND section_name = ? AND field_path = ?",
			key.BRDID, string(key.SourceType), key.SiteID, key.SectionName, key.FieldPath).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CommentGroup{}, domainerrors.ErrCommentGroupNotFound
		}
		return entities.CommentGroup{}, err
	}
	return r.loadGroup(ctx, row)
}

func (r *Repository) GetGroup(ctx context.Context, groupID string) (entities.CommentGroup, error) {
	var row commentGroupModel
	err := r.db.WithContext(ctx).
		Where("group_id = ?", strings.TrimSpace(groupID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.CommentGroup{}, domainerrors.ErrCommentGroupNotFound
		}
		return entities.CommentGroup{}, err
	}
	return r.loadGroup(ctx, row)
}

func (r *Repository) CreateGroup(ctx context.Context, group entities.CommentGroup) error {
	row := commentGroupModel{
		GroupID:     group.GroupID,
		BRDID:       group.BRDID,
		SourceType:  string(group.SourceType),
		SiteID:      group.SiteID,
		SectionName: group.SectionName,
		FieldPath:   group.FieldPath,
		Status:      string(group.Status),
		CreatedAt:   group.CreatedAt.UTC(),
		UpdatedAt:   group.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidCommentRequest
		}
		return err
	}
	return nil
}

func (r *Repository) AppendEntry(ctx context.Context, groupID string, entry entities.CommentEntry) error {
	row := commentEntryModel{
		EntryID:     entry.EntryID,
		GroupID:     strings.TrimSpace(groupID),
		AuthorEmail: entry.AuthorEmail,
		AuthorRole:  string(entry.AuthorRole),
		Text:        entry.Text,
		ReadBy:      strings.Join(entry.ReadBy, ","),
		CreatedAt:   entry.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Model(&commentGroupModel{}).
		Where("group_id = ?", row.GroupID).
		Update("updated_at", entry.CreatedAt.UTC()).
		Error
}

func (r *Repository) UpdateGroupStatus(ctx context.Context, groupID string, status entities.GroupStatus, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&commentGroupModel{}).
		Where("group_id = ?", strings.TrimSpace(groupID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentGroupNotFound
	}
	return nil
}

func (r *Repository) MarkEntriesRead(ctx context.Context, groupID string, reader string) error {
	var rows []commentEntryModel
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", strings.TrimSpace(groupID)).
		Find(&rows).
		Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&commentGroupModel{}).
			Where("group_id = ?", strings.TrimSpace(groupID)).
			Count(&count).
			Error; err != nil {
			return err
		}
		if count == 0 {
			return domainerrors.ErrCommentGroupNotFound
		}
		return nil
	}

	for _, row := range rows {
		readers := splitReaders(row.ReadBy)
		if containsReader(readers, reader) {
			continue
		}
		readers = append(readers, reader)
		if err := r.db.WithContext(ctx).
			Model(&commentEntryModel{}).
			Where("entry_id = ?", row.EntryID).
			Update("read_by", strings.Join(readers, ",")).
			Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository) loadGroup(ctx context.Context, row commentGroupModel) (entities.CommentGroup, error) {
	var entryRows []commentEntryModel
	if err := r.db.WithContext(ctx).
		Where("group_id = ?", row.GroupID).
		Order("created_at ASC").
		Find(&entryRows).
		Error; err != nil {
		return entities.CommentGroup{}, err
	}

	entries := make([]entities.CommentEntry, 0, len(entryRows))
	for _, entryRow := range entryRows {
		entries = append(entries, entities.CommentEntry{
			EntryID:     entryRow.EntryID,
			GroupID:     entryRow.GroupID,
			AuthorEmail: entryRow.AuthorEmail,
			AuthorRole:  entities.Role(entryRow.AuthorRole),
			Text:        entryRow.Text,
			ReadBy:      splitReaders(entryRow.ReadBy),
			CreatedAt:   entryRow.CreatedAt,
		})
	}
	return entities.CommentGroup{
		GroupID:     row.GroupID,
		BRDID:       row.BRDID,
		SourceType:  entities.SourceType(row.SourceType),
		SiteID:      row.SiteID,
		SectionName: row.SectionName,
		FieldPath:   row.FieldPath,
		Status:      entities.GroupStatus(row.Status),
		Entries:     entries,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

func splitReaders(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	readers := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			readers = append(readers, trimmed)
		}
	}
	return readers
}

func containsReader(readers []string, reader string) bool {
	for _, item := range readers {
		if item == reader {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
