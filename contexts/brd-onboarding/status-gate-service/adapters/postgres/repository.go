package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
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

type brdModel struct {
	BRDID           string `gorm:"column:brd_id;primaryKey"`
	Title           string `gorm:"column:title"`
	Status          string `gorm:"column:status"`
	CreatorUsername string `gorm:"column:creator_username"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (brdModel) TableName() string { return "brds" }

type statusHistoryModel struct {
	HistoryID  string `gorm:"column:history_id;primaryKey"`
	BRDID      string `gorm:"column:brd_id;index"`
	FromStatus string `gorm:"column:from_status"`
	ToStatus   string `gorm:"column:to_status"`
	ChangedBy  string `gorm:"column:changed_by"`
	Comment    string `gorm:"column:comment"`
	CreatedAt  time.Time
}

func (statusHistoryModel) TableName() string { return "brd_status_history" }

type outboxModel struct {
	OutboxID    string `gorm:"column:outbox_id;primaryKey"`
	EventType   string `gorm:"column:event_type"`
	Payload     []byte `gorm:"column:payload"`
	Status      string `gorm:"column:status;index"`
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string { return "brd_status_outbox" }

func (r *Repository) CreateBRD(ctx context.Context, brd entities.BRD) error {
	row := brdModel{
		BRDID:           strings.TrimSpace(brd.BRDID),
		Title:           brd.Title,
		Status:          string(brd.Status),
		CreatorUsername: brd.CreatorUsername,
		CreatedAt:       brd.CreatedAt.UTC(),
		UpdatedAt:       brd.UpdatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateBRD
		}
		return err
	}
	return nil
}

func (r *Repository) GetBRD(ctx context.Context, brdID string) (entities.BRD, error) {
	var row brdModel
	err := r.db.WithContext(ctx).
		Where("brd_id = ?", strings.TrimSpace(brdID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BRD{}, domainerrors.ErrBRDNotFound
		}
		return entities.BRD{}, err
	}
	return entities.BRD{
		BRDID:           row.BRDID,
		Title:           row.Title,
		Status:          entities.BRDStatus(row.Status),
		CreatorUsername: row.CreatorUsername,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, brdID string, status entities.BRDStatus, updatedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&brdModel{}).
		Where("brd_id = ?", strings.TrimSpace(brdID)).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		// The brds table carries a CHECK constraint on status; a violation is
		// the store-side equivalent of an unrecognized status value.
		if isCheckViolation(result.Error) {
			return domainerrors.ErrStatusRejected
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrBRDNotFound
	}
	return nil
}

func (r *Repository) AppendStatus(ctx context.Context, item entities.StatusHistory) error {
	row := statusHistoryModel{
		HistoryID:  strings.TrimSpace(item.HistoryID),
		BRDID:      strings.TrimSpace(item.BRDID),
		FromStatus: string(item.FromStatus),
		ToStatus:   string(item.ToStatus),
		ChangedBy:  strings.TrimSpace(item.ChangedBy),
		Comment:    strings.TrimSpace(item.Comment),
		CreatedAt:  item.CreatedAt.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListByBRD(ctx context.Context, brdID string) ([]entities.StatusHistory, error) {
	var rows []statusHistoryModel
	if err := r.db.WithContext(ctx).
		Where("brd_id = ?", strings.TrimSpace(brdID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]entities.StatusHistory, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.StatusHistory{
			HistoryID:  row.HistoryID,
			BRDID:      row.BRDID,
			FromStatus: entities.BRDStatus(row.FromStatus),
			ToStatus:   entities.BRDStatus(row.ToStatus),
			ChangedBy:  row.ChangedBy,
			Comment:    row.Comment,
			CreatedAt:  row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) EnqueueOutbox(ctx context.Context, message ports.OutboxMessage) error {
	row := outboxModel{
		OutboxID:  message.OutboxID,
		EventType: message.EventType,
		Payload:   message.Payload,
		Status:    "pending",
		CreatedAt: message.CreatedAt.UTC(),
	}
	// Re-enqueueing the same outbox id is a no-op so retried transitions do
	// not duplicate events.
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).
		Error
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", "pending").
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:  row.OutboxID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	at := publishedAt.UTC()
	return r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":       "published",
			"published_at": &at,
		}).
		Error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func isCheckViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23514"
	}
	return false
}
