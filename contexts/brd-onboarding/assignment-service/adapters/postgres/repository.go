// Package postgresadapter persists assignment-service data with gorm.
package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"

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
	BRDID  string `gorm:"column:brd_id;primaryKey"`
	Title  string `gorm:"column:title"`
	Status string `gorm:"column:status"`
}

func (brdViewModel) TableName() string { return "brds" }

type userModel struct {
	Email string `gorm:"column:email;primaryKey"`
	Role  string `gorm:"column:role"`
}

func (userModel) TableName() string { return "users" }

type assignmentModel struct {
	AssignmentID  string    `gorm:"column:assignment_id;primaryKey"`
	BRDID         string    `gorm:"column:brd_id;index"`
	AssigneeEmail string    `gorm:"column:assignee_email;index"`
	AssigneeRole  string    `gorm:"column:assignee_role"`
	Active        bool      `gorm:"column:active"`
	AssignedAt    time.Time `gorm:"column:assigned_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (assignmentModel) TableName() string { return "brd_assignments" }

func (r *Repository) GetBRD(ctx context.Context, brdID string) (ports.BRDView, error) {
	var row brdViewModel
	err := r.db.WithContext(ctx).
		Where("brd_id = ?", strings.TrimSpace(brdID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.BRDView{}, domainerrors.ErrBRDNotFound
		}
		return ports.BRDView{}, err
	}
	return ports.BRDView{
		BRDID:  row.BRDID,
		Title:  row.Title,
		Status: row.Status,
	}, nil
}

func (r *Repository) GetUserRole(ctx context.Context, email string) (entities.Role, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(strings.ToLower(email))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domainerrors.ErrUserNotFound
		}
		return "", err
	}
	return entities.ParseRole(row.Role), nil
}

func (r *Repository) GetActive(ctx context.Context, brdID string, roleType entities.AssigneeRole) (entities.Assignment, bool, error) {
	var row assignmentModel
	err := r.db.WithContext(ctx).
		Where("brd_id = ? AND assignee_role = ? AND active", strings.TrimSpace(brdID), string(roleType)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Assignment{}, false, nil
		}
		return entities.Assignment{}, false, err
	}
	return toEntity(row), true, nil
}

// Replace deactivates the active row for the pair and inserts the new one in
// one transaction so readers never observe two active assignees.
func (r *Repository) Replace(ctx context.Context, input ports.ReplaceInput) (entities.Assignment, error) {
	row := assignmentModel{
		AssignmentID:  input.AssignmentID,
		BRDID:         input.BRDID,
		AssigneeEmail: input.AssigneeEmail,
		AssigneeRole:  string(input.AssigneeRole),
		Active:        true,
		AssignedAt:    input.AssignedAt.UTC(),
		UpdatedAt:     input.UpdatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&assignmentModel{}).
			Where("brd_id = ? AND assignee_role = ? AND active", input.BRDID, string(input.AssigneeRole)).
			Updates(map[string]any{
				"active":     false,
				"updated_at": input.UpdatedAt.UTC(),
			}).
			Error; err != nil {
			return err
		}
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidAssignmentRequest
			}
			return err
		}
		return nil
	})
	if err != nil {
		return entities.Assignment{}, err
	}
	return toEntity(row), nil
}

func (r *Repository) IsAssigned(ctx context.Context, brdID string, email string, roleType entities.AssigneeRole) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&assignmentModel{}).
		Where("brd_id = ? AND assignee_email = ? AND assignee_role = ? AND active",
			strings.TrimSpace(brdID), strings.TrimSpace(strings.ToLower(email)), string(roleType)).
		Count(&count).
		Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListByAssignee(ctx context.Context, email string, roleType entities.AssigneeRole) ([]entities.Assignment, error) {
	var rows []assignmentModel
	err := r.db.WithContext(ctx).
		Where("assignee_email = ? AND assignee_role = ? AND active",
			strings.TrimSpace(strings.ToLower(email)), string(roleType)).
		Order("assigned_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, err
	}
	items := make([]entities.Assignment, 0, len(rows))
	for _, row := range rows {
		items = append(items, toEntity(row))
	}
	return items, nil
}

func (r *Repository) ListAssigneeEmails(ctx context.Context, roleType entities.AssigneeRole) ([]string, error) {
	var emails []string
	err := r.db.WithContext(ctx).
		Model(&assignmentModel{}).
		Distinct("assignee_email").
		Where("assignee_role = ? AND active", string(roleType)).
		Pluck("assignee_email", &emails).
		Error
	if err != nil {
		return nil, err
	}
	return emails, nil
}

func toEntity(row assignmentModel) entities.Assignment {
	return entities.Assignment{
		AssignmentID:  row.AssignmentID,
		BRDID:         row.BRDID,
		AssigneeEmail: row.AssigneeEmail,
		AssigneeRole:  entities.AssigneeRole(row.AssigneeRole),
		Active:        row.Active,
		AssignedAt:    row.AssignedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
