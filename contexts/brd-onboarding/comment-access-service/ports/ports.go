package ports

import (
	"context"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
)

// Clock abstracts current time for deterministic tests.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts UUID generation for groups/entries.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// BRDReader fetches the minimal BRD view the decision engine needs.
type BRDReader interface {
	GetBRD(ctx context.Context, brdID string) (entities.BRDView, error)
}

// AssignmentLookup answers assignment-relationship questions. Implementations
// must be cheap to call but are still only consulted after the status gate.
type AssignmentLookup interface {
	IsBAAssigned(ctx context.Context, brdID string, email string) (bool, error)
	IsBillerAssigned(ctx context.Context, brdID string, email string) (bool, error)
}

// GroupKey is the unique comment-thread tuple per BRD.
type GroupKey struct {
	BRDID       string
	SourceType  entities.SourceType
	SiteID      string
	SectionName string
	FieldPath   string
}

// GroupFilter narrows ListGroups; zero values mean no filtering.
type GroupFilter struct {
	SourceType  entities.SourceType
	SiteID      string
	SectionName string
	FieldPath   string
}

// CommentRepository is the read/write boundary for comment groups/entries.
type CommentRepository interface {
	ListGroups(ctx context.Context, brdID string, filter GroupFilter) ([]entities.CommentGroup, error)
	GetGroupByKey(ctx context.Context, key GroupKey) (entities.CommentGroup, error)
	GetGroup(ctx context.Context, groupID string) (entities.CommentGroup, error)
	CreateGroup(ctx context.Context, group entities.CommentGroup) error
	AppendEntry(ctx context.Context, groupID string, entry entities.CommentEntry) error
	UpdateGroupStatus(ctx context.Context, groupID string, status entities.GroupStatus, updatedAt time.Time) error
	MarkEntriesRead(ctx context.Context, groupID string, reader string) error
}
