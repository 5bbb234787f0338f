package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	"brdflow/contexts/brd-onboarding/comment-access-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the BRD reader, assignment
// lookup, and comment repository ports. It is intended for tests and local
// development wiring.
type Store struct {
	mu sync.RWMutex

	brds           map[string]entities.BRDView
	baAssigned     map[string]string
	billerAssigned map[string]string
	groups         map[string]entities.CommentGroup
}

func NewStore(seed []entities.BRDView) *Store {
	brds := make(map[string]entities.BRDView, len(seed))
	for _, item := range seed {
		brds[item.BRDID] = item
	}
	return &Store{
		brds:           brds,
		baAssigned:     make(map[string]string),
		billerAssigned: make(map[string]string),
		groups:         make(map[string]entities.CommentGroup),
	}
}

// SeedBRD inserts or replaces a BRD view.
func (s *Store) SeedBRD(brd entities.BRDView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brds[brd.BRDID] = brd
}

// SetBRDStatus mutates a seeded BRD's status, mirroring an external
// transition between requests.
func (s *Store) SetBRDStatus(brdID string, status entities.BRDStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if brd, exists := s.brds[brdID]; exists {
		brd.Status = status
		s.brds[brdID] = brd
	}
}

// AssignBA records the active BA for a BRD.
func (s *Store) AssignBA(brdID string, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baAssigned[brdID] = email
}

// AssignBiller records the active Biller for a BRD.
func (s *Store) AssignBiller(brdID string, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.billerAssigned[brdID] = email
}

func (s *Store) GetBRD(_ context.Context, brdID string) (entities.BRDView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.brds[strings.TrimSpace(brdID)]
	if !exists {
		return entities.BRDView{}, domainerrors.ErrBRDNotFound
	}
	return item, nil
}

func (s *Store) IsBAAssigned(_ context.Context, brdID string, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baAssigned[strings.TrimSpace(brdID)] == strings.TrimSpace(email), nil
}

func (s *Store) IsBillerAssigned(_ context.Context, brdID string, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.billerAssigned[strings.TrimSpace(brdID)] == strings.TrimSpace(email), nil
}

func (s *Store) ListGroups(_ context.Context, brdID string, filter ports.GroupFilter) ([]entities.CommentGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.CommentGroup, 0)
	for _, group := range s.groups {
		if group.BRDID != strings.TrimSpace(brdID) {
			continue
		}
		if filter.SourceType != "" && group.SourceType != filter.SourceType {
			continue
		}
		if filter.SiteID != "" && group.SiteID != filter.SiteID {
			continue
		}
		if filter.SectionName != "" && group.SectionName != filter.SectionName {
			continue
		}
		if filter.FieldPath != "" && group.FieldPath != filter.FieldPath {
			continue
		}
		items = append(items, group)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) GetGroupByKey(_ context.Context, key ports.GroupKey) (entities.CommentGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, group := range s.groups {
		if group.BRDID == key.BRDID &&
			group.SourceType == key.SourceType &&
			group.SiteID == key.SiteID &&
			group.SectionName == key.SectionName &&
			group.FieldPath == key.FieldPath {
			return group, nil
		}
	}
	return entities.CommentGroup{}, domainerrors.ErrCommentGroupNotFound
}

func (s *Store) GetGroup(_ context.Context, groupID string) (entities.CommentGroup, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	group, exists := s.groups[strings.TrimSpace(groupID)]
	if !exists {
		return entities.CommentGroup{}, domainerrors.ErrCommentGroupNotFound
	}
	return group, nil
}

func (s *Store) CreateGroup(_ context.Context, group entities.CommentGroup) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.groups[group.GroupID]; exists {
		return domainerrors.ErrInvalidCommentRequest
	}
	s.groups[group.GroupID] = group
	return nil
}

func (s *Store) AppendEntry(_ context.Context, groupID string, entry entities.CommentEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, exists := s.groups[strings.TrimSpace(groupID)]
	if !exists {
		return domainerrors.ErrCommentGroupNotFound
	}
	group.Entries = append(group.Entries, entry)
	group.UpdatedAt = entry.CreatedAt
	s.groups[group.GroupID] = group
	return nil
}

func (s *Store) UpdateGroupStatus(_ context.Context, groupID string, status entities.GroupStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, exists := s.groups[strings.TrimSpace(groupID)]
	if !exists {
		return domainerrors.ErrCommentGroupNotFound
	}
	group.Status = status
	group.UpdatedAt = updatedAt.UTC()
	s.groups[group.GroupID] = group
	return nil
}

func (s *Store) MarkEntriesRead(_ context.Context, groupID string, reader string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	group, exists := s.groups[strings.TrimSpace(groupID)]
	if !exists {
		return domainerrors.ErrCommentGroupNotFound
	}
	for i := range group.Entries {
		if containsReader(group.Entries[i].ReadBy, reader) {
			continue
		}
		group.Entries[i].ReadBy = append(group.Entries[i].ReadBy, reader)
	}
	s.groups[group.GroupID] = group
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func containsReader(readers []string, reader string) bool {
	for _, item := range readers {
		if item == reader {
			return true
		}
	}
	return false
}
