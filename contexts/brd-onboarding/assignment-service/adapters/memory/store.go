// Package memory provides in-memory adapters for assignment-service used by
// tests and local development.
package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"
)

// Store implements every assignment-service port over process memory.
// Deactivated assignment rows are kept so replacement history stays visible.
type Store struct {
	mu          sync.RWMutex
	brds        map[string]ports.BRDView
	users       map[string]entities.Role
	assignments []entities.Assignment
}

func NewStore(seed []ports.BRDView) *Store {
	store := &Store{
		brds:  map[string]ports.BRDView{},
		users: map[string]entities.Role{},
	}
	for _, brd := range seed {
		store.brds[brd.BRDID] = brd
	}
	return store
}

// SeedBRD registers a BRD view for lookup. Test helper.
func (s *Store) SeedBRD(brd ports.BRDView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brds[brd.BRDID] = brd
}

// SeedUser registers a directory identity with its platform role. Test helper.
func (s *Store) SeedUser(email string, role entities.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[normalizeEmail(email)] = role
}

// SeedAssignment inserts an assignment row directly. Test helper.
func (s *Store) SeedAssignment(assignment entities.Assignment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assignments = append(s.assignments, assignment)
}

func (s *Store) GetBRD(ctx context.Context, brdID string) (ports.BRDView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	brd, ok := s.brds[brdID]
	if !ok {
		return ports.BRDView{}, domainerrors.ErrBRDNotFound
	}
	return brd, nil
}

func (s *Store) GetUserRole(ctx context.Context, email string) (entities.Role, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	role, ok := s.users[normalizeEmail(email)]
	if !ok {
		return "", domainerrors.ErrUserNotFound
	}
	return role, nil
}

func (s *Store) GetActive(ctx context.Context, brdID string, roleType entities.AssigneeRole) (entities.Assignment, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, assignment := range s.assignments {
		if assignment.Active && assignment.BRDID == brdID && assignment.AssigneeRole == roleType {
			return assignment, true, nil
		}
	}
	return entities.Assignment{}, false, nil
}

func (s *Store) Replace(ctx context.Context, input ports.ReplaceInput) (entities.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].Active &&
			s.assignments[i].BRDID == input.BRDID &&
			s.assignments[i].AssigneeRole == input.AssigneeRole {
			s.assignments[i].Active = false
			s.assignments[i].UpdatedAt = input.UpdatedAt
		}
	}
	assignment := entities.Assignment{
		AssignmentID:  input.AssignmentID,
		BRDID:         input.BRDID,
		AssigneeEmail: input.AssigneeEmail,
		AssigneeRole:  input.AssigneeRole,
		Active:        true,
		AssignedAt:    input.AssignedAt,
		UpdatedAt:     input.UpdatedAt,
	}
	s.assignments = append(s.assignments, assignment)
	return assignment, nil
}

func (s *Store) IsAssigned(ctx context.Context, brdID string, email string, roleType entities.AssigneeRole) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = normalizeEmail(email)
	for _, assignment := range s.assignments {
		if assignment.Active &&
			assignment.BRDID == brdID &&
			assignment.AssigneeRole == roleType &&
			normalizeEmail(assignment.AssigneeEmail) == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) ListByAssignee(ctx context.Context, email string, roleType entities.AssigneeRole) ([]entities.Assignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	email = normalizeEmail(email)
	out := make([]entities.Assignment, 0)
	for _, assignment := range s.assignments {
		if assignment.Active &&
			assignment.AssigneeRole == roleType &&
			normalizeEmail(assignment.AssigneeEmail) == email {
			out = append(out, assignment)
		}
	}
	return out, nil
}

func (s *Store) ListAssigneeEmails(ctx context.Context, roleType entities.AssigneeRole) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := map[string]bool{}
	out := make([]string, 0)
	for _, assignment := range s.assignments {
		if !assignment.Active || assignment.AssigneeRole != roleType {
			continue
		}
		email := normalizeEmail(assignment.AssigneeEmail)
		if !seen[email] {
			seen[email] = true
			out = append(out, email)
		}
	}
	return out, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(strings.ToLower(email))
}
