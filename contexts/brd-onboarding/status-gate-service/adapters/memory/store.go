package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing repository/history/outbox ports.
// It is intended for tests and local development wiring.
type Store struct {
	mu sync.RWMutex

	brds      map[string]entities.BRD
	stateLog  []entities.StatusHistory
	outbox    map[string]outboxRow
	outboxIDs []string
}

type outboxRow struct {
	ports.OutboxMessage
	PublishedAt *time.Time
}

func NewStore(seed []entities.BRD) *Store {
	brds := make(map[string]entities.BRD, len(seed))
	for _, item := range seed {
		brds[item.BRDID] = item
	}
	return &Store{
		brds:     brds,
		stateLog: make([]entities.StatusHistory, 0),
		outbox:   make(map[string]outboxRow),
	}
}

func (s *Store) CreateBRD(_ context.Context, brd entities.BRD) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.brds[brd.BRDID]; exists {
		return domainerrors.ErrDuplicateBRD
	}
	s.brds[brd.BRDID] = brd
	return nil
}

func (s *Store) GetBRD(_ context.Context, brdID string) (entities.BRD, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.brds[strings.TrimSpace(brdID)]
	if !exists {
		return entities.BRD{}, domainerrors.ErrBRDNotFound
	}
	return item, nil
}

func (s *Store) UpdateStatus(_ context.Context, brdID string, status entities.BRDStatus, updatedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, exists := s.brds[strings.TrimSpace(brdID)]
	if !exists {
		return domainerrors.ErrBRDNotFound
	}
	if !entities.IsRecognizedStatus(string(status)) {
		return domainerrors.ErrStatusRejected
	}
	item.Status = status
	item.UpdatedAt = updatedAt.UTC()
	s.brds[item.BRDID] = item
	return nil
}

func (s *Store) AppendStatus(_ context.Context, item entities.StatusHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stateLog = append(s.stateLog, item)
	return nil
}

func (s *Store) ListByBRD(_ context.Context, brdID string) ([]entities.StatusHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entities.StatusHistory, 0)
	for _, item := range s.stateLog {
		if item.BRDID == strings.TrimSpace(brdID) {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items, nil
}

func (s *Store) EnqueueOutbox(_ context.Context, message ports.OutboxMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outbox[message.OutboxID] = outboxRow{OutboxMessage: message}
	s.outboxIDs = append(s.outboxIDs, message.OutboxID)
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ports.OutboxMessage, 0)
	for _, id := range s.outboxIDs {
		row, exists := s.outbox[id]
		if !exists || row.PublishedAt != nil {
			continue
		}
		items = append(items, row.OutboxMessage)
		if len(items) >= limit {
			break
		}
	}
	return items, nil
}

func (s *Store) MarkOutboxPublished(_ context.Context, outboxID string, publishedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, exists := s.outbox[outboxID]
	if !exists {
		return nil
	}
	at := publishedAt.UTC()
	row.PublishedAt = &at
	s.outbox[outboxID] = row
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
