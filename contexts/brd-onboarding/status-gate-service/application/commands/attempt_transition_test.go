package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/status-gate-service/domain/errors"
	"brdflow/contexts/brd-onboarding/status-gate-service/ports"
)

type fakeBRDRepo struct {
	brd          entities.BRD
	getErr       error
	updateErr    error
	getCalls     int
	updateCalls  int
	lastStatus   entities.BRDStatus
	lastUpdateAt time.Time
}

func (f *fakeBRDRepo) CreateBRD(context.Context, entities.BRD) error { return nil }

func (f *fakeBRDRepo) GetBRD(_ context.Context, brdID string) (entities.BRD, error) {
	f.getCalls++
	if f.getErr != nil {
		return entities.BRD{}, f.getErr
	}
	return f.brd, nil
}

func (f *fakeBRDRepo) UpdateStatus(_ context.Context, _ string, status entities.BRDStatus, updatedAt time.Time) error {
	f.updateCalls++
	f.lastStatus = status
	f.lastUpdateAt = updatedAt
	return f.updateErr
}

type fakeHistoryRepo struct {
	items     []entities.StatusHistory
	appendErr error
}

func (f *fakeHistoryRepo) AppendStatus(_ context.Context, item entities.StatusHistory) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.items = append(f.items, item)
	return nil
}

func (f *fakeHistoryRepo) ListByBRD(context.Context, string) ([]entities.StatusHistory, error) {
	return f.items, nil
}

type fakeOutbox struct {
	messages []ports.OutboxMessage
}

func (f *fakeOutbox) EnqueueOutbox(_ context.Context, message ports.OutboxMessage) error {
	f.messages = append(f.messages, message)
	return nil
}

func (f *fakeOutbox) ListPendingOutbox(context.Context, int) ([]ports.OutboxMessage, error) {
	return f.messages, nil
}

func (f *fakeOutbox) MarkOutboxPublished(context.Context, string, time.Time) error { return nil }

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type seqIDGen struct{ next int }

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("id-%d", g.next), nil
}

func newTransitionUseCase(repo *fakeBRDRepo, history *fakeHistoryRepo, outbox *fakeOutbox) AttemptTransitionUseCase {
	return AttemptTransitionUseCase{
		BRDs:    repo,
		History: history,
		Outbox:  outbox,
		Clock:   fixedClock{at: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)},
		IDGen:   &seqIDGen{},
	}
}

func TestAttemptTransitionEmptyIDRejectedBeforeLookup(t *testing.T) {
	repo := &fakeBRDRepo{}
	uc := newTransitionUseCase(repo, &fakeHistoryRepo{}, &fakeOutbox{})

	_, err := uc.Execute(context.Background(), AttemptTransitionCommand{
		BRDID:        "   ",
		Role:         entities.RolePM,
		TargetStatus: string(entities.StatusInProgress),
	})
	if !errors.Is(err, domainerrors.ErrEmptyBRDID) {
		t.Fatalf("expected ErrEmptyBRDID, got %v", err)
	}
	if repo.getCalls != 0 {
		t.Fatalf("expected no repository lookup, got %d", repo.getCalls)
	}
}

func TestAttemptTransitionUnrecognizedStatusRejectedBeforeLookup(t *testing.T) {
	repo := &fakeBRDRepo{}
	uc := newTransitionUseCase(repo, &fakeHistoryRepo{}, &fakeOutbox{})

	_, err := uc.Execute(context.Background(), AttemptTransitionCommand{
		BRDID:        "brd-1",
		Role:         entities.RolePM,
		TargetStatus: "Archived",
	})
	if !errors.Is(err, domainerrors.ErrInvalidStatusRequest) {
		t.Fatalf("expected ErrInvalidStatusRequest, got %v", err)
	}
	if repo.getCalls != 0 {
		t.Fatalf("expected no repository lookup, got %d", repo.getCalls)
	}
}

func TestAttemptTransitionIneligibleRoleForbidden(t *testing.T) {
	repo := &fakeBRDRepo{brd: entities.BRD{BRDID: "brd-1", Status: entities.StatusDraft}}
	uc := newTransitionUseCase(repo, &fakeHistoryRepo{}, &fakeOutbox{})

	_, err := uc.Execute(context.Background(), AttemptTransitionCommand{
		BRDID:        "brd-1",
		Role:         entities.RoleBiller,
		TargetStatus: string(entities.StatusInReview),
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	want := "Access denied: Biller can only update BRDs with status 'In Progress'"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("expected no status write after denial, got %d", repo.updateCalls)
	}
}

func TestAttemptTransitionRepositoryRejectionRemapped(t *testing.T) {
	repo := &fakeBRDRepo{
		brd:       entities.BRD{BRDID: "brd-1", Status: entities.StatusInternalReview},
		updateErr: domainerrors.ErrStatusRejected,
	}
	uc := newTransitionUseCase(repo, &fakeHistoryRepo{}, &fakeOutbox{})

	_, err := uc.Execute(context.Background(), AttemptTransitionCommand{
		BRDID:        "brd-1",
		Role:         entities.RoleBA,
		TargetStatus: string(entities.StatusInReview),
	})
	if !errors.Is(err, domainerrors.ErrInvalidStatusRequest) {
		t.Fatalf("expected repository rejection remapped to ErrInvalidStatusRequest, got %v", err)
	}
}

func TestAttemptTransitionRecordsHistoryAndOutbox(t *testing.T) {
	repo := &fakeBRDRepo{brd: entities.BRD{BRDID: "brd-1", Status: entities.StatusInProgress}}
	history := &fakeHistoryRepo{}
	outbox := &fakeOutbox{}
	uc := newTransitionUseCase(repo, history, outbox)

	result, err := uc.Execute(context.Background(), AttemptTransitionCommand{
		BRDID:        "brd-1",
		Role:         entities.RoleBiller,
		Identity:     "biller@example.com",
		TargetStatus: string(entities.StatusInternalReview),
		Comment:      "sites captured",
	})
	if err != nil {
		t.Fatalf("transition failed: %v", err)
	}
	if result.FromStatus != entities.StatusInProgress || result.ToStatus != entities.StatusInternalReview {
		t.Fatalf("unexpected result statuses: %+v", result)
	}

	if len(history.items) != 1 {
		t.Fatalf("expected one history row, got %d", len(history.items))
	}
	row := history.items[0]
	if row.FromStatus != entities.StatusInProgress || row.ToStatus != entities.StatusInternalReview {
		t.Fatalf("unexpected history row: %+v", row)
	}
	if row.ChangedBy != "biller@example.com" || row.Comment != "sites captured" {
		t.Fatalf("unexpected history attribution: %+v", row)
	}

	if len(outbox.messages) != 1 {
		t.Fatalf("expected one outbox message, got %d", len(outbox.messages))
	}
	if outbox.messages[0].EventType != "brd.status_changed" {
		t.Fatalf("unexpected event type %q", outbox.messages[0].EventType)
	}
}

func TestAttemptTransitionPMMayMoveFromAnyStatus(t *testing.T) {
	for _, from := range []entities.BRDStatus{
		entities.StatusDraft,
		entities.StatusInReview,
		entities.StatusSignedOff,
		entities.StatusConfidential,
	} {
		repo := &fakeBRDRepo{brd: entities.BRD{BRDID: "brd-1", Status: from}}
		uc := newTransitionUseCase(repo, &fakeHistoryRepo{}, &fakeOutbox{})

		_, err := uc.Execute(context.Background(), AttemptTransitionCommand{
			BRDID:        "brd-1",
			Role:         entities.RolePM,
			Identity:     "pm@example.com",
			TargetStatus: string(entities.StatusInProgress),
		})
		if err != nil {
			t.Fatalf("pm transition from %q failed: %v", from, err)
		}
	}
}
