package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
)

type countingBRDReader struct {
	brd   entities.BRDView
	err   error
	calls int
}

func (r *countingBRDReader) GetBRD(context.Context, string) (entities.BRDView, error) {
	r.calls++
	if r.err != nil {
		return entities.BRDView{}, r.err
	}
	return r.brd, nil
}

type countingAssignments struct {
	assigned bool
	calls    int
}

func (a *countingAssignments) IsBAAssigned(context.Context, string, string) (bool, error) {
	a.calls++
	return a.assigned, nil
}

func (a *countingAssignments) IsBillerAssigned(context.Context, string, string) (bool, error) {
	a.calls++
	return a.assigned, nil
}

type guardClock struct{}

func (guardClock) Now() time.Time { return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) }

func TestGuardEmptyIDRejectedBeforeAnyPortCall(t *testing.T) {
	brds := &countingBRDReader{}
	assignments := &countingAssignments{}
	guard := AccessGuard{BRDs: brds, Assignments: assignments, Clock: guardClock{}}

	_, err := guard.Require(context.Background(), "  ", entities.RoleBA, "ba@example.com")
	if !errors.Is(err, domainerrors.ErrEmptyBRDID) {
		t.Fatalf("expected ErrEmptyBRDID, got %v", err)
	}
	if brds.calls != 0 || assignments.calls != 0 {
		t.Fatalf("expected no port calls, got brds=%d assignments=%d", brds.calls, assignments.calls)
	}
}

func TestGuardUnknownBRDPropagatesNotFound(t *testing.T) {
	brds := &countingBRDReader{err: domainerrors.ErrBRDNotFound}
	guard := AccessGuard{BRDs: brds, Assignments: &countingAssignments{}, Clock: guardClock{}}

	_, err := guard.Require(context.Background(), "brd-missing", entities.RolePM, "pm@example.com")
	if !errors.Is(err, domainerrors.ErrBRDNotFound) {
		t.Fatalf("expected ErrBRDNotFound, got %v", err)
	}
}

func TestGuardDenialWrapsForbiddenWithReason(t *testing.T) {
	brds := &countingBRDReader{brd: entities.BRDView{
		BRDID:           "brd-1",
		Status:          entities.StatusDraft,
		CreatorUsername: "pm@example.com",
	}}
	assignments := &countingAssignments{assigned: true}
	guard := AccessGuard{BRDs: brds, Assignments: assignments, Clock: guardClock{}}

	_, err := guard.Require(context.Background(), "brd-1", entities.RoleBA, "ba@example.com")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	want := "Access denied: BRD status must be 'Internal Review' for BA operations"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
	if assignments.calls != 0 {
		t.Fatalf("expected no assignment lookup after failed status gate, got %d", assignments.calls)
	}
}

func TestGuardGrantReturnsBRDView(t *testing.T) {
	brds := &countingBRDReader{brd: entities.BRDView{
		BRDID:           "brd-1",
		Status:          entities.StatusInternalReview,
		CreatorUsername: "pm@example.com",
	}}
	guard := AccessGuard{BRDs: brds, Assignments: &countingAssignments{assigned: true}, Clock: guardClock{}}

	brd, err := guard.Require(context.Background(), "brd-1", entities.RoleBA, "ba@example.com")
	if err != nil {
		t.Fatalf("require failed: %v", err)
	}
	if brd.BRDID != "brd-1" {
		t.Fatalf("unexpected brd view: %+v", brd)
	}
}
