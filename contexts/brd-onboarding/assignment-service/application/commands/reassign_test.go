package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
	"brdflow/contexts/brd-onboarding/assignment-service/ports"
)

type fakeBRDReader struct {
	known map[string]bool
	calls int
}

func (f *fakeBRDReader) GetBRD(_ context.Context, brdID string) (ports.BRDView, error) {
	f.calls++
	if !f.known[brdID] {
		return ports.BRDView{}, domainerrors.ErrBRDNotFound
	}
	return ports.BRDView{BRDID: brdID, Status: "In Progress"}, nil
}

type fakeDirectory struct {
	roles map[string]entities.Role
}

func (f *fakeDirectory) GetUserRole(_ context.Context, email string) (entities.Role, error) {
	role, ok := f.roles[email]
	if !ok {
		return "", domainerrors.ErrUserNotFound
	}
	return role, nil
}

type fakeAssignments struct {
	active   map[string]entities.Assignment // key brdID|role
	replaced []ports.ReplaceInput
}

func key(brdID string, role entities.AssigneeRole) string {
	return brdID + "|" + string(role)
}

func (f *fakeAssignments) GetActive(_ context.Context, brdID string, roleType entities.AssigneeRole) (entities.Assignment, bool, error) {
	assignment, ok := f.active[key(brdID, roleType)]
	return assignment, ok, nil
}

func (f *fakeAssignments) Replace(_ context.Context, input ports.ReplaceInput) (entities.Assignment, error) {
	f.replaced = append(f.replaced, input)
	assignment := entities.Assignment{
		AssignmentID:  input.AssignmentID,
		BRDID:         input.BRDID,
		AssigneeEmail: input.AssigneeEmail,
		AssigneeRole:  input.AssigneeRole,
		Active:        true,
		AssignedAt:    input.AssignedAt,
		UpdatedAt:     input.UpdatedAt,
	}
	if f.active == nil {
		f.active = map[string]entities.Assignment{}
	}
	f.active[key(input.BRDID, input.AssigneeRole)] = assignment
	return assignment, nil
}

func (f *fakeAssignments) IsAssigned(context.Context, string, string, entities.AssigneeRole) (bool, error) {
	return false, nil
}

func (f *fakeAssignments) ListByAssignee(context.Context, string, entities.AssigneeRole) ([]entities.Assignment, error) {
	return nil, nil
}

func (f *fakeAssignments) ListAssigneeEmails(context.Context, entities.AssigneeRole) ([]string, error) {
	return nil, nil
}

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type seqIDGen struct{ next int }

func (g *seqIDGen) NewID(context.Context) (string, error) {
	g.next++
	return fmt.Sprintf("assignment-%d", g.next), nil
}

var testNow = time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

func newReassignUseCase(brds *fakeBRDReader, users *fakeDirectory, assignments *fakeAssignments) ReassignUseCase {
	return ReassignUseCase{
		BRDs:        brds,
		Users:       users,
		Assignments: assignments,
		Clock:       fixedClock{at: testNow},
		IDGen:       &seqIDGen{},
	}
}

func TestReassignRequiresManagerBeforeAnyPortCall(t *testing.T) {
	brds := &fakeBRDReader{known: map[string]bool{"brd-1": true}}
	uc := newReassignUseCase(brds, &fakeDirectory{}, &fakeAssignments{})

	for _, role := range []entities.Role{entities.RolePM, entities.RoleBA, entities.RoleBiller} {
		_, err := uc.Execute(context.Background(), ReassignCommand{
			ActorRole:     role,
			BRDID:         "brd-1",
			AssigneeEmail: "ba@example.com",
			AssigneeRole:  entities.AssigneeBA,
		})
		if !errors.Is(err, domainerrors.ErrForbidden) {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
		if err.Error() != "Access denied: Only managers can reassign BRDs" {
			t.Fatalf("unexpected denial message: %q", err.Error())
		}
	}
	if brds.calls != 0 {
		t.Fatalf("expected no BRD lookups for denied roles, got %d", brds.calls)
	}
}

func TestReassignUnknownBRD(t *testing.T) {
	uc := newReassignUseCase(
		&fakeBRDReader{known: map[string]bool{}},
		&fakeDirectory{roles: map[string]entities.Role{"ba@example.com": entities.RoleBA}},
		&fakeAssignments{},
	)

	_, err := uc.Execute(context.Background(), ReassignCommand{
		ActorRole:     entities.RoleManager,
		BRDID:         "brd-missing",
		AssigneeEmail: "ba@example.com",
		AssigneeRole:  entities.AssigneeBA,
	})
	if !errors.Is(err, domainerrors.ErrBRDNotFound) {
		t.Fatalf("expected ErrBRDNotFound, got %v", err)
	}
}

func TestReassignTargetRoleMismatch(t *testing.T) {
	uc := newReassignUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-1": true}},
		&fakeDirectory{roles: map[string]entities.Role{
			"pm@example.com":     entities.RolePM,
			"biller@example.com": entities.RoleBiller,
		}},
		&fakeAssignments{},
	)

	_, err := uc.Execute(context.Background(), ReassignCommand{
		ActorRole:     entities.RoleManager,
		BRDID:         "brd-1",
		AssigneeEmail: "pm@example.com",
		AssigneeRole:  entities.AssigneeBA,
	})
	if !errors.Is(err, domainerrors.ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
	if err.Error() != "User pm@example.com is not a BA" {
		t.Fatalf("unexpected message: %q", err.Error())
	}

	_, err = uc.Execute(context.Background(), ReassignCommand{
		ActorRole:     entities.RoleManager,
		BRDID:         "brd-1",
		AssigneeEmail: "biller@example.com",
		AssigneeRole:  entities.AssigneeBA,
	})
	if err == nil || err.Error() != "User biller@example.com is not a BA" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReassignUnknownUserReportsRoleMismatch(t *testing.T) {
	uc := newReassignUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-1": true}},
		&fakeDirectory{roles: map[string]entities.Role{}},
		&fakeAssignments{},
	)

	_, err := uc.Execute(context.Background(), ReassignCommand{
		ActorRole:     entities.RoleManager,
		BRDID:         "brd-1",
		AssigneeEmail: "ghost@example.com",
		AssigneeRole:  entities.AssigneeBiller,
	})
	if !errors.Is(err, domainerrors.ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
	if err.Error() != "User ghost@example.com is not a Biller" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestReassignPreservesOriginalAssignedAt(t *testing.T) {
	originalAssignedAt := testNow.Add(-72 * time.Hour)
	assignments := &fakeAssignments{active: map[string]entities.Assignment{
		key("brd-1", entities.AssigneeBA): {
			AssignmentID:  "assignment-old",
			BRDID:         "brd-1",
			AssigneeEmail: "old-ba@example.com",
			AssigneeRole:  entities.AssigneeBA,
			Active:        true,
			AssignedAt:    originalAssignedAt,
			UpdatedAt:     originalAssignedAt,
		},
	}}
	uc := newReassignUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-1": true}},
		&fakeDirectory{roles: map[string]entities.Role{"new-ba@example.com": entities.RoleBA}},
		assignments,
	)

	result, err := uc.Execute(context.Background(), ReassignCommand{
		ActorRole:     entities.RoleManager,
		ActorIdentity: "manager@example.com",
		BRDID:         "brd-1",
		AssigneeEmail: "new-ba@example.com",
		AssigneeRole:  entities.AssigneeBA,
	})
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if !result.AssignedAt.Equal(originalAssignedAt) {
		t.Fatalf("AssignedAt = %v, want preserved %v", result.AssignedAt, originalAssignedAt)
	}
	if !result.UpdatedAt.Equal(testNow) {
		t.Fatalf("UpdatedAt = %v, want %v", result.UpdatedAt, testNow)
	}
	if result.AssigneeEmail != "new-ba@example.com" {
		t.Fatalf("unexpected assignee %q", result.AssigneeEmail)
	}
}

func TestReassignFirstAssignmentUsesNow(t *testing.T) {
	uc := newReassignUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-1": true}},
		&fakeDirectory{roles: map[string]entities.Role{"biller@example.com": entities.RoleBiller}},
		&fakeAssignments{},
	)

	result, err := uc.Execute(context.Background(), ReassignCommand{
		ActorRole:     entities.RoleManager,
		BRDID:         "brd-1",
		AssigneeEmail: "biller@example.com",
		AssigneeRole:  entities.AssigneeBiller,
	})
	if err != nil {
		t.Fatalf("reassign failed: %v", err)
	}
	if !result.AssignedAt.Equal(testNow) {
		t.Fatalf("AssignedAt = %v, want %v", result.AssignedAt, testNow)
	}
}
