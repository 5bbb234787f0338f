package commands

import (
	"context"
	"errors"
	"testing"

	"brdflow/contexts/brd-onboarding/assignment-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/assignment-service/domain/errors"
)

func newBatchUseCase(brds *fakeBRDReader, users *fakeDirectory, assignments *fakeAssignments) ReassignManyUseCase {
	return ReassignManyUseCase{
		Reassign: newReassignUseCase(brds, users, assignments),
	}
}

func TestReassignManyRequiresManager(t *testing.T) {
	uc := newBatchUseCase(&fakeBRDReader{}, &fakeDirectory{}, &fakeAssignments{})

	_, err := uc.Execute(context.Background(), ReassignManyCommand{
		ActorRole: entities.RoleBA,
		Items:     []ReassignItem{{BRDID: "brd-1", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA}},
	})
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestReassignManyEmptyBatchRejected(t *testing.T) {
	uc := newBatchUseCase(&fakeBRDReader{}, &fakeDirectory{}, &fakeAssignments{})

	_, err := uc.Execute(context.Background(), ReassignManyCommand{ActorRole: entities.RoleManager})
	if !errors.Is(err, domainerrors.ErrInvalidAssignmentRequest) {
		t.Fatalf("expected ErrInvalidAssignmentRequest, got %v", err)
	}
}

func TestReassignManyAllSucceed(t *testing.T) {
	assignments := &fakeAssignments{}
	uc := newBatchUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-1": true, "brd-2": true}},
		&fakeDirectory{roles: map[string]entities.Role{"ba@example.com": entities.RoleBA}},
		assignments,
	)

	result, err := uc.Execute(context.Background(), ReassignManyCommand{
		ActorRole: entities.RoleManager,
		Items: []ReassignItem{
			{BRDID: "brd-1", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
			{BRDID: "brd-2", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
		},
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if result.Status != BatchStatusSuccess {
		t.Fatalf("status = %q, want %q", result.Status, BatchStatusSuccess)
	}
	if result.Applied != 2 || result.Failed != 0 {
		t.Fatalf("unexpected counts: %+v", result)
	}
	if len(result.Errors) != 0 {
		t.Fatalf("expected no error entries, got %v", result.Errors)
	}
	if len(assignments.replaced) != 2 {
		t.Fatalf("expected 2 replacements, got %d", len(assignments.replaced))
	}
}

func TestReassignManyPartialFailureContinues(t *testing.T) {
	assignments := &fakeAssignments{}
	uc := newBatchUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-1": true, "brd-3": true}},
		&fakeDirectory{roles: map[string]entities.Role{"ba@example.com": entities.RoleBA}},
		assignments,
	)

	result, err := uc.Execute(context.Background(), ReassignManyCommand{
		ActorRole: entities.RoleManager,
		Items: []ReassignItem{
			{BRDID: "brd-1", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
			{BRDID: "brd-2", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
			{BRDID: "brd-3", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
		},
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if result.Status != BatchStatusFailure {
		t.Fatalf("status = %q, want %q", result.Status, BatchStatusFailure)
	}
	if result.Applied != 2 || result.Failed != 1 {
		t.Fatalf("unexpected counts: applied=%d failed=%d", result.Applied, result.Failed)
	}

	if len(result.Items) != 3 {
		t.Fatalf("expected results in input order, got %d items", len(result.Items))
	}
	if !result.Items[0].Success || result.Items[1].Success || !result.Items[2].Success {
		t.Fatalf("unexpected item outcomes: %+v", result.Items)
	}

	message, ok := result.Errors["error1"]
	if !ok {
		t.Fatalf("expected error1 entry, got %v", result.Errors)
	}
	want := "Failed to reassign BRD brd-2: BRD not found"
	if message != want {
		t.Fatalf("error1 = %q, want %q", message, want)
	}

	// The failed item must not leave any assignment behind.
	if _, ok, _ := assignments.GetActive(context.Background(), "brd-2", entities.AssigneeBA); ok {
		t.Fatalf("failed item produced an assignment")
	}
}

func TestReassignManyNumbersErrorsInFailureOrder(t *testing.T) {
	uc := newBatchUseCase(
		&fakeBRDReader{known: map[string]bool{"brd-2": true}},
		&fakeDirectory{roles: map[string]entities.Role{"ba@example.com": entities.RoleBA}},
		&fakeAssignments{},
	)

	result, err := uc.Execute(context.Background(), ReassignManyCommand{
		ActorRole: entities.RoleManager,
		Items: []ReassignItem{
			{BRDID: "brd-1", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
			{BRDID: "brd-2", AssigneeEmail: "pm@example.com", AssigneeRole: entities.AssigneeBA},
			{BRDID: "brd-3", AssigneeEmail: "ba@example.com", AssigneeRole: entities.AssigneeBA},
		},
	})
	if err != nil {
		t.Fatalf("batch failed: %v", err)
	}
	if result.Failed != 3 {
		t.Fatalf("expected 3 failures, got %d", result.Failed)
	}
	if result.Errors["error1"] != "Failed to reassign BRD brd-1: BRD not found" {
		t.Fatalf("unexpected error1: %q", result.Errors["error1"])
	}
	if result.Errors["error2"] != "Failed to reassign BRD brd-2: User pm@example.com is not a BA" {
		t.Fatalf("unexpected error2: %q", result.Errors["error2"])
	}
	if result.Errors["error3"] != "Failed to reassign BRD brd-3: BRD not found" {
		t.Fatalf("unexpected error3: %q", result.Errors["error3"])
	}
}
