package unit

import (
	"context"
	"errors"
	"testing"

	commentaccess "brdflow/contexts/brd-onboarding/comment-access-service"
	"brdflow/contexts/brd-onboarding/comment-access-service/adapters/memory"
	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
	domainerrors "brdflow/contexts/brd-onboarding/comment-access-service/domain/errors"
	httptransport "brdflow/contexts/brd-onboarding/comment-access-service/transport/http"
)

func seedCommentModule(t *testing.T) commentaccess.Module {
	t.Helper()
	module := commentaccess.NewInMemoryModule(nil, []entities.BRDView{
		{BRDID: "brd-1", Status: entities.StatusInternalReview, CreatorUsername: "pm@example.com"},
		{BRDID: "brd-2", Status: entities.StatusDraft, CreatorUsername: "pm@example.com"},
	})
	module.Store.AssignBA("brd-1", "ba@example.com")
	module.Store.AssignBiller("brd-1", "biller@example.com")
	return module
}

func TestCommentAccessManagerAlwaysDenied(t *testing.T) {
	module := seedCommentModule(t)

	_, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-1", "MANAGER", "manager@example.com", "", "", "", "",
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	want := "Access denied: Managers are not allowed to access comment operations"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestCommentAccessPMCreatorOnly(t *testing.T) {
	module := seedCommentModule(t)

	if _, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-2", "PM", "pm@example.com", "", "", "", "",
	); err != nil {
		t.Fatalf("creator pm denied: %v", err)
	}

	_, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-2", "PM", "other-pm@example.com", "", "", "", "",
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	want := "Access denied: PM can only access BRDs they created"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

func TestCommentAccessBAStatusGateEndToEnd(t *testing.T) {
	module := seedCommentModule(t)

	// Assigned BA on Internal Review: allowed.
	if _, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-1", "BA", "ba@example.com", "", "", "", "",
	); err != nil {
		t.Fatalf("assigned ba denied: %v", err)
	}

	// Same BA after the BRD moves on: denied by the status gate.
	module.Store.SetBRDStatus("brd-1", entities.StatusInReview)
	_, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-1", "BA", "ba@example.com", "", "", "", "",
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	want := "Access denied: BRD status must be 'Internal Review' for BA operations"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}

// countingAssignments wraps the memory store to count assignment lookups.
type countingAssignments struct {
	store *memory.Store
	calls int
}

func (c *countingAssignments) IsBAAssigned(ctx context.Context, brdID string, email string) (bool, error) {
	c.calls++
	return c.store.IsBAAssigned(ctx, brdID, email)
}

func (c *countingAssignments) IsBillerAssigned(ctx context.Context, brdID string, email string) (bool, error) {
	c.calls++
	return c.store.IsBillerAssigned(ctx, brdID, email)
}

func TestCommentAccessStatusGateSkipsAssignmentLookup(t *testing.T) {
	store := memory.NewStore([]entities.BRDView{
		{BRDID: "brd-1", Status: entities.StatusDraft, CreatorUsername: "pm@example.com"},
	})
	store.AssignBA("brd-1", "ba@example.com")
	counting := &countingAssignments{store: store}

	module := commentaccess.NewModule(commentaccess.Dependencies{
		BRDs:        store,
		Assignments: counting,
		Comments:    store,
		Clock:       store,
		IDGen:       store,
	})

	_, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-1", "BA", "ba@example.com", "", "", "", "",
	)
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if counting.calls != 0 {
		t.Fatalf("assignment lookup invoked %d times despite failed status gate", counting.calls)
	}
}

func TestCommentAccessEmptyBRDID(t *testing.T) {
	module := seedCommentModule(t)

	_, err := module.Handler.GetCommentsHandler(
		context.Background(), "   ", "BA", "ba@example.com", "", "", "", "",
	)
	if !errors.Is(err, domainerrors.ErrEmptyBRDID) {
		t.Fatalf("expected ErrEmptyBRDID, got %v", err)
	}
	if err.Error() != "BRD ID cannot be empty" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestCommentLifecycleAddResolveMarkRead(t *testing.T) {
	module := seedCommentModule(t)

	added, err := module.Handler.AddCommentHandler(
		context.Background(), "brd-1", "BA", "ba@example.com",
		httptransport.AddCommentRequest{
			SourceType:  "BRD",
			SectionName: "billing",
			FieldPath:   "billing.cycle",
			Text:        "cycle should be monthly",
		},
	)
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}
	if added.Entry.GroupID == "" {
		t.Fatalf("expected a group id on the entry")
	}

	// Second entry on the same field joins the same group.
	second, err := module.Handler.AddCommentHandler(
		context.Background(), "brd-1", "PM", "pm@example.com",
		httptransport.AddCommentRequest{
			SourceType:  "BRD",
			SectionName: "billing",
			FieldPath:   "billing.cycle",
			Text:        "agreed, updating",
		},
	)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if second.Entry.GroupID != added.Entry.GroupID {
		t.Fatalf("entries split across groups: %q vs %q", second.Entry.GroupID, added.Entry.GroupID)
	}

	list, err := module.Handler.GetCommentsHandler(
		context.Background(), "brd-1", "PM", "pm@example.com", "", "", "", "",
	)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list.Groups) != 1 || len(list.Groups[0].Entries) != 2 {
		t.Fatalf("unexpected group shape: %+v", list.Groups)
	}

	if err := module.Handler.UpdateGroupStatusHandler(
		context.Background(), "brd-1", added.Entry.GroupID, "PM", "pm@example.com",
		httptransport.UpdateGroupStatusRequest{Status: "resolved"},
	); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	// Marking read twice is idempotent.
	for i := 0; i < 2; i++ {
		if err := module.Handler.MarkEntriesReadHandler(
			context.Background(), "brd-1", added.Entry.GroupID, "PM", "pm@example.com",
		); err != nil {
			t.Fatalf("mark read (%d) failed: %v", i, err)
		}
	}

	list, err = module.Handler.GetCommentsHandler(
		context.Background(), "brd-1", "PM", "pm@example.com", "", "", "", "",
	)
	if err != nil {
		t.Fatalf("list after resolve failed: %v", err)
	}
	if list.Groups[0].Status != "resolved" {
		t.Fatalf("group status = %q, want resolved", list.Groups[0].Status)
	}
	for _, entry := range list.Groups[0].Entries {
		readers := 0
		for _, reader := range entry.ReadBy {
			if reader == "pm@example.com" {
				readers++
			}
		}
		if readers != 1 {
			t.Fatalf("reader recorded %d times on entry %s", readers, entry.EntryID)
		}
	}
}
