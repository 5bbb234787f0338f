package services

import (
	"context"
	"testing"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
)

type countingLookup struct {
	baAssigned     bool
	billerAssigned bool
	baCalls        int
	billerCalls    int
}

func (c *countingLookup) IsBAAssigned(context.Context, string, string) (bool, error) {
	c.baCalls++
	return c.baAssigned, nil
}

func (c *countingLookup) IsBillerAssigned(context.Context, string, string) (bool, error) {
	c.billerCalls++
	return c.billerAssigned, nil
}

func decide(t *testing.T, role entities.Role, identity string, brd entities.BRDView, lookup *countingLookup) entities.AccessDecision {
	t.Helper()
	decision, err := DecideCommentAccess(context.Background(), AccessInput{
		Role:     role,
		Identity: identity,
		BRD:      brd,
		Now:      time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}, lookup)
	if err != nil {
		t.Fatalf("decide failed: %v", err)
	}
	return decision
}

func TestDecideCommentAccessTable(t *testing.T) {
	brd := func(status entities.BRDStatus) entities.BRDView {
		return entities.BRDView{BRDID: "brd-1", Status: status, CreatorUsername: "pm@example.com"}
	}

	cases := []struct {
		name        string
		role        entities.Role
		identity    string
		brd         entities.BRDView
		baAssigned  bool
		blrAssigned bool
		wantAllowed bool
		wantReason  string
	}{
		{
			name:       "manager always denied",
			role:       entities.RoleManager,
			identity:   "manager@example.com",
			brd:        brd(entities.StatusInProgress),
			wantReason: ReasonManagerDenied,
		},
		{
			name:        "pm creator allowed regardless of status",
			role:        entities.RolePM,
			identity:    "pm@example.com",
			brd:         brd(entities.StatusConfidential),
			wantAllowed: true,
		},
		{
			name:       "pm non-creator denied",
			role:       entities.RolePM,
			identity:   "other-pm@example.com",
			brd:        brd(entities.StatusDraft),
			wantReason: ReasonPMNotCreator,
		},
		{
			name:        "ba assigned in internal review allowed",
			role:        entities.RoleBA,
			identity:    "ba@example.com",
			brd:         brd(entities.StatusInternalReview),
			baAssigned:  true,
			wantAllowed: true,
		},
		{
			name:       "ba wrong status denied",
			role:       entities.RoleBA,
			identity:   "ba@example.com",
			brd:        brd(entities.StatusInReview),
			baAssigned: true,
			wantReason: ReasonBAWrongStatus,
		},
		{
			name:       "ba right status not assigned denied",
			role:       entities.RoleBA,
			identity:   "ba@example.com",
			brd:        brd(entities.StatusInternalReview),
			wantReason: ReasonBANotAssigned,
		},
		{
			name:        "biller assigned in progress allowed",
			role:        entities.RoleBiller,
			identity:    "biller@example.com",
			brd:         brd(entities.StatusInProgress),
			blrAssigned: true,
			wantAllowed: true,
		},
		{
			name:        "biller assigned ready for sign-off allowed",
			role:        entities.RoleBiller,
			identity:    "biller@example.com",
			brd:         brd(entities.StatusReadyForSignoff),
			blrAssigned: true,
			wantAllowed: true,
		},
		{
			name:        "biller wrong status denied",
			role:        entities.RoleBiller,
			identity:    "biller@example.com",
			brd:         brd(entities.StatusSignedOff),
			blrAssigned: true,
			wantReason:  ReasonBillerWrongStatus,
		},
		{
			name:       "biller right status not assigned denied",
			role:       entities.RoleBiller,
			identity:   "biller@example.com",
			brd:        brd(entities.StatusInProgress),
			wantReason: ReasonBillerNotAssigned,
		},
		{
			name:       "unknown role denied by default",
			role:       entities.Role("AUDITOR"),
			identity:   "aud@example.com",
			brd:        brd(entities.StatusInProgress),
			wantReason: ReasonDefaultDenied,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := &countingLookup{baAssigned: tc.baAssigned, billerAssigned: tc.blrAssigned}
			decision := decide(t, tc.role, tc.identity, tc.brd, lookup)
			if decision.Allowed != tc.wantAllowed {
				t.Fatalf("allowed = %v, want %v (reason %q)", decision.Allowed, tc.wantAllowed, decision.Reason)
			}
			if !tc.wantAllowed && decision.Reason != tc.wantReason {
				t.Fatalf("reason = %q, want %q", decision.Reason, tc.wantReason)
			}
		})
	}
}

func TestStatusGateShortCircuitsAssignmentLookup(t *testing.T) {
	lookup := &countingLookup{baAssigned: true, billerAssigned: true}

	decision := decide(t, entities.RoleBA, "ba@example.com", entities.BRDView{
		BRDID:  "brd-1",
		Status: entities.StatusDraft,
	}, lookup)
	if decision.Allowed {
		t.Fatalf("expected denial for ba on draft")
	}
	if lookup.baCalls != 0 {
		t.Fatalf("ba lookup invoked %d times despite failed status gate", lookup.baCalls)
	}

	decision = decide(t, entities.RoleBiller, "biller@example.com", entities.BRDView{
		BRDID:  "brd-1",
		Status: entities.StatusInternalReview,
	}, lookup)
	if decision.Allowed {
		t.Fatalf("expected denial for biller on internal review")
	}
	if lookup.billerCalls != 0 {
		t.Fatalf("biller lookup invoked %d times despite failed status gate", lookup.billerCalls)
	}
}

func TestStatusGatePassInvokesLookupOnce(t *testing.T) {
	lookup := &countingLookup{baAssigned: false}
	decision := decide(t, entities.RoleBA, "ba@example.com", entities.BRDView{
		BRDID:  "brd-1",
		Status: entities.StatusInternalReview,
	}, lookup)
	if decision.Allowed {
		t.Fatalf("expected denial for unassigned ba")
	}
	if lookup.baCalls != 1 {
		t.Fatalf("expected exactly one lookup call, got %d", lookup.baCalls)
	}
}
