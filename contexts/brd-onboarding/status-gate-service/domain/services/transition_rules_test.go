package services

import (
	"testing"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
)

func TestTransitionEligibility(t *testing.T) {
	cases := []struct {
		name    string
		role    entities.Role
		current entities.BRDStatus
		want    bool
	}{
		{name: "pm from draft", role: entities.RolePM, current: entities.StatusDraft, want: true},
		{name: "pm from signed off", role: entities.RolePM, current: entities.StatusSignedOff, want: true},
		{name: "pm from confidential", role: entities.RolePM, current: entities.StatusConfidential, want: true},
		{name: "biller from in progress", role: entities.RoleBiller, current: entities.StatusInProgress, want: true},
		{name: "biller from draft", role: entities.RoleBiller, current: entities.StatusDraft, want: false},
		{name: "biller from ready for sign-off", role: entities.RoleBiller, current: entities.StatusReadyForSignoff, want: false},
		{name: "ba from internal review", role: entities.RoleBA, current: entities.StatusInternalReview, want: true},
		{name: "ba from in review", role: entities.RoleBA, current: entities.StatusInReview, want: false},
		{name: "ba from in progress", role: entities.RoleBA, current: entities.StatusInProgress, want: false},
		{name: "manager always denied", role: entities.RoleManager, current: entities.StatusInProgress, want: false},
		{name: "unknown role denied", role: entities.Role("AUDITOR"), current: entities.StatusDraft, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, reason := TransitionEligibility(tc.role, tc.current)
			if got != tc.want {
				t.Fatalf("eligibility = %v, want %v (reason %q)", got, tc.want, reason)
			}
			if !got && reason == "" {
				t.Fatalf("expected a denial reason")
			}
			if got && reason != "" {
				t.Fatalf("unexpected reason on allow: %q", reason)
			}
		})
	}
}

func TestTransitionEligibilityDenialMessages(t *testing.T) {
	_, billerReason := TransitionEligibility(entities.RoleBiller, entities.StatusDraft)
	if billerReason != "Biller can only update BRDs with status 'In Progress'" {
		t.Fatalf("unexpected biller reason: %q", billerReason)
	}

	_, baReason := TransitionEligibility(entities.RoleBA, entities.StatusDraft)
	if baReason != "BA can only update BRDs with status 'Internal Review'" {
		t.Fatalf("unexpected ba reason: %q", baReason)
	}

	_, defaultReason := TransitionEligibility(entities.RoleManager, entities.StatusDraft)
	if defaultReason != "role is not permitted to update BRD status" {
		t.Fatalf("unexpected default reason: %q", defaultReason)
	}
}
