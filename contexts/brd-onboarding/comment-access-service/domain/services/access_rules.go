package services

import (
	"context"
	"fmt"
	"time"

	"brdflow/contexts/brd-onboarding/comment-access-service/domain/entities"
)

// Denial reasons are part of the module contract; callers and tests match on
// these exact messages.
const (
	ReasonManagerDenied     = "Managers are not allowed to access comment operations"
	ReasonPMNotCreator      = "PM can only access BRDs they created"
	ReasonBANotAssigned     = "BA is not assigned to this BRD"
	ReasonBillerNotAssigned = "Biller is not assigned to this BRD"
	ReasonDefaultDenied     = "role is not permitted to access comment operations"
)

var (
	ReasonBAWrongStatus = fmt.Sprintf(
		"BRD status must be '%s' for BA operations", entities.StatusInternalReview)
	ReasonBillerWrongStatus = fmt.Sprintf(
		"Biller can only access BRDs with status '%s' or '%s'",
		entities.StatusInProgress, entities.StatusReadyForSignoff)
)

// AssignmentLookup answers whether an identity is assigned to a BRD.
// It is a port; rules only reach it after their status gate passes.
type AssignmentLookup interface {
	IsBAAssigned(ctx context.Context, brdID string, email string) (bool, error)
	IsBillerAssigned(ctx context.Context, brdID string, email string) (bool, error)
}

// AccessInput carries the already-resolved request context for one decision.
type AccessInput struct {
	Role     entities.Role
	Identity string
	BRD      entities.BRDView
	Now      time.Time
}

type accessRule struct {
	role     entities.Role
	evaluate func(ctx context.Context, in AccessInput, lookup AssignmentLookup) (entities.AccessDecision, error)
}

// commentAccessRules is evaluated top to bottom; the first rule matching the
// request role produces the decision. Status gates run before assignment
// lookups for both BA and Biller: when the status gate fails, the lookup is
// never invoked.
var commentAccessRules = []accessRule{
	{
		role: entities.RoleManager,
		evaluate: func(_ context.Context, in AccessInput, _ AssignmentLookup) (entities.AccessDecision, error) {
			return deny(in, ReasonManagerDenied), nil
		},
	},
	{
		role: entities.RolePM,
		evaluate: func(_ context.Context, in AccessInput, _ AssignmentLookup) (entities.AccessDecision, error) {
			if in.Identity != in.BRD.CreatorUsername {
				return deny(in, ReasonPMNotCreator), nil
			}
			return allow(in), nil
		},
	},
	{
		role: entities.RoleBA,
		evaluate: func(ctx context.Context, in AccessInput, lookup AssignmentLookup) (entities.AccessDecision, error) {
			if in.BRD.Status != entities.StatusInternalReview {
				return deny(in, ReasonBAWrongStatus), nil
			}
			assigned, err := lookup.IsBAAssigned(ctx, in.BRD.BRDID, in.Identity)
			if err != nil {
				return entities.AccessDecision{}, err
			}
			if !assigned {
				return deny(in, ReasonBANotAssigned), nil
			}
			return allow(in), nil
		},
	},
	{
		role: entities.RoleBiller,
		evaluate: func(ctx context.Context, in AccessInput, lookup AssignmentLookup) (entities.AccessDecision, error) {
			if in.BRD.Status != entities.StatusInProgress && in.BRD.Status != entities.StatusReadyForSignoff {
				return deny(in, ReasonBillerWrongStatus), nil
			}
			assigned, err := lookup.IsBillerAssigned(ctx, in.BRD.BRDID, in.Identity)
			if err != nil {
				return entities.AccessDecision{}, err
			}
			if !assigned {
				return deny(in, ReasonBillerNotAssigned), nil
			}
			return allow(in), nil
		},
	},
}

// DecideCommentAccess runs the ordered rule list for one request. A lookup
// failure propagates as an error; business denials come back as a decision
// with Allowed=false and the category reason.
func DecideCommentAccess(ctx context.Context, in AccessInput, lookup AssignmentLookup) (entities.AccessDecision, error) {
	for _, rule := range commentAccessRules {
		if rule.role != in.Role {
			continue
		}
		return rule.evaluate(ctx, in, lookup)
	}
	return deny(in, ReasonDefaultDenied), nil
}

func allow(in AccessInput) entities.AccessDecision {
	return entities.AccessDecision{
		BRDID:     in.BRD.BRDID,
		Role:      in.Role,
		Identity:  in.Identity,
		Allowed:   true,
		CheckedAt: in.Now,
	}
}

func deny(in AccessInput, reason string) entities.AccessDecision {
	return entities.AccessDecision{
		BRDID:     in.BRD.BRDID,
		Role:      in.Role,
		Identity:  in.Identity,
		Allowed:   false,
		Reason:    reason,
		CheckedAt: in.Now,
	}
}
