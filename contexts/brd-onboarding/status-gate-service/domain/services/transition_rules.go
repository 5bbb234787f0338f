package services

import (
	"fmt"

	"brdflow/contexts/brd-onboarding/status-gate-service/domain/entities"
)

// TransitionEligibility decides whether a role may execute a status
// transition from the BRD's current status. On deny it returns the
// category-specific message the caller wraps into a forbidden error.
//
// PM may always attempt a transition; the target status value itself is
// validated separately. Biller and BA are locked to a single current status.
func TransitionEligibility(role entities.Role, current entities.BRDStatus) (bool, string) {
	switch role {
	case entities.RolePM:
		return true, ""
	case entities.RoleBiller:
		if current == entities.StatusInProgress {
			return true, ""
		}
		return false, fmt.Sprintf("Biller can only update BRDs with status '%s'", entities.StatusInProgress)
	case entities.RoleBA:
		if current == entities.StatusInternalReview {
			return true, ""
		}
		return false, fmt.Sprintf("BA can only update BRDs with status '%s'", entities.StatusInternalReview)
	default:
		return false, "role is not permitted to update BRD status"
	}
}
