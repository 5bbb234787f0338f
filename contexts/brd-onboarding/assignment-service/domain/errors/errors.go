package errors

import (
	"errors"
	"fmt"
)

var (
	ErrBRDNotFound              = errors.New("BRD not found")
	ErrEmptyBRDID               = errors.New("BRD ID cannot be empty")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidAssignmentRequest = errors.New("invalid assignment request")
	ErrRoleMismatch             = errors.New("target user role mismatch")
	ErrForbidden                = errors.New("Access denied")
)

// Forbidden wraps ErrForbidden with a category-specific denial message.
func Forbidden(message string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, message)
}

// RoleMismatchError reports that the target identity does not hold the role
// the reassignment requires. Its message is surfaced verbatim to callers.
type RoleMismatchError struct {
	Email    string
	RoleName string
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("User %s is not a %s", e.Email, e.RoleName)
}

func (e *RoleMismatchError) Is(target error) bool {
	return target == ErrRoleMismatch
}

func RoleMismatch(email string, roleName string) error {
	return &RoleMismatchError{Email: email, RoleName: roleName}
}
