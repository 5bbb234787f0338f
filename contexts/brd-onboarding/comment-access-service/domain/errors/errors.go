package errors

import (
	"errors"
	"fmt"
)

var (
	ErrBRDNotFound           = errors.New("BRD not found")
	ErrEmptyBRDID            = errors.New("BRD ID cannot be empty")
	ErrCommentGroupNotFound  = errors.New("comment group not found")
	ErrInvalidCommentRequest = errors.New("invalid comment request")
	ErrForbidden             = errors.New("Access denied")
)

// Forbidden wraps ErrForbidden with the decision engine's denial reason.
func Forbidden(message string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, message)
}
