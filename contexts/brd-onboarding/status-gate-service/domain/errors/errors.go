package errors

import (
	"errors"
	"fmt"
)

var (
	ErrBRDNotFound          = errors.New("BRD not found")
	ErrEmptyBRDID           = errors.New("BRD ID cannot be empty")
	ErrInvalidStatusRequest = errors.New("Invalid status update request")
	ErrDuplicateBRD         = errors.New("BRD already exists")
	ErrForbidden            = errors.New("Access denied")

	// ErrStatusRejected is the typed validation failure a repository returns
	// when the target status fails its own check. The status gate remaps it
	// to ErrInvalidStatusRequest instead of surfacing an internal error.
	ErrStatusRejected = errors.New("status value rejected by store")
)

// Forbidden wraps ErrForbidden with a category-specific denial message.
func Forbidden(message string) error {
	return fmt.Errorf("%w: %s", ErrForbidden, message)
}
