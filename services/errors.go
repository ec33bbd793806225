package services

import (
	"errors"
	"fmt"
)

// Error kinds the controllers switch on. Infrastructure failures are wrapped
// with %w so callers can still reach the cause.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPharmacyNotFound = errors.New("pharmacy not found")
)

// CompletionError marks a failed call to the completion service. Timeout is
// set when the call died waiting, so callers can tell a slow model from a
// broken one.
type CompletionError struct {
	Timeout bool
	Err     error
}

func (e *CompletionError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("completion service timeout: %v", e.Err)
	}
	return fmt.Sprintf("completion service error: %v", e.Err)
}

func (e *CompletionError) Unwrap() error { return e.Err }
