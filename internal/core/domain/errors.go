package domain

import (
	"errors"
	"fmt"
)

var ErrSessionNotFound = errors.New("demo session not found")
var ErrSessionActive = errors.New("demo session is running")
var ErrNoSelectionRole = errors.New("no location selection in progress")
var ErrPushUnsupported = errors.New("position source does not accept pushed positions")
var ErrNoPosition = errors.New("no position available")
var ErrSharingInactive = errors.New("location sharing is not active")
var ErrTimerRunning = errors.New("demo advances on its own timer")

// ValidationError reports input that the user must correct before retrying.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// CollaboratorError wraps a failure reported by an external collaborator
// (routing, place search, positioning).
type CollaboratorError struct {
	Collaborator string
	Op           string
	Err          error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Collaborator, e.Op, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
