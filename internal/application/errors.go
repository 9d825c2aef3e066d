package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrFetchFailed  = errors.New("fetch failed")
	ErrDataRejected = errors.New("data rejected")
	ErrNotReady     = errors.New("taxonomy not loaded")
	ErrUnknownPath  = errors.New("unknown path")
)

// DefaultLoadMessage is shown when the source gives no reason for a failure
const DefaultLoadMessage = "Failed to load data"

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// LoadError is the user-visible failure of a taxonomy load. Message is what
// the error view shows; Err is ErrFetchFailed or ErrDataRejected.
type LoadError struct {
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return e.Message
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// PathError reports a path that is not part of the loaded taxonomy
type PathError struct {
	Path string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("unknown path: %s", e.Path)
}

func (e *PathError) Is(target error) bool {
	return target == ErrUnknownPath
}
