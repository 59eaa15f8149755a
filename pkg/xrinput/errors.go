package xrinput

import (
	"errors"
	"fmt"
)

// ErrTrackingQuery is returned (wrapped in a *QueryError) when the backend
// cannot answer a pose or button query at the transport level. This is
// distinct from "answered: not currently valid", which is never an error.
var ErrTrackingQuery = errors.New("xrinput: tracking backend query failed")

// QueryError reports a transport-level backend fault. The frame it occurred
// in produces no FrameRecord; the caller decides whether to retry next tick.
type QueryError struct {
	// Op is the failed query, "locate_space" or "button_state".
	Op string

	// Err is the underlying backend error.
	Err error
}

// Error implements the error interface.
func (e *QueryError) Error() string {
	return fmt.Sprintf("xrinput: %s query failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying backend error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is reports true for ErrTrackingQuery so callers can match the class with
// errors.Is without caring which query failed.
func (e *QueryError) Is(target error) bool {
	return target == ErrTrackingQuery
}
