package logcraft

import "fmt"

// InitializationError reports a failed Init transition, either while disposing the
// prior configuration or while adopting the new one. The facade is guaranteed to be
// left in the uninitialized state when this error is returned.
type InitializationError struct {
	Err error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("facade initialization failed: %v", e.Err)
}

func (e *InitializationError) Unwrap() error { return e.Err }
