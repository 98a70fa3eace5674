package warehouse

import (
	"fmt"
)

// ConnectionError reports that a warehouse could not be reached or refused
// authentication. It is fatal to a run.
type ConnectionError struct {
	Driver string
	Err    error
}

// NewConnectionError wraps err as a ConnectionError for driver.
func NewConnectionError(driver string, err error) *ConnectionError {
	return &ConnectionError{Driver: driver, Err: err}
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %s: %v", e.Driver, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Cause supports github.com/pkg/errors.Cause.
func (e *ConnectionError) Cause() error { return e.Err }
