package llm

import "fmt"

// ErrBackend indicates a transport failure or non-success status from a
// backend call. It is surfaced to the caller as-is and never retried
// automatically: the only retry loop in the system is duplicate-question
// avoidance, which is a soft condition, not a transport error.
type ErrBackend struct {
	// Status is the HTTP status code when available, 0 otherwise.
	Status  int
	Message string
	Err     error
}

func (e *ErrBackend) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

func (e *ErrBackend) Unwrap() error { return e.Err }
