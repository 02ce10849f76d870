package analysis

import "fmt"

// ErrAnswerTooShort is a local validation failure: the trimmed answer is
// shorter than the difficulty's minimum. It is raised before any backend
// call is made.
type ErrAnswerTooShort struct {
	// Minimum is the required character count after trimming.
	Minimum int
}

func (e *ErrAnswerTooShort) Error() string {
	return fmt.Sprintf("answer must be at least %d characters long", e.Minimum)
}

// ErrMalformedAnalysis indicates the backend returned a response that
// fails structural validation. The raw text is preserved for diagnostics
// and never coerced into a default analysis.
type ErrMalformedAnalysis struct {
	Raw string
	Err error
}

func (e *ErrMalformedAnalysis) Error() string {
	return fmt.Sprintf("malformed analysis response: %v", e.Err)
}

func (e *ErrMalformedAnalysis) Unwrap() error { return e.Err }
