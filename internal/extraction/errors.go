package extraction

import "fmt"

// GenerationError represents a failed generation-model call (transport,
// quota, timeout). It is not retried automatically; retries are a caller
// decision since they cost real money and latency.
type GenerationError struct {
	Template string
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed for %s: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("generation failed for %s", e.Template)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// MalformedOutputError represents a generation call that succeeded but whose
// text could not be decoded as the stage's declared structure. RawOutput
// carries the model text for diagnosis; decoding is attempted exactly once.
type MalformedOutputError struct {
	Template  string
	RawOutput string
	Cause     error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed output from %s: %v", e.Template, e.Cause)
	}
	return fmt.Sprintf("malformed output from %s", e.Template)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}
