package corpus

import "fmt"

// CorpusUnavailableError indicates a corpus index could not be built even
// from fallback data. This is fatal to startup, never per-request.
type CorpusUnavailableError struct {
	Corpus string
	Cause  error
}

func (e *CorpusUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corpus %s unavailable: %v", e.Corpus, e.Cause)
	}
	return fmt.Sprintf("corpus %s unavailable", e.Corpus)
}

func (e *CorpusUnavailableError) Unwrap() error {
	return e.Cause
}
