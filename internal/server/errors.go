package server

import (
	"errors"
	"net/http"

	"github.com/prateek/career-navigator/internal/corpus"
	"github.com/prateek/career-navigator/internal/extraction"
)

// errorCategory classifies a pipeline failure for the API error body
type errorCategory string

const (
	categoryValidation errorCategory = "validation_error"
	categoryGeneration errorCategory = "generation_error"
	categoryMalformed  errorCategory = "malformed_output"
	categoryCorpus     errorCategory = "corpus_unavailable"
	categoryInternal   errorCategory = "internal_error"
)

// classify maps a pipeline error to an HTTP status and category. Model-call
// failures are upstream faults, so they report 502; everything else is a 500.
func classify(err error) (int, errorCategory) {
	var genErr *extraction.GenerationError
	var malErr *extraction.MalformedOutputError
	var corpusErr *corpus.CorpusUnavailableError

	switch {
	case errors.As(err, &malErr):
		return http.StatusInternalServerError, categoryMalformed
	case errors.As(err, &genErr):
		return http.StatusBadGateway, categoryGeneration
	case errors.As(err, &corpusErr):
		return http.StatusServiceUnavailable, categoryCorpus
	default:
		return http.StatusInternalServerError, categoryInternal
	}
}

// errorBody is the JSON error envelope for failed requests
type errorBody struct {
	Error    string        `json:"error"`
	Category errorCategory `json:"category"`
	Details  string        `json:"details,omitempty"`
}
