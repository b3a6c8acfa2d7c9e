package client

import (
	"errors"

	"github.com/famomatic/ytscrape/internal/orchestrator"
)

var (
	// ErrInvalidInput indicates malformed input (empty keyword, bad id or url).
	ErrInvalidInput = orchestrator.ErrInvalidInput
	// ErrMissingToken indicates a continuation state without an API key.
	ErrMissingToken = orchestrator.ErrMissingToken
	// ErrNoMorePages indicates a continuation state that is already terminal.
	ErrNoMorePages = orchestrator.ErrNoMorePages
	// ErrInvalidPlaylist is wrapped by InvalidPlaylistError.
	ErrInvalidPlaylist = orchestrator.ErrInvalidPlaylist
)

type (
	ExtractionError       = orchestrator.ExtractionError
	InvalidStructureError = orchestrator.InvalidStructureError
	InvalidPlaylistError  = orchestrator.InvalidPlaylistError
	NetworkError          = orchestrator.NetworkError
)

// InvalidInputDetailError explains why an id or url was rejected.
type InvalidInputDetailError struct {
	Input  string
	Reason string
}

func (e *InvalidInputDetailError) Error() string {
	return "invalid input (" + e.Reason + "): " + e.Input
}

func (e *InvalidInputDetailError) Unwrap() error {
	return ErrInvalidInput
}

// ErrorCategory is a stable classification of client errors.
type ErrorCategory string

const (
	ErrorCategoryUnknown          ErrorCategory = "unknown"
	ErrorCategoryInvalidInput     ErrorCategory = "invalid_input"
	ErrorCategoryMissingToken     ErrorCategory = "missing_token"
	ErrorCategoryNoMorePages      ErrorCategory = "no_more_pages"
	ErrorCategoryExtraction       ErrorCategory = "extraction"
	ErrorCategoryInvalidStructure ErrorCategory = "invalid_structure"
	ErrorCategoryInvalidPlaylist  ErrorCategory = "invalid_playlist"
	ErrorCategoryNetwork          ErrorCategory = "network"
)

// ClassifyError maps err to its category.
func ClassifyError(err error) ErrorCategory {
	var (
		extractionErr *ExtractionError
		structureErr  *InvalidStructureError
		networkErr    *NetworkError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return ErrorCategoryInvalidInput
	case errors.Is(err, ErrMissingToken):
		return ErrorCategoryMissingToken
	case errors.Is(err, ErrNoMorePages):
		return ErrorCategoryNoMorePages
	case errors.Is(err, ErrInvalidPlaylist):
		return ErrorCategoryInvalidPlaylist
	case errors.As(err, &networkErr):
		return ErrorCategoryNetwork
	case errors.As(err, &extractionErr):
		return ErrorCategoryExtraction
	case errors.As(err, &structureErr):
		return ErrorCategoryInvalidStructure
	default:
		return ErrorCategoryUnknown
	}
}
