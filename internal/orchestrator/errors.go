package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/famomatic/ytscrape/internal/types"
)

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrMissingToken    = errors.New("continuation state has no token")
	ErrNoMorePages     = errors.New("no more pages")
	ErrInvalidPlaylist = errors.New("invalid playlist")
)

// ExtractionError indicates that an embedded document could not be found or
// decoded in a fetched page.
// Op names the public operation that fetched the page, when known.
type ExtractionError struct {
	Op     string
	Marker string
	URL    string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed%s marker=%q url=%s: %v", opField(e.Op), strings.TrimSpace(e.Marker), e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// InvalidStructureError indicates that an expected path is missing from a
// decoded document.
type InvalidStructureError struct {
	Path string
	Err  error
}

func (e *InvalidStructureError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid structure: %v", e.Err)
	}
	return fmt.Sprintf("invalid structure path=%s: %v", e.Path, e.Err)
}

func (e *InvalidStructureError) Unwrap() error {
	return e.Err
}

// InvalidPlaylistError indicates a playlist page without contents, usually a
// missing, private or empty playlist.
type InvalidPlaylistError struct {
	ID string
}

func (e *InvalidPlaylistError) Error() string {
	return fmt.Sprintf("invalid playlist id=%s", e.ID)
}

func (e *InvalidPlaylistError) Unwrap() error {
	return ErrInvalidPlaylist
}

// NetworkError wraps a transport failure.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request failed%s url=%s: %v", opField(e.Op), e.URL, e.Err)
}

func opField(op string) string {
	if op == "" {
		return ""
	}
	return " op=" + op
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// structureError converts a tree walking failure. prefix is prepended to the
// field path when the walk started below the document root.
func structureError(err error, prefix ...string) error {
	var fe *types.FieldError
	if errors.As(err, &fe) {
		path := append(append([]string{}, prefix...), fe.Path...)
		return &InvalidStructureError{Path: strings.Join(path, "."), Err: fe.Err}
	}
	return &InvalidStructureError{Path: strings.Join(prefix, "."), Err: err}
}
