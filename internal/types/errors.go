package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingField indicates that a required field is absent from a raw tree.
	ErrMissingField = errors.New("missing field")

	// ErrUnexpectedType indicates that a raw tree node has an unexpected JSON type.
	ErrUnexpectedType = errors.New("unexpected type")
)

// FieldError reports the path of a field that could not be read.
type FieldError struct {
	Path []string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Path, "."), e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// PathString returns the dotted field path.
func (e *FieldError) PathString() string {
	return strings.Join(e.Path, ".")
}

// ItemError records one item that was left out of a batch.
//
// Index is the entry's position in the page, counted across every section
// of the page in document order, not within its own section.
type ItemError struct {
	Index    int    `json:"index"`
	Renderer string `json:"renderer"`
	Err      error  `json:"-"`
}

func (e ItemError) Error() string {
	return fmt.Sprintf("item %d (%s): %v", e.Index, e.Renderer, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

func (e ItemError) MarshalJSON() ([]byte, error) {
	out := struct {
		Index    int    `json:"index"`
		Renderer string `json:"renderer"`
		Error    string `json:"error,omitempty"`
	}{Index: e.Index, Renderer: e.Renderer}
	if e.Err != nil {
		out.Error = e.Err.Error()
	}
	return json.Marshal(out)
}
