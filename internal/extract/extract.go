// Package extract locates the JSON documents a watch, results, playlist or
// channel page embeds in its inline scripts and decodes them.
package extract

import (
	"errors"
	"fmt"
	"strings"
)

const (
	MarkerInitialData    = "var ytInitialData ="
	MarkerPlayerResponse = "var ytInitialPlayerResponse ="

	markerAPIKey  = "innertubeApiKey"
	markerContext = "INNERTUBE_CONTEXT"
)

var (
	ErrMarkerNotFound = errors.New("marker not found")
	ErrInvalidJSON    = errors.New("invalid embedded json")
)

// Error reports which embedded document could not be extracted.
type Error struct {
	Marker string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract %q: %v", strings.TrimSpace(e.Marker), e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// InitData is the initial page state plus the session values needed to
// request continuation pages.
type InitData struct {
	Init    map[string]any
	Token   string
	Context any
	// ContextErr is set when a context literal was present but could not be
	// decoded. Context is nil in that case.
	ContextErr error
}

// Extractor turns a page body into decoded documents.
type Extractor interface {
	InitData(html string) (*InitData, error)
	PlayerDetail(html string) (map[string]any, error)
}

// New returns the extractor registered under name. An empty name selects
// the marker extractor.
func New(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "marker":
		return MarkerExtractor{}, nil
	case "dom":
		return DOMExtractor{}, nil
	default:
		return nil, fmt.Errorf("unknown extractor %q", name)
	}
}

// decodeObject decodes an assignment body and requires an object.
func decodeObject(marker, body string) (map[string]any, error) {
	v, err := Literal(body)
	if err != nil {
		return nil, &Error{Marker: marker, Err: fmt.Errorf("%w: %v", ErrInvalidJSON, err)}
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, &Error{Marker: marker, Err: fmt.Errorf("%w: not an object", ErrInvalidJSON)}
	}
	return obj, nil
}

// playerDetail flattens the videoDetails object of a player response.
func playerDetail(player map[string]any) map[string]any {
	out := map[string]any{}
	if details, ok := player["videoDetails"].(map[string]any); ok {
		for k, v := range details {
			out[k] = v
		}
	}
	return out
}

// withSession fills the token and context from the page.
func withSession(html string, init map[string]any) *InitData {
	data := &InitData{Init: init, Token: APIKey(html)}
	data.Context, data.ContextErr = Context(html)
	return data
}
