package types

import "encoding/json"

// ContinuationState carries what is needed to request the next page of a
// search: the page's API key, its client context and the opaque cursor.
//
// Empty strings stand for absent values. The state is a value: NextPage
// returns a new state and never mutates the one it was given.
type ContinuationState struct {
	Token        string
	Context      any
	Continuation string
}

// HasToken reports whether the state can authorize a continuation request.
func (s ContinuationState) HasToken() bool {
	return s.Token != ""
}

// Done reports whether there are no more pages.
func (s ContinuationState) Done() bool {
	return s.Continuation == ""
}

// WithContinuation returns a copy of s pointing at the given cursor.
func (s ContinuationState) WithContinuation(cursor string) ContinuationState {
	s.Continuation = cursor
	return s
}

type continuationJSON struct {
	Token        *string `json:"token"`
	Context      any     `json:"context"`
	Continuation *string `json:"continuation"`
}

func (s ContinuationState) MarshalJSON() ([]byte, error) {
	return json.Marshal(continuationJSON{
		Token:        nullable(s.Token),
		Context:      s.Context,
		Continuation: nullable(s.Continuation),
	})
}

func (s *ContinuationState) UnmarshalJSON(data []byte) error {
	var raw continuationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ContinuationState{Context: raw.Context}
	if raw.Token != nil {
		s.Token = *raw.Token
	}
	if raw.Continuation != nil {
		s.Continuation = *raw.Continuation
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
