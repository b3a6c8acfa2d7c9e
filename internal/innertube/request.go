package innertube

import "encoding/json"

// ContinuationRequest is the body POSTed to the continuation endpoint.
// Context is the page's client context, sent back verbatim.
type ContinuationRequest struct {
	Context      any    `json:"context"`
	Continuation string `json:"continuation"`
}

func NewContinuationRequest(context any, continuation string) *ContinuationRequest {
	return &ContinuationRequest{Context: context, Continuation: continuation}
}

func MarshalRequest(req any) ([]byte, error) {
	return json.Marshal(req)
}
