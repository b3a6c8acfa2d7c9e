package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps a single page or API response body.
const maxBodyBytes = 16 << 20

// Transport is the network capability the query drivers depend on.
type Transport interface {
	GetText(ctx context.Context, url string) (string, error)
	PostJSON(ctx context.Context, url string, body any) (map[string]any, error)
}

// HTTPStatusError indicates a non-2xx response.
type HTTPStatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("%s %s: http status=%d", e.Method, e.URL, e.StatusCode)
}

// HTTPTransport implements Transport over net/http.
type HTTPTransport struct {
	config Config
}

func NewHTTPTransport(config Config) *HTTPTransport {
	return &HTTPTransport{config: config.withDefaults()}
}

func (t *HTTPTransport) GetText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	t.applyHeaders(req)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	body, err := t.do(req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (t *HTTPTransport) PostJSON(ctx context.Context, url string, body any) (map[string]any, error) {
	payload, err := MarshalRequest(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	t.applyHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", t.config.BaseURL)

	respBody, err := t.do(req)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", url, err)
	}
	return out, nil
}

func (t *HTTPTransport) do(req *http.Request) ([]byte, error) {
	resp, err := t.config.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, &HTTPStatusError{Method: req.Method, URL: req.URL.String(), StatusCode: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

func (t *HTTPTransport) applyHeaders(req *http.Request) {
	req.Header.Set("User-Agent", t.config.UserAgent)
	req.Header.Set("Accept-Language", t.config.AcceptLanguage)
	for k, vals := range t.config.RequestHeaders {
		req.Header.Del(k)
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
}
