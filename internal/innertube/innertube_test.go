package innertube

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEndpointsSearchFilterCodes(t *testing.T) {
	e := Endpoints{Base: "https://example.test/"}
	tests := []struct {
		filter string
		code   string
	}{
		{"video", "EgIQAQ%3D%3D"},
		{"channel", "EgIQAg%3D%3D"},
		{"playlist", "EgIQAw%3D%3D"},
		{"Movie", "EgIQBA%3D%3D"},
	}
	for _, tt := range tests {
		got := e.Search("lofi beats", tt.filter)
		if strings.Count(got, "sp=") != 1 {
			t.Fatalf("Search(%q) = %q, want exactly one sp parameter", tt.filter, got)
		}
		want := "https://example.test/results?search_query=lofi+beats&sp=" + tt.code
		if got != want {
			t.Fatalf("Search(%q) = %q, want %q", tt.filter, got, want)
		}
	}

	for _, filter := range []string{"", "shorts"} {
		got := e.Search("q", filter)
		if strings.Contains(got, "sp=") {
			t.Fatalf("Search(%q) = %q, want no sp parameter", filter, got)
		}
	}
}

func TestEndpointsEscaping(t *testing.T) {
	e := Endpoints{}
	if got, want := e.Search("a&b=c", ""), DefaultBaseURL+"/results?search_query=a%26b%3Dc"; got != want {
		t.Fatalf("Search() = %q, want %q", got, want)
	}
	if got, want := e.Playlist("PL x"), DefaultBaseURL+"/playlist?list=PL+x"; got != want {
		t.Fatalf("Playlist() = %q, want %q", got, want)
	}
	if got, want := e.Channel("UC/1"), DefaultBaseURL+"/channel/UC%2F1"; got != want {
		t.Fatalf("Channel() = %q, want %q", got, want)
	}
	if got, want := e.Watch("abc"), DefaultBaseURL+"/watch?v=abc"; got != want {
		t.Fatalf("Watch() = %q, want %q", got, want)
	}
	if got, want := e.Continuation("k+1"), DefaultBaseURL+"/youtubei/v1/search?key=k%2B1"; got != want {
		t.Fatalf("Continuation() = %q, want %q", got, want)
	}
}

func TestHTTPTransportGetTextSendsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("User-Agent"); got != "ua-test" {
			t.Errorf("User-Agent = %q", got)
		}
		if got := r.Header.Get("Accept-Language"); got != DefaultAcceptLanguage {
			t.Errorf("Accept-Language = %q", got)
		}
		if got := r.Header.Get("X-Extra"); got != "1" {
			t.Errorf("X-Extra = %q", got)
		}
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(Config{
		HTTPClient:     srv.Client(),
		BaseURL:        srv.URL,
		UserAgent:      "ua-test",
		RequestHeaders: http.Header{"X-Extra": []string{"1"}},
	})
	body, err := tr.GetText(context.Background(), srv.URL+"/results?search_query=x")
	if err != nil {
		t.Fatalf("GetText() error = %v", err)
	}
	if body != "<html>ok</html>" {
		t.Fatalf("GetText() = %q", body)
	}
}

func TestHTTPTransportPostJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.URL.Query().Get("key"); got != "tok" {
			t.Errorf("key = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		var req map[string]any
		if err := json.Unmarshal(raw, &req); err != nil {
			t.Errorf("body not json: %v", err)
		}
		if req["continuation"] != "cur-1" {
			t.Errorf("continuation = %v", req["continuation"])
		}
		if _, ok := req["context"].(map[string]any); !ok {
			t.Errorf("context = %v", req["context"])
		}
		_, _ = w.Write([]byte(`{"onResponseReceivedCommands":[]}`))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(Config{HTTPClient: srv.Client(), BaseURL: srv.URL})
	body := NewContinuationRequest(map[string]any{"client": map[string]any{"hl": "en"}}, "cur-1")
	resp, err := tr.PostJSON(context.Background(), Endpoints{Base: srv.URL}.Continuation("tok"), body)
	if err != nil {
		t.Fatalf("PostJSON() error = %v", err)
	}
	if _, ok := resp["onResponseReceivedCommands"]; !ok {
		t.Fatalf("PostJSON() = %v", resp)
	}
}

func TestHTTPTransportStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	tr := NewHTTPTransport(Config{HTTPClient: srv.Client()})
	_, err := tr.GetText(context.Background(), srv.URL+"/watch?v=x")
	var statusErr *HTTPStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("GetText() error = %v, want HTTPStatusError", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests || statusErr.Method != http.MethodGet {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestHTTPTransportDecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	tr := NewHTTPTransport(Config{HTTPClient: srv.Client()})
	if _, err := tr.PostJSON(context.Background(), srv.URL, map[string]any{}); err == nil {
		t.Fatalf("PostJSON() expected decode error")
	}
}

func TestConfigDefaults(t *testing.T) {
	tr := NewHTTPTransport(Config{BaseURL: " https://m.example.test/ "})
	if tr.config.BaseURL != "https://m.example.test" {
		t.Fatalf("BaseURL = %q", tr.config.BaseURL)
	}
	if tr.config.UserAgent != DefaultUserAgent || tr.config.HTTPClient == nil {
		t.Fatalf("defaults not applied: %+v", tr.config)
	}
}
