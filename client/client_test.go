package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchPage = `<html><head>
<script>ytcfg.set({"innertubeApiKey":"KEY","INNERTUBE_CONTEXT":{"client":{"clientName":"WEB","hl":"en"}}});</script>
<script>var ytInitialData = {"contents":{"twoColumnSearchResultsRenderer":{"primaryContents":{"sectionListRenderer":{"contents":[
{"itemSectionRenderer":{"contents":[{"videoRenderer":{"videoId":"v1","title":{"runs":[{"text":"First"}]}}}]}},
{"continuationItemRenderer":{"continuationEndpoint":{"continuationCommand":{"token":"c1"}}}}
]}}}}};</script></head></html>`

func continuationBody(cursor string, ids ...string) string {
	var items []string
	for _, id := range ids {
		items = append(items, fmt.Sprintf(`{"videoRenderer":{"videoId":%q,"title":{"runs":[{"text":"t"}]}}}`, id))
	}
	entries := []string{`{"itemSectionRenderer":{"contents":[` + strings.Join(items, ",") + `]}}`}
	if cursor != "" {
		entries = append(entries, fmt.Sprintf(`{"continuationItemRenderer":{"continuationEndpoint":{"continuationCommand":{"token":%q}}}}`, cursor))
	}
	return `{"onResponseReceivedCommands":[{"appendContinuationItemsAction":{"continuationItems":[` + strings.Join(entries, ",") + `]}}]}`
}

type upstream struct {
	mu      sync.Mutex
	posts   int
	cursors []string
}

func newUpstream(t *testing.T) (*httptest.Server, *upstream) {
	t.Helper()
	u := &upstream{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/results":
			_, _ = io.WriteString(w, searchPage)
		case r.Method == http.MethodPost && r.URL.Path == "/youtubei/v1/search":
			if r.URL.Query().Get("key") != "KEY" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			var body struct {
				Context      map[string]any `json:"context"`
				Continuation string         `json:"continuation"`
			}
			_ = json.NewDecoder(r.Body).Decode(&body)
			u.mu.Lock()
			u.posts++
			u.cursors = append(u.cursors, body.Continuation)
			u.mu.Unlock()
			switch body.Continuation {
			case "c1":
				_, _ = io.WriteString(w, continuationBody("c2", "v2", "v3"))
			case "c2":
				_, _ = io.WriteString(w, continuationBody("", "v4"))
			default:
				w.WriteHeader(http.StatusBadRequest)
			}
		case r.URL.Path == "/playlist":
			_, _ = io.WriteString(w, `<script>var ytInitialData = {"metadata":{}};</script>`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, u
}

func TestClient_SearchAndNextPage(t *testing.T) {
	srv, up := newUpstream(t)
	c := New(Config{HTTPClient: srv.Client(), BaseURL: srv.URL})

	first, err := c.Search(context.Background(), "lofi", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, first.Items, 1)
	assert.Equal(t, "v1", first.Items[0].ID)
	assert.Equal(t, "KEY", first.Next.Token)
	assert.Equal(t, "c1", first.Next.Continuation)

	second, err := c.NextPage(context.Background(), first.Next, false, 0)
	require.NoError(t, err)
	assert.Len(t, second.Items, 2)
	assert.Equal(t, "c2", second.Next.Continuation)

	third, err := c.NextPage(context.Background(), second.Next, false, 0)
	require.NoError(t, err)
	assert.Len(t, third.Items, 1)
	assert.True(t, third.Next.Done())

	_, err = c.NextPage(context.Background(), third.Next, false, 0)
	assert.Equal(t, ErrorCategoryNoMorePages, ClassifyError(err))
	assert.Equal(t, 2, up.posts)
}

func TestClient_Pager(t *testing.T) {
	srv, up := newUpstream(t)
	c := New(Config{HTTPClient: srv.Client(), BaseURL: srv.URL, Extractor: "dom"})

	p := c.NewPager("lofi", SearchOptions{})
	assert.False(t, p.Done())
	items, err := p.All(context.Background(), 0)
	require.NoError(t, err)
	require.True(t, p.Done())

	var ids []string
	for _, item := range items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"v1", "v2", "v3", "v4"}, ids)
	assert.Equal(t, []string{"c1", "c2"}, up.cursors)

	_, err = p.Next(context.Background())
	assert.True(t, errors.Is(err, ErrNoMorePages))
}

func TestClient_PagerMaxPages(t *testing.T) {
	srv, _ := newUpstream(t)
	p := New(Config{HTTPClient: srv.Client(), BaseURL: srv.URL}).NewPager("lofi", SearchOptions{})

	items, err := p.All(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, items, 3)
	assert.False(t, p.Done())
	assert.Equal(t, "c2", p.State().Continuation)
}

func TestClient_ErrorsAreClassified(t *testing.T) {
	srv, _ := newUpstream(t)
	c := New(Config{HTTPClient: srv.Client(), BaseURL: srv.URL})

	_, err := c.GetPlaylist(context.Background(), "PLmissing", 0)
	assert.Equal(t, ErrorCategoryInvalidPlaylist, ClassifyError(err))

	_, err = c.GetChannel(context.Background(), "UCabcdefghijklmnopqrstuv")
	assert.Equal(t, ErrorCategoryNetwork, ClassifyError(err))

	_, err = c.GetVideoDetails(context.Background(), "https://example.com/watch?v=jNQXAC9IVRw")
	assert.Equal(t, ErrorCategoryInvalidInput, ClassifyError(err))

	_, err = c.NextPage(context.Background(), ContinuationState{Continuation: "c1"}, false, 0)
	assert.Equal(t, ErrorCategoryMissingToken, ClassifyError(err))
}

func TestClient_RequestTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := New(Config{HTTPClient: srv.Client(), BaseURL: srv.URL, RequestTimeout: 50 * time.Millisecond})
	_, err := c.Search(context.Background(), "slow", SearchOptions{})
	require.Error(t, err)
	assert.Equal(t, ErrorCategoryNetwork, ClassifyError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_UnknownExtractorFallsBack(t *testing.T) {
	logger := &captureLogger{}
	c := New(Config{Extractor: "regex", Logger: logger})
	require.NotNil(t, c)
	require.Len(t, logger.warns, 1)
	assert.Contains(t, logger.warns[0], "regex")
}

type captureLogger struct {
	warns []string
}

func (l *captureLogger) Warnf(format string, args ...any) {
	l.warns = append(l.warns, fmt.Sprintf(format, args...))
}

func (l *captureLogger) Debugf(string, ...any) {}
