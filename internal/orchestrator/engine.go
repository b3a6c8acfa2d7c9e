package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/famomatic/ytscrape/internal/extract"
	"github.com/famomatic/ytscrape/internal/innertube"
	"github.com/famomatic/ytscrape/internal/renderer"
	"github.com/famomatic/ytscrape/internal/types"
)

// Logger receives non-fatal diagnostics.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Debugf(string, ...any) {}

// Config wires the engine's collaborators.
type Config struct {
	Transport innertube.Transport
	Extractor extract.Extractor
	BaseURL   string
	Logger    Logger
}

// Engine runs the query and continuation drivers.
type Engine struct {
	transport innertube.Transport
	extractor extract.Extractor
	endpoints innertube.Endpoints
	logger    Logger
}

func NewEngine(config Config) *Engine {
	engine := &Engine{
		transport: config.Transport,
		extractor: config.Extractor,
		endpoints: innertube.Endpoints{Base: config.BaseURL},
		logger:    config.Logger,
	}
	if engine.transport == nil {
		engine.transport = innertube.NewHTTPTransport(innertube.Config{BaseURL: config.BaseURL})
	}
	if engine.extractor == nil {
		engine.extractor = extract.MarkerExtractor{}
	}
	if engine.logger == nil {
		engine.logger = nopLogger{}
	}
	return engine
}

// SearchOptions controls a keyword search.
type SearchOptions struct {
	IncludePlaylists bool
	// Limit truncates the result list; 0 keeps every item.
	Limit int
	// Type is a result type filter: video, channel, playlist or movie.
	Type string
}

// SearchResult is one page of search results.
type SearchResult struct {
	Items   []types.Item            `json:"items"`
	Next    types.ContinuationState `json:"next"`
	Skipped []types.ItemError       `json:"skipped,omitempty"`
}

// PlaylistResult is the first page of a playlist.
type PlaylistResult struct {
	Items    []types.Item      `json:"items"`
	Metadata any               `json:"metadata"`
	Skipped  []types.ItemError `json:"skipped,omitempty"`
}

// Search fetches the first page of results for keyword.
func (e *Engine) Search(ctx context.Context, keyword string, opts SearchOptions) (res *SearchResult, err error) {
	defer recoverStructure(&res, &err)
	if strings.TrimSpace(keyword) == "" {
		return nil, fmt.Errorf("%w: empty keyword", ErrInvalidInput)
	}
	if opts.Limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidInput, opts.Limit)
	}

	url := e.endpoints.Search(keyword, opts.Type)
	data, err := e.fetchInit(ctx, url)
	if err != nil {
		return nil, err
	}
	contents, err := renderer.RequireSlice(data.Init, innertube.SearchContentsPath...)
	if err != nil {
		return nil, structureError(err)
	}

	batch := renderer.Sections(contents, renderer.Options{Kinds: renderer.SearchKinds, IncludePlaylists: opts.IncludePlaylists})
	e.logSkipped(ctx, url, batch.Skipped)
	e.logger.Debugf("search %q: %d item(s), continuation=%t", keyword, len(batch.Items), batch.Continuation != "")

	return &SearchResult{
		Items: renderer.Truncate(batch.Items, opts.Limit),
		Next: types.ContinuationState{
			Token:        data.Token,
			Context:      data.Context,
			Continuation: batch.Continuation,
		},
		Skipped: batch.Skipped,
	}, nil
}

// NextPage fetches the page after state. The returned state has an empty
// cursor when the response carried no continuation marker.
func (e *Engine) NextPage(ctx context.Context, state types.ContinuationState, includePlaylists bool, limit int) (res *SearchResult, err error) {
	defer recoverStructure(&res, &err)
	if !state.HasToken() {
		return nil, ErrMissingToken
	}
	if state.Done() {
		return nil, ErrNoMorePages
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidInput, limit)
	}

	url := e.endpoints.Continuation(state.Token)
	page, err := e.transport.PostJSON(ctx, url, innertube.NewContinuationRequest(state.Context, state.Continuation))
	if err != nil {
		return nil, &NetworkError{Op: operation(ctx), URL: url, Err: err}
	}
	entries, err := renderer.RequireSlice(page, innertube.ContinuationItemsPath...)
	if err != nil {
		return nil, structureError(err)
	}

	batch := renderer.Sections(entries, renderer.Options{Kinds: renderer.NextPageKinds, IncludePlaylists: includePlaylists})
	e.logSkipped(ctx, url, batch.Skipped)
	e.logger.Debugf("next page: %d item(s), continuation=%t", len(batch.Items), batch.Continuation != "")

	return &SearchResult{
		Items:   renderer.Truncate(batch.Items, limit),
		Next:    state.WithContinuation(batch.Continuation),
		Skipped: batch.Skipped,
	}, nil
}

// Playlist fetches the first page of a playlist.
func (e *Engine) Playlist(ctx context.Context, id string, limit int) (res *PlaylistResult, err error) {
	defer recoverStructure(&res, &err)
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty playlist id", ErrInvalidInput)
	}
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit %d", ErrInvalidInput, limit)
	}

	url := e.endpoints.Playlist(id)
	data, err := e.fetchInit(ctx, url)
	if err != nil {
		return nil, err
	}
	contents, ok := data.Init["contents"]
	if !ok || !renderer.Truthy(contents) {
		return nil, &InvalidPlaylistError{ID: id}
	}
	videos, err := renderer.RequireSlice(contents, innertube.PlaylistVideosPath...)
	if err != nil {
		return nil, structureError(err, "contents")
	}

	batch := renderer.Entries(videos, renderer.Options{Kinds: renderer.PlaylistKinds})
	e.logSkipped(ctx, url, batch.Skipped)

	return &PlaylistResult{
		Items:    renderer.Truncate(batch.Items, limit),
		Metadata: data.Init["metadata"],
		Skipped:  batch.Skipped,
	}, nil
}

// Channel fetches a channel page and returns its tabs.
func (e *Engine) Channel(ctx context.Context, id string) (tabs []types.ChannelTab, err error) {
	defer recoverStructure(&tabs, &err)
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty channel id", ErrInvalidInput)
	}

	data, err := e.fetchInit(ctx, e.endpoints.Channel(id))
	if err != nil {
		return nil, err
	}
	raw, err := renderer.RequireSlice(data.Init, innertube.ChannelTabsPath...)
	if err != nil {
		return nil, structureError(err)
	}

	tabs = make([]types.ChannelTab, 0, len(raw))
	for _, tab := range raw {
		tr := renderer.DigMap(tab, "tabRenderer")
		if tr == nil {
			continue
		}
		tabs = append(tabs, types.ChannelTab{
			Title:   renderer.DigString(tr, "title"),
			Content: tr["content"],
		})
	}
	return tabs, nil
}

// VideoDetails fetches the watch page twice, once for the render data and
// once for the player response, and combines them.
func (e *Engine) VideoDetails(ctx context.Context, id string) (details *types.VideoDetails, err error) {
	defer recoverStructure(&details, &err)
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: empty video id", ErrInvalidInput)
	}

	url := e.endpoints.Watch(id)
	var (
		data   *extract.InitData
		player map[string]any
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := e.fetchInit(gctx, url)
		data = d
		return err
	})
	g.Go(func() error {
		p, err := e.fetchPlayer(gctx, url)
		player = p
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	watch, err := renderer.Require(data.Init, innertube.WatchResultsPath...)
	if err != nil {
		return nil, structureError(err)
	}
	prefix := []string{"contents", "twoColumnWatchNextResults"}
	title, err := renderer.RequireString(watch, join(innertube.PrimaryInfoPath, innertube.PrimaryTitlePath)...)
	if err != nil {
		return nil, structureError(err, prefix...)
	}
	primary := renderer.Dig(watch, innertube.PrimaryInfoPath...)

	channel, _ := player["author"].(string)
	if channel == "" {
		channel = renderer.DigString(watch, innertube.OwnerTitlePath...)
	}

	out := &types.VideoDetails{
		ID:          renderer.DigString(player, "videoId"),
		Title:       title,
		Thumbnail:   player["thumbnail"],
		IsLive:      renderer.Truthy(renderer.Dig(primary, innertube.PrimaryIsLivePath...)),
		Channel:     channel,
		ChannelID:   renderer.DigString(player, "channelId"),
		Description: renderer.DigString(player, "shortDescription"),
		Keywords:    stringSlice(player["keywords"]),
		Suggestion:  []types.Item{},
	}
	for i, entry := range renderer.DigSlice(watch, innertube.SuggestionsPath...) {
		if renderer.Detect(entry) != renderer.KindCompactVideo {
			continue
		}
		item, err := renderer.CompactVideo(entry)
		if err != nil {
			out.Skipped = append(out.Skipped, types.ItemError{Index: i, Renderer: string(renderer.KindCompactVideo), Err: err})
			continue
		}
		out.Suggestion = append(out.Suggestion, item)
	}
	e.logSkipped(ctx, url, out.Skipped)
	return out, nil
}

func (e *Engine) fetchPage(ctx context.Context, url string) (string, error) {
	op := operation(ctx)
	e.logger.Debugf("fetch op=%s url=%s", op, url)
	html, err := e.transport.GetText(ctx, url)
	if err != nil {
		return "", &NetworkError{Op: op, URL: url, Err: err}
	}
	return html, nil
}

func (e *Engine) fetchInit(ctx context.Context, url string) (*extract.InitData, error) {
	html, err := e.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	data, err := e.extractor.InitData(html)
	if err != nil {
		return nil, extractionError(operation(ctx), url, extract.MarkerInitialData, err)
	}
	if data.ContextErr != nil {
		e.logger.Warnf("client context unavailable op=%s url=%s: %v", operation(ctx), url, data.ContextErr)
	}
	return data, nil
}

func (e *Engine) fetchPlayer(ctx context.Context, url string) (map[string]any, error) {
	html, err := e.fetchPage(ctx, url)
	if err != nil {
		return nil, err
	}
	player, err := e.extractor.PlayerDetail(html)
	if err != nil {
		return nil, extractionError(operation(ctx), url, extract.MarkerPlayerResponse, err)
	}
	return player, nil
}

func (e *Engine) logSkipped(ctx context.Context, url string, skipped []types.ItemError) {
	op := operation(ctx)
	for _, s := range skipped {
		e.logger.Warnf("skipped item op=%s url=%s: %v", op, url, s)
	}
}

// operation returns the public operation name carried by ctx, or "".
func operation(ctx context.Context) string {
	op, _ := types.OperationFromContext(ctx)
	return op
}

func extractionError(op, url, marker string, err error) error {
	var xe *extract.Error
	if errors.As(err, &xe) {
		marker = xe.Marker
	}
	return &ExtractionError{Op: op, Marker: marker, URL: url, Err: err}
}

// recoverStructure turns a panic raised while walking a decoded document
// into an InvalidStructureError and drops any partial result.
func recoverStructure[T any](res *T, err *error) {
	if r := recover(); r != nil {
		var zero T
		*res = zero
		*err = &InvalidStructureError{Err: fmt.Errorf("panic: %v", r)}
	}
}

func join(paths ...[]any) []any {
	var out []any
	for _, p := range paths {
		out = append(out, p...)
	}
	return out
}

func stringSlice(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if str, ok := s.(string); ok {
			out = append(out, str)
		}
	}
	return out
}
