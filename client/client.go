package client

import (
	"context"

	"github.com/famomatic/ytscrape/internal/extract"
	"github.com/famomatic/ytscrape/internal/innertube"
	"github.com/famomatic/ytscrape/internal/orchestrator"
	"github.com/famomatic/ytscrape/internal/types"
)

// Client scrapes search results, playlists, channels and video pages.
// It is safe for concurrent use.
type Client struct {
	config Config
	engine *orchestrator.Engine
	logger Logger
}

// New creates a new client.
func New(config Config) *Client {
	return NewClient(config)
}

// NewClient creates a new client.
func NewClient(config Config) *Client {
	config.HTTPClient = httpClientFor(config)
	logger := config.Logger
	if logger == nil {
		logger = nopLogger{}
	}

	extractor, err := extract.New(config.Extractor)
	if err != nil {
		logger.Warnf("%v; using marker extractor", err)
		extractor = extract.MarkerExtractor{}
	}

	innerCfg := config.ToInnerTubeConfig()
	engine := orchestrator.NewEngine(orchestrator.Config{
		Transport: innertube.NewHTTPTransport(innerCfg),
		Extractor: extractor,
		BaseURL:   innerCfg.BaseURL,
		Logger:    logger,
	})

	return &Client{
		config: config,
		engine: engine,
		logger: logger,
	}
}

// Search fetches the first page of results for keyword. Pass result.Next to
// NextPage for the following pages.
func (c *Client) Search(ctx context.Context, keyword string, opts SearchOptions) (*SearchResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	return c.engine.Search(types.WithOperation(ctx, "search"), keyword, opts)
}

// NextPage fetches the page after next. It returns ErrNoMorePages once
// next.Done() reports true.
func (c *Client) NextPage(ctx context.Context, next ContinuationState, includePlaylists bool, limit int) (*SearchResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	return c.engine.NextPage(types.WithOperation(ctx, "next_page"), next, includePlaylists, limit)
}

// GetPlaylist fetches the first page of a playlist by id or url.
func (c *Client) GetPlaylist(ctx context.Context, input string, limit int) (*PlaylistResult, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	id, err := ExtractPlaylistID(input)
	if err != nil {
		return nil, err
	}
	return c.engine.Playlist(types.WithOperation(ctx, "playlist"), id, limit)
}

// GetChannel fetches the tabs of a channel by id or url.
func (c *Client) GetChannel(ctx context.Context, input string) ([]ChannelTab, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	id, err := ExtractChannelID(input)
	if err != nil {
		return nil, err
	}
	return c.engine.Channel(types.WithOperation(ctx, "channel"), id)
}

// GetVideoDetails fetches metadata and suggestions for a video by id or url.
func (c *Client) GetVideoDetails(ctx context.Context, input string) (*VideoDetails, error) {
	ctx, cancel := withDefaultTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	id, err := ExtractVideoID(input)
	if err != nil {
		return nil, err
	}
	return c.engine.VideoDetails(types.WithOperation(ctx, "video"), id)
}
