package client

import (
	"net/http"
	"time"

	"github.com/famomatic/ytscrape/internal/innertube"
)

// Config holds configuration for the scraping client.
type Config struct {
	// HTTPClient is the client used for making requests.
	// If nil, http.DefaultClient is used.
	HTTPClient *http.Client

	// ProxyURL is the optional proxy URL to use for requests.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// CookieJar is attached to the HTTP client, e.g. to carry consent cookies.
	CookieJar http.CookieJar

	// BaseURL overrides the site host (default: https://www.youtube.com).
	BaseURL string

	// UserAgent and AcceptLanguage override the request defaults.
	UserAgent      string
	AcceptLanguage string

	// RequestHeaders are added to every page and API request.
	RequestHeaders http.Header

	// RequestTimeout bounds each public operation when the caller's context
	// has no deadline. Zero disables it.
	RequestTimeout time.Duration

	// Extractor selects the page extractor: "marker" (default) or "dom".
	Extractor string

	Logger Logger
}

func (c Config) ToInnerTubeConfig() innertube.Config {
	return innertube.Config{
		HTTPClient:     c.HTTPClient,
		BaseURL:        c.BaseURL,
		UserAgent:      c.UserAgent,
		AcceptLanguage: c.AcceptLanguage,
		RequestHeaders: cloneHeader(c.RequestHeaders),
	}
}
