package innertube

import (
	"net/http"
	"strings"
)

const (
	DefaultBaseURL        = "https://www.youtube.com"
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
)

// Config holds the transport settings shared by page and continuation
// requests.
type Config struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	AcceptLanguage string
	RequestHeaders http.Header
}

func (c Config) withDefaults() Config {
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if strings.TrimSpace(c.UserAgent) == "" {
		c.UserAgent = DefaultUserAgent
	}
	if strings.TrimSpace(c.AcceptLanguage) == "" {
		c.AcceptLanguage = DefaultAcceptLanguage
	}
	return c
}
