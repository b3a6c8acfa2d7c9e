package client

import (
	"net/http"
	"net/url"
	"strings"
)

// httpClientFor resolves the client used for page and API requests. A
// caller-supplied client wins over ProxyURL; a cookie jar is attached to a
// copy so shared clients are never mutated.
func httpClientFor(config Config) *http.Client {
	hc := config.HTTPClient
	if hc == nil {
		hc = proxyHTTPClient(config.ProxyURL)
	}
	if config.CookieJar == nil {
		return hc
	}
	withJar := *hc
	withJar.Jar = config.CookieJar
	return &withJar
}

// proxyHTTPClient returns a client routed through proxyURL, or
// http.DefaultClient when proxyURL is empty or unusable.
func proxyHTTPClient(proxyURL string) *http.Client {
	proxyURL = strings.TrimSpace(proxyURL)
	if proxyURL == "" {
		return http.DefaultClient
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return http.DefaultClient
	}
	base, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return http.DefaultClient
	}
	transport := base.Clone()
	transport.Proxy = http.ProxyURL(parsed)
	return &http.Client{Transport: transport}
}
