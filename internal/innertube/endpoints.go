package innertube

import (
	"net/url"
	"strings"
)

// Search filter codes for the sp query parameter. The values are already
// percent-encoded.
var filterCodes = map[string]string{
	"video":    "EgIQAQ%3D%3D",
	"channel":  "EgIQAg%3D%3D",
	"playlist": "EgIQAw%3D%3D",
	"movie":    "EgIQBA%3D%3D",
}

// FilterCode returns the sp code for a result type filter name.
func FilterCode(name string) (string, bool) {
	code, ok := filterCodes[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// Endpoints builds page and API URLs under one base.
type Endpoints struct {
	Base string
}

func (e Endpoints) base() string {
	base := strings.TrimRight(strings.TrimSpace(e.Base), "/")
	if base == "" {
		return DefaultBaseURL
	}
	return base
}

// Search returns the results page URL. An unknown or empty filter adds no
// sp parameter.
func (e Endpoints) Search(keyword, filter string) string {
	u := e.base() + "/results?search_query=" + url.QueryEscape(keyword)
	if code, ok := FilterCode(filter); ok {
		u += "&sp=" + code
	}
	return u
}

func (e Endpoints) Playlist(id string) string {
	return e.base() + "/playlist?list=" + url.QueryEscape(id)
}

func (e Endpoints) Channel(id string) string {
	return e.base() + "/channel/" + url.PathEscape(id)
}

func (e Endpoints) Watch(id string) string {
	return e.base() + "/watch?v=" + url.QueryEscape(id)
}

// Continuation returns the search continuation API URL keyed by token.
func (e Endpoints) Continuation(token string) string {
	return e.base() + "/youtubei/v1/search?key=" + url.QueryEscape(token)
}
