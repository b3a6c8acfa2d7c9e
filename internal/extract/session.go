package extract

import (
	"fmt"
	"strings"
)

// APIKey returns the continuation API key embedded in the page config, or
// "" when the page carries none.
func APIKey(html string) string {
	rest, ok := afterMarker(html, markerAPIKey)
	if !ok {
		return ""
	}
	head, _, _ := strings.Cut(strings.TrimSpace(rest), ",")
	parts := strings.Split(head, `"`)
	if len(parts) < 3 {
		return ""
	}
	return parts[2]
}

// Context returns the client context object sent with continuation
// requests. Occurrences of the marker that are not followed by an object
// literal, such as INNERTUBE_CONTEXT_CLIENT_NAME, are skipped. A page
// without one yields (nil, nil).
func Context(html string) (any, error) {
	rest, ok := afterMarker(html, markerContext)
	if !ok {
		return nil, nil
	}
	for ok {
		lead := strings.TrimLeft(rest, "\"': =\t\r\n")
		if strings.HasPrefix(lead, "{") {
			obj := balanced(lead)
			if obj == "" {
				return nil, fmt.Errorf("%s: unterminated object literal", markerContext)
			}
			v, err := Literal(obj)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", markerContext, err)
			}
			return v, nil
		}
		rest, ok = afterMarker(rest, markerContext)
	}
	return nil, fmt.Errorf("%s: no object literal", markerContext)
}
