package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DOMExtractor parses the page and reads the assignments from script
// nodes rather than from the raw text.
type DOMExtractor struct{}

func (DOMExtractor) InitData(html string) (*InitData, error) {
	init, err := scriptObject(html, MarkerInitialData)
	if err != nil {
		return nil, err
	}
	return withSession(html, init), nil
}

func (DOMExtractor) PlayerDetail(html string) (map[string]any, error) {
	player, err := scriptObject(html, MarkerPlayerResponse)
	if err != nil {
		return nil, err
	}
	return playerDetail(player), nil
}

func scriptObject(html, marker string) (map[string]any, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &Error{Marker: marker, Err: fmt.Errorf("parse html: %w", err)}
	}

	var body string
	found := false
	doc.Find("script").EachWithBreak(func(i int, s *goquery.Selection) bool {
		rest, ok := afterMarker(s.Text(), marker)
		if !ok {
			return true
		}
		body = assignmentBody(rest)
		found = true
		return false
	})
	if !found {
		return nil, &Error{Marker: marker, Err: ErrMarkerNotFound}
	}
	return decodeObject(marker, body)
}
