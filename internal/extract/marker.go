package extract

// MarkerExtractor finds documents by splitting the page text on the
// assignment markers.
type MarkerExtractor struct{}

func (MarkerExtractor) InitData(html string) (*InitData, error) {
	init, err := markerObject(html, MarkerInitialData)
	if err != nil {
		return nil, err
	}
	return withSession(html, init), nil
}

func (MarkerExtractor) PlayerDetail(html string) (map[string]any, error) {
	player, err := markerObject(html, MarkerPlayerResponse)
	if err != nil {
		return nil, err
	}
	return playerDetail(player), nil
}

func markerObject(html, marker string) (map[string]any, error) {
	rest, ok := afterMarker(html, marker)
	if !ok {
		return nil, &Error{Marker: marker, Err: ErrMarkerNotFound}
	}
	return decodeObject(marker, assignmentBody(rest))
}
