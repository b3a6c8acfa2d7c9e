package renderer

import "github.com/famomatic/ytscrape/internal/types"

const (
	badgeStyleLiveNow = "BADGE_STYLE_TYPE_LIVE_NOW"
	overlayStyleLive  = "LIVE"
)

// Video normalizes an entry wrapping a videoRenderer or a
// playlistVideoRenderer. ok is false when the entry carries neither.
func Video(raw any) (item types.Item, ok bool, err error) {
	video := DigMap(raw, string(KindVideo))
	kind := KindVideo
	if video == nil {
		video = DigMap(raw, string(KindPlaylistVideo))
		kind = KindPlaylistVideo
	}
	if video == nil {
		return types.Item{}, false, nil
	}

	title, err := RequireString(video, "title", "runs", 0, "text")
	if err != nil {
		return types.Item{}, false, prefix(string(kind), err)
	}

	return types.Item{
		ID:              DigString(video, "videoId"),
		Type:            types.ItemTypeVideo,
		Thumbnail:       video["thumbnail"],
		Title:           title,
		ChannelTitle:    DigString(video, "ownerText", "runs", 0, "text"),
		ShortBylineText: Or(video["shortBylineText"], ""),
		Length:          Or(video["lengthText"], ""),
		IsLive:          hasLiveBadge(video) || hasLiveOverlay(video),
	}, true, nil
}

// CompactVideo normalizes a compactVideoRenderer suggestion entry.
// Only the first badge is checked for the live marker.
func CompactVideo(raw any) (types.Item, error) {
	video := DigMap(raw, string(KindCompactVideo))
	if video == nil {
		return types.Item{}, &types.FieldError{Path: []string{string(KindCompactVideo)}, Err: types.ErrMissingField}
	}

	title, err := RequireString(video, "title", "simpleText")
	if err != nil {
		return types.Item{}, prefix(string(KindCompactVideo), err)
	}
	byline := DigString(video, "shortBylineText", "runs", 0, "text")

	return types.Item{
		ID:              DigString(video, "videoId"),
		Type:            types.ItemTypeVideo,
		Thumbnail:       Dig(video, "thumbnail", "thumbnails"),
		Title:           title,
		ChannelTitle:    byline,
		ShortBylineText: byline,
		Length:          Or(video["lengthText"], ""),
		IsLive:          DigString(video, "badges", 0, "metadataBadgeRenderer", "style") == badgeStyleLiveNow,
	}, nil
}

func hasLiveBadge(video map[string]any) bool {
	for _, badge := range DigSlice(video, "badges") {
		if DigString(badge, "metadataBadgeRenderer", "style") == badgeStyleLiveNow {
			return true
		}
	}
	return false
}

func hasLiveOverlay(video map[string]any) bool {
	for _, overlay := range DigSlice(video, "thumbnailOverlays") {
		if DigString(overlay, "thumbnailOverlayTimeStatusRenderer", "style") == overlayStyleLive {
			return true
		}
	}
	return false
}

func prefix(root string, err error) error {
	fe, ok := err.(*types.FieldError)
	if !ok {
		return err
	}
	return &types.FieldError{Path: append([]string{root}, fe.Path...), Err: fe.Err}
}
