package renderer

import "github.com/famomatic/ytscrape/internal/types"

// Channel normalizes a channelRenderer entry.
func Channel(raw any) (types.Item, error) {
	channel := DigMap(raw, string(KindChannel))
	if channel == nil {
		return types.Item{}, &types.FieldError{Path: []string{string(KindChannel)}, Err: types.ErrMissingField}
	}
	title, err := RequireString(channel, "title", "simpleText")
	if err != nil {
		return types.Item{}, prefix(string(KindChannel), err)
	}
	return types.Item{
		ID:        DigString(channel, "channelId"),
		Type:      types.ItemTypeChannel,
		Thumbnail: channel["thumbnail"],
		Title:     title,
	}, nil
}

// Playlist normalizes a playlistRenderer entry. ok is false unless
// includePlaylists is set and the playlist has an id.
func Playlist(raw any, includePlaylists bool) (item types.Item, ok bool, err error) {
	playlist := DigMap(raw, string(KindPlaylist))
	if playlist == nil || !includePlaylists {
		return types.Item{}, false, nil
	}
	id := DigString(playlist, "playlistId")
	if id == "" {
		return types.Item{}, false, nil
	}
	title, err := RequireString(playlist, "title", "simpleText")
	if err != nil {
		return types.Item{}, false, prefix(string(KindPlaylist), err)
	}
	count := toInt(playlist["videoCount"])
	return types.Item{
		ID:         id,
		Type:       types.ItemTypePlaylist,
		Thumbnail:  playlist["thumbnails"],
		Title:      title,
		Length:     count,
		Videos:     playlist["videos"],
		VideoCount: count,
		IsLive:     false,
	}, true, nil
}
