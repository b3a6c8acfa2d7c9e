package types

import "encoding/json"

// ItemType discriminates normalized result entities.
type ItemType string

const (
	ItemTypeVideo    ItemType = "video"
	ItemTypePlaylist ItemType = "playlist"
	ItemTypeChannel  ItemType = "channel"
)

// Item is the normalized result entity shared by search, playlist,
// continuation and suggestion results.
//
// Thumbnail, ShortBylineText, Length and Videos are passed through from the
// upstream renderer without normalization; their shape varies by source.
type Item struct {
	ID        string
	Type      ItemType
	Thumbnail any
	Title     string

	// Video fields.
	ChannelTitle    string
	ShortBylineText any
	// Length is the raw length text for videos and the video count for playlists.
	Length any
	IsLive bool

	// Playlist fields.
	Videos     any
	VideoCount int
}

type videoJSON struct {
	ID              string   `json:"id"`
	Type            ItemType `json:"type"`
	Thumbnail       any      `json:"thumbnail"`
	Title           string   `json:"title"`
	ChannelTitle    string   `json:"channelTitle"`
	ShortBylineText any      `json:"shortBylineText"`
	Length          any      `json:"length"`
	IsLive          bool     `json:"isLive"`
}

type playlistJSON struct {
	ID         string   `json:"id"`
	Type       ItemType `json:"type"`
	Thumbnail  any      `json:"thumbnail"`
	Title      string   `json:"title"`
	Length     any      `json:"length"`
	Videos     any      `json:"videos"`
	VideoCount int      `json:"videoCount"`
	IsLive     bool     `json:"isLive"`
}

type channelJSON struct {
	ID        string   `json:"id"`
	Type      ItemType `json:"type"`
	Thumbnail any      `json:"thumbnail"`
	Title     string   `json:"title"`
}

// MarshalJSON emits only the fields that belong to the item's type.
func (i Item) MarshalJSON() ([]byte, error) {
	switch i.Type {
	case ItemTypeVideo:
		return json.Marshal(videoJSON{
			ID:              i.ID,
			Type:            i.Type,
			Thumbnail:       i.Thumbnail,
			Title:           i.Title,
			ChannelTitle:    i.ChannelTitle,
			ShortBylineText: orEmpty(i.ShortBylineText),
			Length:          orEmpty(i.Length),
			IsLive:          i.IsLive,
		})
	case ItemTypePlaylist:
		return json.Marshal(playlistJSON{
			ID:         i.ID,
			Type:       i.Type,
			Thumbnail:  i.Thumbnail,
			Title:      i.Title,
			Length:     i.Length,
			Videos:     i.Videos,
			VideoCount: i.VideoCount,
		})
	case ItemTypeChannel:
		return json.Marshal(channelJSON{
			ID:        i.ID,
			Type:      i.Type,
			Thumbnail: i.Thumbnail,
			Title:     i.Title,
		})
	default:
		return []byte("{}"), nil
	}
}

func orEmpty(v any) any {
	if v == nil {
		return ""
	}
	return v
}
