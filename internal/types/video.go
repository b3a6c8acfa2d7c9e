package types

// ChannelTab is one tab of a channel page. Content is the raw tab tree;
// tab layouts vary too much to normalize generically.
type ChannelTab struct {
	Title   string `json:"title"`
	Content any    `json:"content"`
}

// VideoDetails combines the watch page's render data with its player response.
type VideoDetails struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Thumbnail   any      `json:"thumbnail"`
	IsLive      bool     `json:"isLive"`
	Channel     string   `json:"channel"`
	ChannelID   string   `json:"channelId"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Suggestion  []Item   `json:"suggestion"`

	// Skipped lists suggestions that could not be normalized.
	Skipped []ItemError `json:"skipped,omitempty"`
}
