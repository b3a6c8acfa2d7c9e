package innertube

// Paths into the decoded page and API documents. Each is a key sequence
// for renderer.Dig: strings index objects, ints index arrays.
var (
	// SearchContentsPath leads from ytInitialData to the results section list.
	SearchContentsPath = []any{"contents", "twoColumnSearchResultsRenderer", "primaryContents", "sectionListRenderer", "contents"}

	// PlaylistVideosPath leads from a playlist page's contents to its video list.
	PlaylistVideosPath = []any{
		"twoColumnBrowseResultsRenderer", "tabs", 0, "tabRenderer", "content",
		"sectionListRenderer", "contents", 0, "itemSectionRenderer", "contents", 0,
		"playlistVideoListRenderer", "contents",
	}

	// ChannelTabsPath leads from ytInitialData to a channel page's tab list.
	ChannelTabsPath = []any{"contents", "twoColumnBrowseResultsRenderer", "tabs"}

	// WatchResultsPath leads from ytInitialData to the watch page columns.
	WatchResultsPath = []any{"contents", "twoColumnWatchNextResults"}

	// The following are relative to WatchResultsPath.
	PrimaryInfoPath   = []any{"results", "results", "contents", 0, "videoPrimaryInfoRenderer"}
	OwnerTitlePath    = []any{"results", "results", "contents", 1, "videoSecondaryInfoRenderer", "owner", "videoOwnerRenderer", "title", "runs", 0, "text"}
	SuggestionsPath   = []any{"secondaryResults", "secondaryResults", "results"}
	PrimaryTitlePath  = []any{"title", "runs", 0, "text"}
	PrimaryIsLivePath = []any{"viewCount", "videoViewCountRenderer", "isLive"}

	// ContinuationItemsPath leads from a continuation API response to the
	// appended items.
	ContinuationItemsPath = []any{"onResponseReceivedCommands", 0, "appendContinuationItemsAction", "continuationItems"}
)
