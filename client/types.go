package client

import (
	"github.com/famomatic/ytscrape/internal/orchestrator"
	"github.com/famomatic/ytscrape/internal/types"
)

type (
	// Item is one normalized video, playlist or channel entry.
	Item     = types.Item
	ItemType = types.ItemType

	// ContinuationState is the cursor handed from one page to the next.
	ContinuationState = types.ContinuationState

	ChannelTab   = types.ChannelTab
	VideoDetails = types.VideoDetails
	ItemError    = types.ItemError

	SearchOptions  = orchestrator.SearchOptions
	SearchResult   = orchestrator.SearchResult
	PlaylistResult = orchestrator.PlaylistResult
)

const (
	ItemTypeVideo    = types.ItemTypeVideo
	ItemTypePlaylist = types.ItemTypePlaylist
	ItemTypeChannel  = types.ItemTypeChannel
)
