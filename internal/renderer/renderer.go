// Package renderer turns the upstream "renderer" objects found in page
// data into normalized items. Every function here is pure.
package renderer

import "github.com/famomatic/ytscrape/internal/types"

// Kind names a renderer variant by the key that carries it.
type Kind string

const (
	KindUnknown       Kind = ""
	KindChannel       Kind = "channelRenderer"
	KindVideo         Kind = "videoRenderer"
	KindPlaylistVideo Kind = "playlistVideoRenderer"
	KindPlaylist      Kind = "playlistRenderer"
	KindCompactVideo  Kind = "compactVideoRenderer"
	KindItemSection   Kind = "itemSectionRenderer"
	KindContinuation  Kind = "continuationItemRenderer"
)

// detectOrder is the precedence used when an object carries several keys.
var detectOrder = []Kind{
	KindChannel,
	KindVideo,
	KindPlaylistVideo,
	KindPlaylist,
	KindCompactVideo,
	KindItemSection,
	KindContinuation,
}

// Detect returns the renderer variant carried by raw.
func Detect(raw any) Kind {
	obj, ok := raw.(map[string]any)
	if !ok {
		return KindUnknown
	}
	for _, k := range detectOrder {
		if _, ok := obj[string(k)]; ok {
			return k
		}
	}
	return KindUnknown
}

// Options controls which variants a walk keeps.
type Options struct {
	// Kinds lists the variants the walk normalizes. Entries of any other
	// variant are omitted. Nil allows every variant with a normalizer.
	Kinds            []Kind
	IncludePlaylists bool
}

// Variants kept by each walk.
var (
	SearchKinds   = []Kind{KindChannel, KindVideo, KindPlaylist}
	NextPageKinds = []Kind{KindVideo, KindPlaylist}
	PlaylistKinds = []Kind{KindPlaylistVideo}
)

func (o Options) allows(kind Kind) bool {
	if o.Kinds == nil {
		return true
	}
	for _, k := range o.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// normalizer converts one raw entry. ok=false means the entry is omitted
// without being an error.
type normalizer func(raw any, opts Options) (item types.Item, ok bool, err error)

var dispatch = map[Kind]normalizer{
	KindChannel: func(raw any, _ Options) (types.Item, bool, error) {
		item, err := Channel(raw)
		return item, err == nil, err
	},
	KindVideo: func(raw any, _ Options) (types.Item, bool, error) {
		if !Truthy(Dig(raw, string(KindVideo), "videoId")) {
			return types.Item{}, false, nil
		}
		return Video(raw)
	},
	KindPlaylistVideo: func(raw any, _ Options) (types.Item, bool, error) {
		if !Truthy(Dig(raw, string(KindPlaylistVideo), "videoId")) {
			return types.Item{}, false, nil
		}
		return Video(raw)
	},
	KindPlaylist: func(raw any, opts Options) (types.Item, bool, error) {
		return Playlist(raw, opts.IncludePlaylists)
	},
	KindCompactVideo: func(raw any, _ Options) (types.Item, bool, error) {
		item, err := CompactVideo(raw)
		return item, err == nil, err
	},
}

// Normalize dispatches raw to the normalizer of its variant. Variants
// without a normalizer, or not allowed by opts, are omitted.
func Normalize(raw any, opts Options) (types.Item, bool, error) {
	kind := Detect(raw)
	fn, ok := dispatch[kind]
	if !ok || !opts.allows(kind) {
		return types.Item{}, false, nil
	}
	return fn(raw, opts)
}

// ContinuationToken returns the cursor carried by a continuation marker.
func ContinuationToken(raw any) string {
	return DigString(raw, string(KindContinuation), "continuationEndpoint", "continuationCommand", "token")
}
