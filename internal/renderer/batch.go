package renderer

import "github.com/famomatic/ytscrape/internal/types"

// Batch accumulates the result of walking one page. Entries are numbered
// page-wide: the counter runs on across item sections, so a Skipped index
// locates the entry in the page rather than in its section.
type Batch struct {
	Items   []types.Item
	Skipped []types.ItemError
	// Continuation is the last cursor seen in the list, empty if none.
	Continuation string

	seen int
}

func (b *Batch) add(raw any, opts Options) {
	index := b.seen
	b.seen++
	item, ok, err := Normalize(raw, opts)
	if err != nil {
		b.Skipped = append(b.Skipped, types.ItemError{Index: index, Renderer: string(Detect(raw)), Err: err})
		return
	}
	if ok {
		b.Items = append(b.Items, item)
	}
}

// Sections walks a section list: continuation markers set the cursor and
// item sections have each of their entries normalized. A marker may appear
// anywhere in the list; scanning continues past it.
func Sections(contents []any, opts Options) Batch {
	var b Batch
	for _, content := range contents {
		switch Detect(content) {
		case KindContinuation:
			if token := ContinuationToken(content); token != "" {
				b.Continuation = token
			}
		case KindItemSection:
			for _, entry := range DigSlice(content, string(KindItemSection), "contents") {
				b.add(entry, opts)
			}
		}
	}
	return b
}

// Entries normalizes a flat list, such as a playlist's video list or a
// watch page's suggestions. Continuation markers in the list set the cursor.
func Entries(entries []any, opts Options) Batch {
	var b Batch
	for _, entry := range entries {
		if Detect(entry) == KindContinuation {
			if token := ContinuationToken(entry); token != "" {
				b.Continuation = token
			}
			continue
		}
		b.add(entry, opts)
	}
	return b
}

// Truncate limits items to limit entries; limit <= 0 keeps everything.
func Truncate(items []types.Item, limit int) []types.Item {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
