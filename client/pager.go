package client

import "context"

// Searcher runs a search and follows its continuations. *Client
// implements it.
type Searcher interface {
	Search(ctx context.Context, keyword string, opts SearchOptions) (*SearchResult, error)
	NextPage(ctx context.Context, next ContinuationState, includePlaylists bool, limit int) (*SearchResult, error)
}

// Pager walks the pages of one search. It is not safe for concurrent use.
type Pager struct {
	src     Searcher
	keyword string
	opts    SearchOptions
	next    ContinuationState
	started bool
}

// NewPager returns a pager for keyword. No request is made until Next.
func (c *Client) NewPager(keyword string, opts SearchOptions) *Pager {
	return NewPager(c, keyword, opts)
}

// NewPager returns a pager that runs keyword against src.
func NewPager(src Searcher, keyword string, opts SearchOptions) *Pager {
	return &Pager{src: src, keyword: keyword, opts: opts}
}

// Done reports whether the last page has been fetched.
func (p *Pager) Done() bool {
	return p.started && p.next.Done()
}

// State returns the continuation state for the following page.
func (p *Pager) State() ContinuationState {
	return p.next
}

// Next fetches the following page. After the last page it returns
// ErrNoMorePages.
func (p *Pager) Next(ctx context.Context) (*SearchResult, error) {
	if p.Done() {
		return nil, ErrNoMorePages
	}
	var (
		res *SearchResult
		err error
	)
	if !p.started {
		res, err = p.src.Search(ctx, p.keyword, p.opts)
	} else {
		res, err = p.src.NextPage(ctx, p.next, p.opts.IncludePlaylists, p.opts.Limit)
	}
	if err != nil {
		return nil, err
	}
	p.started = true
	p.next = res.Next
	return res, nil
}

// All fetches up to maxPages pages (0 for no bound) and concatenates their
// items. Items gathered before a failure are returned with the error.
func (p *Pager) All(ctx context.Context, maxPages int) ([]Item, error) {
	var items []Item
	for pages := 0; !p.Done() && (maxPages <= 0 || pages < maxPages); pages++ {
		res, err := p.Next(ctx)
		if err != nil {
			return items, err
		}
		items = append(items, res.Items...)
	}
	return items, nil
}
