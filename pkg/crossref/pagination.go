package crossref

import (
	"context"
	"errors"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

type pagerState int

const (
	pagerFresh pagerState = iota
	pagerPaging
	pagerDone
)

// DeepPager walks a works list page by page. When the query carries no result
// window, the pager installs a fresh cursor and follows `next-cursor` until the
// server returns an empty page. A query with an explicit rows/offset window
// yields exactly one page. A failed request ends the sequence: Next returns the
// error and Err keeps it.
//
// A DeepPager is not safe for concurrent use.
type DeepPager struct {
	ctx      context.Context //nolint:containedctx // the pager is an iterator bound to one call
	fetcher  Fetcher
	request  query.ResourceRequest
	logger   Logger
	state    pagerState
	requests int
	err      error
}

// NewDeepPager creates a pager over request, which must target a works list:
// a works query or the works of a funder, member, journal, prefix or type.
func NewDeepPager(ctx context.Context, fetcher Fetcher, request query.ResourceRequest) *DeepPager {
	p := &DeepPager{ctx: ctx, fetcher: fetcher, request: request}

	if !request.IsWorksList() {
		p.state = pagerDone
		p.err = &query.RouteError{Op: "deep page", Value: string(request.Component()), Err: query.ErrNotWorksListRoute}
	}

	return p
}

// WithLogger attaches a logger that records every page request.
func (p *DeepPager) WithLogger(logger Logger) *DeepPager {
	p.logger = logger

	return p
}

// Next fetches the next page. It returns ErrNoMorePages once the sequence is
// exhausted, without issuing another request.
func (p *DeepPager) Next() (*response.WorkList, error) {
	switch p.state {
	case pagerDone:
		if p.requests == 0 && p.err != nil {
			return nil, p.err
		}

		return nil, ErrNoMorePages
	case pagerFresh:
		p.start()
	case pagerPaging:
	}

	p.requests++

	env, err := p.fetcher.Do(p.ctx, p.request)
	if err != nil {
		return nil, p.fail(err)
	}

	page, err := response.Expect[*response.WorkList](env)
	if err != nil {
		return nil, p.fail(err)
	}

	p.advance(page)

	if len(page.Items) == 0 {
		p.state = pagerDone

		return nil, ErrNoMorePages
	}

	return page, nil
}

// start installs a fresh cursor when the query has no result window.
func (p *DeepPager) start() {
	p.state = pagerPaging

	q, _ := p.request.WorksQuery()
	if _, ok := q.Window(); ok {
		return
	}

	// the request was checked to be a works list in NewDeepPager
	p.request, _ = p.request.WithWorksQuery(q.WithCursor())
}

// advance moves the cursor to the token of page, or ends the sequence when the
// page has no successor.
func (p *DeepPager) advance(page *response.WorkList) {
	q, _ := p.request.WorksQuery()
	window, _ := q.Window()

	if page.NextCursor == nil || !window.IsCursor() {
		p.state = pagerDone

		return
	}

	p.request, _ = p.request.WithWorksQuery(q.WithResultWindow(window.WithToken(*page.NextCursor)))

	if p.logger != nil {
		p.logger.Debug("Advancing cursor", map[string]interface{}{
			"request": p.requests,
			"items":   len(page.Items),
			"total":   page.TotalResults,
		})
	}
}

func (p *DeepPager) fail(err error) error {
	p.state = pagerDone
	p.err = err

	if p.logger != nil {
		p.logger.Error("Deep paging failed", map[string]interface{}{
			"request": p.requests,
			"error":   err.Error(),
		})
	}

	return err
}

// Err returns the error that ended the sequence, or nil when it ended normally.
func (p *DeepPager) Err() error {
	return p.err
}

// Done reports whether the sequence has ended.
func (p *DeepPager) Done() bool {
	return p.state == pagerDone
}

// Requests returns the number of requests issued so far.
func (p *DeepPager) Requests() int {
	return p.requests
}

// ForEach calls fn for every page until the sequence ends or fn returns an error.
func (p *DeepPager) ForEach(fn func(*response.WorkList) error) error {
	for {
		page, err := p.Next()
		if errors.Is(err, ErrNoMorePages) {
			return nil
		}

		if err != nil {
			return err
		}

		if err := fn(page); err != nil {
			return err
		}
	}
}

// All collects the works of every page.
func (p *DeepPager) All() ([]response.Work, error) {
	var works []response.Work

	err := p.ForEach(func(page *response.WorkList) error {
		works = append(works, page.Items...)

		return nil
	})

	return works, err
}
