package query

import "slices"

// Query is the builder shared by the funders and members families. F is the
// family's filter vocabulary. Every With method returns an updated copy and
// leaves the receiver untouched, so a base query can be safely reused.
type Query[F ParamFragment] struct {
	terms   []string
	filters []F
	sort    Sort
	order   Order
	facets  []FacetCount
	window  *ResultWindow
}

// FundersQuery searches the funder registry.
type FundersQuery = Query[FunderFilter]

// MembersQuery searches the member registry.
type MembersQuery = Query[MemberFilter]

// NewFundersQuery returns an empty funders query.
func NewFundersQuery() FundersQuery {
	return FundersQuery{}
}

// NewMembersQuery returns an empty members query.
func NewMembersQuery() MembersQuery {
	return MembersQuery{}
}

// WithQuery adds a free-text term.
func (q Query[F]) WithQuery(term string) Query[F] {
	q.terms = append(slices.Clip(q.terms), term)

	return q
}

// WithFilter adds a filter.
func (q Query[F]) WithFilter(f F) Query[F] {
	q.filters = append(slices.Clip(q.filters), f)

	return q
}

// WithSort sets the sort key.
func (q Query[F]) WithSort(s Sort) Query[F] {
	q.sort = s

	return q
}

// WithOrder sets the sort direction.
func (q Query[F]) WithOrder(o Order) Query[F] {
	q.order = o

	return q
}

// WithFacet adds a facet request.
func (q Query[F]) WithFacet(f FacetCount) Query[F] {
	q.facets = append(slices.Clip(q.facets), f)

	return q
}

// WithWindow sets the result window.
func (q Query[F]) WithWindow(w ResultWindow) Query[F] {
	q.window = &w

	return q
}

// Terms returns a copy of the free-text terms.
func (q Query[F]) Terms() []string {
	return slices.Clone(q.terms)
}

// Filters returns a copy of the filters.
func (q Query[F]) Filters() []F {
	return slices.Clone(q.filters)
}

// Window returns the result window, if one is set.
func (q Query[F]) Window() (ResultWindow, bool) {
	if q.window == nil {
		return ResultWindow{}, false
	}

	return *q.window, true
}

// Params renders the query parameters in canonical order.
func (q Query[F]) Params() []string {
	if q.window != nil && q.window.IsSample() {
		return q.window.params()
	}

	params := freeTextParams(q.terms)

	if p, ok := JoinFragments("filter", q.filters); ok {
		params = append(params, p)
	}

	params = append(params, trailingParams(q.facets, q.sort, q.order)...)

	if q.window != nil {
		params = append(params, q.window.params()...)
	}

	return params
}

// JournalsQuery searches journals by title. The journals route accepts free
// text and a result window but no filters.
type JournalsQuery struct {
	terms  []string
	window *ResultWindow
}

// NewJournalsQuery returns an empty journals query.
func NewJournalsQuery() JournalsQuery {
	return JournalsQuery{}
}

// WithQuery adds a free-text term.
func (q JournalsQuery) WithQuery(term string) JournalsQuery {
	q.terms = append(slices.Clip(q.terms), term)

	return q
}

// WithWindow sets the result window.
func (q JournalsQuery) WithWindow(w ResultWindow) JournalsQuery {
	q.window = &w

	return q
}

// Params renders the query parameters in canonical order.
func (q JournalsQuery) Params() []string {
	if q.window != nil && q.window.IsSample() {
		return q.window.params()
	}

	params := freeTextParams(q.terms)
	if q.window != nil {
		params = append(params, q.window.params()...)
	}

	return params
}

func freeTextParams(terms []string) []string {
	var params []string

	if text := FormatQueries(terms); text != "" {
		params = append(params, "query="+text)
	}

	return params
}

func trailingParams(facets []FacetCount, sort Sort, order Order) []string {
	var params []string

	if p, ok := JoinFragments("facet", facets); ok {
		params = append(params, p)
	}

	if sort != "" {
		params = append(params, Param(sort))
	}

	if order != "" {
		params = append(params, Param(order))
	}

	return params
}
