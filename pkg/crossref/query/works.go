package query

import "slices"

// QueryField is a bibliographic field that a works query can search within.
type QueryField string

// Searchable fields of a work.
const (
	FieldTitle          QueryField = "title"
	FieldContainerTitle QueryField = "container-title"
	FieldAuthor         QueryField = "author"
	FieldEditor         QueryField = "editor"
	FieldChair          QueryField = "chair"
	FieldTranslator     QueryField = "translator"
	FieldContributor    QueryField = "contributor"
	FieldBibliographic  QueryField = "bibliographic"
	FieldAffiliation    QueryField = "affiliation"
)

// QueryFields lists every searchable field.
func QueryFields() []QueryField {
	return []QueryField{
		FieldTitle, FieldContainerTitle, FieldAuthor, FieldEditor, FieldChair,
		FieldTranslator, FieldContributor, FieldBibliographic, FieldAffiliation,
	}
}

// ParseQueryField resolves a field name.
func ParseQueryField(name string) (QueryField, error) {
	if slices.Contains(QueryFields(), QueryField(name)) {
		return QueryField(name), nil
	}

	return "", &RouteError{Op: "parse field", Value: name, Err: ErrUnknownField}
}

// FieldQuery is a free-text term scoped to one field of a work. It encodes
// under the API's `query.<field>` key, e.g. `query.author=Feynman`.
type FieldQuery struct {
	Field QueryField
	Value string
}

// ByField scopes a free-text term to field.
func ByField(field QueryField, value string) FieldQuery {
	return FieldQuery{Field: field, Value: value}
}

// ParamKey implements QueryParam.
func (f FieldQuery) ParamKey() string {
	return "query." + string(f.Field)
}

// ParamValue implements QueryParam.
func (f FieldQuery) ParamValue() (string, bool) {
	return FormatQuery(f.Value), true
}

// WorksQuery is the builder for the works family. Like Query, every With
// method returns an updated copy.
type WorksQuery struct {
	terms   []string
	fields  []FieldQuery
	filters []WorkFilter
	sort    Sort
	order   Order
	facets  []FacetCount
	window  WorkResultWindow
}

// NewWorksQuery returns an empty works query.
func NewWorksQuery() WorksQuery {
	return WorksQuery{}
}

// NewWorksSearch returns a works query for a single free-text term.
func NewWorksSearch(term string) WorksQuery {
	return WorksQuery{}.WithQuery(term)
}

// WithQuery adds a free-text term.
func (q WorksQuery) WithQuery(term string) WorksQuery {
	q.terms = append(slices.Clip(q.terms), term)

	return q
}

// WithField adds a field-scoped term.
func (q WorksQuery) WithField(f FieldQuery) WorksQuery {
	q.fields = append(slices.Clip(q.fields), f)

	return q
}

// WithFilter adds a filter.
func (q WorksQuery) WithFilter(f WorkFilter) WorksQuery {
	q.filters = append(slices.Clip(q.filters), f)

	return q
}

// WithSort sets the sort key.
func (q WorksQuery) WithSort(s Sort) WorksQuery {
	q.sort = s

	return q
}

// WithOrder sets the sort direction.
func (q WorksQuery) WithOrder(o Order) WorksQuery {
	q.order = o

	return q
}

// WithFacet adds a facet request.
func (q WorksQuery) WithFacet(f FacetCount) WorksQuery {
	q.facets = append(slices.Clip(q.facets), f)

	return q
}

// WithWindow sets a standard result window.
func (q WorksQuery) WithWindow(w ResultWindow) WorksQuery {
	q.window = StandardWindow(w)

	return q
}

// WithResultWindow sets a standard window or a cursor.
func (q WorksQuery) WithResultWindow(w WorkResultWindow) WorksQuery {
	q.window = w

	return q
}

// WithCursor switches the query to deep paging from the start.
func (q WorksQuery) WithCursor() WorksQuery {
	q.window = NewCursor()

	return q
}

// Terms returns a copy of the free-text terms.
func (q WorksQuery) Terms() []string {
	return slices.Clone(q.terms)
}

// Filters returns a copy of the filters.
func (q WorksQuery) Filters() []WorkFilter {
	return slices.Clone(q.filters)
}

// Window returns the result window, if one is set.
func (q WorksQuery) Window() (WorkResultWindow, bool) {
	if q.window.standard == nil && q.window.cursor == nil {
		return WorkResultWindow{}, false
	}

	return q.window, true
}

// Params renders the query parameters in canonical order.
func (q WorksQuery) Params() []string {
	if q.window.isSample() {
		return q.window.params()
	}

	params := freeTextParams(q.terms)

	for _, f := range q.fields {
		params = append(params, Param(f))
	}

	if p, ok := JoinFragments("filter", q.filters); ok {
		params = append(params, p)
	}

	params = append(params, trailingParams(q.facets, q.sort, q.order)...)

	return append(params, q.window.params()...)
}
