package query_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestResourceRequest_Route(t *testing.T) {
	t.Parallel()

	pubDate := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		request  query.ResourceRequest
		expected string
	}{
		{
			name:     "free text with order",
			request:  query.WorksMatching(query.NewWorksQuery().WithQuery("machine learning").WithOrder(query.OrderDesc)),
			expected: "/works?query=machine+learning&order=desc",
		},
		{
			name:     "empty works query",
			request:  query.WorksMatching(query.NewWorksQuery()),
			expected: "/works",
		},
		{
			name:     "work by DOI",
			request:  query.WorkByDOI("10.1037/0003-066X.59.1.29"),
			expected: "/works/10.1037/0003-066X.59.1.29",
		},
		{
			name:     "agency of a DOI",
			request:  query.AgencyOf("10.1/x"),
			expected: "/works/10.1/x/agency",
		},
		{
			name:     "DOI with fragment and query characters",
			request:  query.WorkByDOI("10.1002/(SICI)1521-3773(20010316)40:6<1046::AID-ANIE1046>3.0.CO;2-#"),
			expected: "/works/10.1002/%28SICI%291521-3773%2820010316%2940:6%3C1046::AID-ANIE1046%3E3.0.CO%3B2-%23",
		},
		{
			name:     "agency of a DOI with a question mark",
			request:  query.AgencyOf("10.1234/a?b"),
			expected: "/works/10.1234/a%3Fb/agency",
		},
		{
			name:     "combined parent with a space",
			request:  query.JournalWorks("1234 5678", query.NewWorksQuery()),
			expected: "/journals/1234%205678/works",
		},
		{
			name: "canonical parameter order",
			request: query.WorksMatching(query.NewWorksQuery().
				WithWindow(query.Rows(20)).
				WithOrder(query.OrderAsc).
				WithSort(query.SortIsReferencedByCount).
				WithFacet(query.AllOf(query.FacetPublished)).
				WithFilter(query.FromPubDate(pubDate)).
				WithField(query.ByField(query.FieldAuthor, "Feynman")).
				WithQuery("room at the bottom")),
			expected: "/works?query=room+at+the+bottom&query.author=Feynman&filter=from-pub-date:2020-01-01" +
				"&facet=published:*&sort=is-referenced-by-count&order=asc&rows=20",
		},
		{
			name: "filters are comma joined",
			request: query.WorksMatching(query.NewWorksQuery().
				WithFilter(query.HasFunder()).
				WithFilter(query.Type(query.TypeJournalArticle)).
				WithFilter(query.HasORCID())),
			expected: "/works?filter=has-funder,type:journal-article,has-orcid",
		},
		{
			name: "terms are joined",
			request: query.WorksMatching(query.NewWorksQuery().
				WithQuery("  global   state ").
				WithQuery("").
				WithQuery("bioinformatics")),
			expected: "/works?query=global+state+bioinformatics",
		},
		{
			name:     "words are escaped",
			request:  query.WorksMatching(query.NewWorksSearch("C++ & rust")),
			expected: "/works?query=C%2B%2B+%26+rust",
		},
		{
			name:     "offset window",
			request:  query.WorksMatching(query.NewWorksQuery().WithWindow(query.RowsOffset(10, 30))),
			expected: "/works?rows=10&offset=30",
		},
		{
			name:     "fresh cursor",
			request:  query.WorksMatching(query.NewWorksQuery().WithCursor()),
			expected: "/works?cursor=*",
		},
		{
			name: "cursor with token and rows",
			request: query.WorksMatching(query.NewWorksQuery().
				WithResultWindow(query.CursorWindow(query.Cursor{Token: "AoJ/+w==", Rows: 100}))),
			expected: "/works?cursor=AoJ%2F%2Bw%3D%3D&rows=100",
		},
		{
			name: "combined member works",
			request: query.MemberWorks("98", query.NewWorksSearch("global state").
				WithFilter(query.HasFunder()).
				WithWindow(query.Rows(5))),
			expected: "/members/98/works?query=global+state&filter=has-funder&rows=5",
		},
		{
			name:     "combined funder works",
			request:  query.FunderWorks("100000015", query.NewWorksQuery()),
			expected: "/funders/100000015/works",
		},
		{
			name:     "combined journal works",
			request:  query.JournalWorks("1549-7712", query.NewWorksQuery().WithWindow(query.Offset(40))),
			expected: "/journals/1549-7712/works?offset=40",
		},
		{
			name:     "combined prefix works",
			request:  query.PrefixWorks("10.1016", query.NewWorksQuery().WithSort(query.SortDeposited)),
			expected: "/prefixes/10.1016/works?sort=deposited",
		},
		{
			name:     "combined type works",
			request:  query.TypeWorks(query.TypeDataset, query.NewWorksQuery()),
			expected: "/types/dataset/works",
		},
		{
			name:     "all types",
			request:  query.AllTypes(),
			expected: "/types",
		},
		{
			name:     "type by id",
			request:  query.TypeByID("book-chapter"),
			expected: "/types/book-chapter",
		},
		{
			name: "funders query",
			request: query.FundersMatching(query.NewFundersQuery().
				WithQuery("national science").
				WithFilter(query.FunderLocation("United States")).
				WithWindow(query.Rows(3))),
			expected: "/funders?query=national+science&filter=location:United+States&rows=3",
		},
		{
			name: "members query",
			request: query.MembersMatching(query.NewMembersQuery().
				WithFilter(query.MemberHasPublicReferences()).
				WithFilter(query.MemberReferenceVisibility(query.VisibilityOpen)).
				WithFilter(query.MemberCurrentDOICount(10))),
			expected: "/members?filter=has-public-references,reference-visibility:open,current-doi-count:10",
		},
		{
			name:     "journals query",
			request:  query.JournalsMatching(query.NewJournalsQuery().WithQuery("nature").WithWindow(query.Rows(2))),
			expected: "/journals?query=nature&rows=2",
		},
		{
			name:     "funder by id",
			request:  query.FunderByID("501100000780"),
			expected: "/funders/501100000780",
		},
		{
			name:     "member by id",
			request:  query.MemberByID("98"),
			expected: "/members/98",
		},
		{
			name:     "journal by ISSN",
			request:  query.JournalByISSN("1549-7712"),
			expected: "/journals/1549-7712",
		},
		{
			name:     "prefix by id",
			request:  query.PrefixByID("10.1016"),
			expected: "/prefixes/10.1016",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			route, err := testCase.request.Route()
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, route)
		})
	}
}

func TestResourceRequest_SampleShortCircuits(t *testing.T) {
	t.Parallel()

	works := query.NewWorksSearch("ecology").
		WithField(query.ByField(query.FieldTitle, "forest")).
		WithFilter(query.HasFunder()).
		WithFacet(query.TopOf(query.FacetORCID, 5)).
		WithSort(query.SortScore).
		WithOrder(query.OrderDesc).
		WithWindow(query.Sample(10))

	route, err := query.WorksMatching(works).Route()
	require.NoError(t, err)
	assert.Equal(t, "/works?sample=10", route)

	route, err = query.MemberWorks("98", works).Route()
	require.NoError(t, err)
	assert.Equal(t, "/members/98/works?sample=10", route)

	members := query.NewMembersQuery().
		WithQuery("press").
		WithFilter(query.MemberHasPublicReferences()).
		WithWindow(query.Sample(3))

	route, err = query.MembersMatching(members).Route()
	require.NoError(t, err)
	assert.Equal(t, "/members?sample=3", route)

	journals := query.NewJournalsQuery().WithQuery("nature").WithWindow(query.Sample(2))

	route, err = query.JournalsMatching(journals).Route()
	require.NoError(t, err)
	assert.Equal(t, "/journals?sample=2", route)
}

func TestResourceRequest_ToURL(t *testing.T) {
	t.Parallel()

	request := query.WorksMatching(query.NewWorksSearch("machine learning").WithOrder(query.OrderDesc))

	url, err := request.ToURL("https://api.crossref.org/")
	require.NoError(t, err)
	assert.Equal(t, "https://api.crossref.org/works?query=machine+learning&order=desc", url)

	url, err = request.ToURL("http://localhost:8080")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/works?query=machine+learning&order=desc", url)
}

func TestResourceRequest_RouteErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		request query.ResourceRequest
		err     error
	}{
		{name: "zero value", request: query.ResourceRequest{}, err: query.ErrInvalidRequest},
		{name: "empty DOI", request: query.WorkByDOI(""), err: query.ErrEmptyIdentifier},
		{name: "blank member", request: query.MemberByID("  "), err: query.ErrEmptyIdentifier},
		{name: "empty agency DOI", request: query.AgencyOf(""), err: query.ErrEmptyIdentifier},
		{name: "empty combined parent", request: query.JournalWorks("", query.NewWorksQuery()), err: query.ErrEmptyIdentifier},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := testCase.request.ToURL("https://api.crossref.org")
			require.Error(t, err)
			assert.ErrorIs(t, err, testCase.err)

			routeErr := &query.RouteError{}
			assert.ErrorAs(t, err, &routeErr)
		})
	}
}

func TestResourceRequest_Kinds(t *testing.T) {
	t.Parallel()

	assert.Equal(t, query.KindIdentifier, query.WorkByDOI("10.1/x").Kind())
	assert.Equal(t, query.KindAgency, query.AgencyOf("10.1/x").Kind())
	assert.Equal(t, query.KindQuery, query.AllTypes().Kind())
	assert.Equal(t, query.KindCombined, query.PrefixWorks("10.1016", query.NewWorksQuery()).Kind())
	assert.Equal(t, "combined", query.KindCombined.String())

	assert.True(t, query.WorksMatching(query.NewWorksQuery()).IsWorksList())
	assert.True(t, query.TypeWorks(query.TypeBook, query.NewWorksQuery()).IsWorksList())
	assert.False(t, query.WorkByDOI("10.1/x").IsWorksList())
	assert.False(t, query.FundersMatching(query.NewFundersQuery()).IsWorksList())

	_, err := query.FunderByID("1").WithWorksQuery(query.NewWorksQuery())
	require.ErrorIs(t, err, query.ErrNotWorksListRoute)

	request, err := query.FunderWorks("1", query.NewWorksQuery()).WithWorksQuery(query.NewWorksQuery().WithCursor())
	require.NoError(t, err)

	route, err := request.Route()
	require.NoError(t, err)
	assert.Equal(t, "/funders/1/works?cursor=*", route)
}

func TestWorksQuery_Immutable(t *testing.T) {
	t.Parallel()

	base := query.NewWorksQuery().WithQuery("ecology").WithFilter(query.HasFunder())

	// Both derived queries append to the same base; neither may see the other's filter.
	withORCID := base.WithFilter(query.HasORCID())
	withLicense := base.WithFilter(query.HasLicense())

	assert.Len(t, base.Filters(), 1)
	assert.Equal(t, []string{"has-funder", "has-orcid"}, filterStrings(withORCID.Filters()))
	assert.Equal(t, []string{"has-funder", "has-license"}, filterStrings(withLicense.Filters()))

	terms := base.Terms()
	terms[0] = "mutated"
	assert.Equal(t, []string{"ecology"}, base.Terms())

	_, ok := base.Window()
	assert.False(t, ok)

	paged := base.WithCursor()
	window, ok := paged.Window()
	require.True(t, ok)
	assert.True(t, window.IsCursor())

	_, ok = base.Window()
	assert.False(t, ok)

	assert.Equal(t, base.Params(), base.Params())
}

func TestQuery_Immutable(t *testing.T) {
	t.Parallel()

	base := query.NewMembersQuery().WithFilter(query.MemberHasPublicReferences())

	a := base.WithFilter(query.MemberCurrentDOICount(1))
	b := base.WithFilter(query.MemberBackfileDOICount(2))

	assert.Len(t, base.Filters(), 1)
	assert.Equal(t, "current-doi-count", a.Filters()[1].Key())
	assert.Equal(t, "blackfile-doi-count", b.Filters()[1].Key())
}

func filterStrings(filters []query.WorkFilter) []string {
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		out = append(out, f.String())
	}

	return out
}
