package query_test

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
)

//nolint:funlen // Test functions can be longer for detailed testing
func TestWorkFilter_Encoding(t *testing.T) {
	t.Parallel()

	day := time.Date(2019, time.March, 7, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		filter   query.WorkFilter
		expected string
	}{
		{name: "flag", filter: query.HasFunder(), expected: "has-funder"},
		{name: "clinical trial flag", filter: query.HasClinicalTrialNumber(), expected: "has-clinical-trial-number"},
		{name: "string", filter: query.Funder("10.13039/100000001"), expected: "funder:10.13039%2F100000001"},
		{name: "date drops the clock", filter: query.UntilIndexDate(day), expected: "until-index-date:2019-03-07"},
		{name: "posted date", filter: query.FromPostedDate(day), expected: "from-posted-date:2019-03-07"},
		{name: "license url is escaped", filter: query.LicenseURL("http://creativecommons.org/licenses/by/4.0/"),
			expected: "license.url:http%3A%2F%2Fcreativecommons.org%2Flicenses%2Fby%2F4.0%2F"},
		{name: "license delay", filter: query.LicenseDelay(0), expected: "license.delay:0"},
		{name: "visibility", filter: query.ReferenceVisibility(query.VisibilityLimited), expected: "reference-visibility:limited"},
		{name: "type", filter: query.Type(query.TypeProceedingsArticle), expected: "type:proceedings-article"},
		{name: "isbn is normalized", filter: query.ISBN("0-201-61622-x"), expected: "isbn:020161622X"},
		{name: "orcid", filter: query.ORCID("0000-0002-1825-0097"), expected: "orcid:0000-0002-1825-0097"},
		{name: "award", filter: query.AwardNumber("CBET-0756451"), expected: "award.number:CBET-0756451"},
		{name: "alternative id", filter: query.AlternativeID("a,b"), expected: "alternative-id:a%2Cb"},
		{name: "relation type", filter: query.RelationType("is-preprint-of"), expected: "relation.type:is-preprint-of"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, query.Fragment(testCase.filter))
			// Encoding is a pure function of the filter.
			assert.Equal(t, query.Fragment(testCase.filter), testCase.filter.String())
		})
	}
}

//nolint:funlen // Test functions can be longer for detailed testing
func TestParseWorkFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected string
		err      error
	}{
		{name: "bare flag", raw: "has-orcid", expected: "has-orcid"},
		{name: "flag with true", raw: "has-orcid:true", expected: "has-orcid"},
		{name: "flag with other payload", raw: "has-orcid:yes", err: query.ErrInvalidFilter},
		{name: "date", raw: "from-pub-date:2020-01-01", expected: "from-pub-date:2020-01-01"},
		{name: "bad date", raw: "from-pub-date:2020", err: query.ErrInvalidFilter},
		{name: "int", raw: "license.delay:30", expected: "license.delay:30"},
		{name: "bad int", raw: "license.delay:soon", err: query.ErrInvalidFilter},
		{name: "string", raw: "member:98", expected: "member:98"},
		{name: "string keeps colons", raw: "doi:10.1000:182", expected: "doi:10.1000%3A182"},
		{name: "missing string", raw: "member", err: query.ErrInvalidFilter},
		{name: "visibility", raw: "reference-visibility:open", expected: "reference-visibility:open"},
		{name: "bad visibility", raw: "reference-visibility:public", err: query.ErrInvalidFilter},
		{name: "type", raw: "type:book", expected: "type:book"},
		{name: "bad type", raw: "type:novel", err: query.ErrInvalidTypeName},
		{name: "isbn", raw: "isbn:978-0-306-40615-7", expected: "isbn:9780306406157"},
		{name: "unknown", raw: "has-magic", err: query.ErrUnknownFilter},
		{name: "whitespace", raw: "  has-funder ", expected: "has-funder"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f, err := query.ParseWorkFilter(testCase.raw)
			if testCase.err != nil {
				require.ErrorIs(t, err, testCase.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, f.String())
		})
	}
}

func TestWorkFilterKeys(t *testing.T) {
	t.Parallel()

	keys := query.WorkFilterKeys()
	assert.True(t, slices.IsSorted(keys))
	assert.Equal(t, keys, query.WorkFilterKeys())
	assert.Contains(t, keys, "has-funder")
	assert.Contains(t, keys, "relation.object-type")
	assert.Contains(t, keys, "license.delay")

	for _, key := range keys {
		_, err := query.ParseWorkFilter(key)
		assert.NotErrorIs(t, err, query.ErrUnknownFilter, key)
	}
}

func TestMemberAndFunderFilters(t *testing.T) {
	t.Parallel()

	f, err := query.ParseMemberFilter("current-doi-count:12")
	require.NoError(t, err)
	assert.Equal(t, query.MemberCurrentDOICount(12), f)

	f, err = query.ParseMemberFilter("has-public-references")
	require.NoError(t, err)
	assert.Equal(t, "has-public-references", f.String())

	_, err = query.ParseMemberFilter("has-orcid")
	require.ErrorIs(t, err, query.ErrUnknownFilter)

	ff, err := query.ParseFunderFilter("location:Germany")
	require.NoError(t, err)
	assert.Equal(t, query.FunderLocation("Germany"), ff)

	_, err = query.ParseFunderFilter("location")
	require.ErrorIs(t, err, query.ErrInvalidFilter)
}

func TestFacetCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		facet    query.FacetCount
		expected string
	}{
		{name: "unbounded facet defaults to all", facet: query.AllOf(query.FacetPublisherName), expected: "publisher-name:*"},
		{name: "limited facet defaults to its ceiling", facet: query.AllOf(query.FacetORCID), expected: "orcid:100"},
		{name: "limited facet is clamped", facet: query.TopOf(query.FacetContainerTitle, 1000), expected: "container-title:100"},
		{name: "limited facet below ceiling", facet: query.TopOf(query.FacetISSN, 7), expected: "issn:7"},
		{name: "unbounded facet keeps its count", facet: query.TopOf(query.FacetLicense, 1000), expected: "license:1000"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.expected, query.Fragment(testCase.facet))
		})
	}

	param, ok := query.JoinFragments("facet", []query.FacetCount{
		query.AllOf(query.FacetORCID),
		query.TopOf(query.FacetPublished, 5),
	})
	require.True(t, ok)
	assert.Equal(t, "facet=orcid:100,published:5", param)

	_, ok = query.JoinFragments("facet", []query.FacetCount{})
	assert.False(t, ok)

	f, err := query.ParseFacet("type-name")
	require.NoError(t, err)
	assert.Equal(t, query.FacetTypeName, f)

	_, err = query.ParseFacet("colour")
	require.ErrorIs(t, err, query.ErrUnknownFacet)
	assert.Len(t, query.Facets(), 16)
}

func TestResultWindow(t *testing.T) {
	t.Parallel()

	rows, ok := query.RowsOffset(25, 50).RowsLimit()
	require.True(t, ok)
	assert.Equal(t, 25, rows)

	_, ok = query.Offset(10).RowsLimit()
	assert.False(t, ok)

	assert.True(t, query.Sample(5).IsSample())
	assert.False(t, query.Rows(5).IsSample())

	cursor, ok := query.NewCursor().Cursor()
	require.True(t, ok)
	assert.Empty(t, cursor.Token)

	next := query.CursorFrom("abc").WithToken("def")
	cursor, _ = next.Cursor()
	assert.Equal(t, "def", cursor.Token)

	standard := query.StandardWindow(query.Rows(5))
	assert.Equal(t, standard, standard.WithToken("ignored"))
	assert.False(t, standard.IsCursor())

	w, ok := standard.Standard()
	require.True(t, ok)
	assert.Equal(t, query.Rows(5), w)
}

func TestWorkTypes(t *testing.T) {
	t.Parallel()

	assert.Len(t, query.WorkTypes(), 28)

	for _, wt := range query.WorkTypes() {
		parsed, err := query.ParseWorkType(wt.ID())
		require.NoError(t, err)
		assert.Equal(t, wt, parsed)
		assert.NotEmpty(t, wt.Label())
	}

	assert.Equal(t, "Journal Article", query.TypeJournalArticle.Label())

	_, err := query.ParseWorkType("journal_article")
	require.ErrorIs(t, err, query.ErrInvalidTypeName)
}

func TestParseSortAndOrder(t *testing.T) {
	t.Parallel()

	s, err := query.ParseSort("is-referenced-by-count")
	require.NoError(t, err)
	assert.Equal(t, query.SortIsReferencedByCount, s)

	_, err = query.ParseSort("is-reference-by-count")
	require.ErrorIs(t, err, query.ErrUnknownSort)

	o, err := query.ParseOrder("asc")
	require.NoError(t, err)
	assert.Equal(t, query.OrderAsc, o)

	_, err = query.ParseOrder("up")
	require.ErrorIs(t, err, query.ErrUnknownOrder)
}

func TestFormatQuery(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "machine+learning", query.FormatQuery("machine learning"))
	assert.Equal(t, "a+b", query.FormatQuery("\ta \n b "))
	assert.Empty(t, query.FormatQuery("   "))
	assert.Equal(t, "caf%C3%A9+%3D+tea", query.FormatQuery("café = tea"))
	assert.Equal(t, "a+b+c", query.FormatQueries([]string{"a", " ", "b c"}))
	assert.Equal(t, "020161622X", query.NormalizeISBN("0 201 61622 x"))
}

func TestParseQueryField(t *testing.T) {
	t.Parallel()

	for _, field := range query.QueryFields() {
		parsed, err := query.ParseQueryField(string(field))
		require.NoError(t, err)
		assert.Equal(t, field, parsed)
	}

	_, err := query.ParseQueryField("abstract")
	require.ErrorIs(t, err, query.ErrUnknownField)
}

func TestParseFacetCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw      string
		expected string
		err      error
	}{
		{raw: "orcid", expected: "orcid:100"},
		{raw: "published:*", expected: "published:*"},
		{raw: "issn:500", expected: "issn:100"},
		{raw: "license:12", expected: "license:12"},
		{raw: "license:0", err: query.ErrInvalidFacetCount},
		{raw: "license:many", err: query.ErrInvalidFacetCount},
		{raw: "colour:3", err: query.ErrUnknownFacet},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.raw, func(t *testing.T) {
			t.Parallel()

			facet, err := query.ParseFacetCount(testCase.raw)
			if testCase.err != nil {
				require.ErrorIs(t, err, testCase.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.expected, query.Fragment(facet))
		})
	}
}
