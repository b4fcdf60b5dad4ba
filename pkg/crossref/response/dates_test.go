package response_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

func TestDateParts_AsDate(t *testing.T) {
	t.Parallel()

	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name  string
		parts response.DateParts
		kind  response.DateKind
		dates []time.Time
	}{
		{name: "full date", parts: response.DateParts{{2019, 3, 12}}, kind: response.DateSingle, dates: []time.Time{day(2019, time.March, 12)}},
		{name: "year only", parts: response.DateParts{{2004}}, kind: response.DateSingle, dates: []time.Time{day(2004, time.January, 1)}},
		{name: "year and month", parts: response.DateParts{{2004, 7}}, kind: response.DateSingle, dates: []time.Time{day(2004, time.July, 1)}},
		{
			name:  "range",
			parts: response.DateParts{{2019}, {2020, 2}},
			kind:  response.DateRange,
			dates: []time.Time{day(2019, time.January, 1), day(2020, time.February, 1)},
		},
		{
			name:  "multiple",
			parts: response.DateParts{{2001}, {2002}, {2003}},
			kind:  response.DateMulti,
			dates: []time.Time{day(2001, time.January, 1), day(2002, time.January, 1), day(2003, time.January, 1)},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			field, ok := testCase.parts.AsDate()
			require.True(t, ok)
			assert.Equal(t, testCase.kind, field.Kind)
			assert.Equal(t, testCase.dates, field.Dates)
			assert.Equal(t, testCase.dates[0], field.From())
			assert.Equal(t, testCase.dates[len(testCase.dates)-1], field.To())
		})
	}

	for _, parts := range []response.DateParts{nil, {{}}, {{2019, 13}}, {{2019, 1, 0}}, {{2019, 1, 1, 1}}} {
		_, ok := parts.AsDate()
		assert.False(t, ok, "%v", parts)
	}
}
