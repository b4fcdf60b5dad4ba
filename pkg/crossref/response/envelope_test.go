package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

const workAgencyBody = `{
	"status": "ok",
	"message-type": "work-agency",
	"message-version": "1.0.0",
	"message": {
		"DOI": "10.1037/0003-066x.59.1.29",
		"agency": {"id": "crossref", "label": "Crossref"}
	}
}`

const funderListBody = `{
	"status": "ok",
	"message-type": "funder-list",
	"message-version": "1.0.0",
	"message": {
		"items-per-page": 2,
		"query": {"start-index": 0, "search-terms": "national"},
		"total-results": 1401,
		"items": [
			{
				"id": "100000001",
				"location": "United States",
				"name": "National Science Foundation",
				"alt-names": ["NSF"],
				"uri": "http://dx.doi.org/10.13039/100000001",
				"replaces": [],
				"replaced-by": [],
				"tokens": ["national", "science", "foundation"]
			},
			{
				"id": "501100000780",
				"location": "Belgium",
				"name": "European Commission",
				"alt-names": [],
				"uri": "http://dx.doi.org/10.13039/501100000780",
				"replaces": [],
				"replaced-by": [],
				"tokens": ["european", "commission"]
			}
		]
	}
}`

// samples holds one minimal valid message per message type.
var samples = map[response.MessageType]string{
	response.MessageTypeWorkAgency:        `{"DOI": "10.5555/1", "agency": {"id": "datacite", "label": "DataCite"}}`,
	response.MessageTypeFunder:            `{"id": "100000001", "name": "National Science Foundation"}`,
	response.MessageTypePrefix:            `{"member": "http://id.crossref.org/member/78", "name": "Elsevier BV", "prefix": "http://id.crossref.org/prefix/10.1016"}`,
	response.MessageTypeMember:            `{"id": 78, "primary-name": "Elsevier BV", "counts": {"total-dois": 3, "current-dois": 1, "backfile-dois": 2}}`,
	response.MessageTypeWork:              `{"DOI": "10.5555/1", "type": "journal-article", "URL": "https://doi.org/10.5555/1"}`,
	response.MessageTypeWorkList:          `{"total-results": 1, "items": [{"DOI": "10.5555/1", "type": "book", "URL": "https://doi.org/10.5555/1"}]}`,
	response.MessageTypeFunderList:        `{"total-results": 0, "items": []}`,
	response.MessageTypeType:              `{"id": "book", "label": "Book"}`,
	response.MessageTypeTypeList:          `{"total-results": 1, "items": [{"id": "book", "label": "Book"}]}`,
	response.MessageTypeMemberList:        `{"total-results": 1, "items": [{"id": 1, "primary-name": "A"}]}`,
	response.MessageTypeJournal:           `{"title": "Nature", "ISSN": ["0028-0836", "1476-4687"], "issn-type": [{"value": "0028-0836", "type": "print"}]}`,
	response.MessageTypeJournalList:       `{"total-results": 1, "items": [{"ISSN": ["0028-0836"]}]}`,
	response.MessageTypeValidationFailure: `[{"type": "parameter-not-allowed", "value": "colour", "message": "This route does not support colour"}]`,
	response.MessageTypeRouteNotFound:     `{}`,
}

func envelope(messageType response.MessageType, message string) []byte {
	return []byte(`{"status":"ok","message-type":"` + string(messageType) + `","message-version":"1.0.0","message":` + message + `}`)
}

func TestDecode_EveryMessageType(t *testing.T) {
	t.Parallel()

	require.Len(t, samples, len(response.MessageTypes()))

	for _, messageType := range response.MessageTypes() {
		messageType := messageType
		t.Run(string(messageType), func(t *testing.T) {
			t.Parallel()

			sample, ok := samples[messageType]
			require.True(t, ok, "no sample for %s", messageType)

			env, err := response.Decode(envelope(messageType, sample))
			require.NoError(t, err)
			require.NotNil(t, env.Message)
			assert.Equal(t, messageType, env.MessageType)
			assert.Equal(t, messageType, env.Message.MessageType())
		})
	}
}

func TestDecode_WorkAgency(t *testing.T) {
	t.Parallel()

	env, err := response.Decode([]byte(workAgencyBody))
	require.NoError(t, err)
	assert.Equal(t, "ok", env.Status)
	assert.Equal(t, response.MessageTypeWorkAgency, env.MessageType)

	agency, err := response.Expect[*response.WorkAgency](env)
	require.NoError(t, err)
	assert.Equal(t, "10.1037/0003-066x.59.1.29", agency.DOI)
	assert.Equal(t, response.Agency{ID: "crossref", Label: "Crossref"}, agency.Agency)
}

func TestDecode_FunderList(t *testing.T) {
	t.Parallel()

	env, err := response.Decode([]byte(funderListBody))
	require.NoError(t, err)

	funders, err := response.Expect[*response.FunderList](env)
	require.NoError(t, err)
	assert.Equal(t, 1401, funders.TotalResults)
	require.NotNil(t, funders.ItemsPerPage)
	assert.Equal(t, 2, *funders.ItemsPerPage)
	require.NotNil(t, funders.Query)
	require.NotNil(t, funders.Query.SearchTerms)
	assert.Equal(t, "national", *funders.Query.SearchTerms)
	require.Len(t, funders.Items, 2)
	assert.Equal(t, "European Commission", funders.Items[1].Name)
	assert.Equal(t, []string{"NSF"}, funders.Items[0].AltNames)

	_, err = response.Expect[*response.Funder](env)
	unexpected := &response.UnexpectedItemError{}
	require.ErrorAs(t, err, &unexpected)
	assert.Equal(t, response.MessageTypeFunder, unexpected.Expected)
	assert.Equal(t, response.MessageTypeFunderList, unexpected.Got)
}

func TestDecode_MismatchedShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		messageType response.MessageType
		message     string
	}{
		{name: "list under a single funder", messageType: response.MessageTypeFunder, message: `{"total-results": 1, "items": []}`},
		{name: "array under a work", messageType: response.MessageTypeWork, message: `[{"DOI": "10.5555/1"}]`},
		{name: "work without a type", messageType: response.MessageTypeWork, message: `{"DOI": "10.5555/1", "URL": "u"}`},
		{name: "work list without total", messageType: response.MessageTypeWorkList, message: `{"items": []}`},
		{name: "work list without items", messageType: response.MessageTypeWorkList, message: `{"total-results": 3}`},
		{name: "bad list item", messageType: response.MessageTypeTypeList, message: `{"total-results": 1, "items": [{"id": "book"}]}`},
		{name: "object under a validation failure", messageType: response.MessageTypeValidationFailure, message: `{"type": "x"}`},
		{name: "string under a prefix", messageType: response.MessageTypePrefix, message: `"10.1016"`},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := response.Decode(envelope(testCase.messageType, testCase.message))
			require.Error(t, err)

			decodeErr := &response.DecodeError{}
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, testCase.messageType, decodeErr.MessageType)
		})
	}

	_, err := response.Decode(envelope(response.MessageTypeFunder, funderListBody))
	require.Error(t, err)

	_, err = response.Decode(envelope(response.MessageTypeWork, `{"DOI": "10.5555/1", "URL": "u"}`))
	require.ErrorIs(t, err, response.ErrMissingField)
}

func TestDecode_ResourceNotFound(t *testing.T) {
	t.Parallel()

	for _, body := range []string{"Resource not found.", "Resource not found", "\n Resource not found.\n"} {
		env, err := response.Decode([]byte(body))
		require.ErrorIs(t, err, response.ErrResourceNotFound)
		assert.Nil(t, env)
		assert.True(t, response.IsResourceNotFound([]byte(body)))
	}

	assert.False(t, response.IsResourceNotFound([]byte(workAgencyBody)))
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestDecode_Envelope(t *testing.T) {
	t.Parallel()

	t.Run("defaults the message version", func(t *testing.T) {
		t.Parallel()

		env, err := response.Decode([]byte(`{"status":"ok","message-type":"type","message":{"id":"book","label":"Book"}}`))
		require.NoError(t, err)
		assert.Equal(t, response.DefaultMessageVersion, env.MessageVersion)
	})

	t.Run("absent message", func(t *testing.T) {
		t.Parallel()

		env, err := response.Decode([]byte(`{"status":"ok","message-type":"work"}`))
		require.NoError(t, err)
		assert.Nil(t, env.Message)

		env, err = response.Decode([]byte(`{"status":"ok","message-type":"work","message":null}`))
		require.NoError(t, err)
		assert.Nil(t, env.Message)

		_, err = response.Expect[*response.Work](env)
		missing := &response.MissingMessageError{}
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, response.MessageTypeWork, missing.Expected)
	})

	t.Run("route not found", func(t *testing.T) {
		t.Parallel()

		env, err := response.Decode([]byte(`{"status":"error","message-type":"route-not-found","message-version":"1.0.0","message":null}`))
		require.NoError(t, err)
		assert.True(t, env.IsRouteNotFound())
		assert.Equal(t, response.RouteNotFound{}, env.Message)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()

		env, err := response.Decode(envelope(response.MessageTypeValidationFailure, samples[response.MessageTypeValidationFailure]))
		require.NoError(t, err)
		assert.True(t, env.IsValidationFailure())

		failures, err := response.Expect[response.ValidationFailure](env)
		require.NoError(t, err)
		require.Len(t, failures, 1)
		assert.Equal(t, "parameter-not-allowed", failures[0].Type)
		assert.Equal(t, "colour", failures[0].ValueString())
	})

	t.Run("unknown message type", func(t *testing.T) {
		t.Parallel()

		_, err := response.Decode([]byte(`{"status":"ok","message-type":"deposit","message":{}}`))
		require.Error(t, err)
		assert.ErrorIs(t, err, response.ErrUnknownMessageType)

		decodeErr := &response.DecodeError{}
		assert.ErrorAs(t, err, &decodeErr)
	})

	t.Run("missing message type", func(t *testing.T) {
		t.Parallel()

		_, err := response.Decode([]byte(`{"status":"ok","message":{}}`))
		require.ErrorIs(t, err, response.ErrMissingField)
	})

	t.Run("not JSON", func(t *testing.T) {
		t.Parallel()

		_, err := response.Decode([]byte(`<html></html>`))
		decodeErr := &response.DecodeError{}
		require.ErrorAs(t, err, &decodeErr)
		assert.Empty(t, decodeErr.MessageType)
	})

	t.Run("work list with cursor", func(t *testing.T) {
		t.Parallel()

		env, err := response.Decode(envelope(response.MessageTypeWorkList,
			`{"total-results": 1, "next-cursor": "AoJ/w==", "facets": {"orcid": {"value-count": 1, "values": {"x": 2}}},
			  "items": [{"DOI": "10.5555/1", "type": "book", "URL": "u", "title": ["A", "B"]}]}`))
		require.NoError(t, err)
		assert.True(t, env.IsWorkList())

		works, err := response.Expect[*response.WorkList](env)
		require.NoError(t, err)
		require.NotNil(t, works.NextCursor)
		assert.Equal(t, "AoJ/w==", *works.NextCursor)
		assert.Equal(t, 2, works.Facets["orcid"].Values["x"])
		assert.Equal(t, "A", works.Items[0].FirstTitle())
	})
}

func TestParseMessageType(t *testing.T) {
	t.Parallel()

	for _, messageType := range response.MessageTypes() {
		messageType := messageType
		parsed, err := response.ParseMessageType(messageType.String())
		require.NoError(t, err)
		assert.Equal(t, messageType, parsed)
	}

	_, err := response.ParseMessageType("works")
	require.ErrorIs(t, err, response.ErrUnknownMessageType)
}
