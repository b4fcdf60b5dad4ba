package crossrefclient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/crossref-client/internal/testserver"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossrefclient"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("requires a config", func(t *testing.T) {
		t.Parallel()

		_, err := crossrefclient.New(nil)
		require.ErrorIs(t, err, crossref.ErrConfigRequired)
	})

	t.Run("creates client with config", func(t *testing.T) {
		t.Parallel()

		client, err := crossrefclient.New(&crossref.Config{BaseURL: "https://api.example.com"})
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("does not modify the config", func(t *testing.T) {
		t.Parallel()

		config := &crossref.Config{BaseURL: "api.example.com/", Mailto: "me@example.org"}

		_, err := crossrefclient.New(config)
		require.NoError(t, err)
		assert.Equal(t, "api.example.com/", config.BaseURL)
		assert.Empty(t, config.UserAgent)
	})

	t.Run("rejects an invalid base URL", func(t *testing.T) {
		t.Parallel()

		_, err := crossrefclient.New(&crossref.Config{BaseURL: "https://exa mple.com"})
		require.ErrorIs(t, err, crossref.ErrInvalidBaseURL)

		_, err = crossrefclient.New(&crossref.Config{BaseURL: "https://api.example.com/?x=1"})
		require.ErrorIs(t, err, crossref.ErrInvalidBaseURL)
	})

	t.Run("sends the polite user agent", func(t *testing.T) {
		t.Parallel()

		server := testserver.New(t)
		server.ReplyJSON("/types/book", "type", map[string]string{"id": "book", "label": "Book"})

		client, err := crossrefclient.New(&crossref.Config{
			BaseURL:   server.URL + "/",
			UserAgent: "bibtool/2.1",
			Mailto:    "librarian@example.org",
		})
		require.NoError(t, err)

		workType, err := client.Types().Get(context.Background(), "book")
		require.NoError(t, err)
		assert.Equal(t, "Book", workType.Label)

		requests := server.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "bibtool/2.1 (mailto:librarian@example.org)", requests[0].UserAgent)
	})
}

func TestUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		agent  string
		mailto string
		want   string
	}{
		{name: "default", want: "crossref-client"},
		{name: "custom agent", agent: "bibtool/2.1", want: "bibtool/2.1"},
		{name: "polite default", mailto: "me@example.org", want: "crossref-client (mailto:me@example.org)"},
		{name: "polite custom", agent: "bibtool/2.1", mailto: " me@example.org ", want: "bibtool/2.1 (mailto:me@example.org)"},
		{name: "contact already present", agent: "bibtool/2.1 (mailto:a@b.c)", mailto: "me@example.org", want: "bibtool/2.1 (mailto:a@b.c)"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, crossrefclient.UserAgent(testCase.agent, testCase.mailto))
		})
	}
}

func TestNewHelpers(t *testing.T) {
	t.Parallel()

	client, err := crossrefclient.NewDefault()
	require.NoError(t, err)
	assert.NotNil(t, client)

	client, err = crossrefclient.NewWithBaseURL("https://api.example.com")
	require.NoError(t, err)
	assert.NotNil(t, client)

	client, err = crossrefclient.NewPolite("me@example.org")
	require.NoError(t, err)
	assert.NotNil(t, client)
}
