package commands_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/crossref-client/cmd/crossref/commands"
	"github.com/fivetwenty-io/crossref-client/internal/testserver"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
)

func TestNewWorksCommand(t *testing.T) {
	cmd := commands.NewWorksCommand()
	assert.Equal(t, "works", cmd.Use)
	assert.Equal(t, []string{"work"}, cmd.Aliases)
	assert.Equal(t, "Query works", cmd.Short)

	for _, name := range []string{"get", "agency", "search", "random", "list"} {
		assert.NotNil(t, findSubcommand(cmd, name), "Subcommand %s should exist", name)
	}

	list := findSubcommand(cmd, "list")
	require.NotNil(t, list)

	flags := []string{
		"query", "field", "filter", "sort", "order", "facet", "rows", "offset", "sample", "limit",
		"cursor", "deep-page", "output-file", "append", "member", "funder", "journal", "prefix", "type",
	}
	for _, flagName := range flags {
		assert.NotNil(t, list.Flags().Lookup(flagName), "Flag %s should exist", flagName)
	}

	assert.Contains(t, list.Long, "Work filters: ")
	assert.Contains(t, list.Long, "relation.object-type")

	deepPage := list.Flags().Lookup("deep-page")
	assert.Equal(t, "d", deepPage.Shorthand)
	assert.Equal(t, "false", deepPage.DefValue)
}

func TestRegistryCommands(t *testing.T) {
	tests := []struct {
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{cmd: commands.NewFundersCommand(), use: "funders", subcommands: []string{"get", "list", "works"}},
		{cmd: commands.NewMembersCommand(), use: "members", subcommands: []string{"get", "list", "works"}},
		{cmd: commands.NewJournalsCommand(), use: "journals", subcommands: []string{"get", "list", "works"}},
		{cmd: commands.NewPrefixesCommand(), use: "prefixes", subcommands: []string{"get", "works"}},
		{cmd: commands.NewTypesCommand(), use: "types", subcommands: []string{"get", "list", "works"}},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.use, testCase.cmd.Use)
		assert.Len(t, testCase.cmd.Commands(), len(testCase.subcommands))

		for _, name := range testCase.subcommands {
			assert.NotNil(t, findSubcommand(testCase.cmd, name), "%s should have %s", testCase.use, name)
		}

		works := findSubcommand(testCase.cmd, "works")
		require.NotNil(t, works)
		assert.Equal(t, "works ID", works.Use)
		assert.NotNil(t, works.Flags().Lookup("deep-page"))
		assert.Nil(t, works.Flags().Lookup("member"))
	}

	journals := findSubcommand(commands.NewJournalsCommand(), "list")
	require.NotNil(t, journals)
	assert.NotNil(t, journals.Flags().Lookup("query"))
	assert.Nil(t, journals.Flags().Lookup("filter"))
}

func TestNewConfigCommand(t *testing.T) {
	cmd := commands.NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage CLI configuration", cmd.Short)
	assert.Len(t, cmd.Commands(), 3)

	for _, name := range []string{"show", "set", "unset"} {
		assert.NotNil(t, findSubcommand(cmd, name))
	}
}

// useServer points the commands at a fresh fake API.
func useServer(t *testing.T, output string) *testserver.Server {
	t.Helper()

	server := testserver.New(t)

	viper.Set("base_url", server.URL)
	viper.Set("output", output)
	t.Cleanup(viper.Reset)

	return server
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestWorksCommand_Run(t *testing.T) {
	t.Run("deep paging stops at the limit", func(t *testing.T) {
		server := useServer(t, "json")
		server.Pages("/works", []string{"10.5555/1", "10.5555/2"}, []string{"10.5555/3", "10.5555/4"})

		out, err := runCommand(t, commands.NewWorksCommand(), "list", "--deep-page", "--limit", "3", "--query", "ecology")
		require.NoError(t, err)

		var works []response.Work
		require.NoError(t, json.Unmarshal([]byte(out), &works))
		require.Len(t, works, 3)
		assert.Equal(t, "10.5555/3", works[2].DOI)

		requests := server.Requests()
		require.Len(t, requests, 2)
		assert.Equal(t, "query=ecology&cursor=*", requests[0].RawQuery)
		assert.Equal(t, "query=ecology&cursor=page-1", requests[1].RawQuery)
	})

	t.Run("works of a member", func(t *testing.T) {
		server := useServer(t, "table")
		server.Pages("/members/98/works", []string{"10.5555/1"}, []string{"10.5555/2"})

		out, err := runCommand(t, commands.NewMembersCommand(), "works", "98", "-d")
		require.NoError(t, err)
		assert.Contains(t, out, "10.5555/1")
		assert.Contains(t, out, "Title of 10.5555/2")
		assert.Contains(t, out, "Member Works: showing 2 of 2 results")
		assert.Len(t, server.Requests(), 3)
	})

	t.Run("single page with a parent", func(t *testing.T) {
		server := useServer(t, "table")
		server.Reply("/types/dataset/works", http.StatusOK, testserver.WorkListPage(40, "", "10.5555/1", "10.5555/2"))

		out, err := runCommand(t, commands.NewWorksCommand(), "list", "--type", "dataset", "--rows", "2")
		require.NoError(t, err)
		assert.Contains(t, out, "Works: showing 2 of 40 results")

		requests := server.Requests()
		require.Len(t, requests, 1)
		assert.Equal(t, "/types/dataset/works", requests[0].Path)
		assert.Equal(t, "rows=2", requests[0].RawQuery)
	})

	t.Run("conflicting parents", func(t *testing.T) {
		server := useServer(t, "table")

		_, err := runCommand(t, commands.NewWorksCommand(), "list", "--member", "98", "--funder", "100000001")
		require.ErrorIs(t, err, commands.ErrConflictingParent)
		assert.Empty(t, server.Requests())
	})

	t.Run("unknown DOI", func(t *testing.T) {
		useServer(t, "table")

		_, err := runCommand(t, commands.NewWorksCommand(), "get", "10.5555/missing")
		require.Error(t, err)
		assert.True(t, crossref.IsNotFound(err))
	})

	t.Run("random rejects an out of range count", func(t *testing.T) {
		server := useServer(t, "table")

		_, err := runCommand(t, commands.NewWorksCommand(), "random", "0")
		require.ErrorIs(t, err, commands.ErrOutOfRange)
		assert.Empty(t, server.Requests())
	})

	t.Run("results written to a file", func(t *testing.T) {
		server := useServer(t, "json")
		server.Reply("/works", http.StatusOK, testserver.WorkListPage(1, "", "10.5555/1"))

		path := filepath.Join(t.TempDir(), "works.json")

		out, err := runCommand(t, commands.NewWorksCommand(), "list", "--output-file", path)
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"DOI": "10.5555/1"`)
	})
}

func TestTypesCommand_Get(t *testing.T) {
	server := useServer(t, "yaml")
	server.ReplyJSON("/types/journal-article", "type", map[string]string{"id": "journal-article", "label": "Journal Article"})

	out, err := runCommand(t, commands.NewTypesCommand(), "get", "journal-article")
	require.NoError(t, err)
	assert.Equal(t, "id: journal-article\nlabel: Journal Article\n", out)
}

func TestConfigCommand_SetAndUnset(t *testing.T) {
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yml")
	viper.SetConfigFile(path)
	viper.Set("base_url", "https://mirror.example.org")
	viper.Set("user_agent", "MirrorBot/1.0")

	out, err := runCommand(t, commands.NewConfigCommand(), "set", "mailto", "someone@example.org")
	require.NoError(t, err)
	assert.Equal(t, "Set mailto = someone@example.org\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mailto: someone@example.org\n", string(data))

	out, err = runCommand(t, commands.NewConfigCommand(), "unset", "mailto")
	require.NoError(t, err)
	assert.Equal(t, "Unset mailto\n", out)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(data))

	_, err = runCommand(t, commands.NewConfigCommand(), "set", "colour", "blue")
	require.ErrorIs(t, err, commands.ErrUnknownConfigKey)

	_, err = runCommand(t, commands.NewConfigCommand(), "set", "output", "xml")
	require.ErrorIs(t, err, commands.ErrOutOfRange)
}

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}
