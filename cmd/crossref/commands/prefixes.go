package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewPrefixesCommand creates the prefixes command group.
func NewPrefixesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prefixes",
		Aliases: []string{"prefix"},
		Short:   "Query DOI prefixes",
		Long:    "Look up the owner of a DOI prefix and list the works registered under it",
	}

	cmd.AddCommand(newPrefixesGetCommand())
	cmd.AddCommand(newWorksOfCommand("prefix", func(c crossref.Client) crossref.WorksOf { return c.Prefixes() }))

	return cmd
}

func newPrefixesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PREFIX",
		Short: "Get a prefix",
		Long:  "Display the member owning PREFIX, e.g. 10.1016",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			prefix, err := client.Prefixes().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get prefix: %w", err)
			}

			renderer := &OutputRenderer[*response.Prefix]{
				RenderTable: func(w io.Writer, prefix *response.Prefix) error {
					table := tablewriter.NewWriter(w)
					table.Header("Prefix", "Name", "Member")
					_ = table.Append(prefix.Prefix, prefix.Name, prefix.Member)

					return renderTable(table)
				},
			}

			return renderer.Render(cmd.OutOrStdout(), prefix)
		},
	}
}
