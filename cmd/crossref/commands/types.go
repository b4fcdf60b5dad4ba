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

// NewTypesCommand creates the types command group.
func NewTypesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "types",
		Aliases: []string{"type"},
		Short:   "Query work types",
		Long:    "List the work types known to Crossref and the works of each type",
	}

	cmd.AddCommand(newTypesGetCommand())
	cmd.AddCommand(newTypesListCommand())
	cmd.AddCommand(newWorksOfCommand("type", func(c crossref.Client) crossref.WorksOf { return c.Types() }))

	return cmd
}

func newTypesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a work type",
		Long:  "Display the work type identified by ID, e.g. journal-article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			workType, err := client.Types().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get type: %w", err)
			}

			renderer := &OutputRenderer[*response.WorkType]{
				RenderTable: func(w io.Writer, workType *response.WorkType) error {
					return renderTypes(w, []response.WorkType{*workType})
				},
			}

			return renderer.Render(cmd.OutOrStdout(), workType)
		},
	}
}

func newTypesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List work types",
		Long:  "List every work type known to Crossref",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			types, err := client.Types().List(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list types: %w", err)
			}

			renderer := &OutputRenderer[*response.TypeList]{
				RenderTable: func(w io.Writer, list *response.TypeList) error {
					return renderTypes(w, list.Items)
				},
			}

			return renderer.Render(cmd.OutOrStdout(), types)
		},
	}
}

func renderTypes(w io.Writer, types []response.WorkType) error {
	table := tablewriter.NewWriter(w)
	table.Header("ID", "Label")

	for _, workType := range types {
		_ = table.Append(workType.ID, workType.Label)
	}

	return renderTable(table)
}
