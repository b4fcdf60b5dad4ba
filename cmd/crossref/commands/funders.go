package commands

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewFundersCommand creates the funders command group.
func NewFundersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "funders",
		Aliases: []string{"funder"},
		Short:   "Query the funder registry",
		Long:    "Look up funders of the Open Funder Registry and list the works they funded",
	}

	cmd.AddCommand(newFundersGetCommand())
	cmd.AddCommand(newFundersListCommand())
	cmd.AddCommand(newWorksOfCommand("funder", func(c crossref.Client) crossref.WorksOf { return c.Funders() }))

	return cmd
}

func newFundersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a funder",
		Long:  "Display the funder identified by its registry id, e.g. 100000001",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			funder, err := client.Funders().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get funder: %w", err)
			}

			renderer := &OutputRenderer[*response.Funder]{RenderTable: renderFunder}

			return renderer.Render(cmd.OutOrStdout(), funder)
		},
	}
}

func newFundersListCommand() *cobra.Command {
	var (
		opts   listOptions
		output outputOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List funders",
		Long:  "List funders matching queries and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := applyList(&opts, query.NewFundersQuery(), query.ParseFunderFilter)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			funders, err := client.Funders().List(context.Background(), q)
			if err != nil {
				return fmt.Errorf("failed to list funders: %w", err)
			}

			w, release, err := output.open(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = release() }()

			page := *funders
			page.Items = limitItems(funders.Items, opts.limit)

			renderer := &OutputRenderer[*response.FunderList]{RenderTable: renderFunders}

			return renderer.Render(w, &page)
		},
	}

	opts.bindQuery(cmd)
	opts.bindFilters(cmd, "funder filter as NAME:VALUE, e.g. location:Germany")
	opts.bindSorting(cmd)
	opts.bindWindow(cmd)
	output.bind(cmd)

	return cmd
}

func renderFunder(w io.Writer, funder *response.Funder) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", funder.ID)
	_ = table.Append("Name", funder.Name)
	_ = table.Append("Location", orNotAvailable(funder.Location))
	_ = table.Append("URI", orNotAvailable(funder.URI))
	_ = table.Append("Works", optionalCount(funder.WorkCount))
	_ = table.Append("Descendant Works", optionalCount(funder.DescendantWorkCount))

	if len(funder.AltNames) > 0 {
		_ = table.Append("Also Known As", strings.Join(funder.AltNames, "; "))
	}

	if len(funder.ReplacedBy) > 0 {
		_ = table.Append("Replaced By", strings.Join(funder.ReplacedBy, ", "))
	}

	return renderTable(table)
}

func renderFunders(w io.Writer, list *response.FunderList) error {
	if len(list.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No funders found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Location", "Works")

	for _, funder := range list.Items {
		_ = table.Append(funder.ID, funder.Name, orNotAvailable(funder.Location), optionalCount(funder.WorkCount))
	}

	err := renderTable(table)
	if err != nil {
		return err
	}

	printSummary(w, "funders", len(list.Items), list.TotalResults)

	return nil
}

func orNotAvailable(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}

func optionalCount(n *int) string {
	if n == nil {
		return NotAvailable
	}

	return strconv.Itoa(*n)
}
