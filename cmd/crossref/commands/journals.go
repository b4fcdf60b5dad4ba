package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewJournalsCommand creates the journals command group.
func NewJournalsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journals",
		Aliases: []string{"journal"},
		Short:   "Query journals",
		Long:    "Look up journals by ISSN and list the works they published",
	}

	cmd.AddCommand(newJournalsGetCommand())
	cmd.AddCommand(newJournalsListCommand())
	cmd.AddCommand(newWorksOfCommand("journal", func(c crossref.Client) crossref.WorksOf { return c.Journals() }))

	return cmd
}

func newJournalsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ISSN",
		Short: "Get a journal",
		Long:  "Display the journal identified by ISSN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			journal, err := client.Journals().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get journal: %w", err)
			}

			renderer := &OutputRenderer[*response.Journal]{RenderTable: renderJournal}

			return renderer.Render(cmd.OutOrStdout(), journal)
		},
	}
}

func newJournalsListCommand() *cobra.Command {
	var (
		opts   listOptions
		output outputOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journals",
		Long:  "List journals whose metadata matches the query terms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := query.NewJournalsQuery()
			for _, term := range opts.queries {
				q = q.WithQuery(term)
			}

			window, ok, err := opts.window()
			if err != nil {
				return err
			}

			if ok {
				q = q.WithWindow(window)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			journals, err := client.Journals().List(context.Background(), q)
			if err != nil {
				return fmt.Errorf("failed to list journals: %w", err)
			}

			w, release, err := output.open(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = release() }()

			page := *journals
			page.Items = limitItems(journals.Items, opts.limit)

			renderer := &OutputRenderer[*response.JournalList]{RenderTable: renderJournals}

			return renderer.Render(w, &page)
		},
	}

	opts.bindQuery(cmd)
	opts.bindWindow(cmd)
	output.bind(cmd)

	return cmd
}

func renderJournal(w io.Writer, journal *response.Journal) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("Title", orNotAvailable(journal.Title))
	_ = table.Append("Publisher", orNotAvailable(journal.Publisher))

	for _, issn := range journal.ISSNType {
		_ = table.Append("ISSN ("+issn.Type+")", issn.Value)
	}

	if len(journal.ISSNType) == 0 {
		_ = table.Append("ISSN", strings.Join(journal.ISSN, ", "))
	}

	for _, subject := range journal.Subjects {
		_ = table.Append("Subject", subject.Name)
	}

	return renderTable(table)
}

func renderJournals(w io.Writer, list *response.JournalList) error {
	if len(list.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No journals found")

		return nil
	}

	width := cellWidth(60)

	table := tablewriter.NewWriter(w)
	table.Header("Title", "Publisher", "ISSN")

	for _, journal := range list.Items {
		_ = table.Append(truncate(journal.Title, width), truncate(journal.Publisher, width), strings.Join(journal.ISSN, ", "))
	}

	err := renderTable(table)
	if err != nil {
		return err
	}

	printSummary(w, "journals", len(list.Items), list.TotalResults)

	return nil
}
