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

// NewMembersCommand creates the members command group.
func NewMembersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "members",
		Aliases: []string{"member"},
		Short:   "Query Crossref members",
		Long:    "Look up the organisations that register content with Crossref and list their works",
	}

	cmd.AddCommand(newMembersGetCommand())
	cmd.AddCommand(newMembersListCommand())
	cmd.AddCommand(newWorksOfCommand("member", func(c crossref.Client) crossref.WorksOf { return c.Members() }))

	return cmd
}

func newMembersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Get a member",
		Long:  "Display the member identified by its numeric id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			member, err := client.Members().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get member: %w", err)
			}

			renderer := &OutputRenderer[*response.Member]{RenderTable: renderMember}

			return renderer.Render(cmd.OutOrStdout(), member)
		},
	}
}

func newMembersListCommand() *cobra.Command {
	var (
		opts   listOptions
		output outputOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List members",
		Long:  "List members matching queries and filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := applyList(&opts, query.NewMembersQuery(), query.ParseMemberFilter)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			members, err := client.Members().List(context.Background(), q)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}

			w, release, err := output.open(cmd)
			if err != nil {
				return err
			}

			defer func() { _ = release() }()

			page := *members
			page.Items = limitItems(members.Items, opts.limit)

			renderer := &OutputRenderer[*response.MemberList]{RenderTable: renderMembers}

			return renderer.Render(w, &page)
		},
	}

	opts.bindQuery(cmd)
	opts.bindFilters(cmd, "member filter as NAME or NAME:VALUE, e.g. current-doi-count:100")
	opts.bindSorting(cmd)
	opts.bindWindow(cmd)
	output.bind(cmd)

	return cmd
}

func renderMember(w io.Writer, member *response.Member) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("ID", strconv.Itoa(member.ID))
	_ = table.Append("Name", member.PrimaryName)
	_ = table.Append("Location", orNotAvailable(member.Location))
	_ = table.Append("Total DOIs", strconv.Itoa(member.Counts.TotalDOIs))
	_ = table.Append("Current DOIs", strconv.Itoa(member.Counts.CurrentDOIs))
	_ = table.Append("Backfile DOIs", strconv.Itoa(member.Counts.BackfileDOIs))

	if len(member.Prefixes) > 0 {
		_ = table.Append("Prefixes", strings.Join(member.Prefixes, ", "))
	}

	return renderTable(table)
}

func renderMembers(w io.Writer, list *response.MemberList) error {
	if len(list.Items) == 0 {
		_, _ = fmt.Fprintln(w, "No members found")

		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("ID", "Name", "Location", "Total DOIs", "Prefixes")

	for _, member := range list.Items {
		_ = table.Append(
			strconv.Itoa(member.ID),
			member.PrimaryName,
			orNotAvailable(member.Location),
			strconv.Itoa(member.Counts.TotalDOIs),
			strconv.Itoa(len(member.Prefixes)),
		)
	}

	err := renderTable(table)
	if err != nil {
		return err
	}

	printSummary(w, "members", len(list.Items), list.TotalResults)

	return nil
}
