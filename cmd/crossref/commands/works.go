package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/crossref-client/internal/constants"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// errLimitReached stops deep paging once --limit works were collected.
var errLimitReached = errors.New("limit reached")

// NewWorksCommand creates the works command group.
func NewWorksCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "works",
		Aliases: []string{"work"},
		Short:   "Query works",
		Long:    "Look up, search and page through the works registered with Crossref",
	}

	cmd.AddCommand(newWorksGetCommand())
	cmd.AddCommand(newWorksAgencyCommand())
	cmd.AddCommand(newWorksSearchCommand())
	cmd.AddCommand(newWorksRandomCommand())
	cmd.AddCommand(newWorksListCommand())

	return cmd
}

func newWorksGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOI",
		Short: "Get a work",
		Long:  "Display the metadata of the work identified by DOI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			work, err := client.Works().Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get work: %w", err)
			}

			renderer := &OutputRenderer[*response.Work]{RenderTable: renderWork}

			return renderer.Render(cmd.OutOrStdout(), work)
		},
	}
}

func newWorksAgencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "agency DOI",
		Short: "Get the registration agency of a DOI",
		Long:  "Display which registration agency (Crossref, DataCite, ...) registered DOI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			agency, err := client.Works().Agency(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get agency: %w", err)
			}

			renderer := &OutputRenderer[*response.WorkAgency]{
				RenderTable: func(w io.Writer, agency *response.WorkAgency) error {
					table := tablewriter.NewWriter(w)
					table.Header("DOI", "Agency", "Label")
					_ = table.Append(agency.DOI, agency.Agency.ID, agency.Agency.Label)

					return renderTable(table)
				},
			}

			return renderer.Render(cmd.OutOrStdout(), agency)
		},
	}
}

func newWorksSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search TERM...",
		Short: "Search works",
		Long:  "Run a free-text search over works and display the first page of results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("%w: --limit must not be negative", ErrOutOfRange)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			list, err := client.Works().Search(context.Background(), strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("failed to search works: %w", err)
			}

			return renderWorkList(cmd.OutOrStdout(), "works", list, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "limit the amount of results printed")

	return cmd
}

func newWorksRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random N",
		Short: "Get random DOIs",
		Long:  fmt.Sprintf("Display N randomly selected DOIs (at most %d)", constants.MaxSample),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 || n > constants.MaxSample {
				return fmt.Errorf("%w: N must be between 1 and %d", ErrOutOfRange, constants.MaxSample)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			dois, err := client.Works().RandomDOIs(context.Background(), n)
			if err != nil {
				return fmt.Errorf("failed to sample works: %w", err)
			}

			renderer := &OutputRenderer[[]string]{
				RenderTable: func(w io.Writer, dois []string) error {
					table := tablewriter.NewWriter(w)
					table.Header("DOI")

					for _, doi := range dois {
						_ = table.Append(doi)
					}

					return renderTable(table)
				},
			}

			return renderer.Render(cmd.OutOrStdout(), dois)
		},
	}
}

// parentOptions restrict a works listing to the works of one record.
type parentOptions struct {
	member   string
	funder   string
	journal  string
	prefix   string
	workType string
}

func (p *parentOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.member, "member", "", "only works of the member with this id")
	cmd.Flags().StringVar(&p.funder, "funder", "", "only works funded by the funder with this id")
	cmd.Flags().StringVar(&p.journal, "journal", "", "only works of the journal with this ISSN")
	cmd.Flags().StringVar(&p.prefix, "prefix", "", "only works registered under this DOI prefix")
	cmd.Flags().StringVar(&p.workType, "type", "", "only works of this type, e.g. journal-article")
}

// resolve returns the family owning the works and the record id, or nil when
// no parent was given.
func (p *parentOptions) resolve(client crossref.Client) (crossref.WorksOf, string, error) {
	var (
		family crossref.WorksOf
		id     string
		set    int
	)

	pick := func(value string, of func() crossref.WorksOf) {
		if value == "" {
			return
		}

		set++
		family = of()
		id = value
	}

	pick(p.member, func() crossref.WorksOf { return client.Members() })
	pick(p.funder, func() crossref.WorksOf { return client.Funders() })
	pick(p.journal, func() crossref.WorksOf { return client.Journals() })
	pick(p.prefix, func() crossref.WorksOf { return client.Prefixes() })
	pick(p.workType, func() crossref.WorksOf { return client.Types() })

	if set > 1 {
		return nil, "", ErrConflictingParent
	}

	if p.workType != "" {
		workType, err := query.ParseWorkType(p.workType)
		if err != nil {
			return nil, "", err
		}

		id = workType.ID()
	}

	return family, id, nil
}

func newWorksListCommand() *cobra.Command {
	var (
		opts   worksListOptions
		parent parentOptions
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List works",
		Long: "List works matching queries and filters. With --deep-page every page is fetched " +
			"by following the next-cursor of each response.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			family, id, err := parent.resolve(client)
			if err != nil {
				return err
			}

			if family == nil {
				works := client.Works()

				return opts.run(cmd, "works", works.List, works.DeepPage)
			}

			list := func(ctx context.Context, q query.WorksQuery) (*response.WorkList, error) {
				return family.Works(ctx, id, q)
			}
			deep := func(ctx context.Context, q query.WorksQuery) *crossref.DeepPager {
				return family.DeepPageWorks(ctx, id, q)
			}

			return opts.run(cmd, "works", list, deep)
		},
	}

	opts.bind(cmd)
	parent.bind(cmd)

	return cmd
}

// newWorksOfCommand creates the "works ID" subcommand of a registry family.
func newWorksOfCommand(family string, of func(crossref.Client) crossref.WorksOf) *cobra.Command {
	var opts worksListOptions

	cmd := &cobra.Command{
		Use:   "works ID",
		Short: fmt.Sprintf("List the works of a %s", family),
		Long:  fmt.Sprintf("List the works of the %s identified by ID, accepting the same flags as 'works list'", family),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			works := of(client)
			id := args[0]

			list := func(ctx context.Context, q query.WorksQuery) (*response.WorkList, error) {
				return works.Works(ctx, id, q)
			}
			deep := func(ctx context.Context, q query.WorksQuery) *crossref.DeepPager {
				return works.DeepPageWorks(ctx, id, q)
			}

			return opts.run(cmd, family+" works", list, deep)
		},
	}

	opts.bind(cmd)

	return cmd
}

// worksListOptions holds the flags of every works listing.
type worksListOptions struct {
	listOptions

	fields   []string
	cursor   string
	deepPage bool
	output   outputOptions
}

func (o *worksListOptions) bind(cmd *cobra.Command) {
	fields := make([]string, 0, len(query.QueryFields()))
	for _, field := range query.QueryFields() {
		fields = append(fields, string(field))
	}

	o.bindQuery(cmd)
	cmd.Flags().StringArrayVar(&o.fields, "field", nil, "field query as FIELD=TERM ("+strings.Join(fields, ", ")+")")
	o.bindFilters(cmd, "work filter as NAME or NAME:VALUE, e.g. from-pub-date:2020-01-01")
	cmd.Long += "\n\nWork filters: " + strings.Join(query.WorkFilterKeys(), ", ")
	o.bindSorting(cmd)
	o.bindWindow(cmd)
	cmd.Flags().StringVar(&o.cursor, "cursor", "", "fetch the page at this next-cursor token")
	cmd.Flags().BoolVarP(&o.deepPage, "deep-page", "d", false, "follow next-cursor through every page")
	o.output.bind(cmd)
}

// build turns the flags into a works query.
func (o *worksListOptions) build() (query.WorksQuery, error) {
	q := query.NewWorksQuery()

	for _, term := range o.queries {
		q = q.WithQuery(term)
	}

	for _, raw := range o.fields {
		name, term, ok := strings.Cut(raw, "=")
		if !ok || strings.TrimSpace(term) == "" {
			return q, fmt.Errorf("%w: %q", ErrInvalidField, raw)
		}

		field, err := query.ParseQueryField(strings.TrimSpace(name))
		if err != nil {
			return q, err
		}

		q = q.WithField(query.ByField(field, term))
	}

	for _, raw := range o.filters {
		f, err := query.ParseWorkFilter(raw)
		if err != nil {
			return q, err
		}

		q = q.WithFilter(f)
	}

	sort, order, facets, err := o.sorting()
	if err != nil {
		return q, err
	}

	if sort != "" {
		q = q.WithSort(sort)
	}

	if order != "" {
		q = q.WithOrder(order)
	}

	for _, facet := range facets {
		q = q.WithFacet(facet)
	}

	window, ok, err := o.window()
	if err != nil {
		return q, err
	}

	if !o.deepPage && o.cursor == "" {
		if ok {
			q = q.WithWindow(window)
		}

		return q, nil
	}

	switch {
	case o.sample > 0:
		return q, ErrConflictingWindow
	case o.offset > 0:
		return q, ErrOffsetWithCursor
	}

	return q.WithResultWindow(query.CursorWindow(query.Cursor{Token: o.cursor, Rows: o.rows})), nil
}

func (o *worksListOptions) run(
	cmd *cobra.Command,
	family string,
	list func(context.Context, query.WorksQuery) (*response.WorkList, error),
	deep func(context.Context, query.WorksQuery) *crossref.DeepPager,
) error {
	q, err := o.build()
	if err != nil {
		return err
	}

	w, release, err := o.output.open(cmd)
	if err != nil {
		return err
	}

	defer func() { _ = release() }()

	ctx := context.Background()

	if o.deepPage {
		return o.collect(w, progressWriter(cmd), family, deep(ctx, q))
	}

	page, err := list(ctx, q)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", family, err)
	}

	return renderWorkList(w, family, page, o.limit)
}

// collect drains the pager, stopping early once --limit works were seen.
// Progress is reported after every page when progress is not nil.
func (o *worksListOptions) collect(w, progress io.Writer, family string, pager *crossref.DeepPager) error {
	var (
		works []response.Work
		total int
	)

	err := pager.ForEach(func(page *response.WorkList) error {
		total = page.TotalResults
		works = append(works, page.Items...)

		if progress != nil {
			_, _ = fmt.Fprintf(progress, "\rFetched %d of %d %s (%d requests)", len(works), total, family, pager.Requests())
		}

		if o.limit > 0 && len(works) >= o.limit {
			works = works[:o.limit]

			return errLimitReached
		}

		return nil
	})

	if progress != nil {
		_, _ = fmt.Fprintln(progress)
	}

	if err != nil && !errors.Is(err, errLimitReached) {
		return fmt.Errorf("failed to page through %s after %d requests: %w", family, pager.Requests(), err)
	}

	renderer := &OutputRenderer[[]response.Work]{
		RenderTable: func(w io.Writer, works []response.Work) error {
			err := renderWorks(w, works)
			if err != nil {
				return err
			}

			printSummary(w, family, len(works), total)

			return nil
		},
	}

	return renderer.Render(w, works)
}

// renderWorkList prints one page of works with its facets and next cursor.
func renderWorkList(w io.Writer, family string, list *response.WorkList, limit int) error {
	page := *list
	page.Items = limitItems(list.Items, limit)

	renderer := &OutputRenderer[*response.WorkList]{
		RenderTable: func(w io.Writer, list *response.WorkList) error {
			err := renderWorks(w, list.Items)
			if err != nil {
				return err
			}

			err = renderFacets(w, list.Facets)
			if err != nil {
				return err
			}

			printSummary(w, family, len(list.Items), list.TotalResults)

			if list.NextCursor != nil {
				_, _ = fmt.Fprintf(w, "Next cursor: %s\n", *list.NextCursor)
			}

			return nil
		},
	}

	return renderer.Render(w, &page)
}

// limitItems returns at most limit items; limit <= 0 keeps them all.
func limitItems[T any](items []T, limit int) []T {
	if limit <= 0 || len(items) <= limit {
		return items
	}

	return items[:limit]
}
