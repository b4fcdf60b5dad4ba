package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fivetwenty-io/crossref-client/internal/constants"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/query"
	"github.com/fivetwenty-io/crossref-client/pkg/crossrefclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// Common string constants used throughout the commands package.
const (
	// ConfigDirName is the directory under $HOME holding config.yml.
	ConfigDirName = ".crossref"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "config.yml"

	NotAvailable = "N/A"

	// Minimum width a truncated table cell keeps.
	minCellWidth = 16
)

// Common static errors used throughout the commands package.
var (
	ErrConflictingWindow = errors.New("--sample cannot be combined with --rows, --offset, --cursor or --deep-page")
	ErrOffsetWithCursor  = errors.New("--offset cannot be combined with --cursor or --deep-page")
	ErrConflictingParent = errors.New("only one of --member, --funder, --journal, --prefix and --type may be set")
	ErrOutOfRange        = errors.New("value out of range")
	ErrAppendWithoutFile = errors.New("--append requires --output-file")
	ErrUnknownConfigKey  = errors.New("unknown config key")
	ErrInvalidField      = errors.New("field query must be FIELD=TERM")
)

// createClient builds a client from the bound flags, environment and config file.
func createClient() (crossref.Client, error) {
	config := &crossref.Config{
		BaseURL:     viper.GetString("base_url"),
		Mailto:      viper.GetString("mailto"),
		UserAgent:   viper.GetString("user_agent"),
		HTTPTimeout: viper.GetDuration("timeout"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newStderrLogger(os.Stderr)
	}

	client, err := crossrefclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// stderrLogger implements crossref.Logger on top of a slog text handler.
type stderrLogger struct {
	logger *slog.Logger
}

func newStderrLogger(w io.Writer) *stderrLogger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})

	return &stderrLogger{logger: slog.New(handler)}
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, attrs(fields)...)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, attrs(fields)...)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, attrs(fields)...)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, attrs(fields)...)
}

func attrs(fields map[string]interface{}) []any {
	args := make([]any, 0, len(fields))
	for key, value := range fields {
		args = append(args, slog.Any(key, value))
	}

	return args
}

// listOptions holds the flags shared by every list command.
type listOptions struct {
	queries []string
	filters []string
	sort    string
	order   string
	facets  []string
	rows    int
	offset  int
	sample  int
	limit   int
}

func (o *listOptions) bindQuery(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&o.queries, "query", "q", nil, "free-text query terms")
}

func (o *listOptions) bindFilters(cmd *cobra.Command, help string) {
	cmd.Flags().StringArrayVarP(&o.filters, "filter", "f", nil, help)
}

func (o *listOptions) bindSorting(cmd *cobra.Command) {
	sorts := make([]string, 0, len(query.Sorts()))
	for _, s := range query.Sorts() {
		sorts = append(sorts, string(s))
	}

	cmd.Flags().StringVar(&o.sort, "sort", "", "sort key ("+strings.Join(sorts, ", ")+")")
	cmd.Flags().StringVar(&o.order, "order", "", "sort order (asc, desc)")
	cmd.Flags().StringArrayVar(&o.facets, "facet", nil, "facet counts as NAME or NAME:COUNT")
}

func (o *listOptions) bindWindow(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.rows, "rows", 0, fmt.Sprintf("number of results (max %d)", constants.MaxRows))
	cmd.Flags().IntVar(&o.offset, "offset", 0, "number of results to skip")
	cmd.Flags().IntVar(&o.sample, "sample", 0, fmt.Sprintf("random sample size (max %d)", constants.MaxSample))
	cmd.Flags().IntVarP(&o.limit, "limit", "l", 0, "limit the amount of results printed")
}

// window turns --rows, --offset and --sample into a result window.
func (o *listOptions) window() (query.ResultWindow, bool, error) {
	if o.rows < 0 || o.offset < 0 || o.sample < 0 || o.limit < 0 {
		return query.ResultWindow{}, false, fmt.Errorf("%w: counts must not be negative", ErrOutOfRange)
	}

	if o.rows > constants.MaxRows {
		return query.ResultWindow{}, false, fmt.Errorf("%w: --rows %d exceeds %d", ErrOutOfRange, o.rows, constants.MaxRows)
	}

	if o.sample > 0 {
		if o.rows > 0 || o.offset > 0 {
			return query.ResultWindow{}, false, ErrConflictingWindow
		}

		if o.sample > constants.MaxSample {
			return query.ResultWindow{}, false, fmt.Errorf("%w: --sample %d exceeds %d", ErrOutOfRange, o.sample, constants.MaxSample)
		}

		return query.Sample(o.sample), true, nil
	}

	switch {
	case o.rows > 0 && o.offset > 0:
		return query.RowsOffset(o.rows, o.offset), true, nil
	case o.rows > 0:
		return query.Rows(o.rows), true, nil
	case o.offset > 0:
		return query.Offset(o.offset), true, nil
	}

	return query.ResultWindow{}, false, nil
}

// sorting parses --sort, --order and --facet.
func (o *listOptions) sorting() (query.Sort, query.Order, []query.FacetCount, error) {
	var (
		sort  query.Sort
		order query.Order
		err   error
	)

	if o.sort != "" {
		sort, err = query.ParseSort(o.sort)
		if err != nil {
			return "", "", nil, err
		}
	}

	if o.order != "" {
		order, err = query.ParseOrder(o.order)
		if err != nil {
			return "", "", nil, err
		}
	}

	facets := make([]query.FacetCount, 0, len(o.facets))

	for _, raw := range o.facets {
		facet, err := query.ParseFacetCount(raw)
		if err != nil {
			return "", "", nil, err
		}

		facets = append(facets, facet)
	}

	return sort, order, facets, nil
}

// applyList copies the shared list flags onto a generic registry query.
func applyList[F query.ParamFragment](o *listOptions, q query.Query[F], parse func(string) (F, error)) (query.Query[F], error) {
	for _, term := range o.queries {
		q = q.WithQuery(term)
	}

	for _, raw := range o.filters {
		f, err := parse(raw)
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

	if ok {
		q = q.WithWindow(window)
	}

	return q, nil
}

// truncate shortens s to width runes, marking the cut with "...".
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}

	if width <= 3 {
		return string(runes[:width])
	}

	return string(runes[:width-3]) + "..."
}

// cellWidth returns the width long table cells are cut to, or 0 when stdout
// is not a terminal.
func cellWidth(reserved int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}

	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}

	return max(width-reserved, minCellWidth)
}

// progressWriter returns where deep-paging progress is reported, or nil when
// stderr is not a terminal.
func progressWriter(cmd *cobra.Command) io.Writer {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return nil
	}

	return cmd.ErrOrStderr()
}
