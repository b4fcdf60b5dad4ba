package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fivetwenty-io/crossref-client/internal/constants"
	"github.com/fivetwenty-io/crossref-client/pkg/crossref/response"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// outputOptions selects where results are written.
type outputOptions struct {
	file   string
	append bool
}

func (o *outputOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.file, "output-file", "", "path where the results are stored")
	cmd.Flags().BoolVarP(&o.append, "append", "a", false, "append to the output file instead of overwriting it")
}

// open returns the writer results go to and a function that releases it.
func (o *outputOptions) open(cmd *cobra.Command) (io.Writer, func() error, error) {
	if o.file == "" {
		if o.append {
			return nil, nil, ErrAppendWithoutFile
		}

		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if o.append {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	// the path is chosen by the user running the command
	// #nosec G304
	file, err := os.OpenFile(o.file, flags, constants.OutputFilePerm)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open output file: %w", err)
	}

	return file, file.Close, nil
}

// OutputRenderer handles different output formats.
type OutputRenderer[T any] struct {
	RenderTable func(w io.Writer, data T) error
}

// Render outputs data in the format selected by --output.
func (o *OutputRenderer[T]) Render(w io.Writer, data T) error {
	switch viper.GetString("output") {
	case constants.OutputFormatJSON:
		return StandardJSONRenderer(w, data)
	case constants.OutputFormatYAML:
		return StandardYAMLRenderer(w, data)
	default:
		return o.RenderTable(w, data)
	}
}

// StandardJSONRenderer writes data as indented JSON.
func StandardJSONRenderer[T any](w io.Writer, data T) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data as YAML.
func StandardYAMLRenderer[T any](w io.Writer, data T) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return encoder.Close()
}

func renderTable(table *tablewriter.Table) error {
	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderWorks prints one row per work.
func renderWorks(w io.Writer, works []response.Work) error {
	if len(works) == 0 {
		_, _ = fmt.Fprintln(w, "No works found")

		return nil
	}

	width := cellWidth(80)

	table := tablewriter.NewWriter(w)
	table.Header("DOI", "Type", "Title", "Issued", "Cited By")

	for _, work := range works {
		_ = table.Append(work.DOI, work.Type, truncate(work.FirstTitle(), width), issuedYear(work), strconv.Itoa(work.IsReferencedByCount))
	}

	return renderTable(table)
}

// renderWork prints the main properties of a single work.
func renderWork(w io.Writer, work *response.Work) error {
	table := tablewriter.NewWriter(w)
	table.Header("Property", "Value")

	_ = table.Append("DOI", work.DOI)
	_ = table.Append("Type", work.Type)
	_ = table.Append("Title", work.FirstTitle())
	_ = table.Append("Publisher", work.Publisher)

	if len(work.ContainerTitle) > 0 {
		_ = table.Append("Container", work.ContainerTitle[0])
	}

	_ = table.Append("Issued", issuedYear(*work))

	for _, author := range work.Author {
		_ = table.Append("Author", fullName(author))
	}

	_ = table.Append("References", strconv.Itoa(work.ReferencesCount))
	_ = table.Append("Cited By", strconv.Itoa(work.IsReferencedByCount))
	_ = table.Append("URL", work.URL)

	return renderTable(table)
}

// renderFacets prints the facet counts of a list, if any.
func renderFacets(w io.Writer, facets response.FacetMap) error {
	if len(facets) == 0 {
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Facet", "Value", "Count")

	for name, facet := range facets {
		for value, count := range facet.Values {
			_ = table.Append(name, value, strconv.Itoa(count))
		}
	}

	return renderTable(table)
}

// printSummary reports how many of the matching results were shown.
func printSummary(w io.Writer, family string, shown, total int) {
	_, _ = fmt.Fprintf(w, "\n%s: showing %d of %d results\n", cases.Title(language.English).String(family), shown, total)
}

func issuedYear(work response.Work) string {
	if work.Issued == nil {
		return NotAvailable
	}

	field, ok := work.Issued.DateParts.AsDate()
	if !ok {
		return NotAvailable
	}

	return strconv.Itoa(field.From().Year())
}

func fullName(c response.Contributor) string {
	if c.Given == "" {
		return c.Family
	}

	return c.Given + " " + c.Family
}
