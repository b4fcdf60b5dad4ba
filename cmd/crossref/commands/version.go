package commands

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// VersionInfo describes the build of the CLI.
type VersionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit"  yaml:"commit"`
	Built   string `json:"built"   yaml:"built"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the crossref CLI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer := &OutputRenderer[VersionInfo]{
				RenderTable: func(w io.Writer, info VersionInfo) error {
					table := tablewriter.NewWriter(w)
					table.Header("Property", "Value")
					_ = table.Append("Version", info.Version)
					_ = table.Append("Commit", info.Commit)
					_ = table.Append("Built", info.Built)

					return renderTable(table)
				},
			}

			return renderer.Render(cmd.OutOrStdout(), VersionInfo{Version: version, Commit: commit, Built: date})
		},
	}
}
