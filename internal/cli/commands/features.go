package commands

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/cxxstd/pkg/catalog"
)

// NewFeaturesCommand creates the features command, which lists the feature
// catalog or shows one entry in detail.
func NewFeaturesCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "features [id]",
		Short: "List cataloged features and the standards that gate them",
		Example: `  # List all cataloged features
  cxxstd features

  # Show one feature with examples
  cxxstd features CV01

  # Machine-readable catalog
  cxxstd features --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat := catalog.Default()

			if len(args) == 1 {
				return showFeature(cmd, cat, args[0], asJSON)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(cat.All())
			}

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"ID", "Name", "Group", "Std", "Description"})
			for _, desc := range cat.All() {
				t.AppendRow(table.Row{
					desc.ID,
					desc.Name,
					desc.Group,
					fmt.Sprintf("C++%d", desc.MinStandard),
					desc.Description,
				})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the catalog as JSON")
	return cmd
}

func showFeature(cmd *cobra.Command, cat *catalog.Catalog, id string, asJSON bool) error {
	desc, err := cat.Lookup(id)
	if err != nil {
		return err
	}
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s  %s (C++%d)\n\n", desc.ID, desc.Name, desc.MinStandard)
	fmt.Fprintf(out, "%s\n\n", desc.Description)
	if desc.BadExample != "" {
		fmt.Fprintf(out, "Requires C++%d:\n%s\n\n", desc.MinStandard, desc.BadExample)
	}
	if desc.GoodExample != "" {
		fmt.Fprintf(out, "Earlier-standard equivalent:\n%s\n", desc.GoodExample)
	}
	return nil
}
