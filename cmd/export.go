package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"refbook/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Exports the catalog as a static HTML site",
	Long: `The export command renders the whole catalog into the configured
output directory (default './public/'): an index page grouped by category and
one page per entry. The output directory is cleaned first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport()
	},
}

// runExport reloads the catalog and rewrites the site. serve calls this on
// every content change, so the reload is part of it.
func runExport() error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if err := render.ExportSite(cat, appConfig.OutputDir, appConfig.BaseURL); err != nil {
		return err
	}

	fmt.Printf("Exported %d entries in %d categories to '%s'\n",
		cat.Len(), len(cat.Categories()), appConfig.OutputDir)
	return nil
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
