package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists catalog entries grouped by category",
	Long: `The list command prints every entry in category order, or only the
entries of one category with --category. Category order follows the
categories.yaml manifest; entries keep load order. Filtering by a category
that matches nothing prints nothing and exits 0.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if listCategory != "" {
			for _, e := range cat.EntriesFor(listCategory) {
				fmt.Fprintln(out, formatEntryLine(e))
			}
			return nil
		}

		for _, category := range cat.Categories() {
			if len(category.Entries) == 0 {
				continue
			}
			fmt.Fprintln(out, categoryStyle.Render(category.Name))
			for _, e := range category.Entries {
				fmt.Fprintln(out, formatEntryLine(e))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "only list entries of this category")
	rootCmd.AddCommand(listCmd)
}
