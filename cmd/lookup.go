package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"refbook/internal/catalog"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <id>",
	Short: "Looks up a catalog entry by its exact id",
	Long: `The lookup command fetches a single entry by its slug id, e.g.
'refbook lookup extract-method'. An unknown id exits with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		entry, err := cat.FindByID(args[0])
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("%s: not found", args[0])
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), formatEntry(entry))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}
