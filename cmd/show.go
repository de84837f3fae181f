package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"refbook/internal/catalog"
	"refbook/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Renders an entry's reference document in the terminal",
	Args:  cobra.ExactArgs(1),
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

		out, err := render.Terminal(entry.Body)
		if err != nil {
			return fmt.Errorf("rendering %q: %w", entry.ID, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
