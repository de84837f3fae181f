package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Searches entry titles and summaries for a keyword",
	Long: `The search command ranks entries by how often the keyword occurs in
their title, then in their summary. Matching is a case-insensitive substring
scan. An empty result list is not an error.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		keyword := strings.Join(args, " ")
		matches := cat.Search(keyword)
		if len(matches) == 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "no matches for %q\n", keyword)
			return nil
		}

		for _, e := range matches {
			fmt.Fprintln(cmd.OutOrStdout(), formatEntryLine(e))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
