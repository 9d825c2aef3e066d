package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptbuilder/internal/application/commands"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search every category for tags",
	Long: `Search the tags of every category.

Results are ranked by relevance using fuzzy matching.

Examples:
  promptbuilder-cli search wiz
  promptbuilder-cli search "dark red" --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		widget, err := loadWidget(ctx)
		if err != nil {
			return err
		}

		results, err := commands.NewSearchCommand(widget, args[0], searchLimit).Execute(ctx)
		if err != nil {
			return err
		}

		if len(results) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, r := range results {
			fmt.Printf("%s\t%s\n", r.Value, r.Path)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 20, "maximum number of results (0 for all)")
	rootCmd.AddCommand(searchCmd)
}
