package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"promptbuilder/internal/application/commands"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Display the category tree",
	Long: `Display the category hierarchy, or the part below a path. Subgroups
with tags of their own show the count in parentheses.

Examples:
  promptbuilder-cli tree
  promptbuilder-cli tree Jobs`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		widget, err := loadWidget(ctx)
		if err != nil {
			return err
		}

		root := ""
		if len(args) == 1 {
			root = args[0]
		}
		entries, err := commands.NewTreeCommand(widget, root).Execute(ctx)
		if err != nil {
			return err
		}

		for _, e := range entries {
			indent := strings.Repeat("  ", e.Depth)
			name := e.Path[len(e.Path)-1]
			if e.DirectItems > 0 {
				fmt.Printf("%s%s (%d)\n", indent, name, e.DirectItems)
			} else {
				fmt.Printf("%s%s\n", indent, name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
