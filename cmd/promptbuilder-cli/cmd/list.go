package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptbuilder/internal/application/commands"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List the top-level categories",
	Long: `List every category in data order with its tag count.

Example:
  promptbuilder-cli groups`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		widget, err := loadWidget(ctx)
		if err != nil {
			return err
		}

		groups, err := commands.NewListGroupsCommand(widget).Execute(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			marker := ""
			if g.HasChildren {
				marker = " +"
			}
			fmt.Printf("%s%s (%d)\n", g.Name, marker, g.Items)
		}
		return nil
	},
}

var itemsFilter string

var itemsCmd = &cobra.Command{
	Use:   "items <path>",
	Short: "List the tags directly under a path",
	Long: `List the tags whose path is exactly the given one. Tags of deeper
subgroups are not included.

Examples:
  promptbuilder-cli items Colors
  promptbuilder-cli items "Jobs>Fantasy" --filter kni`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		widget, err := loadWidget(ctx)
		if err != nil {
			return err
		}

		items, err := commands.NewItemsCommand(widget, args[0], itemsFilter).Execute(ctx)
		if err != nil {
			return err
		}
		for _, i := range items {
			fmt.Println(i.Value)
		}
		return nil
	},
}

func init() {
	itemsCmd.Flags().StringVarP(&itemsFilter, "filter", "f", "", "case-insensitive substring filter")

	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(itemsCmd)
}
