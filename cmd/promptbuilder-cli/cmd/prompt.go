package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"promptbuilder/internal/application/commands"
	"promptbuilder/internal/domain"
)

var promptCmd = &cobra.Command{
	Use:   "prompt <tag>...",
	Short: "Serialize tags into a prompt",
	Long: `Join tags the way the prompt field receives them: parentheses are
escaped and tags are separated by ", ".

Example:
  promptbuilder-cli prompt knight "tree (large)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(domain.NewSelectionList(args...).Serialize())
		return nil
	},
}

var renderTags []string

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Replace <pbprompt> in a prompt with tags",
	Long: `Render a prompt template, replacing every <pbprompt> with the
serialized tags. With no tags the template is printed unchanged.

Example:
  promptbuilder-cli render "masterpiece, <pbprompt>" --tags knight,wizard`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := commands.NewRenderCommand(args[0], renderTags).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringSliceVarP(&renderTags, "tags", "t", nil, "tags to insert")

	rootCmd.AddCommand(promptCmd)
	rootCmd.AddCommand(renderCmd)
}
