package main

import (
	"os"

	"github.com/aretw0/termdialog/internal/cli"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <script>",
	Short: "Print a node's lines and options",
	Long:  `Prints every line of a node fully revealed, followed by its options box, at the terminal width.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		node, _ := cmd.Flags().GetString("node")
		width, _ := cmd.Flags().GetInt("width")
		debug, _ := cmd.Flags().GetBool("debug")

		return cli.Render(os.Stdout, cli.RenderOptions{
			ScriptPath: args[0],
			Node:       node,
			Width:      width,
			Policy:     policyFromFlags(cmd),
			Debug:      debug,
		})
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	addPolicyFlags(renderCmd)
}
