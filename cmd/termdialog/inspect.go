package main

import (
	"os"

	"github.com/aretw0/termdialog/internal/cli"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <script>",
	Short: "Summarize a dialogue script",
	Long:  `Validates a script and prints its nodes, lines, options and unreachable nodes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		asGraph, _ := cmd.Flags().GetBool("graph")
		return cli.Inspect(os.Stdout, cli.InspectOptions{ScriptPath: args[0], Width: width, Graph: asGraph})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Bool("graph", false, "Print a Mermaid flowchart of the script")
}
