package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "termdialog",
	Short: "termdialog plays branching character dialogue in the terminal",
	Long: `termdialog renders dialogue scripts with styled markup, typewriter reveal,
and word-wrapped option boxes.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("node", "", "Node to start at (default: the script's start node)")
	rootCmd.PersistentFlags().Int("width", 0, "Override the detected terminal width")
}
