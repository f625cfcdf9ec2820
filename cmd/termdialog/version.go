package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/termdialog"
	"github.com/aretw0/termdialog/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of termdialog",
	Run: func(cmd *cobra.Command, args []string) {
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(os.Stdout, strings.TrimSpace(termdialog.Version))
			return
		}
		fmt.Printf("termdialog version %s\n", strings.TrimSpace(termdialog.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().Bool("banner", false, "Print the banner")
}
