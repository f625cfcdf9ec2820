package main

import (
	"os"

	"github.com/aretw0/termdialog/internal/cli"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <script>",
	Short: "Play a dialogue script interactively",
	Long: `Plays a dialogue script full screen. Space, enter or e skips the reveal,
moves to the next line, or takes the highlighted option. Arrows select options.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := playOptionsFromFlags(cmd, args)
		if opts.Headless {
			return cli.RunHeadless(os.Stdin, os.Stdout, opts)
		}
		return cli.RunPlay(opts)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().Duration("speed", cli.DefaultInterval, "Time to reveal one character (0 shows lines at once)")
	playCmd.Flags().String("log-file", "", "Write logs to this file")
	playCmd.Flags().Bool("headless", false, "Play line by line over stdin/stdout")
	addPolicyFlags(playCmd)
}
