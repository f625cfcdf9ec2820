package main

import (
	"github.com/aretw0/termdialog/internal/cli"
	"github.com/aretw0/termdialog/pkg/wrap"
	"github.com/spf13/cobra"
)

// addPolicyFlags registers the options box width policy flags.
func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().Int("threshold", wrap.DefaultPolicy.Threshold, "Width above which the wide options box is used")
	cmd.Flags().Int("wide", wrap.DefaultPolicy.Wide, "Options box text width on wide terminals")
	cmd.Flags().Int("narrow", wrap.DefaultPolicy.Narrow, "Options box text width on narrow terminals")
}

func policyFromFlags(cmd *cobra.Command) wrap.Policy {
	threshold, _ := cmd.Flags().GetInt("threshold")
	wide, _ := cmd.Flags().GetInt("wide")
	narrow, _ := cmd.Flags().GetInt("narrow")
	return wrap.Policy{Threshold: threshold, Wide: wide, Narrow: narrow}
}

func playOptionsFromFlags(cmd *cobra.Command, args []string) cli.PlayOptions {
	node, _ := cmd.Flags().GetString("node")
	width, _ := cmd.Flags().GetInt("width")
	debug, _ := cmd.Flags().GetBool("debug")
	speed, _ := cmd.Flags().GetDuration("speed")
	logFile, _ := cmd.Flags().GetString("log-file")
	headless, _ := cmd.Flags().GetBool("headless")

	return cli.PlayOptions{
		ScriptPath: args[0],
		Node:       node,
		Interval:   speed,
		Policy:     policyFromFlags(cmd),
		Debug:      debug,
		LogFile:    logFile,
		Headless:   headless,
		Width:      width,
	}
}
