package cmd

import "github.com/spf13/cobra"

var replayFlag bool

func addReplayFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&replayFlag, "replay", false, "Run the previous simulation again with the same seeds")
}
