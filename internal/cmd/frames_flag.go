package cmd

import "github.com/spf13/cobra"

var framesFlag int

func addFramesFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&framesFlag, "frames", 100000, "Stop a game after this many frames, 0 for no limit")
}
