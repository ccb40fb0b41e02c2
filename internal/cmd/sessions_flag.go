package cmd

import "github.com/spf13/cobra"

var sessionsFlag int

func addSessionsFlag(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&sessionsFlag, "sessions", "n", 4, "Number of games to play concurrently")
}
