package cmd

import "github.com/spf13/cobra"

var limitFlag int

func addLimitFlag(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&limitFlag, "limit", "l", 10, "Maximum number of games to show")
}
