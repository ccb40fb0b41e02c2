package cmd

import "github.com/spf13/cobra"

var topFlag bool

func addTopFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&topFlag, "top", false, "Show the best scores instead of the latest games")
}
