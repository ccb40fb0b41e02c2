package cmd

import "github.com/spf13/cobra"

var seedFlag int64

func addSeedFlag(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&seedFlag, "seed", 0, "Seed of the first session, the others use the following seeds. Random when 0")
}
