package cmd

import "github.com/spf13/cobra"

var variantFlag string

func addVariantFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&variantFlag, "variant", "", "Piece set to use: tetromino or pentomino. Defaults to the variant setting")
	cmd.RegisterFlagCompletionFunc("variant", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return variantArg(cmd, nil, toComplete)
	})
}
