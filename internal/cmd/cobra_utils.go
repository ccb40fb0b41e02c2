package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal/tetris"
)

func noFilesArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return []string{}, cobra.ShellCompDirectiveNoFileComp
}

func variantArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return tetris.Variants(), cobra.ShellCompDirectiveNoFileComp
}
