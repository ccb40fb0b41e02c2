package cmd

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal"
	"github.com/tursodatabase/pentris/internal/flags"
	"github.com/tursodatabase/pentris/internal/ranking"
	"github.com/tursodatabase/pentris/internal/settings"
	"github.com/tursodatabase/pentris/internal/tetris"
)

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresResetCmd)
	flags.AddYes(scoresResetCmd, "Reset without asking for confirmation")
}

func rankingStore() (*ranking.Store, error) {
	s, err := settings.ReadSettings()
	if err != nil {
		return nil, err
	}
	return ranking.NewStore(s.RankingDir())
}

var scoresCmd = &cobra.Command{
	Use:               "scores",
	Short:             "Show the best score and level of each variant.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		store, err := rankingStore()
		if err != nil {
			return err
		}
		rankings, err := store.All()
		if err != nil {
			return err
		}
		if len(rankings) == 0 {
			fmt.Printf("No games finished yet. Try %s.\n", internal.Emph("pentris sim"))
			return nil
		}

		data := [][]string{}
		for _, variant := range ranking.Variants(rankings) {
			best := rankings[variant]
			data = append(data, []string{variant, humanize.Comma(int64(best.Score)), fmt.Sprint(best.Level)})
		}
		printTable([]string{"Variant", "Score", "Level"}, data)
		return nil
	},
}

var scoresResetCmd = &cobra.Command{
	Use:               "reset [variant]",
	Short:             "Forget the best score and level of one or every variant.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: variantArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		variants := tetris.Variants()
		if len(args) > 0 {
			if _, err := tetris.CatalogByName(args[0]); err != nil {
				return err
			}
			variants = args
		}

		if !flags.Yes() {
			ok, err := promptConfirmation(fmt.Sprintf("Reset the rankings of %s?", internal.Emph(strings.Join(variants, ", "))))
			if err != nil {
				return fmt.Errorf("could not get prompt confirmed by user: %w", err)
			}
			if !ok {
				fmt.Println("Reset skipped by the user.")
				return nil
			}
		}

		store, err := rankingStore()
		if err != nil {
			return err
		}
		for _, variant := range variants {
			if err := store.Remove(variant); err != nil {
				return err
			}
		}
		fmt.Printf("Rankings of %s reset.\n", internal.Emph(strings.Join(variants, ", ")))
		return nil
	},
}
