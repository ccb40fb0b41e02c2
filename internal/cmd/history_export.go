package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal"
	"github.com/tursodatabase/pentris/internal/flags"
	"github.com/tursodatabase/pentris/internal/history"
)

func init() {
	historyCmd.AddCommand(historyExportCmd)
	addOutputFlag(historyExportCmd)
	addLimitFlag(historyExportCmd)
	flags.AddCSVSeparator(historyExportCmd)
}

var historyExportCmd = &cobra.Command{
	Use:               "export",
	Short:             "Export the latest games as CSV.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		separator, err := flags.CSVSeparator()
		if err != nil {
			return err
		}

		ctx := commandContext(cmd)
		store, err := openHistory(ctx)
		if err != nil {
			return err
		}
		defer store.Close()
		games, err := store.Recent(ctx, limitFlag)
		if err != nil {
			return err
		}

		var w io.Writer = os.Stdout
		if outputFlag != "" {
			file, err := os.Create(outputFlag)
			if err != nil {
				return fmt.Errorf("could not create %s: %w", outputFlag, err)
			}
			defer file.Close()
			w = file
		}
		if err := writeGamesCSV(w, separator, games); err != nil {
			return err
		}
		if outputFlag != "" {
			fmt.Printf("Exported %d games to %s\n", len(games), internal.Emph(outputFlag))
		}
		return nil
	},
}

func writeGamesCSV(w io.Writer, separator rune, games []history.Game) error {
	writer := csv.NewWriter(w)
	writer.Comma = separator
	if err := writer.Write([]string{"id", "player", "variant", "score", "level", "lines", "pieces", "frames", "seed", "finished_at"}); err != nil {
		return err
	}
	for _, game := range games {
		record := []string{
			game.ID.String(),
			game.Player,
			game.Variant,
			strconv.Itoa(game.Score),
			strconv.Itoa(game.Level),
			strconv.Itoa(game.Lines),
			strconv.Itoa(game.Pieces),
			strconv.Itoa(game.Frames),
			strconv.FormatInt(game.Seed, 10),
			game.FinishedAt.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
