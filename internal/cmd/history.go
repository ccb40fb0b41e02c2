package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rodaine/table"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal"
	"github.com/tursodatabase/pentris/internal/history"
	"github.com/tursodatabase/pentris/internal/prompt"
	"github.com/tursodatabase/pentris/internal/settings"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	addTopFlag(historyListCmd)
	addLimitFlag(historyListCmd)
	addVariantFlag(historyListCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect finished games",
}

func openHistory(ctx context.Context) (*history.Store, error) {
	s, err := settings.ReadSettings()
	if err != nil {
		return nil, err
	}
	return history.Open(ctx, s.HistoryPath())
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

var historyListCmd = &cobra.Command{
	Use:               "list",
	Short:             "List the latest or the best games.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := commandContext(cmd)
		store, err := openHistory(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		var games []history.Game
		if topFlag || variantFlag != "" {
			games, err = store.Top(ctx, variantFlag, limitFlag)
		} else {
			games, err = store.Recent(ctx, limitFlag)
		}
		if err != nil {
			return err
		}
		if len(games) == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		tbl := table.New("ID", "PLAYER", "VARIANT", "SCORE", "LEVEL", "LINES", "FINISHED")
		columnFmt := color.New(color.FgBlue, color.Bold).SprintfFunc()
		tbl.WithFirstColumnFormatter(columnFmt)
		for _, game := range games {
			tbl.AddRow(shortID(game.ID), game.Player, game.Variant, humanize.Comma(int64(game.Score)), game.Level, game.Lines, humanize.Time(game.FinishedAt))
		}
		tbl.Print()
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:               "show [id]",
	Short:             "Show the details of a finished game.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := commandContext(cmd)
		store, err := openHistory(ctx)
		if err != nil {
			return err
		}
		defer store.Close()

		var raw string
		if len(args) > 0 {
			raw = args[0]
		} else {
			if raw, err = pickGame(ctx, store); err != nil {
				return err
			}
		}

		id, err := uuid.Parse(raw)
		if err != nil {
			return fmt.Errorf("invalid game id %s: %w", internal.Emph(raw), err)
		}
		game, err := store.Get(ctx, id)
		if errors.Is(err, history.ErrNotFound) {
			return fmt.Errorf("game %s not found", internal.Emph(raw))
		}
		if err != nil {
			return err
		}

		tbl := table.New("FIELD", "VALUE")
		tbl.WithFirstColumnFormatter(color.New(color.FgBlue, color.Bold).SprintfFunc())
		tbl.AddRow("id", game.ID)
		tbl.AddRow("player", game.Player)
		tbl.AddRow("variant", game.Variant)
		tbl.AddRow("score", humanize.Comma(int64(game.Score)))
		tbl.AddRow("level", game.Level)
		tbl.AddRow("lines", game.Lines)
		tbl.AddRow("pieces", game.Pieces)
		tbl.AddRow("frames", humanize.Comma(int64(game.Frames)))
		tbl.AddRow("seed", game.Seed)
		tbl.AddRow("finished", fmt.Sprintf("%s (%s)", game.FinishedAt.Format("2006-01-02 15:04:05"), humanize.Time(game.FinishedAt)))
		tbl.Print()
		return nil
	},
}

// pickGame lets the user choose one of the latest games
func pickGame(ctx context.Context, store *history.Store) (string, error) {
	if !prompt.IsInteractive() {
		return "", fmt.Errorf("a game id is required, see %s", internal.Emph("pentris history list"))
	}
	games, err := store.Recent(ctx, 50)
	if err != nil {
		return "", err
	}
	if len(games) == 0 {
		return "", fmt.Errorf("no games recorded yet")
	}

	data := make([][]string, 0, len(games))
	for _, game := range games {
		data = append(data, []string{game.ID.String(), game.Variant, humanize.Comma(int64(game.Score)), humanize.Time(game.FinishedAt)})
	}
	columns := prompt.Columns([]string{"ID", "Variant", "Score", "Finished"}, []int{36, 10, 12, 16})
	choice := prompt.Table(columns, prompt.Rows(data), 0)
	if choice == "" {
		return "", prompt.ErrCancelled
	}
	return choice, nil
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
