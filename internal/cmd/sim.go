package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/pentris/internal"
	"github.com/tursodatabase/pentris/internal/autoplay"
	"github.com/tursodatabase/pentris/internal/history"
	"github.com/tursodatabase/pentris/internal/prompt"
	"github.com/tursodatabase/pentris/internal/ranking"
	"github.com/tursodatabase/pentris/internal/session"
	"github.com/tursodatabase/pentris/internal/settings"
	"github.com/tursodatabase/pentris/internal/tetris"
	"golang.org/x/sync/errgroup"
)

func init() {
	rootCmd.AddCommand(simCmd)
	addSessionsFlag(simCmd)
	addSeedFlag(simCmd)
	addVariantFlag(simCmd)
	addFramesFlag(simCmd)
	addReplayFlag(simCmd)
	addVerboseFlag(simCmd)
}

var simCmd = &cobra.Command{
	Use:               "sim",
	Short:             "Let the autoplayer play games and record the results.",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		ctx := commandContext(cmd)

		s, config, err := readConfig()
		if err != nil {
			return err
		}
		setup, err := simSetup(s, config)
		if err != nil {
			return err
		}
		catalog, err := tetris.CatalogByName(setup.Variant)
		if err != nil {
			return err
		}

		logger, closer, err := engineLogger(config)
		if err != nil {
			return err
		}
		defer closer.Close()

		store, err := ranking.NewStore(s.RankingDir())
		if err != nil {
			return err
		}
		sim := simulation{
			catalog:  catalog,
			rules:    config.Rules,
			player:   config.Player,
			setup:    setup,
			rankings: &lockedRankings{store: store},
			logger:   logger,
		}
		if config.History {
			games, err := history.Open(ctx, s.HistoryPath())
			if err != nil {
				return err
			}
			defer games.Close()
			sim.history = games
		}

		spinner := prompt.Progress(fmt.Sprintf("Playing %d %s games...", setup.Sessions, internal.Emph(setup.Variant)), setup.Sessions)
		start := time.Now()
		games, err := simulate(ctx, sim, spinner.Step)
		spinner.Stop()
		if err != nil {
			return err
		}
		s.SetLastSimCache(setup)

		printSimResults(games)
		if verboseFlag {
			fmt.Printf("\nBest scores of this run: %s\n", strings.Join(topScores(games, 3), ", "))
			fmt.Printf("\nPlayed %s frames in %s as %s.\n", humanize.Comma(int64(totalFrames(games))), time.Since(start).Round(time.Millisecond), internal.Emph(config.Player))
		}
		return nil
	},
}

// simSetup picks the simulation parameters from the flags, or from the
// previous run when --replay is given
func simSetup(s *settings.Settings, config settings.Config) (settings.LastSim, error) {
	if replayFlag {
		last, ok := s.LastSimCache()
		if !ok {
			return settings.LastSim{}, fmt.Errorf("no previous simulation to replay, run %s first", internal.Emph("pentris sim"))
		}
		return last, nil
	}
	if sessionsFlag < 1 {
		return settings.LastSim{}, fmt.Errorf("--sessions must be at least 1")
	}
	if framesFlag < 0 {
		return settings.LastSim{}, fmt.Errorf("--frames cannot be negative")
	}
	seed := seedFlag
	if seed == 0 {
		// the settings file keeps numbers as float64, stay well inside its exact range
		seed = time.Now().UnixNano()%(1<<31) + 1
	}
	return settings.LastSim{
		Variant:  config.Variant,
		Seed:     seed,
		Sessions: sessionsFlag,
		Frames:   framesFlag,
	}, nil
}

type simulation struct {
	catalog  *tetris.Catalog
	rules    tetris.Rules
	player   string
	setup    settings.LastSim
	rankings session.RankingStore
	history  session.HistoryStore
	logger   *log.Logger
}

type simGame struct {
	seed     int64
	view     tetris.View
	finished bool
	ranking  tetris.Ranking
}

// lockedRankings serializes merges; concurrent games share the score files
type lockedRankings struct {
	mu    sync.Mutex
	store session.RankingStore
}

func (l *lockedRankings) Merge(variant string, score int, level int) (tetris.Ranking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Merge(variant, score, level)
}

// simulate plays setup.Sessions games concurrently, game i using seed+i.
// step is called as each game ends.
func simulate(ctx context.Context, sim simulation, step func()) ([]simGame, error) {
	g, ctx := errgroup.WithContext(ctx)
	games := make([]simGame, sim.setup.Sessions)
	for i := range games {
		i := i
		g.Go(func() error {
			game, err := playGame(ctx, sim, sim.setup.Seed+int64(i))
			if err != nil {
				return err
			}
			games[i] = game
			if step != nil {
				step()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return games, nil
}

func playGame(ctx context.Context, sim simulation, seed int64) (simGame, error) {
	options := []tetris.Option{}
	if sim.logger != nil {
		options = append(options, tetris.WithLogger(sim.logger))
	}
	engine, err := tetris.NewEngine(sim.catalog, sim.rules, seed, options...)
	if err != nil {
		return simGame{}, err
	}

	sessionOptions := []session.Option{session.WithLogger(sim.logger)}
	if sim.rankings != nil {
		sessionOptions = append(sessionOptions, session.WithRankings(sim.rankings))
	}
	if sim.history != nil {
		sessionOptions = append(sessionOptions, session.WithHistory(sim.history))
	}
	game := session.New(engine, sim.player, sessionOptions...)
	if err := game.Handle(session.CommandStart); err != nil {
		return simGame{}, err
	}

	bot := autoplay.NewPlayer(autoplay.NewPlanner(autoplay.DefaultEvaluator()))
	result := simGame{seed: seed, view: engine.View()}
	for game.State() == session.StatePlaying {
		if err := ctx.Err(); err != nil {
			return simGame{}, err
		}
		if sim.setup.Frames > 0 && engine.Frames() >= sim.setup.Frames {
			break
		}
		for _, input := range bot.Next(engine.Board(), engine.Pieces()) {
			game.Input(input)
		}
		view, err := game.Frame(ctx)
		if err != nil {
			return simGame{}, err
		}
		result.view = view
	}

	if results := game.Results(); len(results) > 0 {
		result.finished = true
		result.ranking = results[len(results)-1].Ranking
	}
	return result, nil
}

// topScores returns up to n scores of games, best first
func topScores(games []simGame, n int) []string {
	scores := make([]int, n)
	for i := range scores {
		scores[i] = -1
	}
	for _, game := range games {
		tetris.InsertScore(scores, game.view.Score)
	}
	top := []string{}
	for _, score := range scores {
		if score >= 0 {
			top = append(top, humanize.Comma(int64(score)))
		}
	}
	return top
}

func totalFrames(games []simGame) int {
	total := 0
	for _, game := range games {
		total += game.view.Frame
	}
	return total
}

func printSimResults(games []simGame) {
	data := [][]string{}
	for _, game := range games {
		status := "topped out"
		if !game.finished {
			status = "frame limit"
		}
		best := "-"
		if game.finished {
			best = humanize.Comma(int64(game.ranking.Score))
			if game.ranking.Score == game.view.Score && game.view.Score > 0 {
				best = internal.Record(best)
			}
		}
		data = append(data, []string{
			fmt.Sprint(game.seed),
			humanize.Comma(int64(game.view.Score)),
			fmt.Sprint(game.view.Level),
			humanize.Comma(int64(game.view.Lines)),
			humanize.Comma(int64(game.view.Pieces)),
			status,
			best,
		})
	}
	printTable([]string{"Seed", "Score", "Level", "Lines", "Pieces", "Result", "Best"}, data)
}
