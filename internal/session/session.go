package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/tursodatabase/pentris/internal/history"
	"github.com/tursodatabase/pentris/internal/tetris"
)

var ErrInvalidTransition = errors.New("invalid transition")

// State is the screen flow state around a game
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateQuit
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	case StateQuit:
		return "quit"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Command asks the session to change state
type Command int

const (
	CommandStart Command = iota
	CommandPause
	CommandResume
	CommandRestart
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	case CommandResume:
		return "resume"
	case CommandRestart:
		return "restart"
	case CommandQuit:
		return "quit"
	}
	return fmt.Sprintf("command(%d)", int(c))
}

var transitions = map[State]map[Command]State{
	StateMenu: {
		CommandStart: StatePlaying,
		CommandQuit:  StateQuit,
	},
	StatePlaying: {
		CommandPause:   StatePaused,
		CommandRestart: StatePlaying,
		CommandQuit:    StateQuit,
	},
	StatePaused: {
		CommandResume:  StatePlaying,
		CommandRestart: StatePlaying,
		CommandQuit:    StateQuit,
	},
	StateGameOver: {
		CommandRestart: StatePlaying,
		CommandQuit:    StateQuit,
	},
}

// RankingStore keeps the best score and level of each variant
type RankingStore interface {
	Merge(variant string, score int, level int) (tetris.Ranking, error)
}

// HistoryStore records finished games
type HistoryStore interface {
	Record(ctx context.Context, game history.Game) (history.Game, error)
}

// Result is what a finished game left behind
type Result struct {
	Game    history.Game
	Ranking tetris.Ranking
}

// Option configures a Session
type Option func(*Session)

// WithRankings merges finished games into store
func WithRankings(store RankingStore) Option {
	return func(s *Session) {
		s.rankings = store
	}
}

// WithHistory records finished games in store
func WithHistory(store HistoryStore) Option {
	return func(s *Session) {
		s.history = store
	}
}

// WithLogger logs state changes to logger
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Session runs games of one engine for one player, from the menu to quit
type Session struct {
	engine   *tetris.Engine
	player   string
	state    State
	rankings RankingStore
	history  HistoryStore
	results  []Result
	logger   *log.Logger
}

// New creates a session in the menu state
func New(engine *tetris.Engine, player string, options ...Option) *Session {
	s := &Session{
		engine: engine,
		player: player,
		state:  StateMenu,
		logger: log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// State returns the current state
func (s *Session) State() State {
	return s.state
}

// Engine returns the engine of the session
func (s *Session) Engine() *tetris.Engine {
	return s.engine
}

// Results returns the finished games of the session, oldest first
func (s *Session) Results() []Result {
	return s.results
}

// Handle applies a command. Commands that make no sense in the current
// state return ErrInvalidTransition and leave the state unchanged.
func (s *Session) Handle(command Command) error {
	next, ok := transitions[s.state][command]
	if !ok {
		return fmt.Errorf("%w: %v while %v", ErrInvalidTransition, command, s.state)
	}
	s.logger.Printf("Session %v: %v -> %v", command, s.state, next)

	if command == CommandStart || command == CommandRestart {
		s.engine.NewGame()
	}
	s.state = next
	return nil
}

// Input forwards a command to the engine while playing. It reports
// whether the input was accepted.
func (s *Session) Input(input tetris.Input) bool {
	if s.state != StatePlaying {
		return false
	}
	s.engine.Input(input)
	return true
}

// Frame advances the game while playing. When the game tops out the
// session moves to game over, merges the ranking and records the game.
func (s *Session) Frame(ctx context.Context) (tetris.View, error) {
	if s.state != StatePlaying {
		return s.engine.View(), nil
	}

	view := s.engine.Frame()
	if !view.GameOver {
		return view, nil
	}

	s.state = StateGameOver
	s.logger.Printf("Session game over: score %d level %d", view.Score, view.Level)
	return view, s.finish(ctx)
}

func (s *Session) finish(ctx context.Context) error {
	score := s.engine.Score()
	result := Result{
		Game: history.Game{
			Player:     s.player,
			Variant:    s.engine.Catalog().Name(),
			Score:      score.Score,
			Level:      score.Level,
			Lines:      score.Lines,
			Pieces:     s.engine.Pieces(),
			Frames:     s.engine.Frames(),
			Seed:       s.engine.Seed(),
			FinishedAt: time.Now(),
		},
		Ranking: tetris.Ranking{Score: score.Score, Level: score.Level},
	}

	if s.rankings != nil {
		ranking, err := s.rankings.Merge(result.Game.Variant, score.Score, score.Level)
		if err != nil {
			return fmt.Errorf("could not update ranking: %w", err)
		}
		result.Ranking = ranking
	}
	if s.history != nil {
		game, err := s.history.Record(ctx, result.Game)
		if err != nil {
			return fmt.Errorf("could not record game: %w", err)
		}
		result.Game = game
	}

	s.results = append(s.results, result)
	return nil
}
