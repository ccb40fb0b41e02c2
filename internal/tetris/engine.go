package tetris

import (
	"context"
	"io"
	"log"
	"math/rand"
	"time"
)

// EventType is the kind of an engine event
type EventType int

const (
	EventSpawn EventType = iota
	EventLock
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

func (eventType EventType) String() string {
	switch eventType {
	case EventSpawn:
		return "spawn"
	case EventLock:
		return "lock"
	case EventLinesCleared:
		return "lines-cleared"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is reported to the EventHandler after the board changed
type Event struct {
	Type  EventType
	Frame int
	Shape string
	Lines int
	Award Award
	Score ScoreState
}

// EventHandler receives engine events synchronously, inside Frame
type EventHandler func(Event)

// Option configures an Engine
type Option func(*Engine)

// WithLogger logs engine activity to logger
func WithLogger(logger *log.Logger) Option {
	return func(engine *Engine) {
		if logger != nil {
			engine.logger = logger
		}
	}
}

// WithEventHandler reports engine events to handler
func WithEventHandler(handler EventHandler) Option {
	return func(engine *Engine) {
		engine.handler = handler
	}
}

// WithRandomizer replaces the seeded bag with source
func WithRandomizer(source Randomizer) Option {
	return func(engine *Engine) {
		engine.source = source
	}
}

// Engine drives a game one frame at a time. It is not safe for concurrent
// use: inputs, frames and reads must come from the same goroutine.
type Engine struct {
	rules         Rules
	catalog       *Catalog
	seed          int64
	source        Randomizer
	board         *Board
	score         ScoreState
	inputs        []Input
	gravityFrames int
	gravityCount  int
	lockFrames    int
	frame         int
	pieces        int
	view          View
	logger        *log.Logger
	handler       EventHandler
}

// NewEngine creates an engine for catalog and starts a new game. The
// shape sequence is a bag seeded with seed unless WithRandomizer is given.
func NewEngine(catalog *Catalog, rules Rules, seed int64, options ...Option) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	engine := &Engine{
		rules:   rules,
		catalog: catalog,
		seed:    seed,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, option := range options {
		option(engine)
	}
	if engine.source == nil {
		engine.source = NewBag(catalog, rand.New(rand.NewSource(seed)))
	}
	engine.board = NewBoard(rules.Width, rules.Height, rules.SpawnRow, engine.source)

	engine.NewGame()
	return engine, nil
}

// NewGame resets board and score and spawns the first mino
func (engine *Engine) NewGame() {
	engine.logger.Println("Engine NewGame start")

	engine.board.Clear()
	engine.score = NewScoreState(engine.rules.MaxLevel)
	engine.inputs = nil
	engine.gravityFrames = engine.rules.GravityFrames(1)
	engine.gravityCount = 0
	engine.lockFrames = 0
	engine.frame = 0
	engine.pieces = 0

	engine.spawn()
	engine.view = engine.buildView()

	engine.logger.Println("Engine NewGame end")
}

// Reset starts over after a top-out
func (engine *Engine) Reset() {
	engine.NewGame()
}

// Input queues a command for the next frame. Commands are ignored once
// the game is over.
func (engine *Engine) Input(input Input) {
	if engine.board.GameOver() {
		return
	}
	engine.inputs = append(engine.inputs, input)
}

// Frame advances the game by one frame: queued inputs, gravity, lock delay
// and then the view. After a top-out it only returns the last view.
func (engine *Engine) Frame() View {
	if engine.board.GameOver() {
		return engine.view
	}
	engine.frame++

	queue := engine.inputs
	engine.inputs = nil
	for _, input := range queue {
		if engine.board.GameOver() || engine.processInput(input) {
			break
		}
	}

	if _, ok := engine.board.Current(); ok {
		engine.gravityCount++
		if engine.gravityCount >= engine.gravityFrames {
			engine.gravityCount = 0
			engine.board.SoftDrop()
		}
	}

	engine.lockStep()

	engine.view = engine.buildView()
	return engine.view
}

// lockStep counts resting frames and locks the mino once the delay has
// elapsed. An airborne mino restarts the count.
func (engine *Engine) lockStep() {
	if _, ok := engine.board.Current(); !ok {
		return
	}
	if !engine.board.CheckLockCondition() {
		engine.lockFrames = 0
		return
	}
	engine.lockFrames++
	if engine.lockFrames < engine.rules.LockDelayFrames {
		return
	}

	mino, _ := engine.board.Current()
	engine.board.LockActivePiece()
	engine.pieces++
	engine.lockFrames = 0
	engine.gravityCount = 0

	lines := engine.board.SweepFilledRows()
	award, levelUp := engine.score.Apply(lines)
	engine.emit(Event{Type: EventLock, Shape: mino.Shape().Name(), Lines: lines, Award: award})
	if lines > 0 {
		engine.logger.Printf("Engine cleared %d lines, combo %d, score %d", lines, award.Combo, engine.score.Score)
		engine.emit(Event{Type: EventLinesCleared, Shape: mino.Shape().Name(), Lines: lines, Award: award})
	}
	if levelUp {
		engine.gravityFrames = engine.rules.GravityFrames(engine.score.Level)
		engine.logger.Printf("Engine level %d, gravity every %d frames", engine.score.Level, engine.gravityFrames)
		engine.emit(Event{Type: EventLevelUp, Lines: lines, Award: award})
	}

	engine.spawn()
}

func (engine *Engine) spawn() {
	next := engine.board.Next()
	if engine.board.SpawnNext() {
		engine.emit(Event{Type: EventSpawn, Shape: next.Name()})
		return
	}
	if engine.board.GameOver() {
		engine.gameOver()
	}
}

// gameOver drops pending input and reports the top-out
func (engine *Engine) gameOver() {
	engine.logger.Println("Engine GameOver start")

	engine.inputs = nil
	engine.emit(Event{Type: EventGameOver})

	engine.logger.Println("Engine GameOver end")
}

func (engine *Engine) emit(event Event) {
	if engine.handler == nil {
		return
	}
	event.Frame = engine.frame
	event.Score = engine.score
	engine.handler(event)
}

// Run calls Frame every interval until the game is over or ctx is done.
// Commands received on inputs are queued between frames, so the engine is
// only touched by the goroutine calling Run.
func (engine *Engine) Run(ctx context.Context, interval time.Duration, inputs <-chan Input) error {
	engine.logger.Println("Engine Run start")
	defer engine.logger.Println("Engine Run end")

	if interval <= 0 {
		interval = engine.rules.FrameInterval()
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case input := <-inputs:
			engine.Input(input)
		case <-ticker.C:
			engine.Frame()
			if engine.board.GameOver() {
				return nil
			}
		}
	}
}

// View returns the view built by the last frame
func (engine *Engine) View() View {
	return engine.view
}

// Board returns the board. Mutating it outside of Frame bypasses the
// lock delay accounting.
func (engine *Engine) Board() *Board {
	return engine.board
}

// Score returns the current score state
func (engine *Engine) Score() ScoreState {
	return engine.score
}

// GameOver reports a top-out
func (engine *Engine) GameOver() bool {
	return engine.board.GameOver()
}

// Frames returns the frames played in this game
func (engine *Engine) Frames() int {
	return engine.frame
}

// Pieces returns the number of locked minos in this game
func (engine *Engine) Pieces() int {
	return engine.pieces
}

// Rules returns the rules of the engine
func (engine *Engine) Rules() Rules {
	return engine.rules
}

// Catalog returns the shape catalog of the engine
func (engine *Engine) Catalog() *Catalog {
	return engine.catalog
}

// Seed returns the bag seed
func (engine *Engine) Seed() int64 {
	return engine.seed
}
