package autoplay

import "github.com/tursodatabase/pentris/internal/tetris"

// Player produces the inputs of an autoplayed game, one plan per mino
type Player struct {
	planner *Planner
	pieces  int
}

// NewPlayer creates a player using planner
func NewPlayer(planner *Planner) *Player {
	return &Player{planner: planner, pieces: -1}
}

// Next returns the inputs for the active mino of board. pieces is the
// number of locked minos so far; a plan is only made once per mino and
// later calls for the same mino return nil.
func (p *Player) Next(board *tetris.Board, pieces int) []tetris.Input {
	if pieces == p.pieces {
		return nil
	}
	plan, ok := p.planner.BestPlan(board)
	if !ok {
		return nil
	}
	p.pieces = pieces
	return plan.Inputs
}
