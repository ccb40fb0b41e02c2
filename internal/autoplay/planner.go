package autoplay

import (
	"math"

	"github.com/tursodatabase/pentris/internal/tetris"
)

// Plan is the input sequence that drops the active mino at a chosen spot
type Plan struct {
	Inputs   []tetris.Input
	Rotation int
	X        int
	Score    float64
}

// Planner searches every rotation and column of the active mino
type Planner struct {
	evaluator Evaluator
}

// NewPlanner creates a planner ranking placements with evaluator
func NewPlanner(evaluator Evaluator) *Planner {
	return &Planner{evaluator: evaluator}
}

// BestPlan returns the best placement for the active mino of board. The
// board is not changed. ok is false when there is no active mino.
func (p *Planner) BestPlan(board *tetris.Board) (Plan, bool) {
	if _, ok := board.Current(); !ok {
		return Plan{}, false
	}

	best := Plan{Score: math.Inf(-1)}
	found := false
	for turns := 0; turns < 4; turns++ {
		rotated := board.Clone()
		rotation := rotateInputs(turns)
		if !applyInputs(rotated, rotation) {
			continue
		}
		mino, _ := rotated.Current()

		left := 0
		for rotated.CanMove(mino, -(left+1), 0) {
			left++
		}
		for dx := -left; rotated.CanMove(mino, dx, 0); dx++ {
			candidate := rotated.Clone()
			moves := shiftInputs(dx)
			applyInputs(candidate, moves)
			candidate.HardDrop()
			placed, _ := candidate.Current()
			candidate.LockActivePiece()
			lines := candidate.SweepFilledRows()

			score := p.evaluator.Evaluate(Placement{Grid: candidate.Grid(), Lines: lines})
			if !found || score > best.Score {
				found = true
				inputs := append(append(append([]tetris.Input{}, rotation...), moves...), tetris.InputHardDrop)
				best = Plan{Inputs: inputs, Rotation: placed.Rotation(), X: placed.Position().X, Score: score}
			}
		}
	}
	return best, found
}

func rotateInputs(turns int) []tetris.Input {
	switch turns {
	case 0:
		return nil
	case 3:
		return []tetris.Input{tetris.InputRotateCCW}
	}
	inputs := make([]tetris.Input, turns)
	for i := range inputs {
		inputs[i] = tetris.InputRotateCW
	}
	return inputs
}

func shiftInputs(dx int) []tetris.Input {
	input := tetris.InputMoveRight
	if dx < 0 {
		input = tetris.InputMoveLeft
		dx = -dx
	}
	inputs := make([]tetris.Input, dx)
	for i := range inputs {
		inputs[i] = input
	}
	return inputs
}

// applyInputs replays movement inputs on board and reports whether each succeeded
func applyInputs(board *tetris.Board, inputs []tetris.Input) bool {
	for _, input := range inputs {
		ok := false
		switch input {
		case tetris.InputMoveLeft:
			ok = board.MoveHorizontal(false)
		case tetris.InputMoveRight:
			ok = board.MoveHorizontal(true)
		case tetris.InputRotateCW:
			ok = board.Rotate(tetris.RotateCW)
		case tetris.InputRotateCCW:
			ok = board.Rotate(tetris.RotateCCW)
		}
		if !ok {
			return false
		}
	}
	return true
}
