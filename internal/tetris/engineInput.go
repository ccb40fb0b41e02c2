package tetris

import (
	"fmt"
)

// Input is a player command delivered to the engine
type Input int

const (
	InputMoveLeft Input = iota
	InputMoveRight
	InputRotateCW
	InputRotateCCW
	InputSoftDrop
	InputHardDrop
	InputHold
)

var inputNames = []string{
	"move-left",
	"move-right",
	"rotate-cw",
	"rotate-ccw",
	"soft-drop",
	"hard-drop",
	"hold",
}

// String returns the command name
func (input Input) String() string {
	if input < 0 || int(input) >= len(inputNames) {
		return fmt.Sprintf("input(%d)", int(input))
	}
	return inputNames[input]
}

// ParseInput returns the input with the given name
func ParseInput(name string) (Input, error) {
	for i, inputName := range inputNames {
		if inputName == name {
			return Input(i), nil
		}
	}
	return 0, fmt.Errorf("unknown input %q", name)
}

// processInput applies one command to the board. It returns true when the
// command forces an immediate lock, in which case the rest of the queue is
// dropped for this frame.
func (engine *Engine) processInput(input Input) bool {
	board := engine.board

	switch input {
	case InputMoveLeft:
		engine.moved(board.MoveHorizontal(false))
	case InputMoveRight:
		engine.moved(board.MoveHorizontal(true))
	case InputRotateCW:
		engine.moved(board.Rotate(RotateCW))
	case InputRotateCCW:
		engine.moved(board.Rotate(RotateCCW))
	case InputSoftDrop:
		if board.SoftDrop() {
			engine.gravityCount = 0
		}
	case InputHardDrop:
		if _, ok := board.Current(); !ok {
			return false
		}
		board.HardDrop()
		// hard drop locks on this frame's lock step
		engine.lockFrames = engine.rules.LockDelayFrames
		return true
	case InputHold:
		if board.Hold() {
			engine.lockFrames = 0
			engine.gravityCount = 0
			engine.logger.Printf("Engine hold %v", board.Held().Name())
			if board.GameOver() {
				engine.gameOver()
			}
		}
	default:
		engine.logger.Printf("unknown input %v", input)
	}

	return false
}

// moved resets the lock delay when a successful move leaves the mino airborne
func (engine *Engine) moved(ok bool) {
	if ok && !engine.board.CheckLockCondition() {
		engine.lockFrames = 0
	}
}
