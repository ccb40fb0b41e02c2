package tetris

// Board owns the grid, the active mino, the held shape and the buffered
// next shape. The active mino never overlaps a locked cell or leaves the
// grid: every change is validated on a copy before it is committed.
type Board struct {
	grid     *Grid
	spawnRow int
	source   Randomizer
	current  *Mino
	next     *Shape
	hold     *Shape
	holdUsed bool
	gameOver bool
}

// NewBoard creates an idle board and buffers the first next shape from source
func NewBoard(width int, height int, spawnRow int, source Randomizer) *Board {
	board := &Board{
		grid:     NewGrid(width, height),
		spawnRow: spawnRow,
		source:   source,
	}
	board.Clear()
	return board
}

// Clear resets the board to its original idle state
func (board *Board) Clear() {
	board.grid.Reset()
	board.current = nil
	board.hold = nil
	board.holdUsed = false
	board.gameOver = false
	board.next = nil
	if board.source != nil {
		board.next = board.source.Next()
	}
}

// Grid returns the locked cells
func (board *Board) Grid() *Grid {
	return board.grid
}

// Current returns the active mino, if there is one
func (board *Board) Current() (Mino, bool) {
	if board.current == nil {
		return Mino{}, false
	}
	return *board.current, true
}

// Next returns the buffered next shape
func (board *Board) Next() *Shape {
	return board.next
}

// Held returns the held shape, nil before the first hold
func (board *Board) Held() *Shape {
	return board.hold
}

// CanHold reports whether a hold is still allowed for the active mino
func (board *Board) CanHold() bool {
	return board.current != nil && !board.holdUsed && !board.gameOver
}

// GameOver reports a top-out
func (board *Board) GameOver() bool {
	return board.gameOver
}

// SpawnPosition returns the canonical spawn box position for shape
func (board *Board) SpawnPosition(shape *Shape) Point {
	return Point{X: (board.grid.width - shape.size) / 2, Y: board.spawnRow}
}

// SpawnPiece installs a new active mino at the spawn position. If it
// overlaps locked cells the game is over and false is returned.
func (board *Board) SpawnPiece(shape *Shape) bool {
	if board.gameOver {
		return false
	}
	position := board.SpawnPosition(shape)
	mino := NewMino(shape, position.X, position.Y)
	if !board.ValidLocation(mino) {
		board.current = nil
		board.gameOver = true
		return false
	}
	board.current = &mino
	return true
}

// SpawnNext spawns the buffered next shape and refills the buffer
func (board *Board) SpawnNext() bool {
	if board.next == nil {
		return false
	}
	shape := board.next
	if board.source != nil {
		board.next = board.source.Next()
	}
	return board.SpawnPiece(shape)
}

// ValidLocation checks that every cell of mino is inside the grid and empty
func (board *Board) ValidLocation(mino Mino) bool {
	for _, cell := range mino.Cells() {
		if !board.grid.InBounds(cell.X, cell.Y) {
			return false
		}
		if !board.grid.IsEmpty(cell.X, cell.Y) {
			return false
		}
	}
	return true
}

// CanMove reports whether mino moved by dx, dy would be in a valid location.
// mino itself is not changed.
func (board *Board) CanMove(mino Mino, dx int, dy int) bool {
	return board.ValidLocation(mino.CloneMove(dx, dy))
}

// MoveHorizontal moves the active mino one column, or does nothing
func (board *Board) MoveHorizontal(right bool) bool {
	dx := -1
	if right {
		dx = 1
	}
	return board.move(dx, 0)
}

// SoftDrop moves the active mino one row down, or does nothing. It never locks.
func (board *Board) SoftDrop() bool {
	return board.move(0, 1)
}

func (board *Board) move(dx int, dy int) bool {
	if board.current == nil {
		return false
	}
	if !board.CanMove(*board.current, dx, dy) {
		return false
	}
	board.current.Translate(dx, dy)
	return true
}

// HardDrop moves the active mino down as far as it goes and returns the
// distance. The loop is bounded by the grid height.
func (board *Board) HardDrop() int {
	distance := 0
	for distance < board.grid.height && board.move(0, 1) {
		distance++
	}
	return distance
}

// Rotate turns the active mino, trying each kick offset in order. The
// first collision free candidate is committed together with the rotation;
// if none fits the mino is left unchanged.
func (board *Board) Rotate(direction Direction) bool {
	if board.current == nil {
		return false
	}
	rotated := board.current.CloneRotate(direction)
	for _, kick := range board.current.KickCandidates(board.current.rotation, rotated.rotation) {
		mino := rotated.CloneMove(kick.X, kick.Y)
		if board.ValidLocation(mino) {
			board.current = &mino
			return true
		}
	}
	return false
}

// CheckLockCondition reports whether the active mino rests on the floor or
// the stack. It does not lock anything.
func (board *Board) CheckLockCondition() bool {
	if board.current == nil {
		return false
	}
	return !board.CanMove(*board.current, 0, 1)
}

// LockActivePiece writes the active mino into the grid and empties the
// active slot. Hold becomes available again.
func (board *Board) LockActivePiece() bool {
	if board.current == nil {
		return false
	}
	for _, cell := range board.current.Cells() {
		board.grid.SetCell(cell.X, cell.Y, board.current.color)
	}
	board.current = nil
	board.holdUsed = false
	return true
}

// SweepFilledRows clears every full row from top to bottom and returns the
// number of rows cleared
func (board *Board) SweepFilledRows() int {
	cleared := 0
	for j := 0; j < board.grid.height; j++ {
		if board.grid.RowFull(j) {
			board.grid.ClearRow(j)
			cleared++
		}
	}
	return cleared
}

// FullRows returns the indexes of the rows that are currently full
func (board *Board) FullRows() []int {
	rows := make([]int, 0, 1)
	for j := 0; j < board.grid.height; j++ {
		if board.grid.RowFull(j) {
			rows = append(rows, j)
		}
	}
	return rows
}

// GhostPosition returns a ghost copy of the active mino dropped as far as
// it goes. The board is not changed.
func (board *Board) GhostPosition() (Mino, bool) {
	if board.current == nil {
		return Mino{}, false
	}
	ghost := board.current.Ghost()
	for distance := 0; distance < board.grid.height && board.CanMove(ghost, 0, 1); distance++ {
		ghost.Translate(0, 1)
	}
	return ghost, true
}

// Hold swaps the active mino with the held shape. The first hold takes the
// buffered next shape instead. The incoming mino restarts at the spawn
// position. Only one hold is allowed until the next lock; further calls do
// nothing and return false, as does a first hold with no next shape.
// A swap that tops out still returns true: check GameOver.
func (board *Board) Hold() bool {
	if !board.CanHold() {
		return false
	}
	incoming, fromNext := board.hold, false
	if incoming == nil {
		incoming, fromNext = board.next, true
	}
	if incoming == nil {
		return false
	}
	if fromNext && board.source != nil {
		board.next = board.source.Next()
	}
	board.hold = board.current.shape
	board.holdUsed = true
	board.SpawnPiece(incoming)
	return true
}

// Clone returns a deep copy of the board without a randomizer, for
// look-ahead searches. The clone can not spawn from the bag.
func (board *Board) Clone() *Board {
	clone := *board
	clone.grid = board.grid.Clone()
	clone.source = nil
	if board.current != nil {
		current := *board.current
		clone.current = &current
	}
	return &clone
}

// String renders the grid with the active mino drawn as '@'
func (board *Board) String() string {
	rows := []byte(board.grid.String())
	if board.current != nil {
		for _, cell := range board.current.Cells() {
			rows[cell.Y*(board.grid.width+1)+cell.X] = '@'
		}
	}
	return string(rows)
}
