// Package game implements the Connect Four engine: board state, win
// detection, and the move coordinator state machine. It contains no
// terminal or Bubble Tea dependencies; rendering goes through core.Screen.
package game

// Board dimensions and the winning run length.
const (
	BoardWidth  = 7
	BoardHeight = 6
	WinLength   = 4
)

// Color identifies a player's tokens.
type Color uint8

const (
	Red Color = iota
	Yellow
)

// Other returns the opposing color.
func (c Color) Other() Color {
	if c == Red {
		return Yellow
	}
	return Red
}

// String returns the lowercase color name.
func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "yellow"
}

// Cell is a single board position: empty or occupied by a color.
// An occupied cell never changes until a full board reset.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellRed
	CellYellow
)

// cellFor returns the occupied cell value for a color.
func cellFor(c Color) Cell {
	if c == Red {
		return CellRed
	}
	return CellYellow
}

// Board is the fixed-size grid. Columns fill bottom-up: cols[c][r] with
// row 0 at the bottom, and an occupied row never has an empty row below it.
type Board struct {
	cols [BoardWidth][BoardHeight]Cell
}

// At returns the cell at the given column and row.
// Out-of-range positions read as empty.
func (b *Board) At(col, row int) Cell {
	if col < 0 || col >= BoardWidth || row < 0 || row >= BoardHeight {
		return CellEmpty
	}
	return b.cols[col][row]
}

// Clear resets every cell to empty.
func (b *Board) Clear() {
	b.cols = [BoardWidth][BoardHeight]Cell{}
}

// IsFull reports whether every column's top row is occupied.
func (b *Board) IsFull() bool {
	for col := 0; col < BoardWidth; col++ {
		if b.cols[col][BoardHeight-1] == CellEmpty {
			return false
		}
	}
	return true
}

// ColumnFull reports whether the given column has no empty cells.
func (b *Board) ColumnFull(col int) bool {
	_, ok := b.LowestEmptyRow(col)
	return !ok
}

// LowestEmptyRow returns the lowest empty row index in the column.
// The second return is false when the column is full.
func (b *Board) LowestEmptyRow(col int) (int, bool) {
	if col < 0 || col >= BoardWidth {
		return 0, false
	}
	for row := 0; row < BoardHeight; row++ {
		if b.cols[col][row] == CellEmpty {
			return row, true
		}
	}
	return 0, false
}

// Place writes a token of the given color into the lowest empty row of the
// column. Returns false without mutating anything if the column is full;
// callers are expected to pre-check.
func (b *Board) Place(col int, c Color) bool {
	row, ok := b.LowestEmptyRow(col)
	if !ok {
		return false
	}
	b.cols[col][row] = cellFor(c)
	return true
}

// Mask produces a binary occupancy grid for one color, indexed
// mask[row][col], where 1 marks a cell occupied by that color.
// Used by the win detector; does not mutate state.
func (b *Board) Mask(c Color) [][]uint8 {
	want := cellFor(c)
	mask := make([][]uint8, BoardHeight)
	for row := 0; row < BoardHeight; row++ {
		mask[row] = make([]uint8, BoardWidth)
		for col := 0; col < BoardWidth; col++ {
			if b.cols[col][row] == want {
				mask[row][col] = 1
			}
		}
	}
	return mask
}
