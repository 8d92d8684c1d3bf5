package game

// Snapshot captures the complete game state for tests and read-only
// consumers. The render layer never mutates the game through it.
type Snapshot struct {
	Round      int
	Moves      int
	Selected   int
	Turn       Color
	Phase      Phase
	Locked     bool
	Outcome    Outcome
	HasOutcome bool
	Cells      [BoardWidth][BoardHeight]Cell
}

// Snapshot returns a copy of the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Round:      g.round,
		Moves:      g.moves,
		Selected:   g.selected,
		Turn:       g.turn,
		Phase:      g.phase,
		Locked:     g.locked,
		Outcome:    g.outcome,
		HasOutcome: g.hasOutcome,
		Cells:      g.board.cols,
	}
}
