package game

import (
	"math/rand"

	"dropfour/internal/core"
)

// Phase is the move coordinator's state machine position.
type Phase uint8

const (
	PhaseIdle      Phase = iota // accepting input
	PhaseAnimating              // a drop is in flight, board locked
	PhaseFinished               // outcome set, only restart accepted
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimating:
		return "animating"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// dropAnimation tracks a token between Drop and its landing. Positions are
// in character rows relative to the board's top border: the token starts
// one row above it and steps down one row per frame until destY.
type dropAnimation struct {
	column  int
	destRow int
	color   Color
	y       int
	destY   int
}

// Game owns all mutable state for one session: the board, the selection
// cursor, the turn tracker, the lock flag, and the outcome. It is mutated
// only through its methods, from a single owner; nothing here is safe for
// concurrent use and nothing needs to be.
type Game struct {
	rng *rand.Rand

	board    Board
	selected int
	turn     Color
	phase    Phase
	locked   bool

	outcome    Outcome
	hasOutcome bool

	// Transient, cleared after one render cycle.
	statusMessage string

	anim dropAnimation

	screenW int
	screenH int

	round int // 1-based round counter for the session
	moves int // tokens placed in the current round
}

// New creates an uninitialized game. Call Reset before use.
func New() *Game {
	return &Game{}
}

// Reset initializes the session: empty board, centered selection, and a
// randomly chosen starting turn.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.board.Clear()
	g.selected = BoardWidth / 2
	g.turn = g.randomColor()
	g.phase = PhaseIdle
	g.locked = false
	g.hasOutcome = false
	g.statusMessage = ""
	g.anim = dropAnimation{}
	g.round = 1
	g.moves = 0
}

func (g *Game) randomColor() Color {
	if g.rng.Intn(2) == 0 {
		return Red
	}
	return Yellow
}

// SetScreenSize records the render surface size. Resizes never touch game
// logic state; they only change layout on the next render.
func (g *Game) SetScreenSize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// SelectLeft moves the selection cursor one column left.
// Returns false at the left edge or outside the idle phase.
func (g *Game) SelectLeft() bool {
	if g.phase != PhaseIdle {
		return false
	}
	if g.selected <= 0 {
		return false
	}
	g.selected--
	return true
}

// SelectRight moves the selection cursor one column right.
// Returns false at the right edge or outside the idle phase.
func (g *Game) SelectRight() bool {
	if g.phase != PhaseIdle {
		return false
	}
	if g.selected >= BoardWidth-1 {
		return false
	}
	g.selected++
	return true
}

// Drop starts a drop into the selected column: the board locks, the phase
// becomes animating, and the token begins falling from above the board.
// Returns false outside the idle phase or when the column is full; the
// board is unchanged in that case. The token is not placed until the
// animation completes.
func (g *Game) Drop() bool {
	if g.phase != PhaseIdle {
		return false
	}
	row, ok := g.board.LowestEmptyRow(g.selected)
	if !ok {
		return false
	}

	g.locked = true
	g.phase = PhaseAnimating
	g.anim = dropAnimation{
		column:  g.selected,
		destRow: row,
		color:   g.turn,
		y:       -1,
		destY:   1 + (BoardHeight-1-row)*2,
	}
	return true
}

// AdvanceAnimation moves the falling token down one frame. When the token
// reaches its destination the drop settles: the token is written into the
// board, the win detector runs, and either the outcome is recorded (phase
// finished, board stays locked) or the turn flips and the board unlocks.
// Returns true once the drop has settled; true immediately if no drop is
// in flight.
func (g *Game) AdvanceAnimation() bool {
	if g.phase != PhaseAnimating {
		return true
	}
	if g.anim.y < g.anim.destY {
		g.anim.y++
		return false
	}
	g.settle()
	return true
}

// settle finishes the in-flight drop.
func (g *Game) settle() {
	g.board.Place(g.anim.column, g.anim.color)
	g.moves++

	if out, over := Detect(&g.board); over {
		g.outcome = out
		g.hasOutcome = true
		g.phase = PhaseFinished
		// board remains locked
		return
	}

	g.turn = g.turn.Other()
	g.locked = false
	g.phase = PhaseIdle
}

// Restart begins the next round after a finished one: empty board, the
// previous winner starts (a draw picks a random starting turn). The
// selection cursor carries over. Returns false outside the finished phase.
func (g *Game) Restart() bool {
	if g.phase != PhaseFinished {
		return false
	}

	next := g.randomColor()
	if g.hasOutcome && g.outcome != Draw {
		if g.outcome == RedWins {
			next = Red
		} else {
			next = Yellow
		}
	}

	g.board.Clear()
	g.turn = next
	g.phase = PhaseIdle
	g.locked = false
	g.hasOutcome = false
	g.statusMessage = ""
	g.anim = dropAnimation{}
	g.round++
	g.moves = 0
	return true
}

// SetStatusMessage records a transient message, typically describing
// unrecognized input. It never changes the lock, turn, or outcome, and it
// is cleared after the next render cycle.
func (g *Game) SetStatusMessage(msg string) {
	g.statusMessage = msg
}

// SelectedColumn returns the current selection cursor.
func (g *Game) SelectedColumn() int {
	return g.selected
}

// Turn returns whose turn it is.
func (g *Game) Turn() Color {
	return g.turn
}

// Phase returns the coordinator's state machine position.
func (g *Game) Phase() Phase {
	return g.phase
}

// Locked reports whether the board is locked against moves.
func (g *Game) Locked() bool {
	return g.locked
}

// Outcome returns the round result; the second return is false while the
// round is still in progress.
func (g *Game) Outcome() (Outcome, bool) {
	return g.outcome, g.hasOutcome
}

// Board returns the board for inspection. Callers must not mutate it.
func (g *Game) Board() *Board {
	return &g.board
}

// Round returns the 1-based round counter for this session.
func (g *Game) Round() int {
	return g.round
}

// Moves returns the number of tokens placed in the current round.
func (g *Game) Moves() int {
	return g.moves
}
