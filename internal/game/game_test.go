package game

import (
	"testing"

	"dropfour/internal/core"
)

func newTestGame(turn Color) *Game {
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g.Reset(cfg)
	g.turn = turn
	return g
}

// settleDrop drives the animation to completion.
func settleDrop(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 100; i++ {
		if g.AdvanceAnimation() {
			return
		}
	}
	t.Fatal("drop animation never settled")
}

func TestResetDefaults(t *testing.T) {
	g := newTestGame(Red)

	if g.SelectedColumn() != BoardWidth/2 {
		t.Errorf("selected column = %d, expected %d", g.SelectedColumn(), BoardWidth/2)
	}
	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", g.Phase())
	}
	if g.Locked() {
		t.Error("board locked after reset")
	}
	if _, over := g.Outcome(); over {
		t.Error("outcome set after reset")
	}
	if g.Round() != 1 {
		t.Errorf("round = %d, expected 1", g.Round())
	}
}

func TestSelectClampsAtEdges(t *testing.T) {
	g := newTestGame(Red)

	for g.SelectLeft() {
	}
	if g.SelectedColumn() != 0 {
		t.Fatalf("selected column = %d after moving fully left", g.SelectedColumn())
	}
	if g.SelectLeft() {
		t.Error("SelectLeft at the left edge should fail")
	}

	for g.SelectRight() {
	}
	if g.SelectedColumn() != BoardWidth-1 {
		t.Fatalf("selected column = %d after moving fully right", g.SelectedColumn())
	}
	if g.SelectRight() {
		t.Error("SelectRight at the right edge should fail")
	}
}

func TestDropPlacesTokenAndFlipsTurn(t *testing.T) {
	g := newTestGame(Red)
	g.selected = 3

	if !g.Drop() {
		t.Fatal("Drop on an empty board should succeed")
	}
	if g.Phase() != PhaseAnimating || !g.Locked() {
		t.Fatal("drop in flight should lock the board in the animating phase")
	}

	settleDrop(t, g)

	if got := g.Board().At(3, 0); got != CellRed {
		t.Errorf("cell (3, 0) = %v, expected red", got)
	}
	if g.Turn() != Yellow {
		t.Errorf("turn = %v, expected yellow", g.Turn())
	}
	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", g.Phase())
	}
	if g.Locked() {
		t.Error("board still locked after the drop settled")
	}
	if g.Moves() != 1 {
		t.Errorf("moves = %d, expected 1", g.Moves())
	}
}

func TestDropAnimationFrameCount(t *testing.T) {
	g := newTestGame(Red)
	g.selected = 0
	if !g.Drop() {
		t.Fatal("Drop failed")
	}

	// One frame per character row from above the top border down to the
	// bottom row: destY = 1 + (H-1)*2 = 11, starting at -1.
	frames := 0
	for !g.AdvanceAnimation() {
		frames++
	}
	if frames != 12 {
		t.Errorf("animation ran %d frames, expected 12", frames)
	}
}

func TestDropIntoFullColumnFails(t *testing.T) {
	g := newTestGame(Red)
	g.selected = 0
	for i := 0; i < BoardHeight; i++ {
		c := Red
		if i%2 == 1 {
			c = Yellow
		}
		g.board.Place(0, c)
	}

	before := g.Snapshot()
	if g.Drop() {
		t.Fatal("Drop into a full column should fail")
	}
	if g.Snapshot() != before {
		t.Error("failed Drop must not change game state")
	}
}

func TestInputRejectedWhileAnimating(t *testing.T) {
	g := newTestGame(Red)
	if !g.Drop() {
		t.Fatal("Drop failed")
	}
	g.AdvanceAnimation() // token in flight

	before := g.Snapshot()
	if g.SelectLeft() || g.SelectRight() || g.Drop() || g.Restart() {
		t.Error("inputs while animating should all be rejected")
	}
	if g.Snapshot() != before {
		t.Error("rejected inputs must not change game state")
	}
}

func TestWinningDropFinishesRound(t *testing.T) {
	g := newTestGame(Red)
	// Three reds on the bottom row; the fourth drops into column 3.
	set(&g.board, 0, 0, Red)
	set(&g.board, 1, 0, Red)
	set(&g.board, 2, 0, Red)
	g.selected = 3

	if !g.Drop() {
		t.Fatal("Drop failed")
	}
	settleDrop(t, g)

	out, over := g.Outcome()
	if !over || out != RedWins {
		t.Fatalf("outcome = (%v, %v), expected (RedWins, true)", out, over)
	}
	if g.Phase() != PhaseFinished {
		t.Errorf("phase = %v, expected finished", g.Phase())
	}
	if !g.Locked() {
		t.Error("board should remain locked after the round ends")
	}
}

func TestOnlyRestartAcceptedWhenFinished(t *testing.T) {
	g := newTestGame(Red)
	g.phase = PhaseFinished
	g.locked = true
	g.outcome = RedWins
	g.hasOutcome = true

	before := g.Snapshot()
	if g.SelectLeft() || g.SelectRight() || g.Drop() {
		t.Error("moves while finished should be rejected")
	}
	if g.Snapshot() != before {
		t.Error("rejected inputs must not change game state")
	}

	if !g.Restart() {
		t.Error("Restart while finished should succeed")
	}
}

func TestRestartWinnerLeads(t *testing.T) {
	g := newTestGame(Red)
	g.selected = 3
	set(&g.board, 0, 0, Red)
	set(&g.board, 1, 0, Red)
	set(&g.board, 2, 0, Red)
	g.Drop()
	settleDrop(t, g)

	if !g.Restart() {
		t.Fatal("Restart after a win should succeed")
	}

	if g.Turn() != Red {
		t.Errorf("turn after restart = %v, expected red (the prior winner leads)", g.Turn())
	}
	if g.Phase() != PhaseIdle || g.Locked() {
		t.Error("restart should unlock the board in the idle phase")
	}
	if _, over := g.Outcome(); over {
		t.Error("outcome should be cleared by restart")
	}
	if g.Round() != 2 {
		t.Errorf("round = %d, expected 2", g.Round())
	}
	if g.Moves() != 0 {
		t.Errorf("moves = %d, expected 0", g.Moves())
	}
	for col := 0; col < BoardWidth; col++ {
		for row := 0; row < BoardHeight; row++ {
			if g.Board().At(col, row) != CellEmpty {
				t.Fatalf("cell (%d, %d) not empty after restart", col, row)
			}
		}
	}
}

func TestRestartAfterDrawPicksRandomTurn(t *testing.T) {
	g := newTestGame(Red)
	g.phase = PhaseFinished
	g.locked = true
	g.outcome = Draw
	g.hasOutcome = true

	if !g.Restart() {
		t.Fatal("Restart after a draw should succeed")
	}
	if got := g.Turn(); got != Red && got != Yellow {
		t.Errorf("turn after draw restart = %v", got)
	}
	if g.Phase() != PhaseIdle {
		t.Errorf("phase = %v, expected idle", g.Phase())
	}
}

func TestRestartRejectedMidRound(t *testing.T) {
	g := newTestGame(Red)
	if g.Restart() {
		t.Error("Restart in the idle phase should fail")
	}
}

func TestRestartKeepsSelection(t *testing.T) {
	g := newTestGame(Red)
	g.selected = 5
	g.phase = PhaseFinished
	g.outcome = YellowWins
	g.hasOutcome = true

	g.Restart()
	if g.SelectedColumn() != 5 {
		t.Errorf("selected column = %d after restart, expected 5", g.SelectedColumn())
	}
}

func TestStatusMessageDoesNotTouchGameState(t *testing.T) {
	g := newTestGame(Red)
	before := g.Snapshot()

	g.SetStatusMessage("Unknown input: x")

	after := g.Snapshot()
	if after != before {
		t.Error("status message must not alter game state visible in the snapshot")
	}
	if g.statusMessage != "Unknown input: x" {
		t.Errorf("statusMessage = %q", g.statusMessage)
	}
}

func TestFullGameToDraw(t *testing.T) {
	g := newTestGame(Red)

	// Drive every token through the real coordinator, forcing the turn
	// before each drop to follow the known draw pattern.
	base := []Color{Red, Red, Yellow, Yellow, Red, Red, Yellow}
	for row := 0; row < BoardHeight; row++ {
		for col := 0; col < BoardWidth; col++ {
			c := base[col]
			if row%2 == 1 {
				c = c.Other()
			}
			g.turn = c
			g.selected = col
			if !g.Drop() {
				t.Fatalf("Drop into column %d failed at row %d", col, row)
			}
			settleDrop(t, g)
		}
	}

	out, over := g.Outcome()
	if !over || out != Draw {
		t.Fatalf("outcome = (%v, %v), expected (Draw, true)", out, over)
	}
	if g.Phase() != PhaseFinished {
		t.Errorf("phase = %v, expected finished", g.Phase())
	}
	if g.Moves() != BoardWidth*BoardHeight {
		t.Errorf("moves = %d, expected %d", g.Moves(), BoardWidth*BoardHeight)
	}
}
