package game

import (
	"fmt"
	"strings"

	"dropfour/internal/core"
)

// Board drawing size in characters, including padding and border.
const (
	drawingHeight = (BoardHeight-1)*2 + 2
	drawingWidth  = BoardWidth*6 + 2

	// Column pitch and token inset within the frame.
	columnStride = 6
	tokenInsetX  = 2
)

// Token glyphs, two rows tall.
const (
	tokenTop    = "╭─╮"
	tokenBottom = "╰─╯"
)

// Minimum sizes below which rendering degrades (nothing at all, then a
// placeholder message).
const (
	minRenderWidth  = 10
	minRenderHeight = 3
)

// tokenColor maps a player color to its screen color.
func tokenColor(c Color) core.Color {
	if c == Red {
		return core.ColorBrightRed
	}
	return core.ColorBrightYellow
}

// Render paints the full game view into the screen buffer. All layout is
// computed from the buffer's size. Rendering consumes the transient status
// message, so it is surfaced for exactly one render cycle.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	status := g.statusMessage
	g.statusMessage = ""

	// Way too small to draw anything.
	if h < minRenderHeight || w < minRenderWidth {
		return
	}

	// Too small for the board, but an error message fits.
	if h < drawingHeight+6 || w < drawingWidth+20 {
		dst.DrawText(0, 0, "Screen too small!")
		dst.DrawText(0, 1, "Please increase the size")
		dst.DrawText(0, 2, "of your terminal window.")
		return
	}

	g.renderChrome(dst, status)
	g.renderBoard(dst)
}

// renderChrome draws the header and footer bars.
func (g *Game) renderChrome(dst *core.Screen, status string) {
	w, h := dst.Width(), dst.Height()

	leftHeader := "Connect Four"
	rightHeader := "<-/-> to move, Return/Space to drop"
	leftFooter := "Ctrl+C or q to exit"

	bar := strings.Repeat(" ", w-2)
	dst.DrawTextStyled(1, 0, bar, core.ColorDefault, core.AttrReverse)
	dst.DrawTextStyled(3, 0, leftHeader, core.ColorDefault, core.AttrReverse)
	dst.DrawTextStyled(w-len(rightHeader)-3, 0, rightHeader, core.ColorDefault, core.AttrReverse)

	dst.DrawTextStyled(1, h-1, bar, core.ColorDefault, core.AttrReverse)
	dst.DrawTextStyled(3, h-1, leftFooter, core.ColorDefault, core.AttrReverse)

	right := status
	if right == "" {
		right = fmt.Sprintf("round %d", g.round)
	}
	dst.DrawTextStyled(w-len(right)-3, h-1, right, core.ColorDefault, core.AttrReverse)
}

// renderBoard draws the frame, the settled tokens, the falling token, and
// the turn or outcome messages above the board.
func (g *Game) renderBoard(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	topY := h/2 - drawingHeight/2
	topX := w/2 - drawingWidth/2

	// Frame. The gaps in the top border let the falling token pass through.
	colTop := strings.Repeat("═   ═"+"╤", BoardWidth-1) + "═   ═"
	colMid := strings.Repeat("     "+"│", BoardWidth-1) + "     "
	colBot := strings.Repeat("═════"+"╧", BoardWidth-1) + "═════"
	dst.DrawText(topX, topY, "╔"+colTop+"╗")
	for i := 1; i <= drawingHeight; i++ {
		dst.DrawText(topX, topY+i, "║"+colMid+"║")
	}
	dst.DrawText(topX, topY+drawingHeight+1, "╚"+colBot+"╝")

	// Settled tokens.
	for col := 0; col < BoardWidth; col++ {
		for row := 0; row < BoardHeight; row++ {
			switch g.board.At(col, row) {
			case CellRed:
				g.drawToken(dst, topX, topY, col, row, Red)
			case CellYellow:
				g.drawToken(dst, topX, topY, col, row, Yellow)
			}
		}
	}

	switch g.phase {
	case PhaseAnimating:
		// The falling token; messages stay hidden while it drops.
		x := topX + tokenInsetX + g.anim.column*columnStride
		drawTokenAt(dst, x, topY+g.anim.y, g.anim.color)

	case PhaseFinished:
		g.renderOutcome(dst, topX, topY)

	default:
		g.renderTurn(dst, topX, topY)
	}
}

// drawToken draws a settled token at its board position.
func (g *Game) drawToken(dst *core.Screen, topX, topY, col, row int, c Color) {
	x := topX + tokenInsetX + col*columnStride
	y := topY + 1 + (BoardHeight-1-row)*2
	drawTokenAt(dst, x, y, c)
}

// drawTokenAt draws a token at an absolute screen position. Rows above the
// screen clip silently, which the drop animation relies on.
func drawTokenAt(dst *core.Screen, x, y int, c Color) {
	dst.DrawTextStyled(x, y, tokenTop, tokenColor(c), core.AttrBold)
	dst.DrawTextStyled(x, y+1, tokenBottom, tokenColor(c), core.AttrBold)
}

// renderTurn draws the whose-turn message and the selection indicator.
func (g *Game) renderTurn(dst *core.Screen, topX, topY int) {
	name := strings.ToUpper(g.turn.String())
	msg := fmt.Sprintf("%s, it's your turn!", name)
	x := topX + drawingWidth/2 - len(msg)/2
	dst.DrawText(x, topY-2, msg)
	dst.DrawTextStyled(x, topY-2, name, tokenColor(g.turn), core.AttrBold)

	dst.DrawTextStyled(topX+g.selected*columnStride+3, topY-1, "v", tokenColor(g.turn), 0)
}

// renderOutcome draws the winner or draw banner and the restart prompt.
func (g *Game) renderOutcome(dst *core.Screen, topX, topY int) {
	if g.outcome == Draw {
		msg := "It's a draw!"
		dst.DrawText(topX+drawingWidth/2-len(msg)/2, topY-2, msg)
	} else {
		winner := Red
		if g.outcome == YellowWins {
			winner = Yellow
		}
		name := strings.ToUpper(winner.String())
		msg := fmt.Sprintf("%s wins!", name)
		x := topX + drawingWidth/2 - len(msg)/2
		dst.DrawText(x, topY-2, msg)
		dst.DrawTextStyled(x, topY-2, name, tokenColor(winner), core.AttrBold)
	}

	restart := "Press Space to play again"
	dst.DrawText(topX+drawingWidth/2-len(restart)/2, topY-1, restart)
}
