package game

// Outcome is the terminal result of a round.
type Outcome uint8

const (
	RedWins Outcome = iota
	YellowWins
	Draw
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red wins"
	case YellowWins:
		return "yellow wins"
	case Draw:
		return "draw"
	default:
		return "unknown"
	}
}

// winnerOutcome maps a color to its winning outcome.
func winnerOutcome(c Color) Outcome {
	if c == Red {
		return RedWins
	}
	return YellowWins
}

// Detection kernels, indexed kernel[row][col]. Correlating an occupancy
// mask against a kernel finds runs matching the kernel's line geometry.
var detectionKernels = [][][]uint8{
	{{1, 1, 1, 1}}, // horizontal
	{{1}, {1}, {1}, {1}}, // vertical
	{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}, // diagonal
	{
		{0, 0, 0, 1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{1, 0, 0, 0},
	}, // anti-diagonal
}

// correlate computes the 2D cross-correlation of mask against kernel in
// "valid" mode: no padding, so the output shrinks by the kernel size minus
// one in each axis. An empty result is returned when the kernel does not
// fit inside the mask.
func correlate(mask [][]uint8, kernel [][]uint8) [][]int {
	mh, mw := len(mask), len(mask[0])
	kh, kw := len(kernel), len(kernel[0])

	oh, ow := mh-kh+1, mw-kw+1
	if oh <= 0 || ow <= 0 {
		return nil
	}

	out := make([][]int, oh)
	for y := 0; y < oh; y++ {
		out[y] = make([]int, ow)
		for x := 0; x < ow; x++ {
			sum := 0
			for ky := 0; ky < kh; ky++ {
				for kx := 0; kx < kw; kx++ {
					sum += int(kernel[ky][kx]) * int(mask[y+ky][x+kx])
				}
			}
			out[y][x] = sum
		}
	}
	return out
}

// hasRun reports whether any correlation cell reaches the full run length,
// meaning the mask contains a line matching the kernel's geometry.
func hasRun(mask [][]uint8, kernel [][]uint8) bool {
	for _, row := range correlate(mask, kernel) {
		for _, v := range row {
			if v == WinLength {
				return true
			}
		}
	}
	return false
}

// Detect inspects the board for a finished round. It reports a winner if
// either color has four in a line, a draw if the board is full, and no
// outcome otherwise. Red is checked before Yellow for each kernel; the
// order is fixed so results are deterministic.
func Detect(b *Board) (Outcome, bool) {
	redMask := b.Mask(Red)
	yellowMask := b.Mask(Yellow)

	for _, kernel := range detectionKernels {
		if hasRun(redMask, kernel) {
			return winnerOutcome(Red), true
		}
		if hasRun(yellowMask, kernel) {
			return winnerOutcome(Yellow), true
		}
	}

	if b.IsFull() {
		return Draw, true
	}

	return 0, false
}
