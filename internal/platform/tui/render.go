package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dropfour/internal/core"
)

// Theme holds the configurable token colors as ANSI 256-color codes.
type Theme struct {
	Red    string
	Yellow string
}

// DefaultTheme returns the stock red/yellow theme.
func DefaultTheme() Theme {
	return Theme{Red: "9", Yellow: "11"}
}

// styler maps screen cells to lipgloss styles for a given theme.
type styler struct {
	base map[core.Color]lipgloss.Style
}

func newStyler(theme Theme) *styler {
	return &styler{
		base: map[core.Color]lipgloss.Style{
			core.ColorDefault:      lipgloss.NewStyle(),
			core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
			core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
			core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Red)),
			core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Yellow)),
			core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
			core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// style returns the lipgloss style for a color/attribute pair.
func (st *styler) style(c core.Color, attr core.Attr) lipgloss.Style {
	s, ok := st.base[c]
	if !ok {
		s = st.base[core.ColorDefault]
	}
	if attr&core.AttrBold != 0 {
		s = s.Bold(true)
	}
	if attr&core.AttrReverse != 0 {
		s = s.Reverse(true)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same styling to minimize ANSI escape
// sequences.
func RenderScreen(s *core.Screen, st *styler) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color
			startAttr := cell.Attr

			// Collect consecutive cells with the same styling
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor || cell.Attr != startAttr {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor == core.ColorDefault && startAttr == 0 {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(st.style(startColor, startAttr).Render(run.String()))
		}
	}
	return sb.String()
}
