package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"dropfour/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		action  core.Action
		isQuit  bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unknown rune", runeKey('x'), core.ActionNone, false},
		{"unknown key", tea.KeyMsg{Type: tea.KeyF1}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, isQuit := km.MapKey(tc.msg)
			if action != tc.action || isQuit != tc.isQuit {
				t.Errorf("MapKey(%s) = (%v, %v), expected (%v, %v)",
					tc.msg.String(), action, isQuit, tc.action, tc.isQuit)
			}
		})
	}
}
