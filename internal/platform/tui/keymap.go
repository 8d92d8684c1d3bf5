package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"dropfour/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (ActionNone for unrecognized keys) and whether the
// key is a quit request. Quit works in every game phase.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionLeft, false
	case "right", "d":
		return core.ActionRight, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}
