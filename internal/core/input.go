package core

// Action represents a semantic game action, abstracted from physical key presses.
// Mapping of raw key codes to actions lives in the platform layer.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - move selection left
	ActionRight          // Right arrow, D - move selection right
	ActionConfirm        // Enter, Space - drop token (or restart when finished)
	ActionRestart        // R - restart after the round ends
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
