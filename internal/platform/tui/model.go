package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"dropfour/internal/core"
	"dropfour/internal/game"
	"dropfour/internal/storage"
)

// Model is the Bubble Tea model running one game session. It is the sole
// owner of the game state: every mutation happens inside Update, so the
// no-concurrent-mutation invariant holds without locks.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keys        *KeyMapper
	styles      *styler
	roundStart  time.Time
	resultSaved bool // Whether the current round's outcome has been saved
	quitting    bool
}

// NewModel creates a new Bubble Tea model with a freshly reset game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, theme Theme) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		styles:     newStyler(theme),
		roundStart: time.Now(),
	}
}

// Init initializes the model. There is no continuous tick: the model is
// event-driven, and frame commands run only while a drop is in flight.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input. Illegal moves are silent no-ops;
// the game itself rejects them and nothing changes.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft:
		m.game.SelectLeft()

	case core.ActionRight:
		m.game.SelectRight()

	case core.ActionConfirm:
		if m.game.Phase() == game.PhaseFinished {
			m.restartRound()
			return m, nil
		}
		if m.game.Drop() {
			return m, frameCmd(m.config.FrameDelay)
		}

	case core.ActionRestart:
		if m.game.Phase() == game.PhaseFinished {
			m.restartRound()
		}

	case core.ActionNone:
		m.game.SetStatusMessage(fmt.Sprintf("Unknown input: %s", msg.String()))
	}

	return m, nil
}

// handleResize processes window resize events. Resizes only affect
// layout; game state is never touched.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.SetScreenSize(msg.Width, msg.Height)
	return m, nil
}

// handleFrame advances the drop animation one frame. Once the drop
// settles, a finished round is recorded.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if !m.game.AdvanceAnimation() {
		return m, frameCmd(m.config.FrameDelay)
	}

	if out, over := m.game.Outcome(); over && !m.resultSaved {
		m.saveRound(out)
		m.resultSaved = true
	}
	return m, nil
}

// restartRound starts the next round and resets the per-round bookkeeping.
func (m *Model) restartRound() {
	if m.game.Restart() {
		m.roundStart = time.Now()
		m.resultSaved = false
	}
}

// saveRound records the finished round's outcome.
func (m *Model) saveRound(out game.Outcome) {
	if m.store == nil {
		return
	}
	duration := int(time.Since(m.roundStart).Seconds())
	//nolint:errcheck // Best-effort save, the game continues regardless
	m.store.SaveRound(out.String(), m.game.Moves(), duration)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.styles)
}

// Run starts the Bubble Tea program. The alternate screen buffer is
// restored on every exit path, including panics and signals, so the
// hosting terminal always comes back in its original mode.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig, theme Theme) error {
	model := NewModel(g, store, cfg, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
