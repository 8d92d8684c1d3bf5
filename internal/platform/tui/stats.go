package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"dropfour/internal/storage"
)

// statsMaxRounds caps how much history the table loads.
const statsMaxRounds = 100

// StatsKeyMap defines the key bindings for the stats view.
type StatsKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StatsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StatsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Quit},
	}
}

// DefaultStatsKeyMap returns default key bindings.
func DefaultStatsKeyMap() StatsKeyMap {
	return StatsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// StatsModel is the Bubble Tea model for the round history view.
type StatsModel struct {
	store    *storage.Store
	tally    storage.Tally
	table    table.Model
	help     help.Model
	keys     StatsKeyMap
	width    int
	height   int
	quitting bool
	loadErr  error
}

// NewStatsModel creates a stats model with round history loaded from the store.
func NewStatsModel(store *storage.Store, width, height int) StatsModel {
	m := StatsModel{
		store:  store,
		help:   help.New(),
		keys:   DefaultStatsKeyMap(),
		width:  width,
		height: height,
	}

	rounds, err := store.RecentRounds(statsMaxRounds)
	if err != nil {
		m.loadErr = err
		return m
	}
	tally, err := store.OutcomeTally()
	if err != nil {
		m.loadErr = err
		return m
	}
	m.tally = tally

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Outcome", Width: 13},
		{Title: "Moves", Width: 6},
		{Title: "Duration", Width: 9},
		{Title: "Date", Width: 17},
	}

	rows := make([]table.Row, 0, len(rounds))
	for i, r := range rounds {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			r.Outcome,
			strconv.Itoa(r.Moves),
			fmt.Sprintf("%ds", r.DurationSecs),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	tableHeight := height - 8
	if tableHeight < 3 {
		tableHeight = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("245"))
	t.SetStyles(styles)

	m.table = t
	return m
}

// Init initializes the stats model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the stats view.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h := msg.Height - 8
		if h < 3 {
			h = 3
		}
		m.table.SetHeight(h)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the stats view.
func (m StatsModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loadErr != nil {
		return fmt.Sprintf("Error loading round history: %v\n", m.loadErr)
	}

	title := lipgloss.NewStyle().Bold(true).Render("Round History")
	tallyLine := fmt.Sprintf(
		"red %d · yellow %d · draws %d · total %d",
		m.tally.RedWins, m.tally.YellowWins, m.tally.Draws, m.tally.Total(),
	)

	body := m.table.View()
	if m.tally.Total() == 0 {
		body = "No rounds recorded yet. Play a game first!"
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		tallyLine,
		"",
		body,
		"",
		m.help.View(m.keys),
	)
}

// RunStats starts the interactive round history view.
func RunStats(store *storage.Store, width, height int) error {
	model := NewStatsModel(store, width, height)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
