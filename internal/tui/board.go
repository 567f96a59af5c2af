package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/countdown/internal/clock"
	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/timer"
)

// SnapshotMsg carries a driver's reading into the program.
type SnapshotMsg timer.Snapshot

// CompleteMsg is sent once when a countdown reaches its target.
type CompleteMsg timer.Snapshot

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// reloadMsg asks the board to re-read the timer store.
type reloadMsg struct{}

// TimerLister lists the stored timers.
type TimerLister interface {
	List() ([]*model.Timer, error)
}

// refresher is implemented by listers that cache the store and can drop
// the cache on demand.
type refresher interface {
	Refresh() error
}

// ThemeStore persists the theme preference.
type ThemeStore interface {
	Get() (model.Theme, error)
	Toggle() (model.Theme, error)
}

// BoardModel is the bubbletea model for the live timer board.
type BoardModel struct {
	// Data
	order     []string
	snapshots map[string]timer.Snapshot

	// Stores
	timers TimerLister
	themes ThemeStore

	// sync starts, replaces, and stops drivers to match the store.
	sync func([]*model.Timer)

	// UI state
	styles     Styles
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	clock         clock.Clock
	progressWidth int
}

// BoardConfig holds configuration for the board.
type BoardConfig struct {
	Timers        TimerLister
	Themes        ThemeStore
	Clock         clock.Clock
	Scheduler     timer.Scheduler
	Interval      time.Duration
	ProgressWidth int
}

// NewBoardModel creates a new board model. sync may be nil.
func NewBoardModel(config BoardConfig, sync func([]*model.Timer)) *BoardModel {
	if config.Clock == nil {
		config.Clock = clock.Real{}
	}
	if config.ProgressWidth <= 0 {
		config.ProgressWidth = 30
	}

	theme := model.DefaultTheme
	if config.Themes != nil {
		if t, err := config.Themes.Get(); err == nil {
			theme = t
		}
	}

	return &BoardModel{
		snapshots:     make(map[string]timer.Snapshot),
		timers:        config.Timers,
		themes:        config.Themes,
		sync:          sync,
		styles:        NewStyles(theme),
		clock:         config.Clock,
		progressWidth: config.ProgressWidth,
	}
}

// Theme returns the active theme.
func (m *BoardModel) Theme() model.Theme {
	return m.styles.Theme
}

// Init initializes the model.
func (m *BoardModel) Init() tea.Cmd {
	return tea.Batch(
		m.tickCmd(),
		m.reloadCmd(),
	)
}

// Update handles messages and updates the model.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case SnapshotMsg:
		m.apply(timer.Snapshot(msg))
		return m, nil

	case CompleteMsg:
		snap := timer.Snapshot(msg)
		m.apply(snap)
		m.setMessage(fmt.Sprintf("%s: %s", snap.Title, timer.CompletedCaption), 5*time.Second)
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.clock.Now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()

	case reloadMsg:
		m.reload()
		return m, nil
	}

	return m, nil
}

// apply stores a snapshot for a timer the board still shows.
func (m *BoardModel) apply(s timer.Snapshot) {
	if _, ok := m.snapshots[s.TimerID]; !ok && !m.known(s.TimerID) {
		return
	}
	m.snapshots[s.TimerID] = s
}

func (m *BoardModel) known(id string) bool {
	for _, o := range m.order {
		if o == id {
			return true
		}
	}
	return false
}

// handleKeyPress handles keyboard input.
func (m *BoardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "t":
		m.toggleTheme()
		return m, nil

	case "r":
		if r, ok := m.timers.(refresher); ok {
			if err := r.Refresh(); err != nil {
				m.err = err
				return m, nil
			}
		}
		m.reload()
		m.setMessage("Reloaded", time.Second)
		return m, nil
	}

	return m, nil
}

// toggleTheme flips and persists the theme.
func (m *BoardModel) toggleTheme() {
	next := m.styles.Theme.Toggle()
	if m.themes != nil {
		stored, err := m.themes.Toggle()
		if err != nil {
			m.err = err
			return
		}
		next = stored
	}
	m.styles = NewStyles(next)
	logging.LogOperation("toggle_theme", logging.KeyTheme, next)
}

// reload re-reads the store and resyncs drivers.
func (m *BoardModel) reload() {
	if m.timers == nil {
		return
	}
	list, err := m.timers.List()
	if err != nil {
		m.err = err
		return
	}

	m.order = m.order[:0]
	keep := make(map[string]bool, len(list))
	for _, t := range list {
		m.order = append(m.order, t.ID)
		keep[t.ID] = true
	}
	for id := range m.snapshots {
		if !keep[id] {
			delete(m.snapshots, id)
		}
	}

	if m.sync != nil {
		m.sync(list)
	}
	m.err = nil
}

// View renders the board.
func (m *BoardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	if m.message != "" {
		sections = append(sections, m.styles.Warning.Render(m.message))
	}

	if len(m.order) == 0 {
		sections = append(sections, m.styles.Subtitle.Render("No timers. Use 'countdown add' to create one."))
	}
	for _, id := range m.order {
		snap, ok := m.snapshots[id]
		if !ok {
			continue
		}
		card := &CardComponent{
			Snapshot:      snap,
			Width:         m.width,
			ProgressWidth: m.progressWidth,
			Styles:        m.styles,
		}
		sections = append(sections, card.View())
	}

	sections = append(sections, m.styles.HelpBar())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the board header.
func (m *BoardModel) renderHeader() string {
	title := m.styles.Title.Render("Countdown")
	now := m.styles.Subtitle.Render(m.clock.Now().Format("02.01.2006 15:04:05"))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", now)
}

// setMessage sets a temporary message.
func (m *BoardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.clock.Now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *BoardModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// reloadCmd returns a command that sends a reload message.
func (m *BoardModel) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		return reloadMsg{}
	}
}

// Run starts the board TUI. One driver per timer feeds the program until
// the user quits.
func Run(config BoardConfig) error {
	var p *tea.Program

	board := timer.NewBoard(timer.DriverOptions{
		Scheduler: config.Scheduler,
		Clock:     config.Clock,
		Interval:  config.Interval,
		OnUpdate: func(s timer.Snapshot) {
			p.Send(SnapshotMsg(s))
		},
		OnComplete: func(s timer.Snapshot) {
			p.Send(CompleteMsg(s))
		},
	})
	defer board.StopAll()

	// Drivers emit synchronously on start, and Send blocks until the
	// program loop is running, so syncing happens off the update loop.
	m := NewBoardModel(config, func(list []*model.Timer) {
		go board.Sync(list)
	})
	p = tea.NewProgram(m, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
