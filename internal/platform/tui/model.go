package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/session"
)

// phase is the screen the model is showing.
type phase int

const (
	phasePlaying phase = iota
	phaseDeathNotice
	phaseAdopting
)

// Model is the Bubble Tea model wrapping a pet session.
type Model struct {
	sess    *session.Session
	config  core.RuntimeConfig
	now     func() time.Time
	logger  *log.Logger
	keys    KeyMap
	help    help.Model
	bar     progress.Model
	input   textinput.Model
	layout  Layout
	screen  *core.Screen
	frame   session.Frame
	phase   phase
	saveErr error

	quitting bool
}

// NewModel creates a model for sess. The session must already be loaded.
// A nil clock means time.Now; a zero tick interval takes the default.
func NewModel(sess *session.Session, cfg core.RuntimeConfig, clock func() time.Time, logger *log.Logger) Model {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if clock == nil {
		clock = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	in := textinput.New()
	in.Placeholder = session.DefaultName
	in.CharLimit = 24
	in.Width = 24
	in.Prompt = "name: "

	m := Model{
		sess:   sess,
		config: cfg,
		now:    clock,
		logger: logger,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		bar:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		input:  in,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	m.frame = sess.Tick(m.now())
	m.enterAdoption()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.config.TickInterval)}
	if m.phase == phaseAdopting {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseAdopting {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Ctrl+C always quits; q only when it is not being typed into a name.
	if msg.Type == tea.KeyCtrlC || (m.phase != phaseAdopting && key.Matches(msg, m.keys.Quit)) {
		return m.quit()
	}

	switch m.phase {
	case phaseDeathNotice:
		if msg.Type == tea.KeyEnter {
			m.phase = phaseAdopting
			return m, m.input.Focus()
		}
		return m, nil

	case phaseAdopting:
		switch msg.Type {
		case tea.KeyEnter:
			m.adopt()
			return m, nil
		case tea.KeyEsc:
			return m.quit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	now := m.now()
	if m.sess.Handle(m.keys.MapKey(msg), now) {
		m.logger.Debug("care action applied", "action", m.frame.Actions[m.frame.Selected])
	}
	m.frame = m.sess.Tick(now)
	return m, nil
}

// handleTick advances the session and switches to the adoption flow when the
// pet is gone.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.frame = m.sess.Tick(m.now())
	cmd := m.enterAdoption()
	return m, tea.Batch(cmd, tickCmd(m.config.TickInterval))
}

// enterAdoption moves from playing to the death notice or the name prompt
// once the session asks for a new pet.
func (m *Model) enterAdoption() tea.Cmd {
	if m.phase != phasePlaying || !m.frame.NeedsAdoption {
		return nil
	}
	if m.frame.Name != "" {
		m.phase = phaseDeathNotice
		return nil
	}
	m.phase = phaseAdopting
	return m.input.Focus()
}

func (m *Model) adopt() {
	now := m.now()
	p := m.sess.Adopt(m.input.Value(), now)
	if err := m.sess.Save(now); err != nil {
		m.logger.Error("cannot save new pet", "name", p.Name(), "error", err)
	}
	m.input.Reset()
	m.input.Blur()
	m.phase = phasePlaying
	m.frame = m.sess.Tick(now)
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if err := m.sess.Save(m.now()); err != nil {
		m.logger.Error("cannot save on quit", "error", err)
		m.saveErr = err
	}
	return m, tea.Quit
}

func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.layout = NewLayout(width, height)
	m.screen = core.NewScreen(m.layout.CellsW, m.layout.CellsH)
	m.help.Width = m.layout.Width
}

// SaveErr returns the error from the save on quit, if any.
func (m Model) SaveErr() error {
	return m.saveErr
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseDeathNotice:
		return m.place(renderDeathNotice(m.frame))
	case phaseAdopting:
		return m.place(renderAdoption(m.input))
	}

	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		renderStats(m.layout, m.bar, m.frame),
		renderPlayground(m.layout, m.screen, m.frame),
		renderActions(m.layout, m.frame),
	)
	return lipgloss.JoinVertical(lipgloss.Left, panels, mutedStyle.Render(m.help.View(m.keys)))
}

func (m Model) place(content string) string {
	return lipgloss.Place(m.layout.Width, m.layout.Height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for sess and saves the pet when the
// player quits.
func Run(sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(sess, cfg, nil, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok {
		return m.SaveErr()
	}
	return nil
}
