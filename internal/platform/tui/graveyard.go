package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/registry"
	"github.com/vovakirdan/tui-pet/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show the species sidebar
	sidebarWidth       = 22  // Width of the species sidebar
	maxEntries         = 200 // Max pets to load
)

// allSpecies is the sidebar entry that shows every pet.
const allSpecies = "all"

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextSpecies key.Binding
	PrevSpecies key.Binding
	Quit        key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextSpecies, k.PrevSpecies, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextSpecies, k.PrevSpecies},
		{k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextSpecies: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next species"),
		),
		PrevSpecies: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev species"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for browsing every pet ever adopted.
type HistoryModel struct {
	species     []string // Sidebar entries, allSpecies first
	cursor      int
	entries     []storage.PetEntry // Everything loaded from the store
	shown       []storage.PetEntry // Entries for the selected species
	stats       map[string]*storage.SpeciesStats
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	now         time.Time
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewHistoryModel builds the history screen from already loaded entries.
func NewHistoryModel(entries []storage.PetEntry, stats map[string]*storage.SpeciesStats, now time.Time, width, height int) HistoryModel {
	species := []string{allSpecies}
	for _, s := range registry.List() {
		species = append(species, s.ID)
	}

	m := HistoryModel{
		species:     species,
		entries:     entries,
		stats:       stats,
		keys:        DefaultHistoryKeyMap(),
		help:        help.New(),
		now:         now,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.filter()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Name", Width: 12},
		{Title: "Species", Width: 8},
		{Title: "Born", Width: 13},
		{Title: "Lived", Width: 8},
		{Title: "Fate", Width: 10},
	}

	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	if extra := tableWidth - 61; extra > 0 {
		columns[0].Width += core.Min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(core.Max(m.height-8, 3)), // Room for header, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(accentColor).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// filter narrows the entries to the selected species and refreshes the table.
func (m *HistoryModel) filter() {
	selected := m.species[m.cursor]
	m.shown = m.shown[:0]
	for _, e := range m.entries {
		if selected == allSpecies || e.Species == selected {
			m.shown = append(m.shown, e)
		}
	}

	rows := make([]table.Row, len(m.shown))
	for i, e := range m.shown {
		rows[i] = table.Row{
			e.Name,
			e.Species,
			e.BornAt.Format("Jan 02 15:04"),
			formatLifespan(e.Lifespan(m.now)),
			fate(e),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func fate(e storage.PetEntry) string {
	if e.Alive() {
		return "alive"
	}
	if e.Cause == "" {
		return "died"
	}
	return e.Cause
}

// formatLifespan prints a duration as days and hours.
func formatLifespan(d time.Duration) string {
	h := int(d.Hours())
	if h < 24 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dd %dh", h/24, h%24)
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextSpecies):
			m.cursor = (m.cursor + 1) % len(m.species)
			m.filter()
			return m, nil

		case key.Matches(msg, m.keys.PrevSpecies):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.species) - 1
			}
			m.filter()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.filter()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := fmt.Sprintf("PET HISTORY - %s", m.species[m.cursor])
	b.WriteString(titleStyle.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableRendered := panelStyle.Padding(0, 1).Render(m.renderTableContent())
	if m.showSidebar {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", tableRendered))
	} else {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.species[m.cursor]), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderSidebar lists the species with their adoption and death counts.
func (m HistoryModel) renderSidebar() string {
	var sidebar strings.Builder
	sidebar.WriteString("Species\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, id := range m.species {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = selectStyle
		}

		line := id
		if st, ok := m.stats[id]; ok {
			line = fmt.Sprintf("%-6s %d/%d", id, st.Died, st.Adopted)
		}
		sidebar.WriteString(style.Render(cursor + line))
		sidebar.WriteString("\n")
	}

	return panelStyle.
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sidebar.String())
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	if len(m.shown) == 0 {
		return mutedStyle.
			Italic(true).
			Padding(2, 4).
			Render("No pets recorded yet.\nAdopt an egg to start a family tree!")
	}
	return m.table.View()
}

// RunHistory loads the history from store and shows it until the player quits.
func RunHistory(store *storage.Store, width, height int) error {
	entries, err := store.History(maxEntries)
	if err != nil {
		return err
	}
	stats, err := store.GetAllSpeciesStats()
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewHistoryModel(entries, stats, time.Now(), width, height),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
