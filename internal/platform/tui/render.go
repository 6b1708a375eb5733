package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pet/internal/core"
	"github.com/vovakirdan/tui-pet/internal/pet"
	"github.com/vovakirdan/tui-pet/internal/session"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorLightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorBlack:        lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	borderColor  = lipgloss.Color("240")
	accentColor  = lipgloss.Color("229")
	mutedColor   = lipgloss.Color("241")
	nightColor   = lipgloss.Color("235")
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor)
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)
	selectStyle  = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// Layout constants
const (
	minSideWidth = 16
	maxSideWidth = 26
	helpHeight   = 1
	borderSize   = 2
	titleHeight  = 1
)

// Layout holds the terminal split into stats, playground and action panels.
type Layout struct {
	Width, Height int // Terminal size
	SideWidth     int // Outer width of each side panel
	MidWidth      int // Outer width of the playground panel
	PanelHeight   int // Outer height of all three panels
	CellsW        int // Braille cells across the playground
	CellsH        int // Braille cells down the playground
}

// NewLayout splits a terminal of the given size.
func NewLayout(width, height int) Layout {
	width = core.Max(width, 3*minSideWidth)
	height = core.Max(height, helpHeight+borderSize+titleHeight+1)

	side := core.Clamp(width/5, minSideWidth, maxSideWidth)
	l := Layout{
		Width:       width,
		Height:      height,
		SideWidth:   side,
		MidWidth:    width - 2*side,
		PanelHeight: height - helpHeight,
	}
	l.CellsW = core.Max(l.MidWidth-borderSize, 1)
	l.CellsH = core.Max(l.PanelHeight-borderSize-titleHeight, 1)
	return l
}

// Playground returns the motion bounds that exactly fill the playground
// panel, in braille pixels.
func (l Layout) Playground() core.Rect {
	return core.NewRect(0, 0, l.CellsW*core.BrailleCellW, l.CellsH*core.BrailleCellH)
}

// PlaygroundFor returns the playground that fits a terminal of the given size.
func PlaygroundFor(width, height int) core.Rect {
	return NewLayout(width, height).Playground()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return renderScreen(s, lipgloss.NewStyle())
}

// renderScreen renders s with every run inheriting base, so a background set
// on base survives the per-color styles.
func renderScreen(s *core.Screen, base lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Inherit(base).Render(run.String()))
		}
	}
	return sb.String()
}

// drawPet plots the frame's sprite on s. The playground is scaled onto the
// screen's pixel grid and flipped, since canvas y grows upward while screen
// rows grow downward.
func drawPet(s *core.Screen, f session.Frame) {
	s.Clear()
	pg := f.Playground
	if pg.W <= 0 || pg.H <= 0 {
		return
	}
	pixW, pixH := s.PixelSize()
	scaleX := func(x int) int { return (x - pg.X) * pixW / pg.W }
	scaleY := func(y int) int { return (y - pg.Y) * pixH / pg.H }

	color := f.Color
	if !f.Alive {
		color = core.ColorGray
	}

	for _, p := range f.Sprite.Pixels() {
		cx, cy := f.Location.X+p.X, f.Location.Y+p.Y
		if !pg.Contains(cx, cy) {
			continue
		}
		x0, x1 := scaleX(cx), scaleX(cx+1)
		y0, y1 := pixH-scaleY(cy+1), pixH-scaleY(cy)
		for py := y0; py < core.Max(y1, y0+1); py++ {
			for px := x0; px < core.Max(x1, x0+1); px++ {
				s.SetPixel(px, py, color)
			}
		}
	}

	if f.Asleep && f.Alive {
		drawSnore(s, f)
	}
	if text := popupText(f.Popup); text != "" {
		s.DrawTextCentered(0, text)
	}
}

// drawSnore writes a "z Z" just above the right edge of a sleeping sprite,
// leaving cells the sprite already covers alone.
func drawSnore(s *core.Screen, f session.Frame) {
	pixW, pixH := s.PixelSize()
	pg := f.Playground
	top := f.Location.Y + f.Sprite.Height()
	right := f.Location.X + f.Sprite.Width()
	col := (right - pg.X) * pixW / pg.W / core.BrailleCellW
	row := (pixH - (top-pg.Y)*pixH/pg.H) / core.BrailleCellH
	row = core.Max(row-1, 0)
	for i, r := range "z Z" {
		x := core.Min(col+i, s.Width()-1)
		if s.Get(x, row) == ' ' {
			s.SetCell(x, row, r, core.ColorGray)
		}
	}
}

// renderTitle formats the playground header.
func renderTitle(f session.Frame) string {
	if f.Name == "" {
		return mutedStyle.Render("no pet")
	}
	if !f.Alive {
		return warningStyle.Render(fmt.Sprintf("%s - died of %s", f.Name, f.CauseOfDeath))
	}
	return titleStyle.Render(fmt.Sprintf("%s - age: %d hours", f.Name, f.AgeHours))
}

// popupText is what a popup says across the top of the playground.
func popupText(p session.Popup) string {
	switch p {
	case session.PopupFood:
		return "nom nom!"
	case session.PopupJoy:
		return "wheee!"
	case session.PopupHealth:
		return "feeling better"
	}
	return ""
}

// renderPlayground draws the middle panel.
func renderPlayground(l Layout, s *core.Screen, f session.Frame) string {
	drawPet(s, f)

	base := lipgloss.NewStyle()
	if f.Asleep {
		base = base.Background(nightColor)
	}

	header := lipgloss.PlaceHorizontal(l.CellsW, lipgloss.Center, renderTitle(f))

	body := lipgloss.JoinVertical(lipgloss.Left, header, renderScreen(s, base))
	return panelStyle.Width(l.CellsW).Render(body)
}

type gauge struct {
	label string
	value int
}

func gauges(st pet.Stats) []gauge {
	return []gauge{
		{"Food", st.Food},
		{"Joy", st.Joy},
		{"Energy", st.Energy},
		{"Health", st.Health},
	}
}

// renderStats draws the left panel: one bar per stat.
func renderStats(l Layout, bar progress.Model, f session.Frame) string {
	inner := l.SideWidth - borderSize - 2
	bar.Width = core.Max(inner, 4)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Stats"))
	b.WriteString("\n")
	if f.Name != "" {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s", f.Stage, f.Species)))
	}
	b.WriteString("\n")
	for _, g := range gauges(f.Stats) {
		b.WriteString(fmt.Sprintf("\n%-7s%3d\n", g.label, g.value))
		b.WriteString(bar.ViewAs(float64(g.value) / float64(pet.StatMax)))
		b.WriteString("\n")
	}
	if f.Asleep {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("sleeping..."))
	}

	return panelStyle.
		Width(l.SideWidth-borderSize).
		Height(l.PanelHeight-borderSize).
		Padding(0, 1).
		Render(b.String())
}

// actionEnabled reports whether the session would accept the action right
// now, for greying out the list.
func actionEnabled(f session.Frame, a core.CareAction) bool {
	switch {
	case f.Name == "", !f.Alive, f.Stage == pet.StageEgg:
		return false
	case f.Popup != session.PopupNone:
		return false
	case f.Asleep:
		return a == core.CareSleep
	case a == core.CareEat:
		return f.Stats.Food < pet.StatMax
	}
	return true
}

// renderActions draws the right panel.
func renderActions(l Layout, f session.Frame) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Actions"))
	b.WriteString("\n\n")

	for i, a := range f.Actions {
		label := a.String()
		if a == core.CareSleep && f.Asleep {
			label = "Wake up"
		}

		cursor := "  "
		style := lipgloss.NewStyle()
		if i == f.Selected {
			cursor = "> "
			style = selectStyle
		}
		if !actionEnabled(f, a) {
			style = style.Foreground(mutedColor)
		}
		b.WriteString(style.Render(cursor + label))
		b.WriteString("\n")
	}

	if f.Stage == pet.StageEgg && f.Alive {
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("the egg is hatching..."))
	}

	return panelStyle.
		Width(l.SideWidth-borderSize).
		Height(l.PanelHeight-borderSize).
		Padding(0, 1).
		Render(b.String())
}

// centerText pads text so it sits in the middle of width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
