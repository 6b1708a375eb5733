package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-pet/internal/session"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(borderColor).
	Padding(1, 3)

// renderDeathNotice tells the player their pet is gone.
func renderDeathNotice(f session.Frame) string {
	var b strings.Builder
	b.WriteString(warningStyle.Render(fmt.Sprintf("%s has died", f.Name)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s the %s %s lived %d hours.\n", f.Name, f.Color, f.Species, f.AgeHours))
	b.WriteString(fmt.Sprintf("Cause of death: %s.\n\n", f.CauseOfDeath))
	b.WriteString(mutedStyle.Render("enter: adopt a new egg  q: quit"))
	return dialogStyle.Render(b.String())
}

// renderAdoption asks for the name of the next pet.
func renderAdoption(in textinput.Model) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("You found an egg!"))
	b.WriteString("\n\n")
	b.WriteString("What will you call it?\n\n")
	b.WriteString(in.View())
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("enter: adopt  esc: quit"))
	return dialogStyle.Render(b.String())
}
