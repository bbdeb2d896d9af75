package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/osstat/internal/surface"
	"github.com/agbru/osstat/internal/ui"
)

// Style variables for the TUI host.
// Initialized from the ui theme system via initTUIStyles().
var (
	headingStyle lipgloss.Style
	textStyle    lipgloss.Style
	lowStyle     lipgloss.Style
	mediumStyle  lipgloss.Style
	highStyle    lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all TUI styles from the current ui theme.
// Called at package init and again from Run() after InitTheme has been invoked.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	headingStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent)

	textStyle = lipgloss.NewStyle().
		Foreground(t.Text)

	lowStyle = lipgloss.NewStyle().Foreground(t.Level(surface.Low))
	mediumStyle = lipgloss.NewStyle().Foreground(t.Level(surface.Medium))
	highStyle = lipgloss.NewStyle().Foreground(t.Level(surface.High))
}

// lineStyle picks the style for one frame line.
func lineStyle(l surface.Line) lipgloss.Style {
	if !l.Tinted {
		return textStyle
	}
	switch l.Level {
	case surface.Low:
		return lowStyle
	case surface.High:
		return highStyle
	default:
		return mediumStyle
	}
}
