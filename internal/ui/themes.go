package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/osstat/internal/surface"
)

// Theme defines a color scheme for plain terminal output.
// Each field contains an ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the accent color used for the heading.
	Primary string
	// Success marks Low load.
	Success string
	// Warning marks Medium load.
	Warning string
	// Error marks High load.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:    "dark",
		Primary: "\033[38;5;39m",  // Bright blue
		Success: "\033[38;5;46m",  // Green
		Warning: "\033[38;5;214m", // Orange
		Error:   "\033[38;5;196m", // Red
		Bold:    "\033[1m",
		Reset:   "\033[0m",
	}

	// NoColorTheme disables all color output.
	// Used when NO_COLOR is set or --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme used throughout the application.
	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// Level returns the escape code for a load level.
func (t Theme) Level(l surface.Level) string {
	switch l {
	case surface.Low:
		return t.Success
	case surface.High:
		return t.Error
	default:
		return t.Warning
	}
}

// TUITheme defines lipgloss-compatible colors for the TUI host.
type TUITheme struct {
	Text   lipgloss.TerminalColor
	Accent lipgloss.TerminalColor
	Low    lipgloss.TerminalColor
	Medium lipgloss.TerminalColor
	High   lipgloss.TerminalColor
}

var (
	// DarkTUITheme uses the same green/orange/red as the desktop window.
	DarkTUITheme = TUITheme{
		Text:   lipgloss.Color("#E0E0E0"),
		Accent: lipgloss.Color("#FFFFFF"),
		Low:    lipgloss.Color(LowCSS),
		Medium: lipgloss.Color(MediumCSS),
		High:   lipgloss.Color(HighCSS),
	}

	// NoColorTUITheme disables all TUI colors.
	// lipgloss.NoColor{} renders text with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Text:   lipgloss.NoColor{},
		Accent: lipgloss.NoColor{},
		Low:    lipgloss.NoColor{},
		Medium: lipgloss.NoColor{},
		High:   lipgloss.NoColor{},
	}
)

// Level returns the lipgloss color for a load level.
func (t TUITheme) Level(l surface.Level) lipgloss.TerminalColor {
	switch l {
	case surface.Low:
		return t.Low
	case surface.High:
		return t.High
	default:
		return t.Medium
	}
}

// CSS colors for the desktop window.
const (
	LowCSS    = "#00FF00"
	MediumCSS = "#FFA500"
	HighCSS   = "#FF0000"
	TextCSS   = "#8C8C8C"
)

// LevelCSS returns the CSS color for a load level.
func LevelCSS(l surface.Level) string {
	switch l {
	case surface.Low:
		return LowCSS
	case surface.High:
		return HighCSS
	default:
		return MediumCSS
	}
}

// GetCurrentTUITheme returns the TUI theme matching the currently active theme.
// When NoColorTheme is active, returns NoColorTUITheme; otherwise DarkTUITheme.
func GetCurrentTUITheme() TUITheme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()

	if currentTheme.Name == NoColorTheme.Name {
		return NoColorTUITheme
	}
	return DarkTUITheme
}

// GetCurrentTheme returns the currently active theme in a thread-safe manner.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme sets the currently active theme in a thread-safe manner.
// This is primarily used for testing purposes to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme initializes the theme based on the noColor flag and environment.
// It respects the NO_COLOR environment variable (https://no-color.org/) for
// accessibility. If noColor is true or NO_COLOR is set, colors are disabled.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}

	// Any value, even empty, disables colors (per no-color.org).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}

	currentTheme = DarkTheme
}
