package ui

import (
	"os"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/osstat/internal/surface"
)

func TestInitTheme(t *testing.T) {
	prev := GetCurrentTheme()
	t.Cleanup(func() { SetCurrentTheme(prev) })

	t.Run("flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("expected none theme, got %q", got)
		}
		if _, ok := GetCurrentTUITheme().Low.(lipgloss.NoColor); !ok {
			t.Error("expected NoColor TUI palette")
		}
	})

	t.Run("NO_COLOR disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "none" {
			t.Errorf("expected none theme, got %q", got)
		}
	})

	t.Run("default is dark", func(t *testing.T) {
		// t.Setenv registers restoration; unset for this subtest only.
		t.Setenv("NO_COLOR", "x")
		os.Unsetenv("NO_COLOR")
		InitTheme(false)
		if got := GetCurrentTheme().Name; got != "dark" {
			t.Errorf("expected dark theme, got %q", got)
		}
		if got := GetCurrentTUITheme(); got != DarkTUITheme {
			t.Error("expected dark TUI palette")
		}
	})
}

func TestLevelColors(t *testing.T) {
	tests := []struct {
		level surface.Level
		css   string
		ansi  string
		tui   lipgloss.TerminalColor
	}{
		{surface.Low, LowCSS, DarkTheme.Success, DarkTUITheme.Low},
		{surface.Medium, MediumCSS, DarkTheme.Warning, DarkTUITheme.Medium},
		{surface.High, HighCSS, DarkTheme.Error, DarkTUITheme.High},
	}
	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			if got := LevelCSS(tt.level); got != tt.css {
				t.Errorf("LevelCSS = %q, want %q", got, tt.css)
			}
			if got := DarkTheme.Level(tt.level); got != tt.ansi {
				t.Errorf("Theme.Level = %q, want %q", got, tt.ansi)
			}
			if got := DarkTUITheme.Level(tt.level); got != tt.tui {
				t.Errorf("TUITheme.Level = %v, want %v", got, tt.tui)
			}
			if got := NoColorTheme.Level(tt.level); got != "" {
				t.Errorf("NoColorTheme.Level = %q, want empty", got)
			}
		})
	}
}
