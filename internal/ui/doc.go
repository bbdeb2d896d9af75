// Package ui provides theme and color support for osstat's hosts.
// It maps load levels onto ANSI codes for plain terminal output, lipgloss
// colors for the TUI, and CSS colors for the desktop window.
package ui
