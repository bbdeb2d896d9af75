package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/osstat/internal/errors"
	"github.com/agbru/osstat/internal/surface"
)

// TickMsg asks the model to run one paint step.
type TickMsg time.Time

// Model is the bubbletea model for the terminal host.
// The surface.State pointer survives bubbletea's model copies, so every
// Update mutates the one snapshot.
type Model struct {
	state  *surface.State
	frame  surface.Frame
	keymap KeyMap
}

// NewModel creates a TUI model driving state.
func NewModel(state *surface.State) Model {
	return Model{
		state:  state,
		keymap: DefaultKeyMap(),
	}
}

// Init paints immediately; later paints are scheduled by Update.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return TickMsg(time.Now()) }
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.Quit) {
			return m, tea.Quit
		}
		return m, nil

	case TickMsg:
		m.frame = m.state.Tick(time.Time(msg))
		return m, tickCmd()
	}

	return m, nil
}

// View renders the current frame: heading, then one styled row per line.
func (m Model) View() string {
	if m.frame.Heading == "" {
		return "Initializing..."
	}

	rows := make([]string, 0, len(m.frame.Lines)+1)
	rows = append(rows, headingStyle.Render(m.frame.Heading))
	for _, l := range m.frame.Lines {
		rows = append(rows, lineStyle(l).Render(l.Text))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

// Frame returns the last painted frame.
func (m Model) Frame() surface.Frame {
	return m.frame
}

// tickCmd returns a command that sends a TickMsg after the repaint interval.
func tickCmd() tea.Cmd {
	return tea.Tick(surface.RepaintInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Run is the public entry point for the TUI host. It blocks until the user
// quits or ctx is cancelled.
func Run(ctx context.Context, state *surface.State, opts ...tea.ProgramOption) error {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(NewModel(state), opts...)

	_, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return apperrors.WindowError{Host: "tui", Cause: apperrors.WrapError(err, "running terminal program")}
	}
	return nil
}
