// Package desktop hosts the display surface in a native webview window.
package desktop

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"sync"
	"time"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	apperrors "github.com/agbru/osstat/internal/errors"
	"github.com/agbru/osstat/internal/logging"
	"github.com/agbru/osstat/internal/surface"
	"github.com/agbru/osstat/internal/ui"
)

//go:embed frontend
var frontend embed.FS

// BuildTags are the tags a windowed osstat binary must be built with.
const BuildTags = "desktop,production"

// ErrUntaggedBuild is returned by Run in a binary built without BuildTags.
var ErrUntaggedBuild = errors.New("binary built without wails support, rebuild with -tags " + BuildTags + " (make build) or use --tui")

// PaintLine is one row as the frontend draws it. An empty Color means the
// default text color.
type PaintLine struct {
	Text  string `json:"text"`
	Color string `json:"color"`
}

// PaintFrame is the JSON payload returned to the frontend on every paint.
type PaintFrame struct {
	Heading string      `json:"heading"`
	Lines   []PaintLine `json:"lines"`

	// NextMs is the advisory minimum delay before the next Paint call.
	NextMs int64 `json:"nextMs"`
}

// App is the struct bound into the webview. Its exported methods are
// callable from JavaScript as window.go.desktop.App.<Method>.
type App struct {
	mu     sync.Mutex
	state  *surface.State
	logger logging.Logger
	now    func() time.Time

	parent   context.Context
	done     chan struct{}
	stopOnce sync.Once
}

// NewApp binds state to a new desktop App.
func NewApp(parent context.Context, state *surface.State, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &App{
		state:  state,
		logger: logger,
		now:    time.Now,
		parent: parent,
		done:   make(chan struct{}),
	}
}

// Paint runs one paint step and returns the frame to draw.
// Wails dispatches bound calls on its own goroutines, so calls are serialized.
func (a *App) Paint() PaintFrame {
	a.mu.Lock()
	f := a.state.Tick(a.now())
	a.mu.Unlock()
	return toPaintFrame(f)
}

func toPaintFrame(f surface.Frame) PaintFrame {
	lines := make([]PaintLine, len(f.Lines))
	for i, l := range f.Lines {
		lines[i] = PaintLine{Text: l.Text}
		if l.Tinted {
			lines[i].Color = ui.LevelCSS(l.Level)
		}
	}
	return PaintFrame{
		Heading: f.Heading,
		Lines:   lines,
		NextMs:  surface.RepaintInterval.Milliseconds(),
	}
}

// startup closes the window when the parent context is cancelled
// (SIGINT, SIGTERM).
func (a *App) startup(ctx context.Context) {
	if a.parent == nil {
		return
	}
	go func() {
		select {
		case <-a.parent.Done():
			a.logger.Info("shutdown requested", logging.Err(a.parent.Err()))
			runtime.Quit(ctx)
		case <-a.done:
		}
	}()
}

// place moves the window to its configured origin once the page is loaded.
func (a *App) place(ctx context.Context, w Window) {
	runtime.WindowSetPosition(ctx, w.X, w.Y)
	a.logger.Debug("window placed", logging.Int("x", w.X), logging.Int("y", w.Y))
}

func (a *App) shutdown(context.Context) {
	a.stop()
}

// stop releases the startup watcher. Safe to call more than once.
func (a *App) stop() {
	a.stopOnce.Do(func() { close(a.done) })
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, state *surface.State, logger logging.Logger) error {
	if !wailsTagged {
		return apperrors.WindowError{Host: "desktop", Cause: ErrUntaggedBuild}
	}

	assets, err := fs.Sub(frontend, "frontend")
	if err != nil {
		return apperrors.WindowError{Host: "desktop", Cause: err}
	}

	app := NewApp(ctx, state, logger)
	defer app.stop()

	w := DefaultWindow()
	if err := wails.Run(appOptions(w, app, assets, newWailsLogger(app.logger))); err != nil {
		return apperrors.WindowError{Host: "desktop", Cause: apperrors.WrapError(err, "opening %q window", w.Title)}
	}
	return ctx.Err()
}
