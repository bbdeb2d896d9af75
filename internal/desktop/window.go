package desktop

import (
	"context"
	"io/fs"

	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"
)

// Window is the fixed startup configuration of the osstat window.
// Sizes are logical units; the host applies display scaling.
type Window struct {
	Title       string
	Width       int
	Height      int
	X, Y        int
	Resizable   bool
	Decorations bool
	Transparent bool
	AlwaysOnTop bool
}

// DefaultWindow returns the window osstat opens: a 200x100 borderless,
// transparent, always-on-top widget in the top-left corner.
func DefaultWindow() Window {
	return Window{
		Title:       "OsStat",
		Width:       200,
		Height:      100,
		X:           0,
		Y:           0,
		Resizable:   true,
		Decorations: false,
		Transparent: true,
		AlwaysOnTop: true,
	}
}

// background returns the window clear color; alpha 0 when transparent.
func (w Window) background() *options.RGBA {
	if w.Transparent {
		return &options.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return &options.RGBA{R: 27, G: 27, B: 27, A: 255}
}

// appOptions maps a Window and the bound App onto wails options.
func appOptions(w Window, app *App, assets fs.FS, lg logger.Logger) *options.App {
	return &options.App{
		Title:            w.Title,
		Width:            w.Width,
		Height:           w.Height,
		DisableResize:    !w.Resizable,
		Frameless:        !w.Decorations,
		AlwaysOnTop:      w.AlwaysOnTop,
		BackgroundColour: w.background(),
		AssetServer:      &assetserver.Options{Assets: assets},
		Logger:           lg,
		LogLevel:         logger.WARNING,
		OnStartup:        app.startup,
		OnDomReady:       func(ctx context.Context) { app.place(ctx, w) },
		OnShutdown:       app.shutdown,
		Bind:             []interface{}{app},
		Windows: &windows.Options{
			WebviewIsTransparent: w.Transparent,
			WindowIsTranslucent:  w.Transparent,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: w.Transparent,
			WindowIsTranslucent:  w.Transparent,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: w.Transparent,
			ProgramName:         "osstat",
		},
	}
}
