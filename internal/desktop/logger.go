package desktop

import (
	"github.com/wailsapp/wails/v2/pkg/logger"

	"github.com/agbru/osstat/internal/logging"
)

// wailsLogger routes the wails runtime's own diagnostics into our logger.
type wailsLogger struct {
	l logging.Logger
}

var _ logger.Logger = wailsLogger{}

func newWailsLogger(l logging.Logger) wailsLogger {
	return wailsLogger{l: l}
}

func (w wailsLogger) Print(message string) { w.l.Info(message) }
func (w wailsLogger) Trace(message string) { w.l.Debug(message) }
func (w wailsLogger) Debug(message string) { w.l.Debug(message) }
func (w wailsLogger) Info(message string) { w.l.Info(message) }
func (w wailsLogger) Warning(message string) { w.l.Warn(message) }
func (w wailsLogger) Error(message string) { w.l.Error(message, nil) }
func (w wailsLogger) Fatal(message string) { w.l.Error(message, nil, logging.String("severity", "fatal")) }
