package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestLogger(level zerolog.Level) (*ZerologAdapter, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewConsoleLogger(&buf, "osstat", level, true), &buf
}

func TestFieldHelpers(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	tests := []struct {
		name      string
		field     Field
		wantKey   string
		wantValue any
	}{
		{"String", String("host", "tui"), "host", "tui"},
		{"Int", Int("x", 7), "x", 7},
		{"Float64", Float64("cpu_percent", 95.2), "cpu_percent", 95.2},
		{"Err", Err(boom), "error", boom},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.field.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", tt.field.Key, tt.wantKey)
			}
			if tt.field.Value != tt.wantValue {
				t.Errorf("Value = %v, want %v", tt.field.Value, tt.wantValue)
			}
		})
	}
}

func TestConsoleLogger_Levels(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		log   func(l Logger)
		level string
		msg   string
	}{
		{"Debug", func(l Logger) { l.Debug("window placed") }, "DBG", "window placed"},
		{"Info", func(l Logger) { l.Info("shutdown requested") }, "INF", "shutdown requested"},
		{"Warn", func(l Logger) { l.Warn("sample failed") }, "WRN", "sample failed"},
		{"Error", func(l Logger) { l.Error("display host failed", errors.New("no display")) }, "ERR", "display host failed"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			l, buf := newTestLogger(zerolog.DebugLevel)
			tt.log(l)

			out := buf.String()
			for _, want := range []string{tt.level, tt.msg, "component=osstat"} {
				if !strings.Contains(out, want) {
					t.Errorf("output should contain %q, got: %s", want, out)
				}
			}
		})
	}
}

func TestConsoleLogger_Fields(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(zerolog.DebugLevel)

	l.Error("display host failed", errors.New("no display"),
		String("host", "desktop"),
		Int("x", 0),
		Float64("cpu_percent", 12.5),
	)

	out := buf.String()
	for _, want := range []string{"error=\"no display\"", "host=desktop", "x=0", "cpu_percent=12.5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got: %s", want, out)
		}
	}
}

func TestConsoleLogger_ErrorWithNilErr(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(zerolog.DebugLevel)

	l.Error("asset missing", nil)

	out := buf.String()
	if !strings.Contains(out, "asset missing") {
		t.Errorf("message missing, got: %s", out)
	}
	if strings.Contains(out, "error=") {
		t.Errorf("nil error should not add an error field, got: %s", out)
	}
}

func TestConsoleLogger_FiltersBelowLevel(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(zerolog.WarnLevel)

	l.Debug("sampled", Float64("ram_percent", 40))
	l.Info("starting host")
	if buf.Len() != 0 {
		t.Errorf("debug and info should be dropped at warn level, got: %s", buf.String())
	}

	l.Warn("sample failed, keeping previous readings")
	if !strings.Contains(buf.String(), "keeping previous readings") {
		t.Errorf("warn should pass at warn level, got: %s", buf.String())
	}
}

func TestConsoleLogger_NoColor(t *testing.T) {
	t.Parallel()
	l, buf := newTestLogger(zerolog.InfoLevel)
	l.Info("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("noColor logger emitted ANSI escapes: %q", buf.String())
	}
}

func TestNewNopLogger(t *testing.T) {
	t.Parallel()
	var l Logger = NewNopLogger()
	l.Debug("dropped")
	l.Warn("dropped")
	l.Error("dropped", errors.New("boom"))
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{"debug", zerolog.DebugLevel, false},
		{"INFO", zerolog.InfoLevel, false},
		{" warn ", zerolog.WarnLevel, false},
		{"error", zerolog.ErrorLevel, false},
		{"loud", zerolog.NoLevel, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
