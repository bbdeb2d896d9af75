package config

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	apperrors "github.com/agbru/osstat/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	var errBuf bytes.Buffer
	cfg, err := ParseConfig("osstat", nil, &errBuf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TUI || cfg.Once || cfg.NoColor {
		t.Errorf("expected all modes off by default, got %+v", cfg)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg AppConfig)
	}{
		{"tui", []string{"--tui"}, func(t *testing.T, cfg AppConfig) {
			if !cfg.TUI {
				t.Error("expected TUI to be set")
			}
		}},
		{"once", []string{"-once"}, func(t *testing.T, cfg AppConfig) {
			if !cfg.Once {
				t.Error("expected Once to be set")
			}
		}},
		{"no-color", []string{"--no-color"}, func(t *testing.T, cfg AppConfig) {
			if !cfg.NoColor {
				t.Error("expected NoColor to be set")
			}
		}},
		{"log-level", []string{"--log-level", "debug"}, func(t *testing.T, cfg AppConfig) {
			if cfg.LogLevel != "debug" {
				t.Errorf("expected debug, got %q", cfg.LogLevel)
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			cfg, err := ParseConfig("osstat", tt.args, &errBuf)
			if err != nil {
				t.Fatalf("unexpected error: %v (stderr: %s)", err, errBuf.String())
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantConfig bool
	}{
		{"unknown flag", []string{"--interval", "5s"}, false},
		{"bad log level", []string{"--log-level", "loud"}, true},
		{"tui and once", []string{"--tui", "--once"}, true},
		{"positional argument", []string{"extra"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			_, err := ParseConfig("osstat", tt.args, &errBuf)
			if err == nil {
				t.Fatal("expected an error")
			}
			var cfgErr apperrors.ConfigError
			if got := errors.As(err, &cfgErr); got != tt.wantConfig {
				t.Errorf("errors.As(ConfigError) = %v, want %v (err: %v)", got, tt.wantConfig, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	var errBuf bytes.Buffer
	_, err := ParseConfig("osstat", []string{"--help"}, &errBuf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
	if !strings.Contains(errBuf.String(), "Usage: osstat") {
		t.Errorf("expected usage text, got: %s", errBuf.String())
	}
}

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvPrefix+"TUI", "yes")
	t.Setenv(EnvPrefix+"LOG_LEVEL", "INFO")
	t.Setenv(EnvPrefix+"NO_COLOR", "1")

	var errBuf bytes.Buffer
	cfg, err := ParseConfig("osstat", nil, &errBuf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.TUI {
		t.Error("expected OSSTAT_TUI to enable the terminal host")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("expected OSSTAT_NO_COLOR to disable colors")
	}
}

func TestParseConfig_FlagBeatsEnv(t *testing.T) {
	t.Setenv(EnvPrefix+"LOG_LEVEL", "debug")

	var errBuf bytes.Buffer
	cfg, err := ParseConfig("osstat", []string{"--log-level", "error"}, &errBuf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected flag value to win, got %q", cfg.LogLevel)
	}
}

func TestParseBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"0", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.val, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.val, tt.def, got, tt.want)
		}
	}
}
