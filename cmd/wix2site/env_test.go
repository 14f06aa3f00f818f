package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name       string
		verbose    bool
		quiet      bool
		debugShown bool
		infoShown  bool
	}{
		{"default level", false, false, false, true},
		{"verbose", true, false, true, true},
		{"quiet", false, true, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			env := &Environment{Stdout: &buf, Stderr: &buf}
			env.SetupLogger(tt.verbose, tt.quiet)

			env.Logger.Debug("debug line")
			env.Logger.Info("info line")
			env.Logger.Error("error line")

			out := buf.String()
			if got := strings.Contains(out, "debug line"); got != tt.debugShown {
				t.Errorf("debug shown = %v, want %v", got, tt.debugShown)
			}
			if got := strings.Contains(out, "info line"); got != tt.infoShown {
				t.Errorf("info shown = %v, want %v", got, tt.infoShown)
			}
			if !strings.Contains(out, "error line") {
				t.Error("error level should always be shown")
			}
		})
	}
}

func TestLoadEnvConfig(t *testing.T) {
	t.Setenv("WIX2SITE_CONFIG", "wix2site.yaml")
	t.Setenv("WIX2SITE_EXPORT_DIR", "raw")
	t.Setenv("WIX2SITE_SITE_DIR", "public")
	t.Setenv("WIX2SITE_WORKERS", "4")

	cfg := loadEnvConfig()
	if cfg.ConfigPath != "wix2site.yaml" || cfg.ExportDir != "raw" || cfg.SiteDir != "public" {
		t.Errorf("unexpected env config: %+v", cfg)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
}

func TestLoadEnvConfigIgnoresBadWorkers(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "many"},
		{"zero", "0"},
		{"negative", "-2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("WIX2SITE_WORKERS", tt.value)
			if cfg := loadEnvConfig(); cfg.Workers != 0 {
				t.Errorf("Workers = %d, want 0", cfg.Workers)
			}
		})
	}
}

func TestWarnUnknownEnvVars(t *testing.T) {
	t.Setenv("WIX2SITE_EXPORT_DIR", "raw")
	t.Setenv("WIX2SITE_TEMPLATES", "typo")

	var buf bytes.Buffer
	warnUnknownEnvVars(&buf)

	out := buf.String()
	if !strings.Contains(out, "WIX2SITE_TEMPLATES") {
		t.Errorf("typo not reported: %q", out)
	}
	if strings.Contains(out, "WIX2SITE_EXPORT_DIR") {
		t.Errorf("known variable reported: %q", out)
	}
}

func TestDefaultEnv(t *testing.T) {
	t.Parallel()

	env := DefaultEnv()
	if env.Stdout == nil || env.Stderr == nil || env.Logger == nil {
		t.Error("DefaultEnv returned nil fields")
	}
	if !env.Logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("default logger should log at info level")
	}
}
