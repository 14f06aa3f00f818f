package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: slog.New(slog.NewTextHandler(os.Stderr, nil)),
	}
}

// SetupLogger configures the log level: --verbose lowers it to debug,
// --quiet raises it to error.
func (e *Environment) SetupLogger(verbose, quiet bool) {
	level := slog.LevelInfo
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	e.Logger = slog.New(slog.NewTextHandler(e.Stderr, &slog.HandlerOptions{Level: level}))
}

// envConfig holds WIX2SITE_* environment overrides.
type envConfig struct {
	ConfigPath  string // WIX2SITE_CONFIG: config file path
	ExportDir   string // WIX2SITE_EXPORT_DIR: exported pages directory
	TemplateDir string // WIX2SITE_TEMPLATE_DIR: template directory
	SiteDir     string // WIX2SITE_SITE_DIR: output root
	AssetsDir   string // WIX2SITE_ASSETS_DIR: assets directory
	Workers     int    // WIX2SITE_WORKERS: parallel page builds
}

// knownEnvVars lists valid WIX2SITE_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"WIX2SITE_CONFIG":       true,
	"WIX2SITE_EXPORT_DIR":   true,
	"WIX2SITE_TEMPLATE_DIR": true,
	"WIX2SITE_SITE_DIR":     true,
	"WIX2SITE_ASSETS_DIR":   true,
	"WIX2SITE_WORKERS":      true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:  os.Getenv("WIX2SITE_CONFIG"),
		ExportDir:   os.Getenv("WIX2SITE_EXPORT_DIR"),
		TemplateDir: os.Getenv("WIX2SITE_TEMPLATE_DIR"),
		SiteDir:     os.Getenv("WIX2SITE_SITE_DIR"),
		AssetsDir:   os.Getenv("WIX2SITE_ASSETS_DIR"),
	}

	if workers := os.Getenv("WIX2SITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized WIX2SITE_* variables.
// Helps catch typos like WIX2SITE_TEMPLATES instead of WIX2SITE_TEMPLATE_DIR.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "WIX2SITE_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}
