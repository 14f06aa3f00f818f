package main

import (
	"errors"
	"os"

	wix2site "github.com/yu-lab/go-wix2site"
	"github.com/yu-lab/go-wix2site/internal/config"
)

// Exit codes for the wix2site CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess  = 0 // Command completed without failures
	ExitGeneral  = 1 // General/unexpected error, or failed pages in a run
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied
	ExitFindings = 4 // check reported findings
)

// Sentinel errors for CLI operations.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFlags   = errors.New("invalid flags")
	ErrInvalidWorkers = errors.New("invalid worker count")
	ErrPagesFailed    = errors.New("pages failed")
	ErrCheckFindings  = errors.New("check reported findings")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrCheckFindings) {
		return ExitFindings
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, wix2site.ErrSourceNotFound) ||
		errors.Is(err, wix2site.ErrTemplateNotFound) ||
		errors.Is(err, wix2site.ErrAssetsDirUnreadable) ||
		errors.Is(err, wix2site.ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrInvalidWorkers) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrNoPages) {
		return ExitUsage
	}

	return ExitGeneral
}
