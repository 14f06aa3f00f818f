package main

import (
	"errors"
	"fmt"
	"os"
	"testing"

	wix2site "github.com/yu-lab/go-wix2site"
	"github.com/yu-lab/go-wix2site/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, ExitSuccess},
		{"check findings", fmt.Errorf("%w: 3", ErrCheckFindings), ExitFindings},
		{"missing source", fmt.Errorf("x: %w", wix2site.ErrSourceNotFound), ExitIO},
		{"missing template", wix2site.ErrTemplateNotFound, ExitIO},
		{"unreadable assets dir", wix2site.ErrAssetsDirUnreadable, ExitIO},
		{"write failure", wix2site.ErrWriteOutput, ExitIO},
		{"os not exist", os.ErrNotExist, ExitIO},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"invalid flags", ErrInvalidFlags, ExitUsage},
		{"invalid workers", ErrInvalidWorkers, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},
		{"no pages", config.ErrNoPages, ExitUsage},
		{"failed pages", fmt.Errorf("%w: 1 of 7", ErrPagesFailed), ExitGeneral},
		{"unclassified", errors.New("boom"), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCodeFor(tt.err); got != tt.expected {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}
