// Package config holds the site build configuration: directory layout,
// layout template settings, and the page list.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/yu-lab/go-wix2site/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrNoPages        = errors.New("config contains no pages")
)

// Config holds all configuration for the site build.
type Config struct {
	ExportDir    string `yaml:"export_dir"`     // exported Wix pages
	TemplateDir  string `yaml:"template_dir"`   // layout + fragments
	SiteDir      string `yaml:"site_dir"`       // rendered output root
	AssetsDir    string `yaml:"assets_dir"`     // localized asset files
	Layout       string `yaml:"layout"`         // shared layout file name
	LayoutSource string `yaml:"layout_source"`  // layout source page, relative to export_dir
	LayoutPageID string `yaml:"layout_page_id"` // page identifier of the layout source
	Pages        []Page `yaml:"pages"`          // page records (empty = built-in list)
}

// Page is one page record as it appears in the config file.
type Page struct {
	Source       string `yaml:"source"`        // exported HTML document, relative to export_dir
	Template     string `yaml:"template"`      // fragment file under template_dir
	Output       string `yaml:"output"`        // rendered HTML destination, relative to site_dir
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	CanonicalURL string `yaml:"canonical_url"`
	PageID       string `yaml:"page_id"`
	RootPath     string `yaml:"root_path"`
}

// DefaultConfig returns the built-in configuration: the standard directory
// layout and the hand-authored page list.
func DefaultConfig() *Config {
	return &Config{
		ExportDir:    "export",
		TemplateDir:  "templates",
		SiteDir:      "site",
		AssetsDir:    "site/assets",
		Layout:       "layout.html.tmpl",
		LayoutSource: "index.html",
		LayoutPageID: "c1dmp",
		Pages:        DefaultPages(),
	}
}

// LoadConfig loads configuration from a YAML file. Unset fields fall back to
// their defaults; an empty page list falls back to the built-in list.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// applyDefaults fills unset fields from DefaultConfig.
func (c *Config) applyDefaults() {
	def := DefaultConfig()
	if c.ExportDir == "" {
		c.ExportDir = def.ExportDir
	}
	if c.TemplateDir == "" {
		c.TemplateDir = def.TemplateDir
	}
	if c.SiteDir == "" {
		c.SiteDir = def.SiteDir
	}
	if c.AssetsDir == "" {
		c.AssetsDir = def.AssetsDir
	}
	if c.Layout == "" {
		c.Layout = def.Layout
	}
	if c.LayoutSource == "" {
		c.LayoutSource = def.LayoutSource
	}
	if c.LayoutPageID == "" {
		c.LayoutPageID = def.LayoutPageID
	}
	if len(c.Pages) == 0 {
		c.Pages = def.Pages
	}
}

// Validate checks that the configuration can drive a build.
func (c *Config) Validate() error {
	if len(c.Pages) == 0 {
		return ErrNoPages
	}
	for _, p := range c.Pages {
		if p.Template == "" || p.Output == "" || p.PageID == "" {
			return fmt.Errorf("%w: page %q needs template, output, and page_id", ErrConfigParse, p.Title)
		}
	}
	return nil
}
