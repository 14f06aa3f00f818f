package main

import (
	"fmt"
	"path/filepath"

	wix2site "github.com/yu-lab/go-wix2site"
	"github.com/yu-lab/go-wix2site/internal/config"
)

// maxWorkers caps concurrent page builds; each page is cheap, more buys nothing.
const maxWorkers = 8

// loadSiteConfig resolves the configuration from flags, environment, and
// defaults (in that precedence order).
func loadSiteConfig(flags *cliFlags) (*config.Config, *envConfig, error) {
	envCfg := loadEnvConfig()

	path := flags.common.config
	if path == "" {
		path = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	if envCfg.ExportDir != "" {
		cfg.ExportDir = envCfg.ExportDir
	}
	if envCfg.TemplateDir != "" {
		cfg.TemplateDir = envCfg.TemplateDir
	}
	if envCfg.SiteDir != "" {
		cfg.SiteDir = envCfg.SiteDir
	}
	if envCfg.AssetsDir != "" {
		cfg.AssetsDir = envCfg.AssetsDir
	}

	return cfg, envCfg, nil
}

// toRecords converts config page entries to page records with resolved paths.
func toRecords(cfg *config.Config) []wix2site.PageRecord {
	records := make([]wix2site.PageRecord, len(cfg.Pages))
	for i, p := range cfg.Pages {
		records[i] = wix2site.PageRecord{
			Source:     filepath.Join(cfg.ExportDir, p.Source),
			Template:   p.Template,
			OutputPath: filepath.Join(cfg.SiteDir, p.Output),
			Config: wix2site.PageConfig{
				Title:        p.Title,
				Description:  p.Description,
				CanonicalURL: p.CanonicalURL,
				PageID:       p.PageID,
				RootPath:     p.RootPath,
			},
		}
	}
	return records
}

// runExtractLayout extracts the shared layout template from one exported page.
func runExtractLayout(flags *cliFlags, env *Environment) error {
	cfg, _, err := loadSiteConfig(flags)
	if err != nil {
		return err
	}

	source := flags.layout.source
	if source == "" {
		source = filepath.Join(cfg.ExportDir, cfg.LayoutSource)
	}
	pageID := flags.layout.pageID
	if pageID == "" {
		pageID = cfg.LayoutPageID
	}
	output := flags.layout.output
	if output == "" {
		output = filepath.Join(cfg.TemplateDir, cfg.Layout)
	}

	extractor := wix2site.NewLayoutExtractor(env.Logger)
	if err := extractor.ExtractFile(source, pageID, output); err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "Created %s\n", output)
	return nil
}

// runExtractPages extracts a template fragment for every configured page.
func runExtractPages(flags *cliFlags, env *Environment) error {
	cfg, _, err := loadSiteConfig(flags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	records := toRecords(cfg)
	extractor := wix2site.NewFragmentExtractor(env.Logger, cfg.Layout)
	failed := extractor.ExtractAll(records, cfg.TemplateDir)

	fmt.Fprintf(env.Stdout, "%d extracted, %d failed\n", len(records)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPagesFailed, failed, len(records))
	}
	return nil
}

// runBuild renders every configured page and writes the outputs.
func runBuild(flags *cliFlags, env *Environment) error {
	cfg, envCfg, err := loadSiteConfig(flags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	workers, err := resolveWorkers(flags.build.workers, envCfg.Workers)
	if err != nil {
		return err
	}

	// A missing assets directory leaves external image URLs in place; the
	// build itself still proceeds.
	assets, err := wix2site.NewAssetIndex(cfg.AssetsDir)
	if err != nil {
		env.Logger.Error("assets directory unavailable, external URLs kept", "dir", cfg.AssetsDir, "error", err)
		assets = nil
	}

	renderer := wix2site.NewRenderer(cfg.TemplateDir, cfg.Layout)
	builder := wix2site.NewBuilder(env.Logger, renderer, assets, wix2site.WithWorkers(workers))

	records := toRecords(cfg)
	results := builder.Build(records)

	for _, r := range results {
		if r.Err == nil && !flags.common.quiet {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}

	failed := wix2site.FailedCount(results)
	if !flags.common.quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrPagesFailed, failed, len(results))
	}
	return nil
}

// runCheck verifies the rendered outputs against their records.
func runCheck(flags *cliFlags, env *Environment) error {
	cfg, _, err := loadSiteConfig(flags)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	assets, err := wix2site.NewAssetIndex(cfg.AssetsDir)
	if err != nil {
		env.Logger.Error("assets directory unavailable, external-image findings disabled", "dir", cfg.AssetsDir, "error", err)
		assets = nil
	}

	checker := wix2site.NewChecker(env.Logger, assets)
	findings := checker.CheckAll(toRecords(cfg))
	if len(findings) > 0 {
		return fmt.Errorf("%w: %d", ErrCheckFindings, len(findings))
	}

	fmt.Fprintln(env.Stdout, "All pages clean")
	return nil
}

// resolveWorkers picks the worker count: flag, then environment, then 1.
func resolveWorkers(flagWorkers, envWorkers int) (int, error) {
	workers := flagWorkers
	if workers == 0 {
		workers = envWorkers
	}
	if workers == 0 {
		workers = 1
	}
	if workers < 1 || workers > maxWorkers {
		return 0, fmt.Errorf("%w: %d (must be 1-%d)", ErrInvalidWorkers, workers, maxWorkers)
	}
	return workers, nil
}
