package wix2site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yu-lab/go-wix2site/internal/fileutil"
)

// FragmentExtractor pulls each page's CSS and content blocks out of its
// exported document and writes them as a template fragment extending the
// shared layout.
type FragmentExtractor struct {
	log    *slog.Logger
	layout string
}

// NewFragmentExtractor creates a FragmentExtractor. layout is the layout
// template name the generated fragments declare as their parent. A nil
// logger discards logs.
func NewFragmentExtractor(logger *slog.Logger, layout string) *FragmentExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &FragmentExtractor{log: logger, layout: layout}
}

// ExtractAll extracts a fragment for every record, writing each to
// templateDir/<record.Template>. A page whose source document is missing is
// logged and skipped; extraction continues with the remaining pages.
// Returns the number of pages that failed.
func (e *FragmentExtractor) ExtractAll(records []PageRecord, templateDir string) int {
	failed := 0
	for _, rec := range records {
		outPath := filepath.Join(templateDir, rec.Template)
		if err := e.ExtractFile(rec.Source, rec.Config.PageID, outPath); err != nil {
			e.log.Error("fragment extraction failed", "source", rec.Source, "error", err)
			failed++
			continue
		}
		e.log.Info("fragment extracted", "source", rec.Source, "output", outPath)
	}
	return failed
}

// ExtractFile reads the exported page at sourcePath and writes its fragment
// to outputPath, creating parent directories as needed.
func (e *FragmentExtractor) ExtractFile(sourcePath, pageID, outputPath string) error {
	if !fileutil.FileExists(sourcePath) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}
	doc, err := os.ReadFile(sourcePath) // #nosec G304 -- operator-provided path
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	fragment := e.Extract(string(doc), pageID)

	if err := fileutil.WriteFile(outputPath, []byte(fragment)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// Extract builds the fragment text for one exported document. Each region is
// cleaned identically: responsive source sets removed, incidental template
// braces separated, asset prefixes rewritten to the root-path placeholder.
// A missing block is logged and its region left empty.
func (e *FragmentExtractor) Extract(doc, pageID string) string {
	css, ok := extractStyleBody(doc, pageCSSPrefix+pageID)
	if !ok {
		e.log.Error("block not found, region left empty", "block", "page CSS", "page_id", pageID)
	}
	mappers, ok := extractStyleBody(doc, cssMappersPrefix+pageID)
	if !ok {
		e.log.Error("block not found, region left empty", "block", "CSS mappers", "page_id", pageID)
	}
	content, ok := extractContent(doc)
	if !ok {
		e.log.Error("block not found, region left empty", "block", "content")
	}

	css = cleanRegion(css)
	mappers = cleanRegion(mappers)
	content = cleanRegion(content)

	var b strings.Builder
	b.WriteString("{{/* layout: " + e.layout + " */}}\n")
	b.WriteString(`{{define "pageCSS"}}<style id="` + pageCSSPrefix + pageIDPlaceholder + `">`)
	b.WriteString(css)
	b.WriteString("</style>{{end}}\n")
	b.WriteString(`{{define "pageCSSMappers"}}<style id="` + cssMappersPrefix + pageIDPlaceholder + `">`)
	b.WriteString(mappers)
	b.WriteString("</style>{{end}}\n")
	b.WriteString(`{{define "content"}}`)
	b.WriteString(content)
	b.WriteString("{{end}}\n")
	return b.String()
}

// cleanRegion applies the shared per-region transforms. Brace escaping runs
// before the prefix rewrite so the inserted placeholders are not themselves
// escaped.
func cleanRegion(s string) string {
	s = stripSrcset(s)
	s = escapeTemplateBraces(s)
	s = rewriteAssetPrefixes(s)
	return s
}
