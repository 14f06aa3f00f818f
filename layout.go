package wix2site

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"github.com/yu-lab/go-wix2site/internal/fileutil"
)

// substitution is one single-shot replacement in the layout extraction
// sequence. The name identifies the step in log output when its pattern is
// missing from the source document.
type substitution struct {
	name string
	re   *regexp.Regexp
	repl string
}

// layoutSubstitutions is the fixed ordered sequence of meta substitutions.
// Each runs once; a miss is logged and the step skipped.
var layoutSubstitutions = []substitution{
	{
		name: "title",
		re:   regexp.MustCompile(`(?s)<title>.*?</title>`),
		repl: `<title>{{.Title}}</title>`,
	},
	{
		name: "description meta",
		re:   regexp.MustCompile(`<meta\s+name="description"\s+content="[^"]*"\s*/?>`),
		repl: `<meta name="description" content="{{.Description}}"/>`,
	},
	{
		name: "canonical link",
		re:   regexp.MustCompile(`<link\s+rel="canonical"\s+href="[^"]*"\s*/?>`),
		repl: `<link rel="canonical" href="{{.CanonicalURL}}"/>`,
	},
	{
		name: "og:title",
		re:   regexp.MustCompile(`<meta\s+property="og:title"\s+content="[^"]*"\s*/?>`),
		repl: `<meta property="og:title" content="{{.Title}}"/>`,
	},
	{
		name: "og:description",
		re:   regexp.MustCompile(`<meta\s+property="og:description"\s+content="[^"]*"\s*/?>`),
		repl: `<meta property="og:description" content="{{.Description}}"/>`,
	},
	{
		name: "og:url",
		re:   regexp.MustCompile(`<meta\s+property="og:url"\s+content="[^"]*"\s*/?>`),
		repl: `<meta property="og:url" content="{{.CanonicalURL}}"/>`,
	},
	{
		name: "twitter:title",
		re:   regexp.MustCompile(`<meta\s+name="twitter:title"\s+content="[^"]*"\s*/?>`),
		repl: `<meta name="twitter:title" content="{{.Title}}"/>`,
	},
}

// LayoutExtractor turns one fully rendered exported page into the shared
// layout template.
type LayoutExtractor struct {
	log *slog.Logger
}

// NewLayoutExtractor creates a LayoutExtractor. A nil logger discards logs.
func NewLayoutExtractor(logger *slog.Logger) *LayoutExtractor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LayoutExtractor{log: logger}
}

// ExtractFile reads the exported page at sourcePath and writes the layout
// template to outputPath, creating parent directories as needed.
func (e *LayoutExtractor) ExtractFile(sourcePath, pageID, outputPath string) error {
	if !fileutil.FileExists(sourcePath) {
		return fmt.Errorf("%w: %s", ErrSourceNotFound, sourcePath)
	}
	doc, err := os.ReadFile(sourcePath) // #nosec G304 -- operator-provided path
	if err != nil {
		return fmt.Errorf("reading source: %w", err)
	}

	layout := e.Extract(string(doc), pageID)

	if err := fileutil.WriteFile(outputPath, []byte(layout)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	e.log.Info("layout extracted", "source", sourcePath, "output", outputPath)
	return nil
}

// Extract runs the fixed substitution sequence and region isolation over one
// exported document and returns the layout template text. Missing markers
// are logged and their steps skipped; the rest of the sequence still runs.
func (e *LayoutExtractor) Extract(doc, pageID string) string {
	var ok bool

	// Meta substitutions: title, description, canonical, social tags.
	for _, s := range layoutSubstitutions {
		doc, ok = substituteFirst(doc, s.re, s.repl)
		if !ok {
			e.log.Error("marker not found, step skipped", "step", s.name)
		}
	}

	// Asset prefixes and responsive source sets.
	doc = rewriteAssetPrefixes(doc)
	doc = stripSrcset(doc)

	// Site stylesheet goes in just before the head closes.
	doc, ok = insertBeforeHeadClose(doc, stylesheetLink)
	if !ok {
		e.log.Error("marker not found, step skipped", "step", "head close")
	}

	// The page identifier appears in element ids, style keys, and data
	// attributes throughout the document; all of them become the placeholder.
	if !strings.Contains(doc, pageID) {
		e.log.Error("marker not found, step skipped", "step", "page identifier", "page_id", pageID)
	}
	doc = strings.ReplaceAll(doc, pageID, pageIDPlaceholder)

	// Region isolation. The style keys carry the placeholder after the
	// global replace above.
	doc, ok = replaceStyleElement(doc, pageCSSPrefix+pageIDPlaceholder, pageCSSBlock)
	if !ok {
		e.log.Error("marker not found, step skipped", "step", "page CSS block")
	}
	doc, ok = replaceStyleElement(doc, cssMappersPrefix+pageIDPlaceholder, cssMappersBlock)
	if !ok {
		e.log.Error("marker not found, step skipped", "step", "CSS mappers block")
	}
	doc, ok = replaceContent(doc, contentBlock)
	if !ok {
		e.log.Error("marker not found, step skipped", "step", "content block")
	}

	return doc
}
