package wix2site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
)

// layoutDirectiveRe matches the extension declaration a fragment carries on
// its first line: {{/* layout: layout.html.tmpl */}}.
var layoutDirectiveRe = regexp.MustCompile(`^\{\{/\*\s*layout:\s*(\S+)\s*\*/\}\}`)

// Renderer renders page fragments against the shared layout.
//
// Rendering is stateless: both templates are read and parsed per call, so a
// render is an idempotent function of the files on disk and the PageConfig.
// text/template is used rather than html/template because the template text
// is trusted exported markup; contextual autoescaping would mangle the
// embedded Wix CSS and inline JSON.
type Renderer struct {
	templateDir string
	layout      string
}

// NewRenderer creates a Renderer reading templates from templateDir, with
// layout as the shared layout file name.
func NewRenderer(templateDir, layout string) *Renderer {
	return &Renderer{templateDir: templateDir, layout: layout}
}

// Render renders the named fragment through the shared layout with cfg and
// returns the document text. The fragment must declare the renderer's layout
// as its parent.
func (r *Renderer) Render(fragment string, cfg PageConfig) (string, error) {
	layoutPath := filepath.Join(r.templateDir, r.layout)
	layoutText, err := os.ReadFile(layoutPath) // #nosec G304 -- configured template path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, layoutPath)
		}
		return "", fmt.Errorf("reading layout: %w", err)
	}

	fragPath := filepath.Join(r.templateDir, fragment)
	fragText, err := os.ReadFile(fragPath) // #nosec G304 -- configured template path
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, fragPath)
		}
		return "", fmt.Errorf("reading fragment: %w", err)
	}

	declared, ok := layoutDeclaration(string(fragText))
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrLayoutDirective, fragPath)
	}
	if declared != r.layout {
		return "", fmt.Errorf("%w: %s declares %q, renderer uses %q", ErrLayoutMismatch, fragment, declared, r.layout)
	}

	tmpl, err := template.New(r.layout).Parse(string(layoutText))
	if err != nil {
		return "", fmt.Errorf("%w: parsing layout: %v", ErrRender, err)
	}
	// Parsing the fragment into the same namespace overrides the layout's
	// empty block definitions. The fragment's top level is only comments and
	// whitespace, so the layout body itself is untouched.
	if _, err := tmpl.Parse(string(fragText)); err != nil {
		return "", fmt.Errorf("%w: parsing fragment %s: %v", ErrRender, fragment, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

// layoutDeclaration returns the layout name a fragment declares, if any.
func layoutDeclaration(fragText string) (string, bool) {
	m := layoutDirectiveRe.FindStringSubmatch(strings.TrimLeft(fragText, " \t\r\n"))
	if m == nil {
		return "", false
	}
	return m[1], true
}
