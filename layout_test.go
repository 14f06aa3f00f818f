package wix2site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// sampleExportedPage is a trimmed-down exported contact page carrying every
// structure the extractors look for.
const sampleExportedPage = `<!DOCTYPE html>
<html lang="en">
<head>
<title>Contact | Yu Laboratory</title>
<meta name="description" content="How to reach the Yu Laboratory."/>
<link rel="canonical" href="https://www.yu-lab.org/contact/"/>
<meta property="og:title" content="Contact | Yu Laboratory"/>
<meta property="og:description" content="How to reach the Yu Laboratory."/>
<meta property="og:url" content="https://www.yu-lab.org/contact/"/>
<meta name="twitter:title" content="Contact | Yu Laboratory"/>
<link rel="icon" href="../assets/favicon.ico"/>
<style id="css_ryou6">.contact{color:#111}@media screen{.x{{a:1}}</style>
<style id="compCssMappers_ryou6">.c1 .contact{margin:0}</style>
</head>
<body>
<header><img src="../assets/logo.png" srcset="https://static.wixstatic.com/media/logo.png 2x"/></header>
<main id="SITE_MAIN"><div id="PAGES_CONTAINER"><div data-mesh-id="ryou6-mesh"><h1>Contact</h1><img src="assets/map.png"/></div></div></main>
<footer><a href="../assets/terms.pdf">Terms</a></footer>
</body>
</html>
`

func TestLayoutExtract(t *testing.T) {
	t.Parallel()

	e := NewLayoutExtractor(nil)
	layout := e.Extract(sampleExportedPage, "ryou6")

	wantContains := []string{
		`<title>{{.Title}}</title>`,
		`<meta name="description" content="{{.Description}}"/>`,
		`<link rel="canonical" href="{{.CanonicalURL}}"/>`,
		`<meta property="og:title" content="{{.Title}}"/>`,
		`<meta property="og:description" content="{{.Description}}"/>`,
		`<meta property="og:url" content="{{.CanonicalURL}}"/>`,
		`<meta name="twitter:title" content="{{.Title}}"/>`,
		`href="{{.RootPath}}assets/favicon.ico"`,
		`src="{{.RootPath}}assets/logo.png"`,
		stylesheetLink + "</head>",
		`<div id="PAGES_CONTAINER">` + contentBlock + `</div></main>`,
		pageCSSBlock,
		cssMappersBlock,
	}
	for _, want := range wantContains {
		if !strings.Contains(layout, want) {
			t.Errorf("layout missing %q", want)
		}
	}

	wantExcludes := []string{
		"srcset",
		"ryou6",
		"Contact | Yu Laboratory",
		"css_",         // style elements replaced by blocks
		"data-mesh-id", // content replaced by block
	}
	for _, unwanted := range wantExcludes {
		if strings.Contains(layout, unwanted) {
			t.Errorf("layout still contains %q", unwanted)
		}
	}
}

func TestLayoutExtractMissingMarkers(t *testing.T) {
	t.Parallel()

	// A document with none of the expected structure passes through with
	// only the global substitutions applied.
	e := NewLayoutExtractor(nil)
	got := e.Extract(`<p id="z9q7k">hello</p>`, "z9q7k")

	want := `<p id="{{.PageID}}">hello</p>`
	if got != want {
		t.Errorf("Extract = %q, want %q", got, want)
	}
}

func TestLayoutExtractFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "index.html")
	output := filepath.Join(dir, "templates", "layout.html.tmpl")

	if err := os.WriteFile(source, []byte(sampleExportedPage), 0o644); err != nil {
		t.Fatal(err)
	}

	e := NewLayoutExtractor(nil)
	if err := e.ExtractFile(source, "ryou6", output); err != nil {
		t.Fatalf("ExtractFile: %v", err)
	}

	written, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(written), contentBlock) {
		t.Error("written layout missing content block")
	}
}

func TestLayoutExtractFileMissingSource(t *testing.T) {
	t.Parallel()

	e := NewLayoutExtractor(nil)
	err := e.ExtractFile(filepath.Join(t.TempDir(), "nope.html"), "ryou6", "out.tmpl")
	if err == nil {
		t.Fatal("expected error for missing source")
	}
}
