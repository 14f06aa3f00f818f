package wix2site

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// Finding kinds reported by the Checker.
const (
	FindingSrcset        = "srcset"         // srcset attribute survived the build
	FindingTitle         = "title"          // <title> disagrees with the record
	FindingDescription   = "description"    // description meta disagrees with the record
	FindingCanonical     = "canonical"      // canonical link disagrees with the record
	FindingExternalImage = "external-image" // static-host image with a local copy available
	FindingMissingOutput = "missing-output" // rendered page not on disk
)

// Finding describes one problem found in a rendered page.
type Finding struct {
	OutputPath string
	Kind       string
	Detail     string
}

// Checker verifies rendered pages against their configuration records.
// It is diagnostic only and never modifies outputs.
type Checker struct {
	log    *slog.Logger
	assets *AssetIndex
}

// NewChecker creates a Checker. assets may be nil, which disables the
// external-image finding. A nil logger discards logs.
func NewChecker(logger *slog.Logger, assets *AssetIndex) *Checker {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Checker{log: logger, assets: assets}
}

// CheckAll verifies every record's output and returns all findings.
// A missing or unparseable output is itself a finding, never an abort.
func (c *Checker) CheckAll(records []PageRecord) []Finding {
	var findings []Finding
	for _, rec := range records {
		pageFindings := c.CheckFile(rec)
		for _, f := range pageFindings {
			c.log.Error("check finding", "output", f.OutputPath, "kind", f.Kind, "detail", f.Detail)
		}
		findings = append(findings, pageFindings...)
	}
	return findings
}

// CheckFile reads and verifies a single record's rendered output.
func (c *Checker) CheckFile(rec PageRecord) []Finding {
	doc, err := os.ReadFile(rec.OutputPath) // #nosec G304 -- configured output path
	if err != nil {
		return []Finding{{
			OutputPath: rec.OutputPath,
			Kind:       FindingMissingOutput,
			Detail:     err.Error(),
		}}
	}
	return c.Check(string(doc), rec)
}

// Check verifies one rendered document against its record.
func (c *Checker) Check(doc string, rec PageRecord) []Finding {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return []Finding{{
			OutputPath: rec.OutputPath,
			Kind:       FindingMissingOutput,
			Detail:     fmt.Sprintf("parse failed: %v", err),
		}}
	}

	var findings []Finding
	add := func(kind, detail string) {
		findings = append(findings, Finding{OutputPath: rec.OutputPath, Kind: kind, Detail: detail})
	}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if _, ok := attrVal(n, "srcset"); ok {
				add(FindingSrcset, "<"+n.Data+"> carries a srcset attribute")
			}

			switch n.Data {
			case "title":
				if got := nodeText(n); got != rec.Config.Title {
					add(FindingTitle, fmt.Sprintf("got %q, want %q", got, rec.Config.Title))
				}
			case "meta":
				if name, _ := attrVal(n, "name"); name == "description" {
					if got, _ := attrVal(n, "content"); got != rec.Config.Description {
						add(FindingDescription, fmt.Sprintf("got %q, want %q", got, rec.Config.Description))
					}
				}
			case "link":
				if relAttr, _ := attrVal(n, "rel"); relAttr == "canonical" {
					if got, _ := attrVal(n, "href"); got != rec.Config.CanonicalURL {
						add(FindingCanonical, fmt.Sprintf("got %q, want %q", got, rec.Config.CanonicalURL))
					}
				}
			case "img":
				if src, ok := attrVal(n, "src"); ok && c.assets != nil {
					if name, localizable := c.localizableImage(src); localizable {
						add(FindingExternalImage, src+" has local copy "+name)
					}
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return findings
}

// localizableImage reports whether src points at the external static host
// and names a file that exists locally (either spelling).
func (c *Checker) localizableImage(src string) (string, bool) {
	if !strings.HasPrefix(src, "https://static.wixstatic.com/") &&
		!strings.HasPrefix(src, "http://static.wixstatic.com/") {
		return "", false
	}
	name := src
	if i := strings.IndexAny(name, "?#"); i != -1 {
		name = name[:i]
	}
	if i := strings.LastIndex(name, "/"); i != -1 {
		name = name[i+1:]
	}
	if name == "" {
		return "", false
	}
	return c.assets.Lookup(name)
}

// attrVal returns the value of the named attribute on n.
func attrVal(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// nodeText concatenates the text children of n.
func nodeText(n *html.Node) string {
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.TextNode {
			b.WriteString(child.Data)
		}
	}
	return b.String()
}
