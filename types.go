package wix2site

import "fmt"

// PageConfig is the configuration bundle substituted into template
// placeholders when a page is rendered.
type PageConfig struct {
	Title        string // <title> and social title tags
	Description  string // description meta and og:description
	CanonicalURL string // canonical link and og:url
	PageID       string // opaque Wix page identifier (keys the CSS blocks)
	RootPath     string // relative prefix from the page to the site root, e.g. "../"
}

// PageRecord describes one page of the site build. Records live in a fixed,
// hand-authored list and are immutable during a run.
type PageRecord struct {
	Source     string     // exported HTML document (fragment extraction input)
	Template   string     // fragment file name under the template directory
	OutputPath string     // rendered HTML destination
	Config     PageConfig // per-page placeholder values
}

// Validate checks that the record carries everything a build needs.
func (r PageRecord) Validate() error {
	if r.Template == "" {
		return ErrEmptyTemplate
	}
	if r.OutputPath == "" {
		return fmt.Errorf("%w: template %s", ErrEmptyOutputPath, r.Template)
	}
	if r.Config.PageID == "" {
		return fmt.Errorf("%w: template %s", ErrEmptyPageID, r.Template)
	}
	return nil
}
