package wix2site

import (
	"regexp"
	"strings"
)

// Markers and placeholder snippets shared by the extractors and the builder.
// The markers come from the Wix Thunderbolt SSR markup: the rendered page
// content sits in a PAGES_CONTAINER div inside <main>, and the per-page CSS
// is emitted as <style id="css_<pageID>"> and
// <style id="compCssMappers_<pageID>"> elements.
const (
	contentOpenMarker  = `<div id="PAGES_CONTAINER">`
	contentCloseMarker = `</div></main>`

	pageCSSPrefix    = "css_"
	cssMappersPrefix = "compCssMappers_"

	pageIDPlaceholder   = "{{.PageID}}"
	rootPathPlaceholder = "{{.RootPath}}"

	contentBlock    = `{{block "content" .}}{{end}}`
	pageCSSBlock    = `{{block "pageCSS" .}}{{end}}`
	cssMappersBlock = `{{block "pageCSSMappers" .}}{{end}}`

	stylesheetLink = `<link rel="stylesheet" href="{{.RootPath}}assets/site.css"/>`
)

// externalImageRe matches src attributes that still point at the Wix static
// content host after rendering.
var externalImageRe = regexp.MustCompile(`src="https?://static\.wixstatic\.com/[^"]*"`)

// srcsetRe matches a srcset attribute including its leading whitespace.
// Responsive source sets reference remote Wix image variants that are never
// downloaded, so the attribute is removed wherever it appears.
var srcsetRe = regexp.MustCompile(`\s+srcset="[^"]*"`)

// substituteFirst replaces the first match of re with repl.
// Reports whether a match was found; an unmatched pattern leaves the
// document untouched so the caller can log and continue.
func substituteFirst(doc string, re *regexp.Regexp, repl string) (string, bool) {
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return doc, false
	}
	return doc[:loc[0]] + repl + doc[loc[1]:], true
}

// stripSrcset removes every srcset attribute from the document.
func stripSrcset(doc string) string {
	return srcsetRe.ReplaceAllString(doc, "")
}

// rewriteAssetPrefixes rewrites quoted asset-relative path prefixes to the
// root-path placeholder. Two spellings occur in the export: pages saved in
// subdirectories reference "../assets/", the index page references "assets/".
// The attribute quote anchors the match so already-rewritten values (which
// start with the placeholder, not the prefix) are never touched twice.
func rewriteAssetPrefixes(doc string) string {
	doc = strings.ReplaceAll(doc, `"../assets/`, `"`+rootPathPlaceholder+`assets/`)
	doc = strings.ReplaceAll(doc, `"assets/`, `"`+rootPathPlaceholder+`assets/`)
	return doc
}

// escapeTemplateBraces separates every literal "{{" with a space so the
// template engine never parses brace pairs that occur incidentally in
// minified CSS or inline JSON. Repeats until no pair remains, since a run
// of braces can re-form a pair after one pass.
func escapeTemplateBraces(s string) string {
	for strings.Contains(s, "{{") {
		s = strings.ReplaceAll(s, "{{", "{ {")
	}
	return s
}

// styleElement returns the full <style id="..."> element for id, or ok=false.
func styleElement(doc, id string) (start, end int, ok bool) {
	open := `<style id="` + id + `">`
	start = strings.Index(doc, open)
	if start == -1 {
		return 0, 0, false
	}
	closeIdx := strings.Index(doc[start:], "</style>")
	if closeIdx == -1 {
		return 0, 0, false
	}
	return start, start + closeIdx + len("</style>"), true
}

// extractStyleBody returns the inner text of the <style id="..."> element.
func extractStyleBody(doc, id string) (string, bool) {
	start, end, ok := styleElement(doc, id)
	if !ok {
		return "", false
	}
	open := `<style id="` + id + `">`
	return doc[start+len(open) : end-len("</style>")], true
}

// replaceStyleElement replaces the whole <style id="..."> element with repl.
func replaceStyleElement(doc, id, repl string) (string, bool) {
	start, end, ok := styleElement(doc, id)
	if !ok {
		return doc, false
	}
	return doc[:start] + repl + doc[end:], true
}

// contentBounds locates the region strictly between the content open marker
// and the last occurrence of the close marker.
func contentBounds(doc string) (start, end int, ok bool) {
	open := strings.Index(doc, contentOpenMarker)
	if open == -1 {
		return 0, 0, false
	}
	start = open + len(contentOpenMarker)
	end = strings.LastIndex(doc, contentCloseMarker)
	if end == -1 || end < start {
		return 0, 0, false
	}
	return start, end, true
}

// extractContent returns the text strictly between the content markers.
func extractContent(doc string) (string, bool) {
	start, end, ok := contentBounds(doc)
	if !ok {
		return "", false
	}
	return doc[start:end], true
}

// replaceContent replaces the text strictly between the content markers,
// keeping both markers in place.
func replaceContent(doc, repl string) (string, bool) {
	start, end, ok := contentBounds(doc)
	if !ok {
		return doc, false
	}
	return doc[:start] + repl + doc[end:], true
}

// insertBeforeHeadClose inserts snippet immediately before </head>.
// Reports false if the document has no head close tag.
func insertBeforeHeadClose(doc, snippet string) (string, bool) {
	idx := strings.Index(strings.ToLower(doc), "</head>")
	if idx == -1 {
		return doc, false
	}
	return doc[:idx] + snippet + doc[idx:], true
}

// localizeExternalImages rewrites src attributes referencing the Wix static
// host to local asset paths. The bare filename is the URL path's last
// segment with the query string stripped; lookup returns the matching local
// filename (possibly the `~`→`_` alternate spelling) or ok=false, in which
// case the original value is preserved unchanged.
func localizeExternalImages(doc, rootPath string, lookup func(name string) (string, bool)) string {
	return externalImageRe.ReplaceAllStringFunc(doc, func(m string) string {
		url := strings.TrimSuffix(strings.TrimPrefix(m, `src="`), `"`)
		name := url
		if i := strings.IndexAny(name, "?#"); i != -1 {
			name = name[:i]
		}
		if i := strings.LastIndex(name, "/"); i != -1 {
			name = name[i+1:]
		}
		if name == "" {
			return m
		}
		matched, ok := lookup(name)
		if !ok {
			return m
		}
		return `src="` + rootPath + "assets/" + matched + `"`
	})
}
