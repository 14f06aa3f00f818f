// Package wix2site converts a one-time Wix SSR static export into a small
// templated static-site build.
//
// The export produced by the scraper contains one fully rendered HTML
// document per page. Every document repeats the same header, footer, and
// boilerplate; only the page CSS, the content block, and a handful of meta
// values differ. This package pulls the shared markup out once and rebuilds
// every page from it:
//
//  1. LayoutExtractor reads one exported page and turns it into the shared
//     layout template: page-specific strings (title, description, canonical
//     link, social meta tags, the page identifier, asset path prefixes)
//     become placeholders, and the page CSS and content become named,
//     overridable regions.
//  2. FragmentExtractor reads each exported page and writes a template
//     fragment supplying those regions for that page.
//  3. Builder renders each fragment against the layout with its page's
//     configuration record, localizes any remaining static-host image URLs
//     against the assets directory, and writes the result.
//
// The three steps are independent one-shot operations with no shared state;
// each simply expects the previous step's files to exist on disk. Templates
// use text/template: simple field placeholders ({{.Title}}, {{.RootPath}})
// plus block/define region overriding.
//
// Errors during a single page's processing are logged and never abort the
// run; the tools are manual, idempotent, and safe to re-run.
package wix2site
