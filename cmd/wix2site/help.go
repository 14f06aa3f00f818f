package main

import (
	"fmt"
	"io"
)

// usageText is the top-level help output.
const usageText = `wix2site - rebuild a Wix static export as a templated site

Usage:
  wix2site <command> [flags]

Commands:
  extract-layout   Extract the shared layout template from one exported page
  extract-pages    Extract a template fragment for every configured page
  build            Render all pages from layout + fragments + page records
  check            Verify rendered pages against their configuration
  version          Print version
  help             Show this help

Common flags:
  -c, --config string   Config file path (default: built-in configuration)
  -q, --quiet           Only log errors
  -v, --verbose         Log debug detail

extract-layout flags:
      --source string   Exported page to extract the layout from
      --page-id string  Page identifier of the source page
      --output string   Layout template output path

build flags:
  -w, --workers int     Pages built concurrently (default 1)

Environment:
  WIX2SITE_CONFIG, WIX2SITE_EXPORT_DIR, WIX2SITE_TEMPLATE_DIR,
  WIX2SITE_SITE_DIR, WIX2SITE_ASSETS_DIR, WIX2SITE_WORKERS
  A local .env file is loaded if present.

The three steps run manually, in order:
  wix2site extract-layout && wix2site extract-pages && wix2site build
`

// printUsage writes the top-level help.
func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
