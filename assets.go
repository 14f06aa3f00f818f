package wix2site

import (
	"fmt"
	"os"
	"strings"
)

// AssetIndex is a read-only listing of the localized asset files, used to
// decide whether an external image URL can be rewritten to a local path.
type AssetIndex struct {
	names map[string]struct{}
}

// NewAssetIndex lists dir once and indexes its regular files by name.
func NewAssetIndex(dir string) (*AssetIndex, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetsDirUnreadable, err)
	}
	names := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names[e.Name()] = struct{}{}
	}
	return &AssetIndex{names: names}, nil
}

// Lookup resolves name to a file present in the assets directory. Matching
// is case-sensitive and exact; when the literal name is absent, the
// alternate spelling with "~" replaced by "_" is tried. The scraper flattens
// non-filename characters to "_" when saving assets, so exported markup can
// reference a saved file under either spelling. No other fallback exists.
func (a *AssetIndex) Lookup(name string) (string, bool) {
	if _, ok := a.names[name]; ok {
		return name, true
	}
	alt := strings.ReplaceAll(name, "~", "_")
	if alt != name {
		if _, ok := a.names[alt]; ok {
			return alt, true
		}
	}
	return "", false
}

// Len reports the number of indexed files.
func (a *AssetIndex) Len() int {
	return len(a.names)
}
