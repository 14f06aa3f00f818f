package wix2site

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeAssets populates a fresh directory with empty files of the given
// names and returns its path.
func writeAssets(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestAssetIndexLookup(t *testing.T) {
	t.Parallel()

	dir := writeAssets(t, "logo.png", "photo_mv2.jpg", "Upper.PNG")
	idx, err := NewAssetIndex(dir)
	if err != nil {
		t.Fatalf("NewAssetIndex: %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}

	tests := []struct {
		name     string
		query    string
		expected string
		ok       bool
	}{
		{"exact match", "logo.png", "logo.png", true},
		{"tilde falls back to underscore", "photo~mv2.jpg", "photo_mv2.jpg", true},
		{"underscore spelling matches directly", "photo_mv2.jpg", "photo_mv2.jpg", true},
		{"case sensitive", "upper.png", "", false},
		{"absent file", "missing.png", "", false},
		{"tilde with no underscore twin", "gone~mv2.jpg", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := idx.Lookup(tt.query)
			if ok != tt.ok || got != tt.expected {
				t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.query, got, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestAssetIndexSkipsDirectories(t *testing.T) {
	t.Parallel()

	dir := writeAssets(t, "a.png")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o750); err != nil {
		t.Fatal(err)
	}

	idx, err := NewAssetIndex(dir)
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1", idx.Len())
	}
	if _, ok := idx.Lookup("sub"); ok {
		t.Error("Lookup resolved a subdirectory")
	}
}

func TestAssetIndexMissingDir(t *testing.T) {
	t.Parallel()

	_, err := NewAssetIndex(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrAssetsDirUnreadable) {
		t.Errorf("NewAssetIndex error = %v, want ErrAssetsDirUnreadable", err)
	}
}
