package blogcache

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
)

// FileSlug returns the slug for a post file: its base name without the extension.
// - Directories in the path are dropped.
// - Only the last extension is removed, so "v1.2-notes.md" becomes "v1.2-notes".
// - No other normalization or escaping is done. Callers embedding the slug in a
// URL are responsible for that.
func FileSlug(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// IsSafeSlug reports whether s can be used as a URL path segment without
// encoding: lowercase ASCII letters, digits, hyphens and underscores, with no
// separator at either end.
func IsSafeSlug(s string) bool {
	return slug.IsSlug(s)
}
