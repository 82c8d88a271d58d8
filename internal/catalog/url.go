package catalog

import (
	"net/url"
	"path"
	"strings"
)

// pageURL builds the published page URL for a catalog-relative markdown path.
// index.md pages resolve to their directory URL; other pages to a directory
// named after the stem (mkdocs-style pretty URLs). Each path segment is
// percent-escaped.
func (r *Reader) pageURL(rel string, familyIndex bool) string {
	rel = strings.TrimSuffix(path.Clean(strings.ReplaceAll(rel, "\\", "/")), ".md")
	if familyIndex {
		rel = path.Dir(rel)
		if rel == "." {
			rel = ""
		}
	}

	segments := []string{"components"}
	if rel != "" {
		for _, seg := range strings.Split(rel, "/") {
			segments = append(segments, url.PathEscape(seg))
		}
	}
	return r.baseURL + strings.Join(segments, "/") + "/"
}
