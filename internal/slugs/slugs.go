// Package slugs provides slugification helpers for filenames and paths,
// used when a ruleset opts in to slugged destinations.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// ComponentSlug converts a string to a URL-safe slug appropriate for a
// single file or directory name.
func ComponentSlug(s string) string {
	s = strings.TrimSuffix(s, ".md")
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return slugged
}

// PathSlug slugifies each "/"-separated component of a path, keeping the
// directory structure intact.
func PathSlug(path string) string {
	path = strings.TrimSuffix(path, ".md")

	parts := strings.Split(path, "/")
	for i, part := range parts {
		parts[i] = ComponentSlug(part)
	}
	return strings.Join(parts, "/")
}
