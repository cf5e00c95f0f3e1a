// Package organize computes destination paths for notes whose ruleset
// is matched and complete, and moves them there through a storage
// collaborator.
package organize

import (
	"fmt"
	"strings"
	"time"

	"github.com/aidanlsb/shrike/internal/paths"
	"github.com/aidanlsb/shrike/internal/placeholder"
	"github.com/aidanlsb/shrike/internal/rules"
	"github.com/aidanlsb/shrike/internal/slugs"
)

// SlugFilenamesFlag opts a ruleset in to slugged destination components.
const SlugFilenamesFlag = "slug_filenames"

// Destination is the computed target for a note. An empty Title or
// Directory means the corresponding component of the current path is
// left unchanged.
type Destination struct {
	Title     string
	Directory string
}

// ResolveDestination renders the ruleset's title and path templates
// against metadata and sanitizes the results. Placeholders for unknown
// fields stay literal, so a bad template degrades visibly rather than
// failing the operation.
func ResolveDestination(rs *rules.Ruleset, metadata map[string]any, createdAt *time.Time) (Destination, error) {
	if rs == nil {
		return Destination{}, fmt.Errorf("no ruleset to resolve destination for")
	}

	var dest Destination

	if rs.TitleTemplate != "" {
		title := placeholder.Resolve(rs.TitleTemplate, metadata, createdAt)
		title = placeholder.SanitizeFilename(title)
		if rs.Flag(SlugFilenamesFlag) {
			title = slugs.ComponentSlug(title)
		}
		dest.Title = title
	}

	if rs.PathTemplate != "" {
		dir := placeholder.Resolve(rs.PathTemplate, metadata, createdAt)
		dir = placeholder.SanitizePath(dir)
		if rs.Flag(SlugFilenamesFlag) {
			dir = slugs.PathSlug(dir)
		}
		dest.Directory = dir
	}

	return dest, nil
}

// TargetRelPath combines a destination with the note's current
// vault-relative path, honoring the ruleset's rename policy for the
// title component.
func TargetRelPath(rs *rules.Ruleset, dest Destination, currentRel string) string {
	currentRel = paths.NormalizeRel(currentRel)

	dir := dest.Directory
	if dir == "" {
		dir = paths.Dir(currentRel)
	}

	stem := paths.Stem(currentRel)
	if dest.Title != "" && shouldRename(rs.Rename, stem) {
		stem = dest.Title
	}

	if dir == "" {
		return stem + ".md"
	}
	return dir + "/" + stem + ".md"
}

// shouldRename applies the ruleset's rename policy to the current
// filename stem. The if-unset policy treats an empty or "Untitled"
// prefixed stem as not yet named.
func shouldRename(policy rules.RenamePolicy, currentStem string) bool {
	switch policy {
	case rules.RenameAlways:
		return true
	case rules.RenameIfUnset:
		return currentStem == "" || strings.HasPrefix(currentStem, "Untitled")
	default:
		return false
	}
}

// IsOrganized reports whether the note at currentRel already sits at
// the destination its ruleset computes. It reuses ResolveDestination
// and TargetRelPath so its answer can never disagree with them.
func IsOrganized(rs *rules.Ruleset, metadata map[string]any, createdAt *time.Time, currentRel string) bool {
	dest, err := ResolveDestination(rs, metadata, createdAt)
	if err != nil {
		return false
	}
	return TargetRelPath(rs, dest, currentRel) == paths.NormalizeRel(currentRel)
}

// ResolveCollision returns path if no entry exists there, otherwise the
// first free variant with " 1", " 2", ... appended before the
// extension.
func ResolveCollision(path string, exists func(string) bool) string {
	if !exists(path) {
		return path
	}

	ext := ""
	base := path
	if i := strings.LastIndex(path, "."); i > strings.LastIndex(path, "/") {
		base = path[:i]
		ext = path[i:]
	}

	for n := 1; ; n++ {
		candidate := fmt.Sprintf("%s %d%s", base, n, ext)
		if !exists(candidate) {
			return candidate
		}
	}
}
