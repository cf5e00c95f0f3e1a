// Package vault reads markdown notes from a vault directory.
package vault

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/shrike/internal/parser"
	"github.com/aidanlsb/shrike/internal/paths"
	"github.com/aidanlsb/shrike/internal/slugs"
)

// Note is one markdown file read from the vault.
type Note struct {
	Path         string // absolute path
	RelativePath string
	Content      string
	Frontmatter  *parser.Frontmatter // nil when the note has none

	// Err records a per-note failure (unreadable file, invalid
	// metadata). The note is still reported so callers can surface it.
	Err error
}

// Fields returns the note's metadata, or an empty map when it has none.
func (n *Note) Fields() map[string]any {
	if n.Frontmatter == nil {
		return map[string]any{}
	}
	return n.Frontmatter.Fields
}

// WalkNotes walks all markdown files in a vault and calls handler for
// each. It skips the .shrike directory and anything outside the vault.
func WalkNotes(vaultPath string, handler func(note Note) error) error {
	return filepath.WalkDir(vaultPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != vaultPath {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") {
			return nil
		}

		if err := paths.ValidateWithinVault(vaultPath, path); err != nil {
			if errors.Is(err, paths.ErrPathOutsideVault) {
				return nil
			}
			return err
		}

		rel, _ := filepath.Rel(vaultPath, path)
		return handler(readNote(path, filepath.ToSlash(rel)))
	})
}

func readNote(path, rel string) Note {
	note := Note{Path: path, RelativePath: rel}

	data, err := os.ReadFile(path)
	if err != nil {
		note.Err = err
		return note
	}
	note.Content = string(data)

	fm, err := parser.Parse(note.Content)
	if err != nil {
		note.Err = err
		return note
	}
	note.Frontmatter = fm
	return note
}

// LoadNote resolves ref to a note in the vault and reads it. ref may be
// a vault-relative path with or without the .md extension; as a
// fallback, the vault is searched for a note whose slugged path
// matches.
func LoadNote(vaultPath, ref string) (Note, error) {
	ref = paths.NormalizeRel(ref)

	candidates := []string{ref}
	if !strings.HasSuffix(ref, ".md") {
		candidates = append(candidates, ref+".md")
	}
	for _, rel := range candidates {
		full := filepath.Join(vaultPath, filepath.FromSlash(rel))
		if err := paths.ValidateWithinVault(vaultPath, full); err != nil {
			return Note{}, err
		}
		if info, err := os.Stat(full); err == nil && !info.IsDir() {
			return readNote(full, rel), nil
		}
	}

	// Fuzzy fallback: match by slugged path.
	want := slugs.PathSlug(ref)
	var found *Note
	err := WalkNotes(vaultPath, func(note Note) error {
		if found == nil && slugs.PathSlug(note.RelativePath) == want {
			n := note
			found = &n
		}
		return nil
	})
	if err != nil {
		return Note{}, err
	}
	if found == nil {
		return Note{}, fmt.Errorf("note not found: %s", ref)
	}
	return *found, nil
}
