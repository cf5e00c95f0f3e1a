// Package paths provides canonical helpers for vault-relative path
// handling so that scanning, organizing, and CLI operations stay
// consistent.
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrPathOutsideVault is returned when a path escapes the vault root.
var ErrPathOutsideVault = errors.New("path is outside the vault")

// NormalizeRel normalizes a vault-relative path-like value:
// - converts OS separators to '/'
// - trims leading "./" and leading "/"
// - collapses repeated '/'
func NormalizeRel(p string) string {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	p = strings.TrimPrefix(p, "/")
	for strings.Contains(p, "//") {
		p = strings.ReplaceAll(p, "//", "/")
	}
	return p
}

// ValidateWithinVault verifies that path resolves to a location inside
// vaultPath. Both arguments may be relative; they are resolved before
// comparison.
func ValidateWithinVault(vaultPath, path string) error {
	absVault, err := filepath.Abs(vaultPath)
	if err != nil {
		return fmt.Errorf("resolve vault path: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	rel, err := filepath.Rel(absVault, absPath)
	if err != nil {
		return ErrPathOutsideVault
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return ErrPathOutsideVault
	}
	return nil
}

// Stem returns the filename portion of a path without its extension.
func Stem(p string) string {
	base := filepath.Base(filepath.ToSlash(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Dir returns the vault-relative directory portion of a normalized
// path, or "" for a top-level entry.
func Dir(p string) string {
	dir := filepath.ToSlash(filepath.Dir(NormalizeRel(p)))
	if dir == "." {
		return ""
	}
	return dir
}
