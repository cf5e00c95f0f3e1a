package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/shrike/internal/paths"
)

// Storage is the filesystem collaborator organize moves notes through.
// All paths are vault-relative.
type Storage interface {
	Exists(rel string) bool
	IsDir(rel string) bool
	CreateDirectory(rel string) error
	Move(fromRel, toRel string) error
}

type osStorage struct {
	root string
}

// NewStorage returns a Storage rooted at vaultPath. Every operation
// verifies its arguments stay inside the vault.
func NewStorage(vaultPath string) Storage {
	return &osStorage{root: vaultPath}
}

func (s *osStorage) abs(rel string) (string, error) {
	full := filepath.Join(s.root, filepath.FromSlash(rel))
	if err := paths.ValidateWithinVault(s.root, full); err != nil {
		return "", err
	}
	return full, nil
}

func (s *osStorage) Exists(rel string) bool {
	full, err := s.abs(rel)
	if err != nil {
		return false
	}
	_, err = os.Stat(full)
	return err == nil
}

func (s *osStorage) IsDir(rel string) bool {
	full, err := s.abs(rel)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

func (s *osStorage) CreateDirectory(rel string) error {
	full, err := s.abs(rel)
	if err != nil {
		return err
	}
	return os.Mkdir(full, 0o755)
}

func (s *osStorage) Move(fromRel, toRel string) error {
	from, err := s.abs(fromRel)
	if err != nil {
		return err
	}
	to, err := s.abs(toRel)
	if err != nil {
		return err
	}
	return os.Rename(from, to)
}

// EnsureDirectory creates every missing ancestor of dir, one segment at
// a time. A segment that already exists as a non-directory is fatal:
// the caller must not overwrite it.
func EnsureDirectory(s Storage, dir string) error {
	dir = paths.NormalizeRel(dir)
	if dir == "" {
		return nil
	}

	current := ""
	for _, segment := range strings.Split(dir, "/") {
		if segment == "" {
			continue
		}
		if current == "" {
			current = segment
		} else {
			current = current + "/" + segment
		}

		if s.Exists(current) {
			if !s.IsDir(current) {
				return fmt.Errorf("cannot create directory %q: already exists as a file", current)
			}
			continue
		}
		if err := s.CreateDirectory(current); err != nil {
			return fmt.Errorf("create directory %q: %w", current, err)
		}
	}
	return nil
}

// Move computes the collision-free final path for a note, ensures the
// destination directory exists, and moves the note there. It returns
// the final vault-relative path. A note already at its destination is a
// no-op.
func Move(s Storage, currentRel, targetRel string) (string, error) {
	currentRel = paths.NormalizeRel(currentRel)
	targetRel = paths.NormalizeRel(targetRel)

	if targetRel == currentRel {
		return currentRel, nil
	}

	if dir := paths.Dir(targetRel); dir != "" {
		if err := EnsureDirectory(s, dir); err != nil {
			return "", err
		}
	}

	final := ResolveCollision(targetRel, s.Exists)
	if err := s.Move(currentRel, final); err != nil {
		return "", fmt.Errorf("move %q to %q: %w", currentRel, final, err)
	}
	return final, nil
}
