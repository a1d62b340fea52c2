// Package filex handles the exported artifact files: naming, writing
// ciphertext documents into the artifact directory and reading them back
// from user-chosen paths.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Store writes and reads exported artifacts under a base directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// EnsureDir creates the artifact directory if missing and returns its path.
func (s *Store) EnsureDir() (string, error) {
	if err := os.MkdirAll(s.dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", s.dir, err)
	}
	return s.dir, nil
}

// Write stores data under name inside the artifact directory and returns
// the full path of the written file.
func (s *Store) Write(name string, data []byte) (string, error) {
	dir, err := s.EnsureDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", path, err)
	}
	return path, nil
}

// Read loads an artifact from an arbitrary user-chosen path. The open path
// accepts any readable file; it does not have to live in the store's
// directory.
func (s *Store) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact %s: %w", path, err)
	}
	return data, nil
}

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	unsafeChars    = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)
)

// SanitizeName trims s, collapses whitespace runs to '-' and strips
// everything outside [a-zA-Z0-9-_.], for safe use inside file names.
func SanitizeName(s string) string {
	s = strings.TrimSpace(s)
	s = whitespaceRuns.ReplaceAllString(s, "-")
	return unsafeChars.ReplaceAllString(s, "")
}

// ArtifactName builds the exported ciphertext file name for a capsule. The
// shape is frozen: CTTF-<name>_<birthday>_<unix-ms>.enc.json.
func ArtifactName(ownerName, ownerBirthday string, now time.Time) string {
	return fmt.Sprintf("CTTF-%s_%s_%d.enc.json",
		SanitizeName(ownerName), SanitizeName(ownerBirthday), now.UnixMilli())
}
