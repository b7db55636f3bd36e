package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

//go:embed *.yaml scripts/*.tengo
var embedded embed.FS

// Store reads prefab files, preferring a copy on disk under Dir so edits
// can be picked up without rebuilding.
type Store struct {
	Dir string
	fs  fs.FS
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir, fs: embedded}
}

// Default reads from ./prefabs with the embedded files as fallback.
var Default = NewStore("prefabs")

func (s *Store) Read(name string) ([]byte, error) {
	clean := cleanName(name)
	if clean == "" {
		return nil, fmt.Errorf("prefabs: empty name")
	}
	if s.Dir != "" {
		data, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(clean)))
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("prefabs: read %s: %w", clean, err)
		}
	}
	data, err := fs.ReadFile(s.fs, clean)
	if err != nil {
		return nil, fmt.Errorf("prefabs: read %s: %w", clean, err)
	}
	return data, nil
}

// ReadScript reads scripts/<name>.
func (s *Store) ReadScript(name string) ([]byte, error) {
	return s.Read(path.Join("scripts", path.Base(cleanName(name))))
}

// ModTime reports when the on-disk copy last changed.
func (s *Store) ModTime(name string) (time.Time, bool) {
	if s.Dir == "" {
		return time.Time{}, false
	}
	info, err := os.Stat(filepath.Join(s.Dir, filepath.FromSlash(cleanName(name))))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

func cleanName(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "prefabs/")
	return strings.TrimPrefix(path.Clean("/"+s), "/")
}
