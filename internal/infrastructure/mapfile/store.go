package mapfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Store loads map files by name from a directory or an fs.FS
type Store struct {
	fsys  fs.FS
	dir   string // empty when the store is read-only
	cache *Cache
}

// NewStore creates a store over a directory on disk. Missing map files are
// created empty.
func NewStore(dir string) *Store {
	return &Store{fsys: os.DirFS(dir), dir: dir}
}

// NewFSStore creates a read-only store over fsys (for embedded maps).
// Missing map files load as empty maps without being written.
func NewFSStore(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// WithCache makes the store memoize parsed grids
func (s *Store) WithCache(c *Cache) *Store {
	s.cache = c
	return s
}

// Dir returns the directory backing the store, or "" if read-only
func (s *Store) Dir() string { return s.dir }

// Load returns the grid stored under name.
// A missing file is not an error: an empty "0 0" map is created and loaded.
func (s *Store) Load(name string) (Grid, error) {
	if s.cache != nil {
		if g, ok := s.cache.Get(name); ok {
			log.WithField("map", name).Debug("map cache hit")
			return g, nil
		}
	}

	data, err := fs.ReadFile(s.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		data, err = s.createEmpty(name)
	}
	if err != nil {
		return Grid{}, fmt.Errorf("failed to read map %q: %w", name, err)
	}

	g, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Grid{}, fmt.Errorf("failed to parse map %q: %w", name, err)
	}

	if s.cache != nil {
		s.cache.Set(name, g)
	}
	return g, nil
}

func (s *Store) createEmpty(name string) ([]byte, error) {
	logger := log.WithField("map", name)
	if s.dir == "" {
		logger.Warn("map file not found, loading empty map")
		return []byte(EmptyMap), nil
	}

	path := filepath.Join(s.dir, filepath.FromSlash(name))
	logger.WithField("path", path).Warn("map file not found, creating empty map file")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create map directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(EmptyMap), 0o644); err != nil {
		return nil, fmt.Errorf("failed to create empty map file: %w", err)
	}
	return []byte(EmptyMap), nil
}

// Save writes g under name and drops any cached copy
func (s *Store) Save(name string, g Grid) error {
	if s.dir == "" {
		return fmt.Errorf("cannot save map %q: store is read-only", name)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		return fmt.Errorf("failed to encode map %q: %w", name, err)
	}
	path := filepath.Join(s.dir, filepath.FromSlash(name))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write map %q: %w", name, err)
	}
	s.Invalidate(name)
	return nil
}

// Invalidate forgets the cached grid for name so the next Load reads the file
func (s *Store) Invalidate(name string) {
	if s.cache != nil {
		s.cache.Invalidate(name)
		log.WithField("map", name).Debug("map cache invalidated")
	}
}

// IsMapFile reports whether a path names a map file
func IsMapFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}
