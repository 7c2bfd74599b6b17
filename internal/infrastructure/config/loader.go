package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/tileengine/internal/infrastructure/mapfile"
)

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
	onDisk   bool
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
		onDisk:   true,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// BasePath returns the path the loader was created with
func (l *Loader) BasePath() string { return l.basePath }

// LoadGame loads game.yaml
func (l *Loader) LoadGame() (*GameConfig, error) {
	var cfg GameConfig
	if err := l.decode("game.yaml", &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadTileset loads tilesets/<name>.yaml
func (l *Loader) LoadTileset(name string) (*TilesetConfig, error) {
	var cfg TilesetConfig
	if err := l.decode("tilesets/"+name+".yaml", &cfg); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TileWidth <= 0 || cfg.TileHeight <= 0 {
		return nil, fmt.Errorf("tileset %s: tile size %dx%d must be positive", name, cfg.TileWidth, cfg.TileHeight)
	}
	return &cfg, nil
}

// LoadLevel loads levels/<name>.yaml
func (l *Loader) LoadLevel(name string) (*LevelConfig, error) {
	var cfg LevelConfig
	if err := l.decode("levels/"+name+".yaml", &cfg); err != nil {
		return nil, err
	}
	if cfg.Name == "" {
		cfg.Name = name
	}
	if cfg.Map == "" {
		return nil, fmt.Errorf("level %s: no map file", name)
	}
	if cfg.Tileset == "" {
		return nil, fmt.Errorf("level %s: no tileset", name)
	}
	return &cfg, nil
}

// MapStore returns a store over the maps/ directory. A loader reading from
// disk gets a writable store; an fs.FS loader gets a read-only one.
func (l *Loader) MapStore() (*mapfile.Store, error) {
	if l.onDisk {
		return mapfile.NewStore(filepath.Join(l.basePath, "maps")), nil
	}
	sub, err := fs.Sub(l.fsys, "maps")
	if err != nil {
		return nil, fmt.Errorf("failed to open maps directory: %w", err)
	}
	return mapfile.NewFSStore(sub), nil
}

func (l *Loader) decode(path string, out any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
