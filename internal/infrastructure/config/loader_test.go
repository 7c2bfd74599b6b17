package config

import (
	"image/color"
	"io/fs"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const configDir = "../../../cmd/game/configs"

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Display.ScreenWidth)
	assert.Equal(t, 605, cfg.Display.ScreenHeight)
	assert.Equal(t, 100, cfg.Display.TPS)
	assert.Equal(t, 4, cfg.Camera.UpdateRange)
	assert.Equal(t, 0.5, cfg.Player.Gravity)
	assert.Equal(t, 14.5, cfg.Player.JumpHeight)
	assert.Equal(t, "test", cfg.FirstLevel())
}

func TestLoader_LoadTileset(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadTileset("common")
	require.NoError(t, err)

	assert.Equal(t, 16, cfg.TileWidth)
	assert.Equal(t, 3.0, cfg.Scale)
	require.Len(t, cfg.Tiles, 17)

	assert.Equal(t, "grass", cfg.Tiles[0].Name)
	assert.Equal(t, "solid", cfg.Tiles[0].Type)

	branch := cfg.Tiles[5]
	assert.Equal(t, "platform", branch.Type)
	require.NotNil(t, branch.Hit)
	assert.Equal(t, HitConfig{X: 0, Y: 6, Width: 16, Height: 4}, *branch.Hit)

	sun := cfg.Tiles[3]
	require.Len(t, sun.Frames, 2)
	assert.Equal(t, 400, sun.Frames[0].Delay)
}

func TestLoader_LoadLevel(t *testing.T) {
	loader := NewLoader(configDir)

	cfg, err := loader.LoadLevel("test")
	require.NoError(t, err)

	assert.Equal(t, "test_map.txt", cfg.Map)
	assert.Equal(t, "common", cfg.Tileset)
	assert.Equal(t, PointConfig{X: 1, Y: 11}, cfg.PlayerStart)
	require.Len(t, cfg.Enemies, 2)
	assert.Equal(t, "dinosaur", cfg.Enemies[1].Kind)
	require.NotNil(t, cfg.Enemies[1].End)
	assert.Equal(t, 22.0, cfg.Enemies[1].End.X)
	require.Len(t, cfg.NPCs, 1)
	assert.Equal(t, -13.0, cfg.NPCs[0].Offset.Y)
}

func TestLoader_MapStoreOnDisk(t *testing.T) {
	loader := NewLoader(configDir)

	store, err := loader.MapStore()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "maps"), store.Dir())

	g, err := store.Load("test_map.txt")
	require.NoError(t, err)
	assert.Equal(t, 40, g.Width)
	assert.Equal(t, 15, g.Height)
}

func TestLoader_FromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"game.yaml":          {Data: []byte("levels: [a, b]\n")},
		"levels/a.yaml":      {Data: []byte("map: a.txt\ntileset: t\n")},
		"levels/broken.yaml": {Data: []byte("map: [\n")},
		"levels/nomap.yaml":  {Data: []byte("tileset: t\n")},
		"tilesets/t.yaml":    {Data: []byte("tile_width: 8\ntile_height: 8\n")},
		"tilesets/z.yaml":    {Data: []byte("scale: 2\n")},
		"maps/a.txt":         {Data: []byte("1 1\n0\n")},
	}
	loader := NewFSLoader(fsys, "mem")

	t.Run("defaults are applied", func(t *testing.T) {
		cfg, err := loader.LoadGame()
		require.NoError(t, err)
		assert.Equal(t, 60, cfg.Display.TPS)
		assert.Equal(t, 4, cfg.Camera.UpdateRange)
		assert.Equal(t, "b", cfg.NextLevel("a"))
		assert.Equal(t, "", cfg.NextLevel("b"))
	})

	t.Run("level name falls back to file name", func(t *testing.T) {
		cfg, err := loader.LoadLevel("a")
		require.NoError(t, err)
		assert.Equal(t, "a", cfg.Name)
	})

	t.Run("tileset scale defaults to 1", func(t *testing.T) {
		cfg, err := loader.LoadTileset("t")
		require.NoError(t, err)
		assert.Equal(t, 1.0, cfg.Scale)
		assert.Equal(t, "t", cfg.Name)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := loader.LoadLevel("missing")
		assert.ErrorIs(t, err, fs.ErrNotExist)

		_, err = loader.LoadLevel("broken")
		assert.ErrorContains(t, err, "failed to parse")

		_, err = loader.LoadLevel("nomap")
		assert.ErrorContains(t, err, "no map file")

		_, err = loader.LoadTileset("z")
		assert.ErrorContains(t, err, "must be positive")
	})

	t.Run("read-only map store", func(t *testing.T) {
		store, err := loader.MapStore()
		require.NoError(t, err)
		assert.Equal(t, "", store.Dir())

		g, err := store.Load("a.txt")
		require.NoError(t, err)
		assert.Equal(t, []int{0}, g.Indices)
	})
}

func TestColor_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{name: "rgb", input: `"#ff8000"`, want: color.RGBA{255, 128, 0, 255}},
		{name: "rgba", input: `"#10203040"`, want: color.RGBA{16, 32, 48, 64}},
		{name: "without hash", input: `"000000"`, want: color.RGBA{0, 0, 0, 255}},
		{name: "short", input: `"#fff"`, wantErr: true},
		{name: "not hex", input: `"#gg0000"`, wantErr: true},
		{name: "not a scalar", input: `[1, 2]`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Color
			err := yaml.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.RGBA)
		})
	}
}
