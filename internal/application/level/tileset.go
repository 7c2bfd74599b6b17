package level

import (
	"image/color"

	"github.com/younwookim/tileengine/internal/domain/entity"
)

// TileDef describes how a tile index is built
type TileDef struct {
	Name   string
	Type   entity.TileType
	Frames []entity.Frame
}

// Tileset maps the tile indices found in a map file to tile definitions
type Tileset struct {
	Name       string
	TileWidth  int
	TileHeight int
	Scale      float64
	defs       []TileDef
	fallback   TileDef
}

// NewTileset creates a tileset. Index i of defs is tile index i; any other
// index builds a black passable tile.
func NewTileset(name string, tileWidth, tileHeight int, scale float64, defs []TileDef) *Tileset {
	if scale <= 0 {
		scale = 1
	}
	return &Tileset{
		Name:       name,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Scale:      scale,
		defs:       defs,
		fallback: TileDef{
			Name: "default",
			Type: entity.TilePassable,
			Frames: []entity.Frame{
				entity.NewFrame(tileWidth, tileHeight).
					WithScale(scale).
					WithColor(color.RGBA{0, 0, 0, 255}),
			},
		},
	}
}

// Def returns the definition for a tile index
func (t *Tileset) Def(index int) TileDef {
	if index < 0 || index >= len(t.defs) {
		return t.fallback
	}
	return t.defs[index]
}

// Len returns the number of defined tiles
func (t *Tileset) Len() int { return len(t.defs) }

// Build creates the tile for index at pixel position (x, y)
func (t *Tileset) Build(index int, x, y float64) *entity.Tile {
	def := t.Def(index)
	frames := def.Frames
	if len(frames) == 0 {
		frames = t.fallback.Frames
	}
	return entity.NewTile(x, y, index, def.Type, entity.Animations{
		entity.DefaultAnimation: frames,
	})
}

// ScaledTileWidth returns the tile width on screen
func (t *Tileset) ScaledTileWidth() int {
	return entity.Round(float64(t.TileWidth) * t.Scale)
}

// ScaledTileHeight returns the tile height on screen
func (t *Tileset) ScaledTileHeight() int {
	return entity.Round(float64(t.TileHeight) * t.Scale)
}
