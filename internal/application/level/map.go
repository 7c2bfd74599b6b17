package level

import (
	"errors"
	"fmt"

	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// DefaultUpdateRange is how many tiles past the viewport entities keep updating
const DefaultUpdateRange = 4

// MaxTiles bounds width*height of a layout
const MaxTiles = 1 << 24

// ErrInvalidMap is returned when a map cannot be built from its layout
var ErrInvalidMap = errors.New("invalid map")

// Layout is the tile grid read from a map file: row-major tile indices
type Layout struct {
	Width   int
	Height  int
	Indices []int
}

// Config describes a map to build
type Config struct {
	Name        string
	Layout      Layout
	Tileset     *Tileset
	Viewport    Viewport
	PlayerStart Point // tile coordinates
	UpdateRange int
	// Populate spawns the map's entities. It runs on construction and on
	// every Reset.
	Populate func(m *Map) error
}

// Map owns the tile grid, the dynamic entity lists and the camera
type Map struct {
	cfg   Config
	tiles []*entity.Tile

	enemies     []Entity
	interactive []InteractiveTile
	npcs        []Entity

	camera       *Camera
	adjustCamera bool
}

// NewMap validates the layout and builds the map
func NewMap(cfg Config) (*Map, error) {
	l := cfg.Layout
	if l.Width < 0 || l.Height < 0 {
		return nil, fmt.Errorf("%w: %q has negative size %dx%d", ErrInvalidMap, cfg.Name, l.Width, l.Height)
	}
	if l.Width > MaxTiles || l.Height > MaxTiles || (l.Width != 0 && l.Height > MaxTiles/l.Width) {
		return nil, fmt.Errorf("%w: %q is %dx%d, more than %d tiles", ErrInvalidMap, cfg.Name, l.Width, l.Height, MaxTiles)
	}
	if len(l.Indices) < l.Width*l.Height {
		return nil, fmt.Errorf("%w: %q has %d tile indices, need %d", ErrInvalidMap, cfg.Name, len(l.Indices), l.Width*l.Height)
	}
	if cfg.Tileset == nil {
		return nil, fmt.Errorf("%w: %q has no tileset", ErrInvalidMap, cfg.Name)
	}
	if cfg.Tileset.ScaledTileWidth() <= 0 || cfg.Tileset.ScaledTileHeight() <= 0 {
		return nil, fmt.Errorf("%w: tileset %q has an empty tile size", ErrInvalidMap, cfg.Tileset.Name)
	}
	if cfg.UpdateRange <= 0 {
		cfg.UpdateRange = DefaultUpdateRange
	}

	m := &Map{cfg: cfg, adjustCamera: true}
	if err := m.Reset(); err != nil {
		return nil, err
	}
	return m, nil
}

// Reset rebuilds the tiles, the camera and every spawned entity
func (m *Map) Reset() error {
	l := m.cfg.Layout
	tw, th := m.ScaledTileWidth(), m.ScaledTileHeight()

	m.tiles = make([]*entity.Tile, l.Width*l.Height)
	for row := 0; row < l.Height; row++ {
		for col := 0; col < l.Width; col++ {
			i := col + l.Width*row
			m.tiles[i] = m.cfg.Tileset.Build(l.Indices[i], float64(col*tw), float64(row*th))
		}
	}

	m.enemies = nil
	m.interactive = nil
	m.npcs = nil
	m.camera = NewCamera(0, 0, tw, th, m.cfg.Viewport, m.cfg.UpdateRange)

	if m.cfg.Populate != nil {
		if err := m.cfg.Populate(m); err != nil {
			return fmt.Errorf("failed to populate map %q: %w", m.cfg.Name, err)
		}
	}
	return nil
}

func (m *Map) Name() string          { return m.cfg.Name }
func (m *Map) Tileset() *Tileset     { return m.cfg.Tileset }
func (m *Map) Viewport() Viewport    { return m.cfg.Viewport }
func (m *Map) Camera() *Camera       { return m.camera }
func (m *Map) Width() int            { return m.cfg.Layout.Width }
func (m *Map) Height() int           { return m.cfg.Layout.Height }
func (m *Map) ScaledTileWidth() int  { return m.cfg.Tileset.ScaledTileWidth() }
func (m *Map) ScaledTileHeight() int { return m.cfg.Tileset.ScaledTileHeight() }

// WidthPixels returns the map width in world pixels
func (m *Map) WidthPixels() int { return m.Width() * m.ScaledTileWidth() }

// HeightPixels returns the map height in world pixels
func (m *Map) HeightPixels() int { return m.Height() * m.ScaledTileHeight() }

// TileAt returns the tile at a grid position, or nil outside the grid
func (m *Map) TileAt(col, row int) *entity.Tile {
	if !m.inBounds(col, row) {
		return nil
	}
	return m.tiles[col+m.Width()*row]
}

// TileIndexAt converts a pixel position into grid coordinates
func (m *Map) TileIndexAt(px, py float64) (col, row int) {
	return entity.Round(px) / m.ScaledTileWidth(), entity.Round(py) / m.ScaledTileHeight()
}

// TileAtPosition returns the tile under a pixel position, or nil
func (m *Map) TileAtPosition(px, py float64) *entity.Tile {
	return m.TileAt(m.TileIndexAt(px, py))
}

func (m *Map) inBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < m.Width() && row < m.Height()
}

// PositionOfTile returns the top-left pixel of a grid position
func (m *Map) PositionOfTile(col, row int) Point {
	return Point{
		X: float64(col * m.ScaledTileWidth()),
		Y: float64(row * m.ScaledTileHeight()),
	}
}

// PlayerStartPosition returns the pixel position of the player start tile
func (m *Map) PlayerStartPosition() Point {
	start := m.cfg.PlayerStart
	return m.PositionOfTile(entity.Round(start.X), entity.Round(start.Y))
}

func (m *Map) Enemies() []Entity                   { return m.enemies }
func (m *Map) InteractiveTiles() []InteractiveTile { return m.interactive }
func (m *Map) NPCs() []Entity                      { return m.npcs }

// ActiveEnemies returns the enemies the camera activated this frame
func (m *Map) ActiveEnemies() []Entity { return m.camera.activeEnemies }

// ActiveInteractiveTiles returns the interactive tiles active this frame
func (m *Map) ActiveInteractiveTiles() []InteractiveTile { return m.camera.activeInteractive }

// ActiveNPCs returns the NPCs active this frame
func (m *Map) ActiveNPCs() []Entity { return m.camera.activeNPCs }

// ActiveObstacles exposes the active interactive tiles to collision
func (m *Map) ActiveObstacles() []system.Obstacle { return m.camera.obstacles }

// AddEnemy appends an enemy. Enemies added during an update are first
// considered by the next camera sweep.
func (m *Map) AddEnemy(e Entity) { m.enemies = append(m.enemies, e) }

// AddInteractiveTile appends an interactive tile
func (m *Map) AddInteractiveTile(t InteractiveTile) { m.interactive = append(m.interactive, t) }

// AddNPC appends an NPC
func (m *Map) AddNPC(n Entity) { m.npcs = append(m.npcs, n) }

// SetAdjustCamera turns dead-zone scrolling on or off
func (m *Map) SetAdjustCamera(adjust bool) { m.adjustCamera = adjust }

// Update scrolls the camera after the player and runs the camera's
// activation sweep, which updates every active entity.
func (m *Map) Update(ctx *Context) {
	if m.adjustCamera && ctx.Player != nil {
		body := ctx.Player.Body()
		m.adjustY(body)
		m.adjustX(body)
	}
	m.camera.Update(m, ctx)
}

// adjustX keeps the subject at the horizontal midpoint while there is map
// left to scroll. The camera is moved first and clamped afterwards, so near
// the map edge the subject drifts off the midpoint instead of stopping.
func (m *Map) adjustX(s *entity.Sprite) {
	cam := m.camera
	mid := float64(m.cfg.Viewport.MidX())
	end := float64(m.WidthPixels())
	screenX := cam.ScreenX(s.X)

	if screenX > mid && cam.EndBoundX() < end {
		cam.X += screenX - mid
		if cam.EndBoundX() > end {
			cam.X -= cam.EndBoundX() - end
		}
	} else if screenX < mid && cam.X > 0 {
		cam.X += screenX - mid
		if cam.X < 0 {
			cam.X = 0
		}
	}
}

func (m *Map) adjustY(s *entity.Sprite) {
	cam := m.camera
	mid := float64(m.cfg.Viewport.MidY())
	end := float64(m.HeightPixels())
	screenY := cam.ScreenY(s.Y)

	if screenY > mid && cam.EndBoundY() < end {
		cam.Y += screenY - mid
		if cam.EndBoundY() > end {
			cam.Y -= cam.EndBoundY() - end
		}
	} else if screenY < mid && cam.Y > 0 {
		cam.Y += screenY - mid
		if cam.Y < 0 {
			cam.Y = 0
		}
	}
}

// Draw renders the draw window: tiles first, then active entities
func (m *Map) Draw(c Canvas) {
	m.camera.Draw(c, m)
}
