package actor

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// dt is one frame at 100 ticks per second
const dt = 0.01

var noInput system.Controls

// createTestTileset returns a 16x16 tileset at scale 3 (48px tiles):
// 0 sky, 1 solid ground, 2 one-way branch
func createTestTileset() *level.Tileset {
	tile := entity.NewFrame(16, 16).WithScale(3)
	return level.NewTileset("test", 16, 16, 3, []level.TileDef{
		{Name: "sky", Type: entity.TilePassable, Frames: []entity.Frame{tile}},
		{Name: "ground", Type: entity.TileNotPassable, Frames: []entity.Frame{tile}},
		{Name: "branch", Type: entity.TileJumpThroughPlatform, Frames: []entity.Frame{tile.WithHit(0, 6, 16, 4)}},
	})
}

// createTestMap builds a map from rows of '.', '#' and '=' with a
// 480x480 viewport
func createTestMap(t *testing.T, rows ...string) *level.Map {
	t.Helper()

	layout := level.Layout{Height: len(rows)}
	if len(rows) > 0 {
		layout.Width = len(rows[0])
	}
	for _, row := range rows {
		for _, ch := range row {
			switch ch {
			case '#':
				layout.Indices = append(layout.Indices, 1)
			case '=':
				layout.Indices = append(layout.Indices, 2)
			default:
				layout.Indices = append(layout.Indices, 0)
			}
		}
	}

	m, err := level.NewMap(level.Config{
		Name:     "test",
		Layout:   layout,
		Tileset:  createTestTileset(),
		Viewport: level.Viewport{Width: 480, Height: 480},
	})
	require.NoError(t, err)
	return m
}

// openRoom is 10x6 tiles with a solid floor whose top is at y=240
var openRoom = []string{
	"..........",
	"..........",
	"..........",
	"..........",
	"..........",
	"##########",
}

// createTestContext returns a context for one frame
func createTestContext(m *level.Map, p level.Player, in system.Controls) *level.Context {
	return &level.Context{Map: m, Player: p, Input: in, DT: dt}
}

// step runs one frame in game order: the player, then the map
func step(m *level.Map, p *Player, in system.Controls) {
	ctx := createTestContext(m, p, in)
	p.Update(ctx)
	m.Update(ctx)
}

// createGroundedPlayer returns a player standing on the floor of openRoom
func createGroundedPlayer(t *testing.T, m *level.Map, x float64) *Player {
	t.Helper()

	p := NewPlayer(x, 150, CatPhysics)
	for i := 0; !p.OnGround() || p.State() != Standing; i++ {
		require.Less(t, i, 200, "player never landed")
		step(m, p, system.Controls{})
	}
	return p
}

type recordingListener struct {
	completed int
	died      int
}

func (l *recordingListener) OnLevelCompleted() { l.completed++ }
func (l *recordingListener) OnDeath()          { l.died++ }

type recordingCanvas struct {
	fills   int
	strokes int
	texts   []string
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, clr color.Color)          { c.fills++ }
func (c *recordingCanvas) StrokeRect(x, y, w, h, width float64, clr color.Color) { c.strokes++ }
func (c *recordingCanvas) Text(x, y float64, s string, clr color.Color)          { c.texts = append(c.texts, s) }
