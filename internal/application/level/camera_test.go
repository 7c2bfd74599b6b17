package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileengine/internal/domain/entity"
)

func TestNewCamera_TilesAndLeftover(t *testing.T) {
	cam := NewCamera(0, 0, 48, 48, Viewport{Width: 800, Height: 605}, 4)

	assert.Equal(t, 16, cam.Width)
	assert.Equal(t, 12, cam.Height)
	assert.Equal(t, 800.0, cam.EndBoundX())
	assert.Equal(t, 605.0, cam.EndBoundY())

	cam.X, cam.Y = 10, 20
	assert.Equal(t, 810.0, cam.EndBoundX())
	assert.Equal(t, 625.0, cam.EndBoundY())
}

func TestCamera_Windows(t *testing.T) {
	// 160px viewport of 16px tiles; update window reaches 4 tiles out
	cam := NewCamera(0, 0, 16, 16, Viewport{Width: 160, Height: 160}, 4)
	box := func(x, y float64) entity.Rect { return entity.NewRect(x, y, 16, 16) }

	tests := []struct {
		name       string
		r          entity.Rect
		wantUpdate bool
		wantDraw   bool
	}{
		{"on screen", box(50, 50), true, true},
		{"one tile right", box(170, 50), true, true},
		{"just past draw window right", box(176, 50), true, false},
		{"last pixel of update window right", box(223, 50), true, false},
		{"just past update window right", box(224, 50), false, false},
		{"just inside update window left", box(-79, 50), true, false},
		{"just past update window left", box(-80, 50), false, false},
		{"just inside draw window left", box(-31, 50), true, true},
		{"just past draw window left", box(-32, 50), true, false},
		{"far below", box(50, 400), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantUpdate, cam.ContainsUpdate(tt.r))
			assert.Equal(t, tt.wantDraw, cam.ContainsDraw(tt.r))
		})
	}
}

func TestCamera_ScaledBoundsAreUsedForWindows(t *testing.T) {
	cam := NewCamera(0, 0, 16, 16, Viewport{Width: 160, Height: 160}, 4)
	// 16px frame at scale 3 is 48px wide, so it reaches back into the window
	r := entity.NewScaledRect(-110, 50, 16, 16, 3)

	assert.True(t, cam.ContainsUpdate(r))
	assert.False(t, cam.ContainsUpdate(entity.NewRect(-110, 50, 16, 16)))
}

func TestCamera_ActivationHysteresis(t *testing.T) {
	m := createTestMap(40, 10)
	e := newStubEntity(300, 32)
	m.AddEnemy(e)

	for i := 0; i < 5; i++ {
		step(m, nil)
	}

	assert.Equal(t, 1, e.inits, "reinitialized once on leaving, not every frame")
	assert.Equal(t, entity.StatusInactive, e.act.Status)
	assert.Equal(t, 0, e.updates)
	assert.Empty(t, m.ActiveEnemies())

	// Back inside the window it becomes active and is updated
	e.sprite.SetLocation(100, 32)
	step(m, nil)

	assert.Equal(t, entity.StatusActive, e.act.Status)
	assert.Equal(t, 1, e.updates)
	assert.Len(t, m.ActiveEnemies(), 1)
	assert.Equal(t, 1, e.inits)
}

func TestCamera_RespawnResetsToSpawn(t *testing.T) {
	m := createTestMap(40, 10)
	e := newStubEntity(100, 32)
	m.AddEnemy(e)

	step(m, nil)
	require.Equal(t, entity.StatusActive, e.act.Status)

	// Wanders out of range mid-patrol
	e.sprite.SetLocation(500, 32)
	step(m, nil)

	assert.Equal(t, entity.StatusInactive, e.act.Status)
	assert.Equal(t, 100.0, e.sprite.X)
}

func TestCamera_NotRespawnableIsNotReinitialized(t *testing.T) {
	m := createTestMap(40, 10)
	e := newStubEntity(500, 32)
	e.act.Respawnable = false
	m.AddEnemy(e)

	step(m, nil)
	step(m, nil)

	assert.Equal(t, 0, e.inits)
	assert.Equal(t, entity.StatusInactive, e.act.Status)
}

func TestCamera_RemovalLag(t *testing.T) {
	m := createTestMap(40, 10)
	e := newStubEntity(50, 32)
	other := newStubEntity(60, 32)
	e.onUpdate = func(*Context) { e.act.Remove() }
	m.AddEnemy(e)
	m.AddEnemy(other)

	// Frame N: removes itself during its update, still owned by the map
	step(m, nil)
	assert.Len(t, m.Enemies(), 2)
	assert.True(t, e.act.IsRemoved())

	// Frame N+1: spliced out by the sweep, never updated again
	step(m, nil)
	assert.Len(t, m.Enemies(), 1)
	assert.Same(t, other, m.Enemies()[0])
	assert.Len(t, m.ActiveEnemies(), 1)
	assert.Equal(t, 1, e.updates)
}

func TestCamera_RemovedIsNotDrawn(t *testing.T) {
	m := createTestMap(40, 10)
	e := newStubEntity(50, 32)
	e.onUpdate = func(*Context) { e.act.Remove() }
	m.AddEnemy(e)

	step(m, nil)
	m.Draw(&recordingCanvas{})

	assert.Equal(t, 0, e.draws)
}

func TestCamera_AlwaysUpdated(t *testing.T) {
	m := createTestMap(100, 10)
	e := newStubEntity(1200, 32)
	e.act.AlwaysUpdated = true
	m.AddNPC(e)

	step(m, nil)
	step(m, nil)

	assert.Equal(t, 2, e.updates)
	assert.Equal(t, 0, e.inits)
	assert.Equal(t, entity.StatusActive, e.act.Status)

	// Still subject to removal
	e.act.Remove()
	step(m, nil)
	assert.Empty(t, m.NPCs())
}

func TestCamera_SpawnedDuringUpdateJoinsNextFrame(t *testing.T) {
	m := createTestMap(40, 10)
	child := newStubEntity(70, 32)
	parent := newStubEntity(50, 32)
	fired := false
	parent.onUpdate = func(ctx *Context) {
		if !fired {
			ctx.Map.AddEnemy(child)
			fired = true
		}
	}
	m.AddEnemy(parent)

	step(m, nil)
	assert.Len(t, m.Enemies(), 2)
	assert.Equal(t, 0, child.updates)

	step(m, nil)
	assert.Equal(t, 1, child.updates)
}

func TestCamera_CategoriesSweptIndependently(t *testing.T) {
	m := createTestMap(40, 10)
	enemy := newStubEntity(50, 32)
	tile := newStubEntity(60, 32)
	npc := newStubEntity(900, 32)
	m.AddEnemy(enemy)
	m.AddInteractiveTile(tile)
	m.AddNPC(npc)

	step(m, nil)

	assert.Len(t, m.ActiveEnemies(), 1)
	assert.Len(t, m.ActiveInteractiveTiles(), 1)
	assert.Empty(t, m.ActiveNPCs())
	assert.Equal(t, 1, enemy.updates)
	assert.Equal(t, 1, tile.updates)
	assert.Equal(t, 0, npc.updates)
}

func TestCamera_DrawOnlyInsideDrawWindow(t *testing.T) {
	m := createTestMap(40, 10)
	visible := newStubEntity(50, 32)
	offscreen := newStubEntity(200, 32) // active but not drawn
	m.AddEnemy(visible)
	m.AddEnemy(offscreen)

	step(m, nil)
	canvas := &recordingCanvas{}
	m.Draw(canvas)

	assert.Len(t, m.ActiveEnemies(), 2)
	assert.Equal(t, 1, visible.draws)
	assert.Equal(t, 0, offscreen.draws)
	// 12 columns (-1..11) by 10 rows of tiles, then one entity
	assert.Len(t, canvas.fills, 12*10+1)
}

func TestCamera_DrawUsesScreenCoordinates(t *testing.T) {
	m := createTestMap(40, 10)
	e := newStubEntity(300.4, 32)
	e.act.AlwaysUpdated = true
	m.AddEnemy(e)
	m.Camera().X = 200.6

	step(m, nil)
	canvas := &recordingCanvas{}
	m.Draw(canvas)

	last := canvas.fills[len(canvas.fills)-1]
	assert.Equal(t, 99.0, last.x) // Round(300.4) - Round(200.6)
	assert.Equal(t, 32.0, last.y)
}

func TestMap_DeadZoneScrollingX(t *testing.T) {
	// 640px wide map, 160px viewport, midpoint 80
	m := createTestMap(40, 10)
	p := newStubPlayer(0, 0)
	cam := m.Camera()

	t.Run("left of midpoint does not scroll", func(t *testing.T) {
		p.body.X = 60
		step(m, p)
		assert.Equal(t, 0.0, cam.X)
		assert.Equal(t, 60.0, cam.ScreenX(p.body.X))
	})

	t.Run("past midpoint pins subject", func(t *testing.T) {
		for _, x := range []float64{100, 180, 333} {
			p.body.X = x
			step(m, p)
			assert.Equal(t, 80.0, cam.ScreenX(p.body.X), "x=%v", x)
		}
	})

	t.Run("clamps at right edge and subject moves on screen", func(t *testing.T) {
		p.body.X = 600
		step(m, p)
		assert.Equal(t, 480.0, cam.X)
		assert.Equal(t, 640.0, cam.EndBoundX())
		assert.Equal(t, 120.0, cam.ScreenX(p.body.X))

		p.body.X = 620
		step(m, p)
		assert.Equal(t, 480.0, cam.X)
		assert.Equal(t, 140.0, cam.ScreenX(p.body.X))
	})

	t.Run("scrolls back left", func(t *testing.T) {
		p.body.X = 500
		step(m, p)
		assert.Equal(t, 420.0, cam.X)
		assert.Equal(t, 80.0, cam.ScreenX(p.body.X))
	})

	t.Run("clamps at left edge", func(t *testing.T) {
		p.body.X = 10
		step(m, p)
		assert.Equal(t, 0.0, cam.X)
		assert.Equal(t, 10.0, cam.ScreenX(p.body.X))
	})

	t.Run("subject world position is never moved", func(t *testing.T) {
		assert.Equal(t, 10.0, p.body.X)
	})
}

func TestMap_DeadZoneScrollingY(t *testing.T) {
	// 320px tall map, 160px viewport
	m := createTestMap(10, 20)
	p := newStubPlayer(0, 200)
	cam := m.Camera()

	step(m, p)
	assert.Equal(t, 120.0, cam.Y)
	assert.Equal(t, 80.0, cam.ScreenY(p.body.Y))

	p.body.Y = 310
	step(m, p)
	assert.Equal(t, 160.0, cam.Y)
	assert.Equal(t, 320.0, cam.EndBoundY())
}

func TestMap_AdjustCameraOff(t *testing.T) {
	m := createTestMap(40, 10)
	m.SetAdjustCamera(false)
	p := newStubPlayer(400, 0)

	step(m, p)

	assert.Equal(t, 0.0, m.Camera().X)
}

func TestCamera_AnimatesTilesInUpdateWindow(t *testing.T) {
	frames := []entity.Frame{
		entity.NewFrame(16, 16).WithDelay(100),
		entity.NewFrame(16, 16).WithDelay(100),
	}
	ts := NewTileset("anim", 16, 16, 1, []TileDef{{Name: "flower", Frames: frames}})
	m, err := NewMap(Config{
		Layout:   Layout{Width: 40, Height: 1, Indices: make([]int, 40)},
		Tileset:  ts,
		Viewport: Viewport{Width: 160, Height: 16},
	})
	require.NoError(t, err)

	// 0.2s is past the 100ms delay
	m.Update(&Context{Map: m, DT: 0.2})

	assert.Equal(t, 1, m.TileAt(14, 0).Anim.Index(), "last column of update window")
	assert.Equal(t, 0, m.TileAt(15, 0).Anim.Index(), "outside update window")
}
