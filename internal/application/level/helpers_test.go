package level

import (
	"image/color"

	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// stubEntity records how the camera drives it
type stubEntity struct {
	sprite     entity.Sprite
	act        entity.Activation
	spawnX     float64
	spawnY     float64
	inits      int
	updates    int
	draws      int
	onUpdate   func(ctx *Context)
	obstacleTT entity.TileType
}

func newStubEntity(x, y float64) *stubEntity {
	return &stubEntity{
		sprite: entity.NewSprite(x, y, entity.NewFrame(16, 16)),
		act:    entity.NewActivation(),
		spawnX: x,
		spawnY: y,
	}
}

func (e *stubEntity) Activation() *entity.Activation { return &e.act }
func (e *stubEntity) Bounds() entity.Rect            { return e.sprite.Bounds() }
func (e *stubEntity) HitRect() entity.Rect           { return e.sprite.HitRect() }
func (e *stubEntity) TileType() entity.TileType      { return e.obstacleTT }

func (e *stubEntity) Initialize() {
	e.inits++
	e.sprite.SetLocation(e.spawnX, e.spawnY)
}

func (e *stubEntity) Update(ctx *Context) {
	e.updates++
	if e.onUpdate != nil {
		e.onUpdate(ctx)
	}
}

func (e *stubEntity) Draw(c Canvas, cam *Camera) {
	e.draws++
	DrawSprite(c, cam, &e.sprite)
}

// stubPlayer is a tracked subject that never collides
type stubPlayer struct {
	body entity.Sprite
	hurt int
	done bool
}

func newStubPlayer(x, y float64) *stubPlayer {
	return &stubPlayer{body: entity.NewSprite(x, y, entity.NewFrame(16, 16))}
}

func (p *stubPlayer) Body() *entity.Sprite       { return &p.body }
func (p *stubPlayer) OnCollisionX(system.Result) {}
func (p *stubPlayer) OnCollisionY(system.Result) {}
func (p *stubPlayer) Hurt(Entity)                { p.hurt++ }
func (p *stubPlayer) CompleteLevel()             { p.done = true }
func (p *stubPlayer) OnGround() bool             { return true }

type fillCall struct {
	x, y, w, h float64
}

// recordingCanvas keeps every fill
type recordingCanvas struct {
	fills []fillCall
	texts []string
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, _ color.Color) {
	c.fills = append(c.fills, fillCall{x, y, w, h})
}

func (c *recordingCanvas) StrokeRect(_, _, _, _, _ float64, _ color.Color) {}

func (c *recordingCanvas) Text(_, _ float64, s string, _ color.Color) {
	c.texts = append(c.texts, s)
}

func createTestTileset() *Tileset {
	return NewTileset("test", 16, 16, 1, []TileDef{
		{Name: "sky", Type: entity.TilePassable, Frames: []entity.Frame{entity.NewFrame(16, 16)}},
		{Name: "ground", Type: entity.TileNotPassable, Frames: []entity.Frame{entity.NewFrame(16, 16)}},
	})
}

// createTestMap builds an all-sky map with a 160x160 viewport
func createTestMap(cols, rows int) *Map {
	m, err := NewMap(Config{
		Name:     "test",
		Layout:   Layout{Width: cols, Height: rows, Indices: make([]int, cols*rows)},
		Tileset:  createTestTileset(),
		Viewport: Viewport{Width: 160, Height: 160},
	})
	if err != nil {
		panic(err)
	}
	return m
}

func step(m *Map, p Player) {
	m.Update(&Context{Map: m, Player: p, DT: 1.0 / 60})
}
