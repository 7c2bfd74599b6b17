package actor

import (
	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// interactiveTile is a map entity that also blocks movement like a tile
type interactiveTile struct {
	mapEntity
	tileType entity.TileType
}

func (t *interactiveTile) TileType() entity.TileType { return t.tileType }

func (t *interactiveTile) Update(ctx *level.Context) {
	t.anim.Update(&t.Sprite, ctx.DT)
}

const platformSpeed = 1.0

// MovingPlatform slides back and forth between two x positions and carries
// a grounded player standing on it.
type MovingPlatform struct {
	interactiveTile
	endX           float64
	startDirection entity.Direction
	direction      entity.Direction
}

// NewMovingPlatform creates a 16x16 platform tile scaled 3x whose hit
// bounds are the branch strip (0, 6, 16, 4).
func NewMovingPlatform(start, end level.Point, tileType entity.TileType, direction entity.Direction) *MovingPlatform {
	anims := entity.Animations{
		entity.DefaultAnimation: sheet{width: 16, height: 16, scale: 3}.withHit(0, 6, 16, 4).frames(colorPlatform, 0),
	}

	p := &MovingPlatform{endX: end.X, startDirection: direction}
	p.mapEntity = newMapEntity(start.X, start.Y, anims, entity.DefaultAnimation)
	p.tileType = tileType
	p.Initialize()
	return p
}

func (p *MovingPlatform) Direction() entity.Direction { return p.direction }

func (p *MovingPlatform) Initialize() {
	p.reset(entity.DefaultAnimation)
	p.direction = p.startDirection
}

// Update moves the platform without collision, clamps it to its bounds and
// then drags the player along: pushed aside by a solid platform, carried
// when standing flush on top.
func (p *MovingPlatform) Update(ctx *level.Context) {
	dx := platformSpeed * p.direction.Sign()
	p.MoveX(dx)

	if p.X+float64(p.ScaledWidth()) >= p.endX {
		diff := p.endX - p.Bounds().ScaledX2()
		p.MoveX(diff)
		dx += diff
		p.direction = entity.Left
	} else if p.X <= p.startX {
		diff := p.startX - p.X
		p.MoveX(diff)
		dx += diff
		p.direction = entity.Right
	}

	if ctx.Player != nil {
		p.dragPlayer(ctx, dx)
	}

	p.interactiveTile.Update(ctx)
}

func (p *MovingPlatform) dragPlayer(ctx *level.Context, dx float64) {
	player := ctx.Player
	body := player.Body()
	hit := p.HitRect()
	ph := body.HitRect()
	grid := ctx.Grid()

	if p.tileType == entity.TileNotPassable && p.Intersects(body) {
		if dx >= 0 && ph.X1() <= hit.X2() {
			system.MoveBodyX(grid, player, hit.X2()-ph.X1())
		} else if dx <= 0 && ph.X2() >= hit.X1() {
			system.MoveBodyX(grid, player, hit.X1()-ph.X2())
		}
	}

	ph = body.HitRect()
	if p.Overlaps(body) && entity.Round(ph.Y2()) == entity.Round(hit.Y1()) && player.OnGround() {
		system.MoveBodyX(grid, player, dx)
	}
}

// EndLevelBox completes the level when the player touches it
type EndLevelBox struct {
	interactiveTile
}

// NewEndLevelBox creates the gold box at (x, y)
func NewEndLevelBox(x, y float64) *EndLevelBox {
	anims := entity.Animations{
		entity.DefaultAnimation: sheet{width: 16, height: 16, scale: 3}.withHit(1, 1, 14, 14).frames(colorGoldBox, 500, 500, 500),
	}

	b := &EndLevelBox{}
	b.mapEntity = newMapEntity(x, y, anims, entity.DefaultAnimation)
	b.tileType = entity.TilePassable
	return b
}

func (b *EndLevelBox) Initialize() { b.reset(entity.DefaultAnimation) }

func (b *EndLevelBox) Update(ctx *level.Context) {
	b.interactiveTile.Update(ctx)
	if ctx.Player != nil && b.Intersects(ctx.Player.Body()) {
		ctx.Player.CompleteLevel()
	}
}
