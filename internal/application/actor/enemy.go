package actor

import (
	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// Enemy is a map entity that kills the player on touch
type Enemy interface {
	level.Entity
	enemy()
}

// mapEntity is the state every spawned actor shares: a sprite, its
// animations, the camera activation and the spawn point it resets to.
type mapEntity struct {
	entity.Sprite
	anim       entity.Animator
	activation entity.Activation
	startX     float64
	startY     float64
	startAnim  string
}

func newMapEntity(x, y float64, anims entity.Animations, startAnim string) mapEntity {
	e := mapEntity{
		anim:       entity.NewAnimator(anims, startAnim),
		activation: entity.NewActivation(),
		startX:     x,
		startY:     y,
		startAnim:  startAnim,
	}
	e.Sprite = entity.NewSprite(x, y, e.anim.Frame())
	return e
}

func (e *mapEntity) Activation() *entity.Activation { return &e.activation }
func (e *mapEntity) Body() *entity.Sprite           { return &e.Sprite }
func (e *mapEntity) Animation() string              { return e.anim.Current() }

// reset returns to the spawn point showing the first frame of anim
func (e *mapEntity) reset(anim string) {
	e.SetLocation(e.startX, e.startY)
	e.anim.Play(&e.Sprite, anim)
	e.anim.Restart(&e.Sprite)
}

func (e *mapEntity) Draw(c level.Canvas, cam *level.Camera) {
	level.DrawSprite(c, cam, &e.Sprite)
}

func (e *mapEntity) OnCollisionX(system.Result) {}
func (e *mapEntity) OnCollisionY(system.Result) {}

type enemyBase struct {
	mapEntity
}

func (enemyBase) enemy() {}

// touches reports whether the player's hit rect intersects this enemy's
func (e *enemyBase) touches(ctx *level.Context) bool {
	return ctx.Player != nil && e.Intersects(ctx.Player.Body())
}

// animate advances the animation and hurts the player on touch
func (e *enemyBase) animate(ctx *level.Context, self Enemy) {
	e.anim.Update(&e.Sprite, ctx.DT)
	if e.touches(ctx) {
		ctx.Player.Hurt(self)
	}
}

// Bug walks along the ground and turns around at walls
type Bug struct {
	enemyBase
	startFacing entity.Direction
	facing      entity.Direction
	airGround   AirGroundState
}

const (
	bugGravity = 0.5
	bugSpeed   = 0.5
)

// NewBug creates a bug at (x, y) walking towards facing
func NewBug(x, y float64, facing entity.Direction) *Bug {
	anims := entity.Animations{}
	sheet{width: 24, height: 15, scale: 2}.withHit(6, 6, 12, 7).both(anims, "WALK", colorBug, 100, 100)

	b := &Bug{startFacing: facing}
	b.mapEntity = newMapEntity(x, y, anims, "WALK_LEFT")
	b.Initialize()
	return b
}

func (b *Bug) Facing() entity.Direction { return b.facing }

func (b *Bug) Initialize() {
	b.facing = b.startFacing
	b.reset(facing("WALK", b.facing))
	b.airGround = Ground
}

// Update falls under gravity and walks only while on the ground
func (b *Bug) Update(ctx *level.Context) {
	var dx float64
	if b.airGround == Ground {
		dx = bugSpeed * b.facing.Sign()
	}
	system.MoveBody(ctx.Grid(), b, dx, bugGravity)

	b.animate(ctx, b)
}

func (b *Bug) OnCollisionX(r system.Result) {
	if !r.Collided {
		return
	}
	if r.Direction == entity.Right {
		b.facing = entity.Left
	} else {
		b.facing = entity.Right
	}
	b.anim.Play(&b.Sprite, facing("WALK", b.facing))
}

func (b *Bug) OnCollisionY(r system.Result) {
	if r.Direction != entity.Down {
		return
	}
	if r.Collided {
		b.airGround = Ground
	} else {
		b.airGround = Air
	}
}
