package actor

import (
	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

type dinosaurState int

const (
	dinosaurWalk dinosaurState = iota
	dinosaurShoot
)

const (
	dinosaurSpeed   = 1.0
	dinosaurWalkMs  = 2000
	dinosaurAimMs   = 1000
	fireballSpeed   = 1.5
	fireballLifeMs  = 1000
	fireballOffsetY = 4
)

// Dinosaur patrols between two x positions and stops now and then to shoot
// a fireball in the direction it faces.
type Dinosaur struct {
	enemyBase
	endX        float64
	startFacing entity.Direction
	facing      entity.Direction
	state       dinosaurState
	prevState   dinosaurState
	shootTimer  entity.Timer
}

// NewDinosaur creates a dinosaur walking between start and end. Both points
// are expected on the same row; only their x is used as a bound.
func NewDinosaur(start, end level.Point, facing entity.Direction) *Dinosaur {
	anims := entity.Animations{}
	dino := sheet{width: 14, height: 17, scale: 3}.withHit(4, 2, 5, 13)
	dino.both(anims, "WALK", colorDinosaur, 200, 200)
	dino.both(anims, "SHOOT", colorDinoShoot, 0)

	d := &Dinosaur{endX: end.X, startFacing: facing}
	d.mapEntity = newMapEntity(start.X, start.Y, anims, "WALK_RIGHT")
	d.Initialize()
	return d
}

func (d *Dinosaur) Facing() entity.Direction { return d.facing }
func (d *Dinosaur) Shooting() bool           { return d.state == dinosaurShoot }

func (d *Dinosaur) Initialize() {
	d.facing = d.startFacing
	d.reset(facing("WALK", d.facing))
	d.state = dinosaurWalk
	d.prevState = dinosaurWalk
	d.shootTimer.SetWaitTime(dinosaurWalkMs)
}

func (d *Dinosaur) Update(ctx *level.Context) {
	d.shootTimer.Tick(ctx.DT)
	if d.shootTimer.IsTimeUp() && d.state != dinosaurShoot {
		d.state = dinosaurShoot
	}

	d.animate(ctx, d)

	switch d.state {
	case dinosaurWalk:
		d.walk(ctx.Grid())
	case dinosaurShoot:
		if d.prevState == dinosaurWalk {
			d.shootTimer.SetWaitTime(dinosaurAimMs)
			d.anim.Play(&d.Sprite, facing("SHOOT", d.facing))
		} else if d.shootTimer.IsTimeUp() {
			d.shoot(ctx)
			d.state = dinosaurWalk
			d.shootTimer.SetWaitTime(dinosaurWalkMs)
		}
	}
	d.prevState = d.state
}

// walk steps towards the facing bound and turns around once past it,
// snapping back onto the bound.
func (d *Dinosaur) walk(grid system.Grid) {
	d.anim.Play(&d.Sprite, facing("WALK", d.facing))
	system.MoveBodyX(grid, d, dinosaurSpeed*d.facing.Sign())

	if d.X+float64(d.ScaledWidth()) >= d.endX {
		system.MoveBodyX(grid, d, d.endX-d.Bounds().ScaledX2())
		d.facing = entity.Left
	} else if d.X <= d.startX {
		system.MoveBodyX(grid, d, d.startX-d.X)
		d.facing = entity.Right
	}
}

func (d *Dinosaur) shoot(ctx *level.Context) {
	x := float64(entity.Round(d.X))
	speed := -fireballSpeed
	if d.facing == entity.Right {
		x += float64(d.ScaledWidth())
		speed = fireballSpeed
	}
	y := float64(entity.Round(d.Y) + fireballOffsetY)

	if ctx.Map != nil {
		ctx.Map.AddEnemy(NewFireball(x, y, speed, fireballLifeMs))
	}
}

func (d *Dinosaur) OnCollisionX(r system.Result) {
	if !r.Collided {
		return
	}
	if r.Direction == entity.Right {
		d.facing = entity.Left
	} else {
		d.facing = entity.Right
	}
	d.anim.Play(&d.Sprite, facing("WALK", d.facing))
}

// Fireball flies straight until it hits a wall, touches the player or
// burns out. It is never respawned.
type Fireball struct {
	enemyBase
	speed    float64
	lifetime int
	timer    entity.Timer
}

// NewFireball creates a fireball moving speed pixels per frame that lives
// for lifetimeMs milliseconds.
func NewFireball(x, y, speed float64, lifetimeMs int) *Fireball {
	anims := entity.Animations{
		entity.DefaultAnimation: sheet{width: 7, height: 7, scale: 3}.withHit(1, 1, 5, 5).frames(colorFireball, 0),
	}

	f := &Fireball{speed: speed, lifetime: lifetimeMs}
	f.mapEntity = newMapEntity(x, y, anims, entity.DefaultAnimation)
	f.activation.Respawnable = false
	f.Initialize()
	return f
}

func (f *Fireball) Initialize() {
	f.reset(entity.DefaultAnimation)
	f.timer.SetWaitTime(f.lifetime)
}

func (f *Fireball) Update(ctx *level.Context) {
	f.timer.Tick(ctx.DT)
	if f.timer.IsTimeUp() {
		f.activation.Remove()
		return
	}

	system.MoveBodyX(ctx.Grid(), f, f.speed)
	f.anim.Update(&f.Sprite, ctx.DT)
	if f.touches(ctx) {
		ctx.Player.Hurt(f)
		f.activation.Remove()
	}
}

func (f *Fireball) OnCollisionX(r system.Result) {
	if r.Collided {
		f.activation.Remove()
	}
}
