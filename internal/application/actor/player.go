// Package actor holds the concrete things that live on a map: the player,
// enemies, interactive tiles and NPCs.
package actor

import (
	"strings"

	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

// PlayerState is what the player is doing this frame
type PlayerState int

const (
	Standing PlayerState = iota
	Walking
	Crouching
	Jumping
)

func (s PlayerState) String() string {
	switch s {
	case Standing:
		return "Standing"
	case Walking:
		return "Walking"
	case Crouching:
		return "Crouching"
	case Jumping:
		return "Jumping"
	default:
		return "Unknown"
	}
}

// AirGroundState tells whether a walker stands on something
type AirGroundState int

const (
	Ground AirGroundState = iota
	Air
)

// LevelState is the player's progress through the level
type LevelState int

const (
	LevelRunning LevelState = iota
	LevelCompleted
	PlayerDead
)

func (s LevelState) String() string {
	switch s {
	case LevelRunning:
		return "Running"
	case LevelCompleted:
		return "Completed"
	case PlayerDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Physics holds the player's movement values in pixels per frame
type Physics struct {
	Gravity           float64
	TerminalVelocityY float64
	JumpHeight        float64
	JumpDegrade       float64
	WalkSpeed         float64
	MomentumYIncrease float64
	Invincible        bool
}

// CatPhysics are the default player movement values
var CatPhysics = Physics{
	Gravity:           0.5,
	TerminalVelocityY: 6,
	JumpHeight:        14.5,
	JumpDegrade:       0.5,
	WalkSpeed:         3.1,
	MomentumYIncrease: 0.5,
}

// deathFallSpeed is how fast a dead player drops off the screen
const deathFallSpeed = 3

// PlayerListener is told when the player leaves the level
type PlayerListener interface {
	OnLevelCompleted()
	OnDeath()
}

// Player is the controllable cat
type Player struct {
	entity.Sprite
	anim entity.Animator
	phys Physics

	state         PlayerState
	previousState PlayerState
	airGround     AirGroundState
	previousAir   AirGroundState
	levelState    LevelState
	facing        entity.Direction

	jumpForce    float64
	momentumY    float64
	moveX, moveY float64
	previousY    float64

	keys      *system.KeyLocker
	listeners []PlayerListener
	notified  bool
}

// NewPlayer creates a player at (x, y)
func NewPlayer(x, y float64, phys Physics) *Player {
	p := &Player{
		phys:        phys,
		facing:      entity.Right,
		airGround:   Air,
		previousAir: Air,
		keys:        system.NewKeyLocker(),
		previousY:   y,
	}
	p.anim = entity.NewAnimator(catAnimations(), "STAND_RIGHT")
	p.Sprite = entity.NewSprite(x, y, p.anim.Frame())
	return p
}

func catAnimations() entity.Animations {
	anims := entity.Animations{}
	cat := sheet{width: 24, height: 24, scale: 3}.withHit(8, 9, 8, 9)

	cat.both(anims, "STAND", colorCat, 0)
	cat.both(anims, "WALK", colorCat, 200, 200, 200, 200)
	cat.both(anims, "JUMP", colorCat, 0)
	cat.both(anims, "FALL", colorCat, 0)
	cat.withHit(8, 12, 8, 6).both(anims, "CROUCH", colorCat, 0)
	sheet{width: 24, height: 24, scale: 3}.both(anims, "DEATH", colorCatDead, 100, 100, 0)
	return anims
}

func (p *Player) Body() *entity.Sprite { return &p.Sprite }

func (p *Player) State() PlayerState           { return p.state }
func (p *Player) AirGround() AirGroundState    { return p.airGround }
func (p *Player) LevelState() LevelState       { return p.levelState }
func (p *Player) Facing() entity.Direction     { return p.facing }
func (p *Player) Animation() string            { return p.anim.Current() }
func (p *Player) OnGround() bool               { return p.airGround == Ground }
func (p *Player) Physics() Physics             { return p.phys }
func (p *Player) AddListener(l PlayerListener) { p.listeners = append(p.listeners, l) }

// Update runs one frame. Map collision uses ctx's map, and the draw window
// of its camera decides when a finished or dead player has left the screen.
func (p *Player) Update(ctx *level.Context) {
	p.moveX, p.moveY = 0, 0

	switch p.levelState {
	case LevelRunning:
		p.updateRunning(ctx)
	case LevelCompleted:
		p.updateLevelCompleted(ctx)
	case PlayerDead:
		p.updateDead(ctx)
	}
}

func (p *Player) updateRunning(ctx *level.Context) {
	in := ctx.Input
	p.applyGravity()

	// state handlers may hand over to each other within one frame
	for {
		p.previousState = p.state
		p.handleState(in)
		if p.previousState == p.state {
			break
		}
	}
	p.previousAir = p.airGround

	p.anim.Update(&p.Sprite, ctx.DT)

	p.previousY = float64(entity.Round(p.Y))
	system.MoveBody(ctx.Grid(), p, p.moveX, p.moveY)

	p.keys.Release(in)
}

func (p *Player) applyGravity() {
	p.moveY += p.phys.Gravity + p.momentumY
}

func (p *Player) increaseMomentum() {
	p.momentumY += p.phys.MomentumYIncrease
	if p.momentumY > p.phys.TerminalVelocityY {
		p.momentumY = p.phys.TerminalVelocityY
	}
}

func (p *Player) play(name string) {
	p.anim.Play(&p.Sprite, name)
}

func (p *Player) handleState(in system.Controls) {
	switch p.state {
	case Standing:
		p.standing(in)
	case Walking:
		p.walking(in)
	case Crouching:
		p.crouching(in)
	case Jumping:
		p.jumping(in)
	}
}

func (p *Player) standing(in system.Controls) {
	p.play(facing("STAND", p.facing))

	switch {
	case in.Left || in.Right:
		p.state = Walking
	case p.keys.Pressed(in, system.KeyJump):
		p.state = Jumping
	case in.Crouch:
		p.state = Crouching
	}
}

func (p *Player) walking(in system.Controls) {
	p.play(facing("WALK", p.facing))

	switch {
	case in.Left:
		p.moveX -= p.phys.WalkSpeed
		p.facing = entity.Left
	case in.Right:
		p.moveX += p.phys.WalkSpeed
		p.facing = entity.Right
	default:
		p.state = Standing
	}

	if p.keys.Pressed(in, system.KeyJump) {
		p.state = Jumping
	} else if in.Crouch {
		p.state = Crouching
	}
}

func (p *Player) crouching(in system.Controls) {
	p.play(facing("CROUCH", p.facing))

	if !in.Crouch {
		p.state = Standing
	}
	if p.keys.Pressed(in, system.KeyJump) {
		p.state = Jumping
	}
}

func (p *Player) jumping(in system.Controls) {
	switch {
	case p.previousAir == Ground && p.airGround == Ground:
		// take off
		p.play(facing("JUMP", p.facing))
		p.airGround = Air
		p.jumpForce = p.phys.JumpHeight
		p.applyJumpForce()

	case p.airGround == Air:
		p.applyJumpForce()

		if p.previousY > float64(entity.Round(p.Y)) {
			p.play(facing("JUMP", p.facing))
		} else {
			p.play(facing("FALL", p.facing))
		}

		if in.Left {
			p.moveX -= p.phys.WalkSpeed
		} else if in.Right {
			p.moveX += p.phys.WalkSpeed
		}

		if p.moveY > 0 {
			p.increaseMomentum()
		}

	case p.previousAir == Air && p.airGround == Ground:
		p.state = Standing
	}
}

func (p *Player) applyJumpForce() {
	if p.jumpForce <= 0 {
		return
	}
	p.moveY -= p.jumpForce
	p.jumpForce -= p.phys.JumpDegrade
	if p.jumpForce < 0 {
		p.jumpForce = 0
	}
}

func (p *Player) OnCollisionX(system.Result) {}

// OnCollisionY grounds the player on a downward hit and ends the jump on a
// ceiling hit. Moving down without a hit means the player walked off a ledge.
func (p *Player) OnCollisionY(r system.Result) {
	switch r.Direction {
	case entity.Down:
		if r.Collided {
			p.momentumY = 0
			p.airGround = Ground
		} else {
			p.state = Jumping
			p.airGround = Air
		}
	case entity.Up:
		if r.Collided {
			p.jumpForce = 0
		}
	}
}

// Hurt kills the player when touched by an enemy
func (p *Player) Hurt(by level.Entity) {
	if p.phys.Invincible || p.levelState != LevelRunning {
		return
	}
	if _, ok := by.(Enemy); ok {
		p.levelState = PlayerDead
	}
}

// CompleteLevel ends the level in the player's favour
func (p *Player) CompleteLevel() {
	if p.levelState == LevelRunning {
		p.levelState = LevelCompleted
	}
}

func (p *Player) onScreen(ctx *level.Context) bool {
	if ctx.Map == nil {
		return false
	}
	return ctx.Map.Camera().ContainsDraw(p.Bounds())
}

// updateLevelCompleted lands the player, then walks it off the screen
func (p *Player) updateLevelCompleted(ctx *level.Context) {
	switch {
	case p.airGround != Ground && p.onScreen(ctx):
		p.play("FALL_RIGHT")
		p.applyGravity()
		p.increaseMomentum()
		p.anim.Update(&p.Sprite, ctx.DT)
		system.MoveBodyY(ctx.Grid(), p, p.moveY)
	case p.onScreen(ctx):
		p.play("WALK_RIGHT")
		p.anim.Update(&p.Sprite, ctx.DT)
		system.MoveBodyX(ctx.Grid(), p, p.phys.WalkSpeed)
	default:
		p.notify(PlayerListener.OnLevelCompleted)
	}
}

// updateDead plays the death animation, then drops the player off the screen
func (p *Player) updateDead(ctx *level.Context) {
	switch {
	case !strings.HasPrefix(p.anim.Current(), "DEATH"):
		p.play(facing("DEATH", p.facing))
		p.anim.Update(&p.Sprite, ctx.DT)
	case !p.anim.IsLastFrame():
		p.anim.Update(&p.Sprite, ctx.DT)
	case p.onScreen(ctx):
		p.MoveY(deathFallSpeed)
	default:
		p.notify(PlayerListener.OnDeath)
	}
}

func (p *Player) notify(event func(PlayerListener)) {
	if p.notified {
		return
	}
	p.notified = true
	for _, l := range p.listeners {
		event(l)
	}
}

// Draw draws the player relative to the camera
func (p *Player) Draw(c level.Canvas, cam *level.Camera) {
	level.DrawSprite(c, cam, &p.Sprite)
}
