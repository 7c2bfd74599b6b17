package system

import (
	"math"

	"github.com/younwookim/tileengine/internal/domain/entity"
)

// Axis selects which coordinate a move resolves along
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Obstacle is anything the resolver can be blocked by: static tiles and
// active interactive tiles.
type Obstacle interface {
	HitRect() entity.Rect
	TileType() entity.TileType
}

// Grid is the tile lookup a move is resolved against
type Grid interface {
	// TileAt returns nil outside the grid
	TileAt(col, row int) *entity.Tile
	TileIndexAt(px, py float64) (col, row int)
	ScaledTileWidth() int
	ScaledTileHeight() int
	// ActiveObstacles returns this frame's active interactive tiles
	ActiveObstacles() []Obstacle
}

// Result describes a resolved single-axis move
type Result struct {
	Moved     float64 // signed distance actually travelled
	Collided  bool
	Direction entity.Direction
}

// Collidable is an entity that reacts to the outcome of its own moves
type Collidable interface {
	Body() *entity.Sprite
	OnCollisionX(r Result)
	OnCollisionY(r Result)
}

// MoveX moves the sprite horizontally, stopping flush against blocking tiles
func MoveX(grid Grid, s *entity.Sprite, dx float64) Result {
	return Resolve(grid, s, dx, AxisX)
}

// MoveY moves the sprite vertically, stopping flush against blocking tiles
func MoveY(grid Grid, s *entity.Sprite, dy float64) Result {
	return Resolve(grid, s, dy, AxisY)
}

// MoveBody moves a collidable along Y and then X, reporting each axis to
// its collision hooks. With no grid the body moves freely and no hooks run.
func MoveBody(grid Grid, c Collidable, dx, dy float64) (rx, ry Result) {
	ry = MoveBodyY(grid, c, dy)
	rx = MoveBodyX(grid, c, dx)
	return rx, ry
}

// MoveBodyX resolves a horizontal move and calls OnCollisionX
func MoveBodyX(grid Grid, c Collidable, dx float64) Result {
	r := MoveX(grid, c.Body(), dx)
	if grid != nil {
		c.OnCollisionX(r)
	}
	return r
}

// MoveBodyY resolves a vertical move and calls OnCollisionY
func MoveBodyY(grid Grid, c Collidable, dy float64) Result {
	r := MoveY(grid, c.Body(), dy)
	if grid != nil {
		c.OnCollisionY(r)
	}
	return r
}

// Resolve moves s by delta along axis one whole pixel at a time, checking the
// grid after every step. On the first blocking hit the sprite is snapped flush
// against the obstacle and stepping stops. If nothing was hit, the fractional
// remainder is applied and checked once more, since it can round the hit
// rect into the next pixel.
//
// A nil grid means the entity is not part of a map: it moves by the raw delta.
func Resolve(grid Grid, s *entity.Sprite, delta float64, axis Axis) Result {
	dir := directionOf(delta, axis)
	if grid == nil {
		move(s, axis, delta)
		return Result{Moved: delta, Direction: dir}
	}

	start := position(s, axis)
	whole := int(math.Abs(delta))
	remainder := math.Abs(delta) - float64(whole)
	step := dir.Sign()

	collided := false
	for i := 0; i < whole; i++ {
		move(s, axis, step)
		if p, ok := adjustedPosition(grid, s, axis, dir); ok {
			setPosition(s, axis, p)
			collided = true
			break
		}
	}

	if !collided {
		move(s, axis, remainder*step)
		if p, ok := adjustedPosition(grid, s, axis, dir); ok {
			setPosition(s, axis, p)
			collided = true
		}
	}

	return Result{
		Moved:     position(s, axis) - start,
		Collided:  collided,
		Direction: dir,
	}
}

// adjustedPosition checks the tiles around the sprite's leading edge and the
// active obstacles. On a hit it returns the sprite position that puts its hit
// rect flush against the obstacle.
func adjustedPosition(grid Grid, s *entity.Sprite, axis Axis, dir entity.Direction) (float64, bool) {
	hit := s.HitRect()
	tw, th := grid.ScaledTileWidth(), grid.ScaledTileHeight()
	if tw <= 0 || th <= 0 {
		return 0, false
	}

	if axis == AxisX {
		span := max(hit.Height/th, 1)
		edge := hit.X1()
		if dir == entity.Right {
			edge = hit.X2()
		}
		col, row := grid.TileIndexAt(edge, hit.Y1())
		for j := -1; j <= span+1; j++ {
			if t := grid.TileAt(col, row+j); t != nil && hasCollided(hit, t, dir) {
				return flush(s, hit, t.HitRect(), axis, dir), true
			}
		}
	} else {
		span := max(hit.Width/tw, 1)
		edge := hit.Y1()
		if dir == entity.Down {
			edge = hit.Y2()
		}
		col, row := grid.TileIndexAt(hit.X1(), edge)
		for j := -1; j <= span+1; j++ {
			if t := grid.TileAt(col+j, row); t != nil && hasCollided(hit, t, dir) {
				return flush(s, hit, t.HitRect(), axis, dir), true
			}
		}
	}

	for _, o := range grid.ActiveObstacles() {
		if hasCollided(hit, o, dir) {
			return flush(s, hit, o.HitRect(), axis, dir), true
		}
	}
	return 0, false
}

// hasCollided applies the tile-type blocking rule.
// A jump-through platform only blocks a downward move whose hit rect bottom
// sits exactly one pixel below the platform top, i.e. it just landed on it.
func hasCollided(hit entity.Rect, o Obstacle, dir entity.Direction) bool {
	switch o.TileType() {
	case entity.TileNotPassable:
		return hit.Intersects(o.HitRect())
	case entity.TileJumpThroughPlatform:
		r := o.HitRect()
		return dir == entity.Down && hit.Intersects(r) &&
			entity.Round(hit.Y2())-1 == entity.Round(r.Y1())
	default:
		return false
	}
}

// flush returns the sprite coordinate that places the hit edge facing dir
// on the obstacle's opposite edge. The hit offset inside the sprite is kept.
func flush(s *entity.Sprite, hit, obstacle entity.Rect, axis Axis, dir entity.Direction) float64 {
	switch dir {
	case entity.Right:
		return s.X + obstacle.X1() - hit.X2()
	case entity.Left:
		return s.X + obstacle.X2() - hit.X1()
	case entity.Down:
		return s.Y + obstacle.Y1() - hit.Y2()
	default:
		return s.Y + obstacle.Y2() - hit.Y1()
	}
}

// directionOf picks the move direction; zero counts as Right/Down
func directionOf(delta float64, axis Axis) entity.Direction {
	if axis == AxisX {
		if delta < 0 {
			return entity.Left
		}
		return entity.Right
	}
	if delta < 0 {
		return entity.Up
	}
	return entity.Down
}

func position(s *entity.Sprite, axis Axis) float64 {
	if axis == AxisX {
		return s.X
	}
	return s.Y
}

func setPosition(s *entity.Sprite, axis Axis, p float64) {
	if axis == AxisX {
		s.X = p
		return
	}
	s.Y = p
}

func move(s *entity.Sprite, axis Axis, d float64) {
	if axis == AxisX {
		s.MoveX(d)
		return
	}
	s.MoveY(d)
}
