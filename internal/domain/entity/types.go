package entity

// Direction is a movement direction along one axis
type Direction int

const (
	Right Direction = iota
	Left
	Down
	Up
)

// Sign returns +1 for Right/Down and -1 for Left/Up
func (d Direction) Sign() float64 {
	if d == Left || d == Up {
		return -1
	}
	return 1
}

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Right:
		return "Right"
	case Left:
		return "Left"
	case Down:
		return "Down"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// Status is a map entity's activation status
type Status int

const (
	StatusActive Status = iota
	StatusInactive
	StatusRemoved
)

// String returns the string representation of the status
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusInactive:
		return "Inactive"
	case StatusRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Activation is the camera-facing state of a dynamic map entity.
// Respawnable entities are reset when they leave the update window;
// AlwaysUpdated entities ignore the window but can still be removed.
type Activation struct {
	Status        Status
	Respawnable   bool
	AlwaysUpdated bool
}

// NewActivation returns the default activation: active and respawnable
func NewActivation() Activation {
	return Activation{Status: StatusActive, Respawnable: true}
}

// Remove marks the entity for permanent removal on the next camera sweep
func (a *Activation) Remove() { a.Status = StatusRemoved }

// IsRemoved reports whether the entity has been marked for removal
func (a *Activation) IsRemoved() bool { return a.Status == StatusRemoved }

// TileType decides how a tile blocks movement
type TileType int

const (
	TilePassable TileType = iota
	TileNotPassable
	TileJumpThroughPlatform
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TilePassable:
		return "Passable"
	case TileNotPassable:
		return "NotPassable"
	case TileJumpThroughPlatform:
		return "JumpThroughPlatform"
	default:
		return "Unknown"
	}
}

// ParseTileType converts a config name into a TileType
func ParseTileType(name string) (TileType, bool) {
	switch name {
	case "", "passable":
		return TilePassable, true
	case "solid", "not_passable":
		return TileNotPassable, true
	case "platform", "jump_through_platform":
		return TileJumpThroughPlatform, true
	default:
		return TilePassable, false
	}
}

// Tile is a single cell of a map's tile grid.
// Its type is fixed for the lifetime of a map load.
type Tile struct {
	Sprite
	Anim  Animator
	Type  TileType
	Index int
}

// NewTile creates a tile at pixel position (x, y)
func NewTile(x, y float64, index int, tileType TileType, anims Animations) *Tile {
	t := &Tile{Type: tileType, Index: index}
	t.Anim = NewAnimator(anims, DefaultAnimation)
	t.Sprite = NewSprite(x, y, t.Anim.Frame())
	return t
}

// DefaultAnimation is the animation name used by single-animation entities
const DefaultAnimation = "DEFAULT"

// TileType implements the collision obstacle contract
func (t *Tile) TileType() TileType { return t.Type }

// Update advances the tile's animation
func (t *Tile) Update(dt float64) {
	t.Anim.Update(&t.Sprite, dt)
}
