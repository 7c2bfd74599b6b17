package actor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/domain/entity"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
)

// Spawn is a resolved spawn entry: positions are world pixels
type Spawn struct {
	Kind     string
	Start    level.Point
	End      level.Point
	Facing   entity.Direction
	Message  string
	TileType entity.TileType
}

type (
	enemyFactory func(Spawn) level.Entity
	tileFactory  func(Spawn) level.InteractiveTile
	npcFactory   func(Spawn) level.Entity
)

var enemyKinds = map[string]enemyFactory{
	"bug": func(s Spawn) level.Entity {
		return NewBug(s.Start.X, s.Start.Y, s.Facing)
	},
	"dinosaur": func(s Spawn) level.Entity {
		return NewDinosaur(s.Start, s.End, s.Facing)
	},
	"fireball": func(s Spawn) level.Entity {
		speed := fireballSpeed * s.Facing.Sign()
		return NewFireball(s.Start.X, s.Start.Y, speed, fireballLifeMs)
	},
}

var tileKinds = map[string]tileFactory{
	"moving_platform": func(s Spawn) level.InteractiveTile {
		return NewMovingPlatform(s.Start, s.End, s.TileType, s.Facing)
	},
	"end_level_box": func(s Spawn) level.InteractiveTile {
		return NewEndLevelBox(s.Start.X, s.Start.Y)
	},
}

var npcKinds = map[string]npcFactory{
	"walrus": func(s Spawn) level.Entity {
		return NewWalrus(s.Start.X, s.Start.Y, s.Message)
	},
}

// NewEnemy builds the enemy named by s.Kind
func NewEnemy(s Spawn) (level.Entity, error) {
	f, ok := enemyKinds[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: enemy %q (known: %s)", config.ErrUnknownKind, s.Kind, known(enemyKinds))
	}
	return f(s), nil
}

// NewInteractiveTile builds the interactive tile named by s.Kind
func NewInteractiveTile(s Spawn) (level.InteractiveTile, error) {
	f, ok := tileKinds[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: interactive tile %q (known: %s)", config.ErrUnknownKind, s.Kind, known(tileKinds))
	}
	return f(s), nil
}

// NewNPC builds the NPC named by s.Kind
func NewNPC(s Spawn) (level.Entity, error) {
	f, ok := npcKinds[s.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: npc %q (known: %s)", config.ErrUnknownKind, s.Kind, known(npcKinds))
	}
	return f(s), nil
}

func known[F any](kinds map[string]F) string {
	names := make([]string, 0, len(kinds))
	for name := range kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// ParseFacing converts a config direction; empty means right
func ParseFacing(s string) (entity.Direction, error) {
	switch strings.ToLower(s) {
	case "", "right":
		return entity.Right, nil
	case "left":
		return entity.Left, nil
	default:
		return entity.Right, fmt.Errorf("invalid facing %q", s)
	}
}
