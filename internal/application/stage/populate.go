package stage

import (
	"fmt"

	"github.com/younwookim/tileengine/internal/application/actor"
	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/domain/entity"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
)

// Populate returns the spawn function for a level. It runs on every map
// reset, so each run builds fresh entities from the config.
func Populate(lvl *config.LevelConfig) func(*level.Map) error {
	return func(m *level.Map) error {
		for i, sc := range lvl.Enemies {
			s, err := resolve(m, sc)
			if err != nil {
				return fmt.Errorf("enemy %d: %w", i, err)
			}
			e, err := actor.NewEnemy(s)
			if err != nil {
				return fmt.Errorf("enemy %d: %w", i, err)
			}
			m.AddEnemy(e)
		}

		for i, sc := range lvl.InteractiveTiles {
			s, err := resolve(m, sc)
			if err != nil {
				return fmt.Errorf("interactive tile %d: %w", i, err)
			}
			t, err := actor.NewInteractiveTile(s)
			if err != nil {
				return fmt.Errorf("interactive tile %d: %w", i, err)
			}
			m.AddInteractiveTile(t)
		}

		for i, sc := range lvl.NPCs {
			s, err := resolve(m, sc)
			if err != nil {
				return fmt.Errorf("npc %d: %w", i, err)
			}
			n, err := actor.NewNPC(s)
			if err != nil {
				return fmt.Errorf("npc %d: %w", i, err)
			}
			m.AddNPC(n)
		}
		return nil
	}
}

// resolve converts tile positions to world pixels. The offset applies to
// both ends so a patrol keeps its shape. A missing end means the start.
func resolve(m *level.Map, sc config.SpawnConfig) (actor.Spawn, error) {
	facing, err := actor.ParseFacing(sc.Facing)
	if err != nil {
		return actor.Spawn{}, err
	}

	tileType := entity.TileNotPassable
	if sc.Type != "" {
		var ok bool
		if tileType, ok = entity.ParseTileType(sc.Type); !ok {
			return actor.Spawn{}, fmt.Errorf("invalid tile type %q", sc.Type)
		}
	}

	start := tilePosition(m, sc.Tile).Add(sc.Offset.X, sc.Offset.Y)
	end := start
	if sc.End != nil {
		end = tilePosition(m, *sc.End).Add(sc.Offset.X, sc.Offset.Y)
	}

	return actor.Spawn{
		Kind:     sc.Kind,
		Start:    start,
		End:      end,
		Facing:   facing,
		Message:  sc.Message,
		TileType: tileType,
	}, nil
}

func tilePosition(m *level.Map, p config.PointConfig) level.Point {
	return m.PositionOfTile(entity.Round(p.X), entity.Round(p.Y))
}
