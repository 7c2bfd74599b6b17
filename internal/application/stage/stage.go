// Package stage turns level configs and map files into a playable map with
// its player, and runs one frame of play in the fixed order: player first,
// then the map.
package stage

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/younwookim/tileengine/internal/application/actor"
	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
	"github.com/younwookim/tileengine/internal/infrastructure/mapfile"
)

// Loader builds stages from a config directory and a map store
type Loader struct {
	configs  *config.Loader
	maps     *mapfile.Store
	game     *config.GameConfig
	viewport level.Viewport
}

// NewLoader creates a stage loader. The viewport is the game screen size.
func NewLoader(configs *config.Loader, maps *mapfile.Store, game *config.GameConfig) *Loader {
	return &Loader{
		configs: configs,
		maps:    maps,
		game:    game,
		viewport: level.Viewport{
			Width:  game.Display.ScreenWidth,
			Height: game.Display.ScreenHeight,
		},
	}
}

// Load reads the level config, its tileset and its map file and builds the
// stage with the player at the level's start tile.
func (l *Loader) Load(name string) (*Stage, error) {
	lvl, err := l.configs.LoadLevel(name)
	if err != nil {
		return nil, err
	}
	tsCfg, err := l.configs.LoadTileset(lvl.Tileset)
	if err != nil {
		return nil, err
	}
	tileset, err := BuildTileset(tsCfg)
	if err != nil {
		return nil, err
	}
	grid, err := l.maps.Load(lvl.Map)
	if err != nil {
		return nil, err
	}

	m, err := level.NewMap(level.Config{
		Name: lvl.Name,
		Layout: level.Layout{
			Width:   grid.Width,
			Height:  grid.Height,
			Indices: grid.Indices,
		},
		Tileset:     tileset,
		Viewport:    l.viewport,
		PlayerStart: level.Point{X: lvl.PlayerStart.X, Y: lvl.PlayerStart.Y},
		UpdateRange: l.game.Camera.UpdateRange,
		Populate:    Populate(lvl),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build level %q: %w", name, err)
	}

	s := &Stage{
		Name:    lvl.Name,
		MapFile: lvl.Map,
		Map:     m,
		phys:    PhysicsFrom(l.game.Player),
	}
	s.spawnPlayer()

	log.WithFields(log.Fields{
		"level":   lvl.Name,
		"map":     lvl.Map,
		"size":    fmt.Sprintf("%dx%d", grid.Width, grid.Height),
		"enemies": len(m.Enemies()),
		"tiles":   len(m.InteractiveTiles()),
		"npcs":    len(m.NPCs()),
	}).Info("level loaded")
	return s, nil
}

// Stage is a loaded level: its map and the player playing it
type Stage struct {
	Name    string
	MapFile string
	Map     *level.Map
	Player  *actor.Player

	phys      actor.Physics
	listeners []actor.PlayerListener
}

// AddListener registers l with the current player and every player a
// Reset creates.
func (s *Stage) AddListener(l actor.PlayerListener) {
	s.listeners = append(s.listeners, l)
	s.Player.AddListener(l)
}

// Reset restores the map to its spawn state and starts a fresh player
func (s *Stage) Reset() error {
	if err := s.Map.Reset(); err != nil {
		return err
	}
	s.spawnPlayer()
	for _, l := range s.listeners {
		s.Player.AddListener(l)
	}
	return nil
}

func (s *Stage) spawnPlayer() {
	start := s.Map.PlayerStartPosition()
	s.Player = actor.NewPlayer(start.X, start.Y, s.phys)
}

// Update runs one frame: the player moves first, then the map scrolls the
// camera and updates the active entities.
func (s *Stage) Update(in system.Controls, dt float64) {
	ctx := &level.Context{Map: s.Map, Player: s.Player, Input: in, DT: dt}
	s.Player.Update(ctx)
	s.Map.Update(ctx)
}

// Draw draws the map and then the player on top
func (s *Stage) Draw(c level.Canvas) {
	s.Map.Draw(c)
	s.Player.Draw(c, s.Map.Camera())
}

// PhysicsFrom converts configured player values. Without a walk speed or a
// jump height the default cat physics are used.
func PhysicsFrom(pc config.PlayerConfig) actor.Physics {
	if pc.WalkSpeed == 0 && pc.JumpHeight == 0 {
		phys := actor.CatPhysics
		phys.Invincible = pc.Invincible
		return phys
	}
	return actor.Physics{
		Gravity:           pc.Gravity,
		TerminalVelocityY: pc.TerminalVelocityY,
		JumpHeight:        pc.JumpHeight,
		JumpDegrade:       pc.JumpDegrade,
		WalkSpeed:         pc.WalkSpeed,
		MomentumYIncrease: pc.MomentumYIncrease,
		Invincible:        pc.Invincible,
	}
}

// BuildTileset converts a tileset config into the tileset maps are built from
func BuildTileset(cfg *config.TilesetConfig) (*level.Tileset, error) {
	defs := make([]level.TileDef, len(cfg.Tiles))
	for i, tc := range cfg.Tiles {
		tileType, ok := entity.ParseTileType(tc.Type)
		if !ok {
			return nil, fmt.Errorf("tileset %q: tile %d (%s): invalid type %q", cfg.Name, i, tc.Name, tc.Type)
		}

		base := entity.NewFrame(cfg.TileWidth, cfg.TileHeight).WithScale(cfg.Scale)
		if tc.Hit != nil {
			base = base.WithHit(tc.Hit.X, tc.Hit.Y, tc.Hit.Width, tc.Hit.Height)
		}

		frames := make([]entity.Frame, 0, len(tc.Frames))
		for _, fc := range tc.Frames {
			frames = append(frames, base.WithColor(fc.Color.RGBA).WithDelay(fc.Delay))
		}
		defs[i] = level.TileDef{Name: tc.Name, Type: tileType, Frames: frames}
	}
	return level.NewTileset(cfg.Name, cfg.TileWidth, cfg.TileHeight, cfg.Scale, defs), nil
}
