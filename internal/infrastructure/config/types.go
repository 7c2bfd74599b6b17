package config

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when a spawn entry names a kind nothing builds
var ErrUnknownKind = errors.New("unknown kind")

// GameConfig is the root config for game.yaml
type GameConfig struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Player   PlayerConfig   `yaml:"player"`
	MapCache MapCacheConfig `yaml:"map_cache"`
	// Levels lists level names in play order; the first one starts the game
	Levels []string `yaml:"levels"`
}

type DisplayConfig struct {
	Title        string  `yaml:"title"`
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	WindowScale  float64 `yaml:"window_scale"`
	TPS          int     `yaml:"tps"`
}

type CameraConfig struct {
	// UpdateRange is how many tiles past the screen entities stay active
	UpdateRange int `yaml:"update_range"`
}

// PlayerConfig holds the player's movement values, in pixels per frame
type PlayerConfig struct {
	Gravity           float64 `yaml:"gravity"`
	TerminalVelocityY float64 `yaml:"terminal_velocity_y"`
	JumpHeight        float64 `yaml:"jump_height"`
	JumpDegrade       float64 `yaml:"jump_degrade"`
	WalkSpeed         float64 `yaml:"walk_speed"`
	MomentumYIncrease float64 `yaml:"momentum_y_increase"`
	Invincible        bool    `yaml:"invincible"`
}

type MapCacheConfig struct {
	// MaxTiles bounds the total tile count of cached map files; 0 disables the cache
	MaxTiles int64 `yaml:"max_tiles"`
}

// FirstLevel returns the level the game starts on
func (c *GameConfig) FirstLevel() string {
	if len(c.Levels) == 0 {
		return ""
	}
	return c.Levels[0]
}

// NextLevel returns the level after name, or "" when name is the last one
func (c *GameConfig) NextLevel(name string) string {
	for i, l := range c.Levels {
		if l == name && i+1 < len(c.Levels) {
			return c.Levels[i+1]
		}
	}
	return ""
}

func (c *GameConfig) applyDefaults() {
	if c.Display.Title == "" {
		c.Display.Title = "tileengine"
	}
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 800
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 605
	}
	if c.Display.WindowScale <= 0 {
		c.Display.WindowScale = 1
	}
	if c.Display.TPS <= 0 {
		c.Display.TPS = 60
	}
	if c.Camera.UpdateRange <= 0 {
		c.Camera.UpdateRange = 4
	}
}

// TilesetConfig is the root config for tilesets/<name>.yaml.
// The position of a tile in Tiles is its index in map files.
type TilesetConfig struct {
	Name       string       `yaml:"name"`
	TileWidth  int          `yaml:"tile_width"`
	TileHeight int          `yaml:"tile_height"`
	Scale      float64      `yaml:"scale"`
	Tiles      []TileConfig `yaml:"tiles"`
}

type TileConfig struct {
	Name string `yaml:"name"`
	// Type is passable, solid or platform
	Type   string        `yaml:"type"`
	Hit    *HitConfig    `yaml:"hit"`
	Frames []FrameConfig `yaml:"frames"`
}

// HitConfig is a hit rectangle in unscaled frame pixels
type HitConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
}

type FrameConfig struct {
	Color Color `yaml:"color"`
	// Delay is how long the frame shows in milliseconds, 0 holds it
	Delay int `yaml:"delay"`
}

// LevelConfig is the root config for levels/<name>.yaml
type LevelConfig struct {
	Name    string `yaml:"name"`
	Map     string `yaml:"map"`
	Tileset string `yaml:"tileset"`
	// PlayerStart is a tile position
	PlayerStart      PointConfig   `yaml:"player_start"`
	Enemies          []SpawnConfig `yaml:"enemies"`
	InteractiveTiles []SpawnConfig `yaml:"interactive_tiles"`
	NPCs             []SpawnConfig `yaml:"npcs"`
}

// SpawnConfig places one map entity. Tile and End are tile positions and
// Offset is added in world pixels after conversion.
type SpawnConfig struct {
	Kind    string       `yaml:"kind"`
	Tile    PointConfig  `yaml:"tile"`
	Offset  PointConfig  `yaml:"offset"`
	End     *PointConfig `yaml:"end"`
	Facing  string       `yaml:"facing"`
	Message string       `yaml:"message"`
	Type    string       `yaml:"type"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Color is an RGBA colour written as "#rrggbb" or "#rrggbbaa"
type Color struct {
	color.RGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var parts [4]uint8
	parts[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		parts[i] = uint8(v)
	}

	c.RGBA = color.RGBA{R: parts[0], G: parts[1], B: parts[2], A: parts[3]}
	return nil
}
