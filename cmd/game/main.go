package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"github.com/younwookim/tileengine/internal/application/game"
	"github.com/younwookim/tileengine/internal/application/replay"
	"github.com/younwookim/tileengine/internal/application/scene/playing"
	"github.com/younwookim/tileengine/internal/application/stage"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
	"github.com/younwookim/tileengine/internal/infrastructure/mapfile"
)

//go:embed configs
var configFS embed.FS

type options struct {
	configDir string
	level     string
	record    string
	replay    string
	headless  bool
	watch     bool
	logLevel  string
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configDir, "config", "", "Config directory (default: built-in configs)")
	flag.StringVar(&o.level, "level", "", "Level to start on (default: first level in game.yaml)")
	flag.StringVar(&o.record, "record", "", "Record input to file (e.g., -record replay.json)")
	flag.StringVar(&o.replay, "replay", "", "Play back a recorded replay file")
	flag.BoolVar(&o.headless, "headless", false, "With -replay, simulate without a window and print the outcome")
	flag.BoolVar(&o.watch, "watch", false, "Reload the level when its map file changes (needs -config)")
	flag.StringVar(&o.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()
	return o
}

func setupLogging(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}

// openConfigs reads configs from dir, or from the embedded copy when dir is
// empty.
func openConfigs(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// openMaps returns the map store, cached when the config allows it
func openMaps(loader *config.Loader, cfg *config.GameConfig) (*mapfile.Store, func(), error) {
	store, err := loader.MapStore()
	if err != nil {
		return nil, nil, err
	}
	if cfg.MapCache.MaxTiles <= 0 {
		return store, func() {}, nil
	}
	cache, err := mapfile.NewCache(cfg.MapCache.MaxTiles)
	if err != nil {
		return nil, nil, err
	}
	return store.WithCache(cache), cache.Close, nil
}

func run(o options) error {
	if err := setupLogging(o.logLevel); err != nil {
		return err
	}

	loader, err := openConfigs(o.configDir)
	if err != nil {
		return err
	}
	cfg, err := loader.LoadGame()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"configs": loader.BasePath(), "levels": len(cfg.Levels)}).Info("configuration loaded")
	maps, closeMaps, err := openMaps(loader, cfg)
	if err != nil {
		return err
	}
	defer closeMaps()
	stages := stage.NewLoader(loader, maps, cfg)

	levelName := o.level
	if levelName == "" {
		levelName = cfg.FirstLevel()
	}

	var input system.InputSource = system.NewInputSystem()
	dt := 1.0 / float64(cfg.Display.TPS)
	if o.replay != "" {
		data, err := replay.LoadReplay(o.replay)
		if err != nil {
			return err
		}
		replayer := replay.NewReplayer(*data)
		levelName = replayer.Level()
		if replayer.TPS() > 0 {
			dt = 1.0 / float64(replayer.TPS())
		}
		if o.headless {
			return runHeadless(stages, replayer, dt)
		}
		input = replayer
		log.WithFields(log.Fields{"file": o.replay, "frames": replayer.TotalFrames()}).Info("replaying")
	}
	if levelName == "" {
		return errors.New("no level to play: pass -level or list levels in game.yaml")
	}

	p, err := playing.New(cfg, stages, input, levelName, o.record)
	if err != nil {
		return err
	}
	g := game.New(p, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	g.SetDT(dt)

	if o.watch {
		if maps.Dir() == "" {
			return errors.New("-watch needs an on-disk -config directory")
		}
		w, err := mapfile.NewWatcher(maps.Dir())
		if err != nil {
			return fmt.Errorf("failed to watch %s: %w", maps.Dir(), err)
		}
		defer func() { _ = w.Close() }()
		g.BeforeUpdate = mapChanges(w.Events, w.Errors, maps, p)
		log.WithField("dir", maps.Dir()).Info("watching map files")
	}

	scale := cfg.Display.WindowScale
	ebiten.SetWindowSize(int(float64(cfg.Display.ScreenWidth)*scale), int(float64(cfg.Display.ScreenHeight)*scale))
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	return ebiten.RunGame(g)
}

func runHeadless(stages *stage.Loader, replayer *replay.Replayer, dt float64) error {
	s, err := stages.Load(replayer.Level())
	if err != nil {
		return err
	}
	res := simulateReplay(replayer, s, dt)
	log.WithFields(log.Fields{
		"level":    replayer.Level(),
		"frames":   res.FinalFrame,
		"outcome":  res.Outcome.String(),
		"finished": res.Finished,
		"x":        s.Player.X,
		"y":        s.Player.Y,
	}).Info("replay simulated")
	return nil
}

func main() {
	if err := run(parseFlags()); err != nil {
		log.WithError(err).Fatal("game exited")
	}
}
