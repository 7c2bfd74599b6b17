// Command tileview plays a level in the terminal. It shares the level
// configs and map files with the game and draws through tcell.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/younwookim/tileengine/internal/application/stage"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
	"github.com/younwookim/tileengine/internal/infrastructure/mapfile"
)

func main() {
	configDir := flag.String("config", "cmd/game/configs", "Config directory")
	levelName := flag.String("level", "", "Level to play (default: first level in game.yaml)")
	logFile := flag.String("log", "", "Write logs to this file")
	flag.Parse()

	if err := run(*configDir, *levelName, *logFile); err != nil {
		fmt.Fprintf(os.Stderr, "tileview: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir, levelName, logFile string) error {
	// the terminal belongs to tcell, so logs only go to a file
	log.SetOutput(io.Discard)
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		log.SetOutput(f)
		log.SetLevel(log.DebugLevel)
	}

	loader := config.NewLoader(configDir)
	cfg, err := loader.LoadGame()
	if err != nil {
		return err
	}
	maps, err := loader.MapStore()
	if err != nil {
		return err
	}
	if cfg.MapCache.MaxTiles > 0 {
		cache, err := mapfile.NewCache(cfg.MapCache.MaxTiles)
		if err != nil {
			return err
		}
		defer cache.Close()
		maps = maps.WithCache(cache)
	}
	if levelName == "" {
		levelName = cfg.FirstLevel()
	}
	s, err := stage.NewLoader(loader, maps, cfg).Load(levelName)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	// keys stay held for about a quarter second after the last repeat
	v := newViewer(screen, s, newKeyInput(cfg.Display.TPS/4), 1.0/float64(cfg.Display.TPS))
	loop(v, time.Second/time.Duration(cfg.Display.TPS))
	return nil
}

func loop(v *viewer, frame time.Duration) {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-events:
			if !ok || !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.tick()
			v.draw()
		}
	}
}
