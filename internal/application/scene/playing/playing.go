// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/younwookim/tileengine/internal/application/level"
	"github.com/younwookim/tileengine/internal/application/replay"
	"github.com/younwookim/tileengine/internal/application/scene"
	"github.com/younwookim/tileengine/internal/application/scene/result"
	"github.com/younwookim/tileengine/internal/application/stage"
	"github.com/younwookim/tileengine/internal/application/state"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
)

// Stages builds a playable stage for a level name
type Stages interface {
	Load(name string) (*stage.Stage, error)
}

// Playing is the main gameplay scene
type Playing struct {
	config  *config.GameConfig
	stages  Stages
	input   system.InputSource
	level   string
	stage   *stage.Stage
	state   state.GameState
	screenW int
	screenH int

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New loads levelName and starts playing it with controls from input.
// If recordPath is not empty, every attempt is recorded and saved there
// when the attempt ends.
func New(cfg *config.GameConfig, stages Stages, input system.InputSource, levelName, recordPath string) (*Playing, error) {
	p := &Playing{
		config:         cfg,
		stages:         stages,
		input:          input,
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
	}
	if err := p.load(levelName); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Playing) load(name string) error {
	s, err := p.stages.Load(name)
	if err != nil {
		return fmt.Errorf("failed to load level %q: %w", name, err)
	}
	s.AddListener(p)
	p.stage = s
	p.level = name
	p.start()
	return nil
}

// start begins an attempt at the current stage
func (p *Playing) start() {
	p.state = state.StatePlaying
	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.level, p.config.Display.TPS)
	}
}

func (p *Playing) Stage() *stage.Stage    { return p.stage }
func (p *Playing) State() state.GameState { return p.state }
func (p *Playing) Level() string          { return p.level }

// OnLevelCompleted implements actor.PlayerListener
func (p *Playing) OnLevelCompleted() { p.state = state.StateLevelCleared }

// OnDeath implements actor.PlayerListener
func (p *Playing) OnDeath() { p.state = state.StateGameOver }

func (p *Playing) OnEnter() {
	log.WithFields(log.Fields{
		"level":     p.level,
		"recording": p.recorder != nil,
	}).Info("playing")
}

// OnExit saves the recording of the attempt that just ended
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	switch p.state {
	case state.StatePlaying:
		in := p.input.GetInput()
		if p.recorder != nil {
			p.recorder.RecordFrame(in)
		}
		p.stage.Update(in, dt)
	case state.StateLevelCleared:
		return result.NewCleared(p.stage.Name, p.screenW, p.screenH, p.nextLevel), nil
	case state.StateGameOver:
		return result.NewGameOver(p.stage.Name, p.input, p.screenW, p.screenH, p.retry), nil
	}
	return nil, nil // nil = stay on this scene
}

// nextLevel moves on to the level after the current one. After the last
// level the game starts over from the first.
func (p *Playing) nextLevel() (scene.Scene, error) {
	name := p.config.NextLevel(p.level)
	if name == "" {
		name = p.config.FirstLevel()
	}
	if name == "" {
		name = p.level
	}
	if err := p.load(name); err != nil {
		return nil, err
	}
	return p, nil
}

// retry restarts the current level from its spawn state
func (p *Playing) retry() (scene.Scene, error) {
	if err := p.stage.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset level %q: %w", p.level, err)
	}
	p.start()
	return p, nil
}

// Reload rebuilds the current level from its files and restarts it. The
// host calls it when the level's map file changes on disk.
func (p *Playing) Reload() error {
	p.saveRecording()
	return p.load(p.level)
}

// MapFile returns the map file name of the current stage
func (p *Playing) MapFile() string { return p.stage.MapFile }

// saveRecording saves the current recording to file once
func (p *Playing) saveRecording() {
	if p.recorder == nil || !p.recorder.IsRecording() || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if err := p.recorder.Save(filename); err != nil {
		log.WithError(err).Error("failed to save recording")
	} else {
		log.WithFields(log.Fields{
			"file":   filename,
			"frames": p.recorder.FrameCount(),
		}).Info("recording saved")
	}
	p.recorder.Stop()
}

// Draw renders the game screen
func (p *Playing) Draw(c level.Canvas) {
	p.stage.Draw(c)
}
