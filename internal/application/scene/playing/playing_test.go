package playing

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileengine/internal/application/actor"
	"github.com/younwookim/tileengine/internal/application/replay"
	"github.com/younwookim/tileengine/internal/application/scene"
	"github.com/younwookim/tileengine/internal/application/scene/result"
	"github.com/younwookim/tileengine/internal/application/stage"
	"github.com/younwookim/tileengine/internal/application/state"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
	"github.com/younwookim/tileengine/internal/infrastructure/config"
)

const configDir = "../../../../cmd/game/configs"

const dt = 0.01

// heldInput returns whatever controls are currently set
type heldInput struct{ c system.Controls }

func (h *heldInput) GetInput() system.Controls { return h.c }

func createTestGame(t *testing.T) (*config.GameConfig, *stage.Loader) {
	t.Helper()

	configs := config.NewLoader(configDir)
	game, err := configs.LoadGame()
	require.NoError(t, err)
	maps, err := configs.MapStore()
	require.NoError(t, err)
	return game, stage.NewLoader(configs, maps, game)
}

func createTestPlaying(t *testing.T, in system.InputSource, recordPath string) *Playing {
	t.Helper()

	game, stages := createTestGame(t)
	p, err := New(game, stages, in, "test", recordPath)
	require.NoError(t, err)
	p.OnEnter()
	return p
}

func update(t *testing.T, s scene.Scene) scene.Scene {
	t.Helper()

	next, err := s.Update(dt)
	require.NoError(t, err)
	return next
}

func TestNew(t *testing.T) {
	p := createTestPlaying(t, &heldInput{}, "")

	assert.Equal(t, "test", p.Level())
	assert.Equal(t, "test_map.txt", p.MapFile())
	assert.Equal(t, state.StatePlaying, p.State())
	require.NotNil(t, p.Stage())
	assert.Equal(t, 48.0, p.Stage().Player.X)
}

func TestNew_UnknownLevel(t *testing.T) {
	game, stages := createTestGame(t)
	_, err := New(game, stages, &heldInput{}, "nope", "")
	assert.ErrorContains(t, err, `failed to load level "nope"`)
}

func TestPlaying_UpdateUsesInput(t *testing.T) {
	in := &heldInput{}
	p := createTestPlaying(t, in, "")

	for i := 0; i < 30; i++ {
		assert.Nil(t, update(t, p))
	}
	in.c = system.Controls{Right: true}
	for i := 0; i < 10; i++ {
		assert.Nil(t, update(t, p))
	}

	assert.Greater(t, p.Stage().Player.X, 48.0)
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_DeathAndRetry(t *testing.T) {
	in := &heldInput{}
	p := createTestPlaying(t, in, "")
	p.Stage().Player.Hurt(actor.NewBug(0, 0, entity.Left))

	var next scene.Scene
	for i := 0; i < 3000 && next == nil; i++ {
		next = update(t, p)
	}
	require.Equal(t, state.StateGameOver, p.State())
	res, ok := next.(*result.Result)
	require.True(t, ok)
	assert.Equal(t, result.GameOver, res.Kind())

	p.OnExit()
	res.OnEnter()
	assert.Nil(t, update(t, res))

	in.c = system.Controls{Talk: true}
	assert.Same(t, p, update(t, res))

	assert.Equal(t, state.StatePlaying, p.State())
	assert.Equal(t, actor.LevelRunning, p.Stage().Player.LevelState())
	assert.Equal(t, 48.0, p.Stage().Player.X)
	assert.Equal(t, 528.0, p.Stage().Player.Y)
}

func TestPlaying_RetryKeepsListening(t *testing.T) {
	p := createTestPlaying(t, &heldInput{}, "")

	p.OnDeath()
	_, err := p.retry()
	require.NoError(t, err)
	require.Equal(t, state.StatePlaying, p.State())

	// the fresh player still reports to the scene
	p.Stage().Player.Hurt(actor.NewBug(0, 0, entity.Left))
	for i := 0; i < 3000 && p.State() == state.StatePlaying; i++ {
		update(t, p)
	}
	assert.Equal(t, state.StateGameOver, p.State())
}

func TestPlaying_LevelClearedWrapsToFirstLevel(t *testing.T) {
	p := createTestPlaying(t, &heldInput{}, "")
	first := p.Stage()

	p.OnLevelCompleted()
	next := update(t, p)
	res, ok := next.(*result.Result)
	require.True(t, ok)
	assert.Equal(t, result.Cleared, res.Kind())

	var after scene.Scene
	for i := 0; i < 1000 && after == nil; i++ {
		after = update(t, res)
	}
	assert.Same(t, p, after)
	assert.Equal(t, "test", p.Level(), "the only level starts over")
	assert.NotSame(t, first, p.Stage(), "the level is loaded fresh")
	assert.Equal(t, state.StatePlaying, p.State())
}

func TestPlaying_Reload(t *testing.T) {
	p := createTestPlaying(t, &heldInput{c: system.Controls{Right: true}}, "")
	for i := 0; i < 50; i++ {
		update(t, p)
	}
	before := p.Stage()

	require.NoError(t, p.Reload())
	assert.NotSame(t, before, p.Stage())
	assert.Equal(t, 48.0, p.Stage().Player.X)
}

func TestPlaying_RecordsAttempt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attempt.json")
	in := &heldInput{}
	p := createTestPlaying(t, in, path)

	in.c = system.Controls{Right: true}
	for i := 0; i < 5; i++ {
		update(t, p)
	}
	in.c = system.Controls{Jump: true}
	update(t, p)

	p.OnDeath()
	require.NotNil(t, update(t, p))
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "test", data.Level)
	assert.Equal(t, 100, data.TPS)
	require.Len(t, data.Frames, 6)
	assert.True(t, data.Frames[0].Controls().Right)
	assert.True(t, data.Frames[5].Controls().Jump)
}

func TestPlaying_RecordingSavedOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attempt.json")
	in := &heldInput{c: system.Controls{Right: true}}
	p := createTestPlaying(t, in, path)

	update(t, p)
	p.OnExit()
	require.FileExists(t, path)
	require.NoError(t, os.Remove(path))

	p.OnExit()
	assert.NoFileExists(t, path, "a stopped recording is not written again")
}

func TestPlaying_ReplayReproducesRun(t *testing.T) {
	script := replay.Script("test", 100,
		replay.Run{Frames: 30},
		replay.Run{Controls: system.Controls{Right: true}, Frames: 40},
		replay.Run{Controls: system.Controls{Right: true, Jump: true}, Frames: 20},
		replay.Run{Frames: 60},
	)

	run := func() (float64, float64) {
		r := replay.NewReplayer(script)
		p := createTestPlaying(t, r, "")
		for !r.Done() {
			update(t, p)
		}
		return p.Stage().Player.X, p.Stage().Player.Y
	}

	x1, y1 := run()
	x2, y2 := run()
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.Greater(t, x1, 48.0)
}
