package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tileengine/internal/application/actor"
	"github.com/younwookim/tileengine/internal/application/replay"
	"github.com/younwookim/tileengine/internal/application/stage"
	"github.com/younwookim/tileengine/internal/application/system"
	"github.com/younwookim/tileengine/internal/domain/entity"
)

const dt = 0.01

// createTestStage loads the test level from the built-in configs
func createTestStage(t *testing.T) *stage.Stage {
	t.Helper()

	loader, err := openConfigs("")
	require.NoError(t, err)
	cfg, err := loader.LoadGame()
	require.NoError(t, err)
	maps, closeMaps, err := openMaps(loader, cfg)
	require.NoError(t, err)
	t.Cleanup(closeMaps)

	s, err := stage.NewLoader(loader, maps, cfg).Load("test")
	require.NoError(t, err)
	return s
}

func walkAndJump() replay.ReplayData {
	return replay.Script("test", 100,
		replay.Run{Frames: 20},
		replay.Run{Controls: system.Controls{Right: true}, Frames: 60},
		replay.Run{Controls: system.Controls{Right: true, Jump: true}, Frames: 30},
		replay.Run{Controls: system.Controls{Left: true}, Frames: 40},
		replay.Run{Frames: 50},
	)
}

func TestSimulateReplay_Deterministic(t *testing.T) {
	first := simulateReplay(replay.NewReplayer(walkAndJump()), createTestStage(t), dt)
	second := simulateReplay(replay.NewReplayer(walkAndJump()), createTestStage(t), dt)

	require.NotEmpty(t, first.Positions)
	assert.Equal(t, first.Positions, second.Positions, "same input replays to the same run")
	assert.Equal(t, first.FinalFrame, second.FinalFrame)
	assert.Equal(t, first.Outcome, second.Outcome)
	assert.Greater(t, first.Positions[79].X, 48.0, "walked right")
}

func TestSimulateReplay_IdlePlayerStaysPut(t *testing.T) {
	data := replay.Script("test", 100, replay.Run{Frames: 120})
	res := simulateReplay(replay.NewReplayer(data), createTestStage(t), dt)

	require.Len(t, res.Positions, 120)
	// settled on the grass after the first frames
	settled := res.Positions[10]
	for i, pos := range res.Positions[10:] {
		assert.Equal(t, settled, pos, "frame %d", i+10)
	}
}

func TestSimulateReplay_StopsWhenPlayerLeaves(t *testing.T) {
	s := createTestStage(t)
	s.Player.Hurt(actor.NewBug(0, 0, entity.Left))

	data := replay.Script("test", 100, replay.Run{Frames: 5000})
	res := simulateReplay(replay.NewReplayer(data), s, dt)

	assert.True(t, res.Finished)
	assert.Equal(t, actor.PlayerDead, res.Outcome)
	assert.Less(t, res.FinalFrame, 5000)
}
