package main

import (
	"github.com/younwookim/tileengine/internal/application/actor"
	"github.com/younwookim/tileengine/internal/application/replay"
	"github.com/younwookim/tileengine/internal/application/stage"
)

// SimulationResult contains the results of a replay simulation
type SimulationResult struct {
	Positions  []struct{ X, Y float64 }
	FinalFrame int
	Outcome    actor.LevelState
	// Finished is true when the player left the screen, dead or done
	Finished bool
}

// outcomeListener remembers when the player leaves the level
type outcomeListener struct{ finished bool }

func (l *outcomeListener) OnLevelCompleted() { l.finished = true }
func (l *outcomeListener) OnDeath()          { l.finished = true }

// simulateReplay plays recorded controls into s without a window, in the
// same frame order as the game: player first, then the map. It stops at the
// end of the recording or when the player leaves the level.
func simulateReplay(replayer *replay.Replayer, s *stage.Stage, dt float64) SimulationResult {
	l := &outcomeListener{}
	s.AddListener(l)

	result := SimulationResult{
		Positions: make([]struct{ X, Y float64 }, 0, replayer.TotalFrames()),
	}

	for !l.finished {
		in, ok := replayer.Next()
		if !ok {
			break
		}

		s.Update(in, dt)

		result.Positions = append(result.Positions, struct{ X, Y float64 }{s.Player.X, s.Player.Y})
		result.FinalFrame = replayer.CurrentFrame()
	}

	result.Outcome = s.Player.LevelState()
	result.Finished = l.finished
	return result
}
