package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tileengine/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Level == "" {
		return nil, fmt.Errorf("replay %s names no level", filename)
	}
	return &data, nil
}

// Next returns the controls for the current frame and advances.
// It returns false once every frame has been played.
func (r *Replayer) Next() (system.Controls, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.Controls{}, false
	}
	fi := r.data.Frames[r.frame]
	r.frame++
	return fi.Controls(), true
}

// GetInput plays the replay as an input source; after the last frame every
// control reads as released.
func (r *Replayer) GetInput() system.Controls {
	c, _ := r.Next()
	return c
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool { return r.frame >= len(r.data.Frames) }

func (r *Replayer) CurrentFrame() int { return r.frame }
func (r *Replayer) TotalFrames() int  { return len(r.data.Frames) }
func (r *Replayer) Level() string     { return r.data.Level }
func (r *Replayer) TPS() int          { return r.data.TPS }

// Reset rewinds to the first frame
func (r *Replayer) Reset() {
	r.frame = 0
}

// Script builds replay data for level from runs of held controls, one
// frame per count. Used to drive a level without a keyboard.
func Script(level string, tps int, runs ...Run) ReplayData {
	data := ReplayData{
		Version:   Version,
		Level:     level,
		TPS:       tps,
		StartTime: time.Now().Format(time.RFC3339),
	}
	for _, run := range runs {
		for i := 0; i < run.Frames; i++ {
			data.Frames = append(data.Frames, NewFrameInput(len(data.Frames), run.Controls))
		}
	}
	return data
}

// Run holds Controls for Frames frames
type Run struct {
	Controls system.Controls
	Frames   int
}
