package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/tileengine/internal/application/system"
)

// ErrEmpty is returned when saving a recording with no frames
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder starts recording an attempt at level
func NewRecorder(level string, tps int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Level:     level,
			TPS:       tps,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 60*max(tps, 1)), // about a minute
		},
		recording: true,
	}
}

// RecordFrame records a single frame's controls
func (r *Recorder) RecordFrame(c system.Controls) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, NewFrameInput(len(r.data.Frames), c))
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

func (r *Recorder) IsRecording() bool { return r.recording }
func (r *Recorder) FrameCount() int   { return len(r.data.Frames) }

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
