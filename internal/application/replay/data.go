// Package replay records the controls of a run frame by frame and plays
// them back. Frames are stepped with a fixed delta and every timer is
// tick driven, so replaying the inputs of a level reproduces the run.
package replay

import "github.com/younwookim/tileengine/internal/application/system"

// Version is written into every replay file
const Version = "2.0"

// FrameInput records the controls held during a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	C bool `json:"c,omitempty"` // Crouch
	T bool `json:"t,omitempty"` // Talk
}

// NewFrameInput packs controls for frame f
func NewFrameInput(f int, c system.Controls) FrameInput {
	return FrameInput{F: f, L: c.Left, R: c.Right, J: c.Jump, C: c.Crouch, T: c.Talk}
}

// Controls unpacks the recorded controls
func (fi FrameInput) Controls() system.Controls {
	return system.Controls{Left: fi.L, Right: fi.R, Jump: fi.J, Crouch: fi.C, Talk: fi.T}
}

// ReplayData contains all data needed to replay one level attempt
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	TPS       int          `json:"tps"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
