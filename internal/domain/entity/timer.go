package entity

// Timer counts down a wait time in milliseconds.
// It is advanced by the frame delta rather than the wall clock so a run is
// reproducible frame for frame (see replay).
type Timer struct {
	wait    float64
	elapsed float64
}

// SetWaitTime restarts the timer with a new wait time
func (t *Timer) SetWaitTime(ms int) {
	t.wait = float64(ms)
	t.elapsed = 0
}

// Tick advances the timer by dt seconds
func (t *Timer) Tick(dt float64) {
	t.elapsed += dt * 1000
}

// IsTimeUp returns true once more than the wait time has elapsed
func (t *Timer) IsTimeUp() bool {
	return t.elapsed > t.wait
}

// Reset restarts the timer with the same wait time
func (t *Timer) Reset() {
	t.elapsed = 0
}
