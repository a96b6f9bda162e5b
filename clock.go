package popup

import "time"

// Clock reports the current wall-clock instant. Animations read it once per
// frame; tests substitute a manually advanced clock.
type Clock interface {
	Now() time.Time
}

// Scheduler runs a callback once before the next repaint. Document implements
// it with a per-Update frame queue.
type Scheduler interface {
	RequestFrame(fn func())
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the Clock backed by time.Now.
var SystemClock Clock = systemClock{}
