package popup

import "time"

// fakeClock is a Clock advanced by hand.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// newTestDocument returns a document with a fake clock and no mouse polling.
func newTestDocument(w, h float64) (*Document, *fakeClock) {
	d := NewDocument(w, h)
	d.SetPointerSource(nil)
	clock := newFakeClock()
	d.SetClock(clock)
	return d, clock
}

// recordEffect remembers every fraction it is asked to render.
type recordEffect struct {
	fractions []float64
}

func (r *recordEffect) ShowFrame(content, shield *Element, fraction float64) {
	r.fractions = append(r.fractions, fraction)
}

func (r *recordEffect) last() float64 {
	return r.fractions[len(r.fractions)-1]
}

// recordSink collects lifecycle events.
type recordSink struct {
	events []LifecycleEvent
}

func (s *recordSink) EmitEvent(e LifecycleEvent) {
	s.events = append(s.events, e)
}
