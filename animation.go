package popup

import (
	"errors"
	"time"
)

// DefaultDuration is the length of an open or close transition.
const DefaultDuration = 400 * time.Millisecond

var (
	// ErrAlreadyStarted is returned by Animation.Start on its second call.
	ErrAlreadyStarted = errors.New("popup: animation already started")
	// ErrNotStarted is returned by Animation.Reverse before Start.
	ErrNotStarted = errors.New("popup: animation not started")
)

// Effect renders the popup at a visibility fraction in [0, 1]: 0 is fully
// hidden, 1 is the resting shown state. shield may be nil.
type Effect interface {
	ShowFrame(content, shield *Element, fraction float64)
}

// EffectFunc adapts a plain function to Effect.
type EffectFunc func(content, shield *Element, fraction float64)

// ShowFrame calls f.
func (f EffectFunc) ShowFrame(content, shield *Element, fraction float64) {
	f(content, shield, fraction)
}

type noAnimation struct{}

func (noAnimation) ShowFrame(*Element, *Element, float64) {}

// NoAnimation disables the transition: popups attach and detach instantly.
var NoAnimation Effect = noAnimation{}

// Animation drives one eased open transition and, optionally, its reversal.
// Progress is sampled from the Clock once per frame; the next frame is
// requested from the Scheduler only while the transition is running.
//
// An Animation is single use: Start may be called once, and after the
// reverse transition completes the elements are detached and the Animation
// is done.
type Animation struct {
	lifecycleSignals

	content *Element
	shield  *Element
	body    *Element
	effect  Effect

	duration time.Duration
	clock    Clock
	sched    Scheduler

	started      bool
	startTime    time.Time
	reversed     bool
	waitingFrame bool

	tickFn func()
}

// NewAnimation creates an animation that attaches content (and shield, when
// non-nil) to the document body and renders them with effect. A
// non-positive duration selects DefaultDuration.
func NewAnimation(doc *Document, content, shield *Element, effect Effect, duration time.Duration) *Animation {
	if duration <= 0 {
		duration = DefaultDuration
	}
	if effect == nil {
		effect = FallFade{}
	}
	a := &Animation{
		content:  content,
		shield:   shield,
		body:     doc.Body(),
		effect:   effect,
		duration: duration,
		clock:    doc.Clock(),
		sched:    doc,
	}
	a.tickFn = a.tick
	return a
}

// Duration returns the length of one transition.
func (a *Animation) Duration() time.Duration {
	return a.duration
}

// Reversed reports whether Reverse has been called.
func (a *Animation) Reversed() bool {
	return a.reversed
}

// Running reports whether a frame is scheduled.
func (a *Animation) Running() bool {
	return a.waitingFrame
}

// Start renders the first frame, schedules the next one and attaches the
// shield and then the content to the document body. The elements are
// attached synchronously, at the first frame's visual state.
func (a *Animation) Start() error {
	if a.started {
		return ErrAlreadyStarted
	}
	a.started = true
	a.waitingFrame = true
	a.startTime = a.clock.Now()
	a.tick()
	if a.shield != nil {
		a.body.AddChild(a.shield)
	}
	a.body.AddChild(a.content)
	return nil
}

// Reverse turns the transition around. The timeline is re-anchored so the
// first reversed frame shows the same visibility as the moment of reversal.
// Calling Reverse after the open transition has finished restarts the frame
// loop. Calling it again once reversed is a no-op.
func (a *Animation) Reverse() error {
	if !a.started {
		return ErrNotStarted
	}
	if a.reversed {
		return nil
	}
	now := a.clock.Now()
	skip := reverseSkip(now.Sub(a.startTime), a.duration)

	a.reversed = true
	a.startTime = now.Add(-skip)

	if !a.waitingFrame {
		a.waitingFrame = true
		a.tick()
	}
	return nil
}

// reverseSkip returns how far into the reversed timeline to start so that
// 1 - Ease(skip/duration) equals Ease(elapsed/duration).
func reverseSkip(elapsed, duration time.Duration) time.Duration {
	elapsed = min(max(elapsed, 0), duration)
	eased := Ease(float64(elapsed) / float64(duration))
	return time.Duration(InverseEase(1-eased) * float64(duration))
}

func (a *Animation) tick() {
	now := a.clock.Now()

	// The clock went backwards; restart from here rather than stall.
	if now.Before(a.startTime) {
		a.startTime = now
	}

	progress := float64(now.Sub(a.startTime)) / float64(a.duration)

	if progress >= 1 {
		a.waitingFrame = false
		if a.reversed {
			a.content.RemoveFromParent()
			if a.shield != nil {
				a.shield.RemoveFromParent()
			}
			a.emitDestroyed()
		} else {
			a.effect.ShowFrame(a.content, a.shield, 1)
			a.emitShown()
		}
		return
	}

	eased := Ease(progress)
	if a.reversed {
		a.effect.ShowFrame(a.content, a.shield, 1-eased)
	} else {
		a.effect.ShowFrame(a.content, a.shield, eased)
	}

	a.sched.RequestFrame(a.tickFn)
}
