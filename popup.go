package popup

import (
	"fmt"
	"time"
)

// State is a popup's position in its Initial → Shown → Closed lifecycle.
type State uint8

const (
	StateInitial State = iota // constructed, never shown
	StateShown                // Show called; attached or opening
	StateClosed               // Close called; closing or destroyed
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateShown:
		return "shown"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Options configures a Popup. Start from DefaultOptions; the zero value has
// no shield and sits in the top-left corner.
type Options struct {
	// Draggable enables drag-to-reposition by the top DraggableHeight pixels
	// of the content. Both must be set.
	Draggable       bool
	DraggableHeight float64

	// Width and Height are the content size in pixels.
	Width, Height float64

	// Position is applied to the content element.
	Position Position

	// AffectBodyScroll makes the popup take part in the document's scroll
	// lock while it is shown.
	AffectBodyScroll bool

	// Shield adds a full-viewport backdrop of ShieldColor behind the content.
	Shield      bool
	ShieldColor Color

	// StartX and StartY are the initial relative position of the content
	// center, each in [0, 1].
	StartX, StartY float64

	// Animation renders the open and close transitions. NoAnimation attaches
	// and detaches instantly; nil selects FallFade.
	Animation Effect

	// Duration is the length of one transition. Zero selects DefaultDuration.
	Duration time.Duration

	// Name identifies the popup in lifecycle events and in Store.
	Name string

	// ScrollLock overrides the document's shared scroll lock.
	ScrollLock *ScrollLock

	// Store, together with Name, remembers where the user dragged the popup.
	Store *PositionStore
}

// DefaultOptions returns the options a popup gets when nothing is customized.
func DefaultOptions() Options {
	return Options{
		Position:    PositionFixed,
		Shield:      true,
		ShieldColor: DefaultShieldColor,
		StartX:      0.5,
		StartY:      0.45,
		Animation:   FallFade{},
		Duration:    DefaultDuration,
	}
}

// Popup shows an element above an optional shield with an animated open and
// close. Show and Close are idempotent: each does something at most once.
type Popup struct {
	lifecycleSignals

	// closing fires at the start of Close, before any teardown.
	closing signal[struct{}]

	doc     *Document
	element *Element
	shield  *Element
	opts    Options
	lock    *ScrollLock

	state State
	x, y  float64
	anim  *Animation

	resizeHandle CallbackHandle
}

// New creates a popup for content in doc. The content is sized and
// positioned from opts but not attached until Show.
func New(doc *Document, content *Element, opts Options) *Popup {
	p := &Popup{
		doc:     doc,
		element: content,
		opts:    opts,
		lock:    opts.ScrollLock,
		x:       clamp01(opts.StartX),
		y:       clamp01(opts.StartY),
	}
	if p.lock == nil {
		p.lock = doc.ScrollLock()
	}

	content.Width = opts.Width
	content.Height = opts.Height
	content.Position = opts.Position

	if opts.Shield {
		vw, vh := doc.Size()
		shield := NewElement(opts.Name+"-shield", vw, vh)
		shield.Color = opts.ShieldColor
		shield.Position = PositionFixed
		p.shield = shield
	}

	if opts.Store != nil && opts.Name != "" {
		pos, ok, err := opts.Store.Load(opts.Name)
		if err != nil {
			doc.debugLog("popup %q: load position: %v", opts.Name, err)
		} else if ok {
			p.x = clamp01(pos.X)
			p.y = clamp01(pos.Y)
		}
	}

	if opts.Draggable && opts.DraggableHeight > 0 {
		p.configureDragging()
	}
	return p
}

// State returns the current lifecycle state.
func (p *Popup) State() State {
	return p.state
}

// Content returns the popup's content element.
func (p *Popup) Content() *Element {
	return p.element
}

// Shield returns the backdrop element, or nil when Options.Shield is false.
// The shield is disposed once the popup is destroyed.
func (p *Popup) Shield() *Element {
	return p.shield
}

// Position returns the relative position of the content center.
func (p *Popup) Position() (x, y float64) {
	return p.x, p.y
}

// SetPosition moves the content center to the relative position (x, y),
// clamped to [0, 1], and relayouts.
func (p *Popup) SetPosition(x, y float64) {
	p.x = clamp01(x)
	p.y = clamp01(y)
	p.layout()
}

// Animation returns the running transition, or nil when there is none.
func (p *Popup) Animation() *Animation {
	return p.anim
}

func (p *Popup) animated() bool {
	return p.opts.Animation != NoAnimation
}

// Show attaches the popup and plays the open transition. It does nothing
// unless the popup is in StateInitial.
func (p *Popup) Show() {
	if p.state != StateInitial {
		return
	}
	p.state = StateShown

	if p.opts.AffectBodyScroll {
		if p.lock.Count() == 0 {
			p.shown.once(func(struct{}) { p.doc.SetOverflow(OverflowAuto) })
		}
		p.lock.Acquire()
	}

	p.layout()
	p.resizeHandle = p.doc.OnResize(func(float64, float64) { p.layout() })
	p.destroyed.once(func(struct{}) { p.resizeHandle.Remove() })

	if !p.animated() {
		if p.shield != nil {
			p.doc.Body().AddChild(p.shield)
		}
		p.doc.Body().AddChild(p.element)
		p.handleShown()
		return
	}

	p.anim = NewAnimation(p.doc, p.element, p.shield, p.opts.Animation, p.opts.Duration)
	p.anim.OnShown(p.handleShown)
	p.anim.OnDestroyed(p.handleDestroyed)
	if err := p.anim.Start(); err != nil {
		panic(err)
	}
}

// Close plays the close transition and detaches the popup. It does nothing
// unless the popup is in StateShown.
func (p *Popup) Close() {
	if p.state != StateShown {
		return
	}
	p.state = StateClosed
	p.closing.emit(struct{}{})
	p.doc.emitLifecycle(EventClosing, p.opts.Name, p.x, p.y)

	if p.opts.AffectBodyScroll {
		if p.lock.Release() == 0 {
			p.doc.SetOverflow(OverflowHidden)
		}
	}

	if !p.animated() {
		p.element.RemoveFromParent()
		if p.shield != nil {
			p.shield.RemoveFromParent()
		}
		p.handleDestroyed()
		return
	}
	if err := p.anim.Reverse(); err != nil {
		panic(err)
	}
}

func (p *Popup) handleShown() {
	p.emitShown()
	p.doc.emitLifecycle(EventShown, p.opts.Name, p.x, p.y)
}

func (p *Popup) handleDestroyed() {
	p.anim = nil
	p.emitDestroyed()
	p.doc.emitLifecycle(EventDestroyed, p.opts.Name, p.x, p.y)
	// The shield is ours; the content belongs to the caller.
	if p.shield != nil {
		p.shield.Dispose()
	}
}
