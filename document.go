package popup

const defaultFrameCap = 16

// Document is the top-level object that owns the element tree, the viewport
// size, the body scroll state, the frame queue and mouse input. It implements
// ebiten.Game, so it can be handed to ebiten.RunGame directly (see Run).
type Document struct {
	body       *Element
	width      float64
	height     float64
	overflow   Overflow
	clock      Clock
	scrollLock *ScrollLock
	sink       EventSink
	debug      bool

	// ClearColor fills the screen before the element tree is drawn. A zero
	// alpha leaves the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	// Frame queue (requestAnimationFrame analogue)
	frames   []func()
	frameBuf []func()

	resize signal[Vec2]

	// Input state
	pointerDown signal[PointerContext]
	pointerUp   signal[PointerContext]
	pointerMove signal[PointerContext]
	pointer     pointerState
	captured    *Element
	hitBuf      []*Element
	source      PointerSource
	injectQueue []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error
}

// NewDocument creates a document with an empty body and the given viewport
// size. Mouse input is polled from Ebitengine.
func NewDocument(width, height float64) *Document {
	body := NewElement("body", width, height)
	body.Interactable = false
	return &Document{
		body:          body,
		width:         width,
		height:        height,
		clock:         SystemClock,
		scrollLock:    NewScrollLock(),
		ScreenshotDir: "screenshots",
		frames:        make([]func(), 0, defaultFrameCap),
		frameBuf:      make([]func(), 0, defaultFrameCap),
		source:        ebitenPointer{},
	}
}

// Body returns the element popups attach to.
func (d *Document) Body() *Element {
	return d.body
}

// Size returns the viewport size in pixels.
func (d *Document) Size() (width, height float64) {
	return d.width, d.height
}

// SetSize changes the viewport size. Resize handlers fire only when the size
// actually changes.
func (d *Document) SetSize(width, height float64) {
	if width == d.width && height == d.height {
		return
	}
	d.width = width
	d.height = height
	d.body.Width = width
	d.body.Height = height
	d.debugLog("resize %vx%v", width, height)
	d.resize.emit(Vec2{X: width, Y: height})
}

// OnResize registers fn to run after every viewport size change.
func (d *Document) OnResize(fn func(width, height float64)) CallbackHandle {
	return d.resize.on(func(v Vec2) { fn(v.X, v.Y) })
}

// Overflow returns the body scroll behavior.
func (d *Document) Overflow() Overflow {
	return d.overflow
}

// SetOverflow sets the body scroll behavior.
func (d *Document) SetOverflow(o Overflow) {
	d.overflow = o
}

// ScrollLock returns the document's shared scroll-lock counter. Popups use it
// unless their Options carry another one.
func (d *Document) ScrollLock() *ScrollLock {
	return d.scrollLock
}

// Clock returns the clock animations in this document read.
func (d *Document) Clock() Clock {
	return d.clock
}

// SetClock replaces the clock. Passing nil restores SystemClock.
func (d *Document) SetClock(c Clock) {
	if c == nil {
		c = SystemClock
	}
	d.clock = c
}

// SetPointerSource replaces where mouse state is read from each Update.
// Passing nil disables polling; injected input still works.
func (d *Document) SetPointerSource(src PointerSource) {
	d.source = src
}

// SetUpdateFunc registers a callback run at the end of every Update.
func (d *Document) SetUpdateFunc(fn func() error) {
	d.updateFunc = fn
}

// RequestFrame queues fn to run once during the next Update. Callbacks queued
// while the queue is being flushed run on the following Update.
func (d *Document) RequestFrame(fn func()) {
	d.frames = append(d.frames, fn)
}

// PendingFrames returns the number of callbacks waiting for the next Update.
func (d *Document) PendingFrames() int {
	return len(d.frames)
}

// Update processes input and then runs the queued frame callbacks.
func (d *Document) Update() error {
	if d.testRunner != nil {
		d.testRunner.step(d)
	}
	d.processInput()
	d.flushFrames()
	if d.updateFunc != nil {
		return d.updateFunc()
	}
	return nil
}

// Layout reports the outside size as the viewport size, firing resize
// handlers when the window size changes.
func (d *Document) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.SetSize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

func (d *Document) flushFrames() {
	if len(d.frames) == 0 {
		return
	}
	run := d.frames
	d.frames = d.frameBuf[:0]
	for i, fn := range run {
		fn()
		run[i] = nil
	}
	d.frameBuf = run[:0]
}

// SetEventSink sets the optional receiver of popup lifecycle events.
func (d *Document) SetEventSink(sink EventSink) {
	d.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-element
// access panics and lifecycle transitions are logged to stderr.
func (d *Document) SetDebugMode(enabled bool) {
	d.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Document debug flag so that
// element operations (which lack a Document pointer) can check it cheaply.
var globalDebug bool
