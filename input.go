package popup

import "github.com/hajimehoshi/ebiten/v2"

// PointerSource reports the current mouse state once per Update.
type PointerSource interface {
	Pointer() (x, y float64, pressed bool, button MouseButton)
}

// ebitenPointer polls the mouse through Ebitengine.
type ebitenPointer struct{}

func (ebitenPointer) Pointer() (x, y float64, pressed bool, button MouseButton) {
	mx, my := ebiten.CursorPosition()
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	return float64(mx), float64(my), pressed, button
}

type pointerState struct {
	down   bool
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// --- Document-level event registration ---

// OnPointerDown registers a document-level callback for pointer down events.
func (d *Document) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return d.pointerDown.on(fn)
}

// OnPointerUp registers a document-level callback for pointer up events.
func (d *Document) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return d.pointerUp.on(fn)
}

// OnPointerMove registers a document-level callback for pointer move events,
// fired whether or not a button is held.
func (d *Document) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return d.pointerMove.on(fn)
}

// CapturePointer routes pointer events to the given element until the
// button is released or ReleasePointer is called.
func (d *Document) CapturePointer(e *Element) {
	d.captured = e
}

// ReleasePointer stops routing pointer events to a captured element.
func (d *Document) ReleasePointer() {
	d.captured = nil
}

// --- Hit testing ---

// collectInteractable walks the tree in painter order, appending visible
// interactable elements with a non-empty box to buf.
func collectInteractable(e *Element, buf []*Element) []*Element {
	if !e.Visible {
		return buf
	}
	if e.Interactable && (e.Width > 0 || e.Height > 0) {
		buf = append(buf, e)
	}
	for _, child := range e.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable element at (x, y).
// Returns nil if nothing is hit.
func (d *Document) hitTest(x, y float64) *Element {
	d.hitBuf = collectInteractable(d.body, d.hitBuf[:0])
	for i := len(d.hitBuf) - 1; i >= 0; i-- {
		if d.hitBuf[i].Bounds().Contains(x, y) {
			return d.hitBuf[i]
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Document.Update. Injected events take priority
// over the polled mouse for the frame they are consumed in.
func (d *Document) processInput() {
	if d.processInjectedInput() {
		return
	}
	if d.source == nil {
		return
	}
	x, y, pressed, button := d.source.Pointer()
	d.processPointer(x, y, pressed, button)
}

// processPointer runs the mouse state machine for one frame.
func (d *Document) processPointer(x, y float64, pressed bool, button MouseButton) {
	ps := &d.pointer

	var target *Element
	if d.captured != nil {
		target = d.captured
	} else {
		target = d.hitTest(x, y)
	}

	if pressed && !ps.down {
		ps.down = true
		ps.button = button
		ps.lastX = x
		ps.lastY = y
		d.firePointerDown(target, x, y, button)
	} else if !pressed && ps.down {
		if x != ps.lastX || y != ps.lastY {
			d.firePointerMove(target, x, y, ps.button)
		}
		d.firePointerUp(target, x, y, ps.button)
		d.captured = nil
		ps.down = false
		ps.lastX = x
		ps.lastY = y
	} else if x != ps.lastX || y != ps.lastY {
		b := button
		if ps.down {
			b = ps.button
		}
		d.firePointerMove(target, x, y, b)
		ps.lastX = x
		ps.lastY = y
	}
}

// --- Event dispatch ---

func pointerContext(e *Element, x, y float64, button MouseButton) PointerContext {
	ctx := PointerContext{Element: e, GlobalX: x, GlobalY: y, Button: button}
	if e != nil {
		b := e.Bounds()
		ctx.LocalX = x - b.X
		ctx.LocalY = y - b.Y
	}
	return ctx
}

func (d *Document) firePointerDown(e *Element, x, y float64, button MouseButton) {
	ctx := pointerContext(e, x, y, button)
	// Document-level handlers first.
	d.pointerDown.emit(ctx)
	if e != nil && e.OnPointerDown != nil {
		e.OnPointerDown(ctx)
	}
}

func (d *Document) firePointerUp(e *Element, x, y float64, button MouseButton) {
	d.pointerUp.emit(pointerContext(e, x, y, button))
}

func (d *Document) firePointerMove(e *Element, x, y float64, button MouseButton) {
	d.pointerMove.emit(pointerContext(e, x, y, button))
}
