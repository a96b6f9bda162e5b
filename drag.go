package popup

// configureDragging installs the drag handle once the popup is shown and
// removes it as soon as closing starts.
func (p *Popup) configureDragging() {
	p.shown.once(func(struct{}) {
		p.element.OnPointerDown = p.handlePointerDown
	})
	p.closing.once(func(struct{}) {
		p.element.OnPointerDown = nil
	})
}

// handlePointerDown starts a drag when the press lands on the handle strip
// at the top of the content. The document-level move and up handlers it
// registers are removed on release or when the popup starts closing,
// whichever comes first.
func (p *Popup) handlePointerDown(ctx PointerContext) {
	rect := p.element.Bounds()
	if ctx.GlobalY-rect.Y > p.opts.DraggableHeight {
		return
	}

	p.doc.CapturePointer(p.element)
	startX, startY := ctx.GlobalX, ctx.GlobalY

	var moveHandle, upHandle, closeHandle CallbackHandle
	end := func() {
		closeHandle.Remove()
		upHandle.Remove()
		moveHandle.Remove()
		p.doc.ReleasePointer()
	}

	moveHandle = p.doc.OnPointerMove(func(m PointerContext) {
		vw, vh := p.doc.Size()
		if vw <= 0 || vh <= 0 {
			return
		}
		centerX := m.GlobalX - startX + rect.X + p.opts.Width/2
		centerY := m.GlobalY - startY + rect.Y + p.opts.Height/2
		p.x = clamp01(centerX / vw)
		p.y = clamp01(centerY / vh)
		p.layout()
		p.doc.emitLifecycle(EventMoved, p.opts.Name, p.x, p.y)
	})
	upHandle = p.doc.OnPointerUp(func(PointerContext) {
		end()
		p.savePosition()
	})
	closeHandle = p.closing.on(func(struct{}) { end() })
}

// savePosition records the current position in the configured store.
func (p *Popup) savePosition() {
	if p.opts.Store == nil || p.opts.Name == "" {
		return
	}
	if err := p.opts.Store.Save(p.opts.Name, Vec2{X: p.x, Y: p.y}); err != nil {
		p.doc.debugLog("popup %q: save position: %v", p.opts.Name, err)
	}
}
