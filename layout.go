package popup

import "math"

// computeLayout places a width×height box so its center sits at the
// relative position (x, y) of a vw×vh viewport. A box that would cross the
// right or bottom edge is pulled back inside; when the viewport is too small
// the box overflows right and down, never left or up. Results are whole
// pixels.
func computeLayout(vw, vh, width, height, x, y float64) (left, top float64) {
	left = vw*x - width/2
	top = vh*y - height/2
	if left+width > vw {
		left = vw - width
	}
	if top+height > vh {
		top = vh - height
	}
	left = math.Max(left, 0)
	top = math.Max(top, 0)
	return math.Round(left), math.Round(top)
}

// layout applies the current relative position to the content and stretches
// the shield over the viewport.
func (p *Popup) layout() {
	vw, vh := p.doc.Size()
	p.element.X, p.element.Y = computeLayout(vw, vh, p.opts.Width, p.opts.Height, p.x, p.y)
	if p.shield != nil {
		p.shield.X, p.shield.Y = 0, 0
		p.shield.Width, p.shield.Height = vw, vh
	}
}
