package popup

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image scaled up to draw solid elements. Created
// on first Draw so that headless code never touches the graphics driver.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw clears the screen with ClearColor and paints the body's subtree in
// tree order, so later siblings cover earlier ones.
func (d *Document) Draw(screen *ebiten.Image) {
	if d.ClearColor.A > 0 {
		screen.Fill(d.ClearColor.toRGBA())
	}
	for _, child := range d.body.children {
		d.drawElement(screen, child, 1)
	}
	d.flushScreenshots(screen)
}

func (d *Document) drawElement(screen *ebiten.Image, e *Element, parentAlpha float64) {
	if !e.Visible {
		return
	}
	alpha := parentAlpha * e.Alpha
	if alpha > 0 && e.Width > 0 && e.Height > 0 {
		b := e.Bounds()
		var op ebiten.DrawImageOptions
		img := e.Image
		if img == nil {
			img = solidPixel()
			c := e.Color
			a := float32(c.A * alpha)
			op.ColorScale.Scale(float32(c.R)*a, float32(c.G)*a, float32(c.B)*a, a)
		} else {
			a := float32(alpha)
			op.ColorScale.Scale(a, a, a, a)
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		op.GeoM.Scale(b.Width/float64(iw), b.Height/float64(ih))
		op.GeoM.Translate(b.X, b.Y)
		screen.DrawImage(img, &op)
	}
	for _, child := range e.children {
		d.drawElement(screen, child, alpha)
	}
}
