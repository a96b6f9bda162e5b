package popup

import "math"

// FallPixels is how far above its resting place a FallFade popup starts.
const FallPixels = 50

// FallFade drops the content into place from above while fading it and the
// shield in. The zero value falls FallPixels.
type FallFade struct {
	Distance float64
}

// ShowFrame sets the alpha of both elements to fraction and offsets the
// content upwards by the remaining part of the fall.
func (f FallFade) ShowFrame(content, shield *Element, fraction float64) {
	dist := f.Distance
	if dist == 0 {
		dist = FallPixels
	}
	alpha := math.Round(fraction*1000) / 1000
	if fraction == 1 {
		content.OffsetY = 0
	} else {
		content.OffsetY = math.Round((fraction-1)*dist*100) / 100
	}
	content.Alpha = alpha
	if shield != nil {
		shield.Alpha = alpha
	}
}
