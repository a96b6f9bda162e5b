package popup

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Coefficients of the double-exponential curve v = a·exp(b·exp(c·t)).
// The curve rises steeply after a short slow start and settles gently, with
// Ease(1) pinned to exactly 1 by clamping.
const (
	easeA = 1.0042954579734844
	easeB = -6.4041738958415664
	easeC = -7.2908241330981340
)

// Ease maps linear progress t to eased progress. Inputs at or below 0 return
// 0 and inputs at or above 1 return 1.
func Ease(t float64) float64 {
	if t <= 0 {
		return 0
	} else if t >= 1 {
		return 1
	}
	return easeA * math.Exp(easeB*math.Exp(easeC*t))
}

// InverseEase returns the linear progress at which Ease reaches v. Inputs at
// or below 0 return 0 and inputs at or above 1 return 1.
//
// The curve does not quite touch 0 and 1 inside the open interval, so values
// in those slivers solve to slightly outside [0, 1]; the result is clamped.
func InverseEase(v float64) float64 {
	if v <= 0 {
		return 0
	} else if v >= 1 {
		return 1
	}
	return clamp01(math.Log(math.Log(v/easeA)/easeB) / easeC)
}

// EaseTween is Ease in gween's (t, b, c, d) form, so the popup curve can drive
// ordinary gween tweens.
var EaseTween ease.TweenFunc = func(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(Ease(float64(t/d)))
}
