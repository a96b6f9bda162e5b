package popup

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// ColorWhite is the default element tint.
var ColorWhite = Color{1, 1, 1, 1}

// DefaultShieldColor is the semi-transparent black used behind popups.
var DefaultShieldColor = Color{0, 0, 0, 0.4}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Position selects how an element's coordinates are interpreted.
type Position uint8

const (
	PositionFixed    Position = iota // relative to the viewport
	PositionAbsolute                 // relative to the parent element
)

// String returns the config spelling of the position mode.
func (p Position) String() string {
	switch p {
	case PositionAbsolute:
		return "absolute"
	default:
		return "fixed"
	}
}

// Overflow is the scroll behavior of the document body.
type Overflow uint8

const (
	OverflowVisible Overflow = iota // untouched by any popup
	OverflowAuto                    // scrolling allowed
	OverflowHidden                  // scrolling suppressed
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// EventType identifies a popup lifecycle event forwarded to an EventSink.
type EventType uint8

const (
	EventShown     EventType = iota // popup fully visible and interactive
	EventClosing                    // Close was called; teardown begins
	EventDestroyed                  // popup detached and inert
	EventMoved                      // a drag changed the relative position
)

// String returns a short lowercase name for the event type.
func (e EventType) String() string {
	switch e {
	case EventShown:
		return "shown"
	case EventClosing:
		return "closing"
	case EventDestroyed:
		return "destroyed"
	case EventMoved:
		return "moved"
	default:
		return "unknown"
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
