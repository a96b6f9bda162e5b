package popup

import "github.com/hajimehoshi/ebiten/v2"

// PointerContext carries pointer event data.
type PointerContext struct {
	Element *Element
	GlobalX float64
	GlobalY float64
	LocalX  float64
	LocalY  float64
	Button  MouseButton
}

// elementIDCounter is a plain counter (no atomic; the document is single-threaded).
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is a retained box in the document tree. Popup content and the
// shield behind it are both Elements.
type Element struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy
	Parent   *Element
	children []*Element

	// Box. X and Y are the laid-out top-left corner; OffsetX and OffsetY are a
	// visual translation applied on top (the transform of an animation).
	X, Y             float64
	Width, Height    float64
	OffsetX, OffsetY float64
	Position         Position

	// Style
	Alpha        float64
	Color        Color
	Visible      bool
	Interactable bool

	// Image, when non-nil, is drawn scaled to the box instead of a solid fill.
	Image *ebiten.Image

	// Metadata
	UserData any

	// Per-element callback (nil by default).
	OnPointerDown func(PointerContext)

	disposed bool
}

// NewElement creates a visible, fully opaque white element of the given size.
func NewElement(name string, width, height float64) *Element {
	return &Element{
		ID:           nextElementID(),
		Name:         name,
		Width:        width,
		Height:       height,
		Alpha:        1,
		Color:        ColorWhite,
		Visible:      true,
		Interactable: true,
	}
}

// --- Tree manipulation ---

// AddChild appends child to this element's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this element (cycle).
func (e *Element) AddChild(child *Element) {
	if child == nil {
		panic("popup: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(e, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, e) {
		panic("popup: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child from this element.
// Panics if child.Parent != e.
func (e *Element) RemoveChild(child *Element) {
	if child.Parent != e {
		panic("popup: child's parent is not this element")
	}
	e.removeChildByPtr(child)
	child.Parent = nil
}

// RemoveFromParent detaches this element from its parent.
// No-op if this element has no parent.
func (e *Element) RemoveFromParent() {
	if e.Parent == nil {
		return
	}
	e.Parent.RemoveChild(e)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (e *Element) Children() []*Element {
	return e.children
}

// NumChildren returns the number of children.
func (e *Element) NumChildren() int {
	return len(e.children)
}

// Attached reports whether the element hangs off some parent.
func (e *Element) Attached() bool {
	return e.Parent != nil
}

// Bounds returns the element's box in viewport coordinates, including its
// visual offset. Fixed elements ignore their ancestors; absolute elements
// are placed relative to their parent's box.
func (e *Element) Bounds() Rect {
	x := e.X + e.OffsetX
	y := e.Y + e.OffsetY
	if e.Position == PositionAbsolute && e.Parent != nil {
		pb := e.Parent.Bounds()
		x += pb.X
		y += pb.Y
	}
	return Rect{X: x, Y: y, Width: e.Width, Height: e.Height}
}

// --- Disposal ---

// Dispose removes this element from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (e *Element) Dispose() {
	if e.disposed {
		return
	}
	e.RemoveFromParent()
	e.dispose()
}

func (e *Element) dispose() {
	e.disposed = true
	e.ID = 0
	for _, child := range e.children {
		child.Parent = nil
		child.dispose()
	}
	e.children = nil
	e.Parent = nil
	e.Image = nil
	e.UserData = nil
	e.OnPointerDown = nil
}

// IsDisposed returns true if this element has been disposed.
func (e *Element) IsDisposed() bool {
	return e.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of e.
func isAncestor(candidate, e *Element) bool {
	for p := e; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from e.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (e *Element) removeChildByPtr(child *Element) {
	for i, c := range e.children {
		if c == child {
			copy(e.children[i:], e.children[i+1:])
			e.children[len(e.children)-1] = nil
			e.children = e.children[:len(e.children)-1]
			return
		}
	}
}
