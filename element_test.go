package popup

import "testing"

func TestNewElementDefaults(t *testing.T) {
	e := NewElement("box", 30, 40)
	if e.Name != "box" || e.Width != 30 || e.Height != 40 {
		t.Errorf("got %q %vx%v", e.Name, e.Width, e.Height)
	}
	if e.Alpha != 1 || e.Color != ColorWhite || !e.Visible || !e.Interactable {
		t.Error("new element should be visible, opaque, white and interactable")
	}
	if e.ID == 0 {
		t.Error("ID should be assigned")
	}
	if other := NewElement("other", 0, 0); other.ID == e.ID {
		t.Error("IDs should be unique")
	}
}

func TestAddRemoveChild(t *testing.T) {
	parent := NewElement("parent", 0, 0)
	child := NewElement("child", 0, 0)

	parent.AddChild(child)
	if child.Parent != parent || parent.NumChildren() != 1 || !child.Attached() {
		t.Fatal("AddChild did not attach")
	}

	parent.RemoveChild(child)
	if child.Parent != nil || parent.NumChildren() != 0 || child.Attached() {
		t.Fatal("RemoveChild did not detach")
	}

	child.RemoveFromParent() // no-op
}

func TestAddChildReparents(t *testing.T) {
	a := NewElement("a", 0, 0)
	b := NewElement("b", 0, 0)
	c := NewElement("c", 0, 0)
	a.AddChild(c)
	b.AddChild(c)
	if a.NumChildren() != 0 || b.NumChildren() != 1 || c.Parent != b {
		t.Error("child should move to the new parent")
	}
}

func TestAddChildOrder(t *testing.T) {
	p := NewElement("p", 0, 0)
	a := NewElement("a", 0, 0)
	b := NewElement("b", 0, 0)
	c := NewElement("c", 0, 0)
	p.AddChild(a)
	p.AddChild(b)
	p.AddChild(c)
	p.RemoveChild(b)
	kids := p.Children()
	if len(kids) != 2 || kids[0] != a || kids[1] != c {
		t.Errorf("children = %v", kids)
	}
}

func TestAddChildPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"nil child", func() { NewElement("p", 0, 0).AddChild(nil) }},
		{"self", func() {
			e := NewElement("e", 0, 0)
			e.AddChild(e)
		}},
		{"cycle", func() {
			a := NewElement("a", 0, 0)
			b := NewElement("b", 0, 0)
			a.AddChild(b)
			b.AddChild(a)
		}},
		{"remove foreign child", func() {
			NewElement("a", 0, 0).RemoveChild(NewElement("b", 0, 0))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestBounds(t *testing.T) {
	parent := NewElement("parent", 200, 100)
	parent.X, parent.Y = 50, 60
	parent.OffsetY = -10

	fixed := NewElement("fixed", 10, 10)
	fixed.X, fixed.Y = 5, 5
	parent.AddChild(fixed)

	abs := NewElement("abs", 10, 10)
	abs.Position = PositionAbsolute
	abs.X, abs.Y = 5, 5
	parent.AddChild(abs)

	if got := parent.Bounds(); got != (Rect{X: 50, Y: 50, Width: 200, Height: 100}) {
		t.Errorf("parent bounds = %+v", got)
	}
	if got := fixed.Bounds(); got != (Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Errorf("fixed bounds = %+v", got)
	}
	if got := abs.Bounds(); got != (Rect{X: 55, Y: 55, Width: 10, Height: 10}) {
		t.Errorf("absolute bounds = %+v", got)
	}
}

func TestDispose(t *testing.T) {
	root := NewElement("root", 0, 0)
	mid := NewElement("mid", 0, 0)
	leaf := NewElement("leaf", 0, 0)
	root.AddChild(mid)
	mid.AddChild(leaf)
	mid.OnPointerDown = func(PointerContext) {}

	mid.Dispose()
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("Dispose should be recursive")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed element should be detached")
	}
	if mid.OnPointerDown != nil || mid.ID != 0 {
		t.Error("disposed element should be cleared")
	}
	mid.Dispose() // no-op
}

func TestDebugModePanicsOnDisposed(t *testing.T) {
	doc, _ := newTestDocument(10, 10)
	doc.SetDebugMode(true)
	defer doc.SetDebugMode(false)

	e := NewElement("gone", 0, 0)
	e.Dispose()
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding a disposed element in debug mode")
		}
	}()
	doc.Body().AddChild(e)
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		x, y float64
		want bool
	}{
		{10, 10, true},
		{30, 30, true},
		{20, 20, true},
		{9, 20, false},
		{20, 31, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
