package popup

import "testing"

func TestNewDocument(t *testing.T) {
	d := NewDocument(320, 240)
	if w, h := d.Size(); w != 320 || h != 240 {
		t.Errorf("Size = %vx%v", w, h)
	}
	if d.Body().Width != 320 || d.Body().Height != 240 {
		t.Error("body should span the viewport")
	}
	if d.Body().Interactable {
		t.Error("body should not be hit-testable")
	}
	if d.Overflow() != OverflowVisible {
		t.Errorf("Overflow = %v, want visible", d.Overflow())
	}
	if d.ScrollLock() == nil || d.ScrollLock().Count() != 0 {
		t.Error("document should own an empty scroll lock")
	}
	if d.Clock() != SystemClock {
		t.Error("default clock should be SystemClock")
	}
	if d.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q", d.ScreenshotDir)
	}
}

func TestSetClockNilRestoresSystem(t *testing.T) {
	d, _ := newTestDocument(10, 10)
	d.SetClock(nil)
	if d.Clock() != SystemClock {
		t.Error("SetClock(nil) should restore SystemClock")
	}
}

func TestRequestFrameRunsOnNextUpdate(t *testing.T) {
	d, _ := newTestDocument(10, 10)
	var order []int
	d.RequestFrame(func() { order = append(order, 1) })
	d.RequestFrame(func() { order = append(order, 2) })
	if d.PendingFrames() != 2 {
		t.Fatalf("PendingFrames = %d, want 2", d.PendingFrames())
	}
	if len(order) != 0 {
		t.Fatal("callbacks must not run before Update")
	}
	_ = d.Update()
	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("order = %v, want [1 2]", order)
	}
	if d.PendingFrames() != 0 {
		t.Errorf("PendingFrames = %d, want 0", d.PendingFrames())
	}
}

func TestRequestFrameDuringFlushWaits(t *testing.T) {
	d, _ := newTestDocument(10, 10)
	runs := 0
	var fn func()
	fn = func() {
		runs++
		if runs < 3 {
			d.RequestFrame(fn)
		}
	}
	d.RequestFrame(fn)

	for i := 1; i <= 4; i++ {
		_ = d.Update()
		want := min(i, 3)
		if runs != want {
			t.Fatalf("after Update %d: runs = %d, want %d", i, runs, want)
		}
	}
}

func TestResizeFiresOnChangeOnly(t *testing.T) {
	d, _ := newTestDocument(100, 100)
	var sizes []Vec2
	h := d.OnResize(func(w, h float64) { sizes = append(sizes, Vec2{w, h}) })

	d.SetSize(100, 100)
	d.SetSize(200, 150)
	if w, h := d.Layout(200, 150); w != 200 || h != 150 {
		t.Errorf("Layout = %dx%d", w, h)
	}
	d.Layout(300, 150)

	if len(sizes) != 2 || sizes[0] != (Vec2{200, 150}) || sizes[1] != (Vec2{300, 150}) {
		t.Errorf("resize events = %v", sizes)
	}
	if d.Body().Width != 300 || d.Body().Height != 150 {
		t.Error("body should follow the viewport")
	}

	h.Remove()
	d.SetSize(10, 10)
	if len(sizes) != 2 {
		t.Error("removed resize handler still fired")
	}
}

func TestUpdateFunc(t *testing.T) {
	d, _ := newTestDocument(10, 10)
	calls := 0
	d.SetUpdateFunc(func() error {
		calls++
		return nil
	})
	_ = d.Update()
	_ = d.Update()
	if calls != 2 {
		t.Errorf("update func ran %d times, want 2", calls)
	}
}

func TestScrollLockCounter(t *testing.T) {
	l := NewScrollLock()
	if prev := l.Acquire(); prev != 0 {
		t.Errorf("first Acquire = %d, want 0", prev)
	}
	if prev := l.Acquire(); prev != 1 {
		t.Errorf("second Acquire = %d, want 1", prev)
	}
	if n := l.Release(); n != 1 {
		t.Errorf("Release = %d, want 1", n)
	}
	if n := l.Release(); n != 0 {
		t.Errorf("Release = %d, want 0", n)
	}
	if n := l.Release(); n != 0 {
		t.Errorf("Release below zero = %d, want 0", n)
	}
	if l.Count() != 0 {
		t.Errorf("Count = %d, want 0", l.Count())
	}
}

func TestFallFadeFrames(t *testing.T) {
	tests := []struct {
		fraction    float64
		wantAlpha   float64
		wantOffsetY float64
	}{
		{0, 0, -50},
		{0.5, 0.5, -25},
		{0.1234, 0.123, -43.83},
		{1, 1, 0},
	}
	for _, tt := range tests {
		content := NewElement("c", 10, 10)
		shield := NewElement("s", 10, 10)
		FallFade{}.ShowFrame(content, shield, tt.fraction)
		if content.Alpha != tt.wantAlpha || shield.Alpha != tt.wantAlpha {
			t.Errorf("fraction %v: alpha content=%v shield=%v, want %v",
				tt.fraction, content.Alpha, shield.Alpha, tt.wantAlpha)
		}
		if content.OffsetY != tt.wantOffsetY {
			t.Errorf("fraction %v: OffsetY = %v, want %v", tt.fraction, content.OffsetY, tt.wantOffsetY)
		}
	}
}

func TestFallFadeCustomDistanceAndNoShield(t *testing.T) {
	content := NewElement("c", 10, 10)
	FallFade{Distance: 20}.ShowFrame(content, nil, 0)
	if content.OffsetY != -20 {
		t.Errorf("OffsetY = %v, want -20", content.OffsetY)
	}
}

func TestColorToRGBA(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	if got.A != 127 || got.R != 127 || got.G != 63 || got.B != 0 {
		t.Errorf("toRGBA = %+v", got)
	}
}

func TestEventTypeString(t *testing.T) {
	names := map[EventType]string{
		EventShown:     "shown",
		EventClosing:   "closing",
		EventDestroyed: "destroyed",
		EventMoved:     "moved",
		EventType(99):  "unknown",
	}
	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
