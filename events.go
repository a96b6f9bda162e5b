package popup

// EventSink is the interface for optional lifecycle forwarding, e.g. into an
// ECS world. When set on a Document, every popup of that document reports
// its transitions to it.
type EventSink interface {
	EmitEvent(event LifecycleEvent)
}

// LifecycleEvent carries a popup transition for an EventSink.
type LifecycleEvent struct {
	Type EventType
	Name string
	// Relative position of the popup center at the time of the event.
	X, Y float64
}

func (d *Document) emitLifecycle(t EventType, name string, x, y float64) {
	d.debugLog("popup %q: %s (%.3f, %.3f)", name, t, x, y)
	if d.sink == nil {
		return
	}
	d.sink.EmitEvent(LifecycleEvent{Type: t, Name: name, X: x, Y: y})
}
