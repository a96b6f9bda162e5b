package popup

// remover is implemented by every handler registry a CallbackHandle can point into.
type remover interface {
	remove(id uint32)
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	id  uint32
	reg remover
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.remove(h.id)
}

type handler[T any] struct {
	id   uint32
	fn   func(T)
	once bool
}

// signal is a single named event channel. Handlers run synchronously in
// registration order.
type signal[T any] struct {
	handlers []handler[T]
	nextID   uint32
}

func (s *signal[T]) on(fn func(T)) CallbackHandle {
	return s.add(fn, false)
}

func (s *signal[T]) once(fn func(T)) CallbackHandle {
	return s.add(fn, true)
}

func (s *signal[T]) add(fn func(T), once bool) CallbackHandle {
	s.nextID++
	id := s.nextID
	s.handlers = append(s.handlers, handler[T]{id: id, fn: fn, once: once})
	return CallbackHandle{id: id, reg: s}
}

func (s *signal[T]) remove(id uint32) {
	for i := range s.handlers {
		if s.handlers[i].id == id {
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = handler[T]{}
			s.handlers = s.handlers[:len(s.handlers)-1]
			return
		}
	}
}

func (s *signal[T]) has(id uint32) bool {
	for i := range s.handlers {
		if s.handlers[i].id == id {
			return true
		}
	}
	return false
}

// emit calls every handler registered at the time of the call. Handlers
// removed by an earlier handler in the same emit are skipped; handlers added
// during the emit wait for the next one.
func (s *signal[T]) emit(v T) {
	if len(s.handlers) == 0 {
		return
	}
	snapshot := make([]handler[T], len(s.handlers))
	copy(snapshot, s.handlers)
	for _, h := range snapshot {
		if !s.has(h.id) {
			continue
		}
		if h.once {
			s.remove(h.id)
		}
		h.fn(v)
	}
}

func (s *signal[T]) len() int {
	return len(s.handlers)
}

// Lifecycle is the event surface shared by Animation and Popup.
type Lifecycle interface {
	// OnShown registers fn to run when the element is fully visible.
	OnShown(fn func()) CallbackHandle
	// OnDestroyed registers fn to run when the element is detached and inert.
	OnDestroyed(fn func()) CallbackHandle
}

// lifecycleSignals holds the shown/destroyed channels embedded by Animation
// and Popup.
type lifecycleSignals struct {
	shown     signal[struct{}]
	destroyed signal[struct{}]
}

// OnShown registers fn to run each time the shown event fires.
func (l *lifecycleSignals) OnShown(fn func()) CallbackHandle {
	return l.shown.on(func(struct{}) { fn() })
}

// OnDestroyed registers fn to run each time the destroyed event fires.
func (l *lifecycleSignals) OnDestroyed(fn func()) CallbackHandle {
	return l.destroyed.on(func(struct{}) { fn() })
}

func (l *lifecycleSignals) emitShown()     { l.shown.emit(struct{}{}) }
func (l *lifecycleSignals) emitDestroyed() { l.destroyed.emit(struct{}{}) }
