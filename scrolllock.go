package popup

// ScrollLock counts the shown popups that asked for body scroll handling.
// One lock is shared by every popup of a document; tests create their own.
type ScrollLock struct {
	count int
}

// NewScrollLock returns a lock with a zero count.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

// Acquire increments the count and returns the value it had before.
func (l *ScrollLock) Acquire() int {
	prev := l.count
	l.count++
	return prev
}

// Release decrements the count, never below zero, and returns the new value.
func (l *ScrollLock) Release() int {
	if l.count > 0 {
		l.count--
	}
	return l.count
}

// Count returns the number of outstanding acquisitions.
func (l *ScrollLock) Count() int {
	return l.count
}
