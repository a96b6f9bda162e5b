package popup

import (
	"fmt"
	"os"
)

// debugLog prints a "[popup]"-prefixed line to stderr in debug mode.
func (d *Document) debugLog(format string, args ...any) {
	if !d.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[popup] "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed
// element is used in a tree operation. Only called in debug mode.
func debugCheckDisposed(e *Element, op string) {
	if e.disposed {
		panic(fmt.Sprintf("popup debug: %s on disposed element %q", op, e.Name))
	}
}
