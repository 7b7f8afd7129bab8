package timeout

import (
	"sync"

	"ticktimeout/internal/tick"
)

var (
	defaultChecker = New(tick.NewMonotonicSource(0))
	defaultMutex   sync.RWMutex
)

// SetTickSource replaces the tick source used by the package-level functions. A nil source
// restores a fresh millisecond monotonic source.
func SetTickSource(source tick.Source) {
	if source == nil {
		source = tick.NewMonotonicSource(0)
	}

	defaultMutex.Lock()
	defer defaultMutex.Unlock()

	defaultChecker = New(source)
}

// Default returns the process-wide checker used by the package-level functions.
func Default() *Checker {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()

	return defaultChecker
}

// Reset records the current tick of the default source in the handle.
func Reset(h *Handle) {
	Default().Reset(h)
}

// Elapsed returns the ticks since the handle was last reset, per the default source.
func Elapsed(h *Handle) uint32 {
	return Default().Elapsed(h)
}

// IsElapsed reports whether at least timeout ticks of the default source have passed since the
// handle was last reset.
func IsElapsed(h *Handle, timeout uint32) bool {
	return Default().IsElapsed(h, timeout)
}
