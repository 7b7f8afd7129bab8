package timeout

import (
	"time"

	"ticktimeout/internal/tick"
)

// Handle is the tick value recorded at the last reset.
type Handle uint32

// Checker evaluates handles against a single tick source.
type Checker struct {
	source tick.Source
}

// New creates a checker that reads the specified tick source.
func New(source tick.Source) *Checker {
	return &Checker{source: source}
}

// Source returns the tick source backing the checker.
func (c *Checker) Source() tick.Source {
	return c.source
}

// Reset records the current tick in the handle.
func (c *Checker) Reset(h *Handle) {
	*h = Handle(c.source.Ticks())
}

// Elapsed returns the number of ticks since the handle was last reset, modulo 2^32.
func (c *Checker) Elapsed(h *Handle) uint32 {
	return c.source.Ticks() - uint32(*h)
}

// IsElapsed reports whether at least timeout ticks have passed since the handle was last reset.
// The handle is not modified; once true, the result stays true until the handle is reset, or
// until a full counter period has passed.
func (c *Checker) IsElapsed(h *Handle, timeout uint32) bool {
	return c.Elapsed(h) >= timeout
}

// Duration converts a duration to millisecond ticks. Sub-millisecond remainders are dropped and
// values past one counter period are truncated to 32 bits.
func Duration(d time.Duration) uint32 {
	return uint32(d / time.Millisecond)
}
