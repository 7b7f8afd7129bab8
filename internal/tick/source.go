package tick

import (
	"sync/atomic"
	"time"
)

// Source is a monotonic, wrapping tick counter.
type Source interface {
	// Ticks reads the current counter value. Successive reads never decrease, except when the
	// counter wraps past its maximum value back to zero.
	Ticks() uint32
}

// SourceFunc adapts a plain accessor function, such as a platform uptime getter, to a Source.
type SourceFunc func() uint32

// Ticks calls the underlying function.
func (f SourceFunc) Ticks() uint32 {
	return f()
}

// MonotonicSource counts milliseconds elapsed since its creation using the Go runtime's monotonic
// clock. It is the default tick source.
type MonotonicSource struct {
	origin time.Time
	offset uint32
}

// NewMonotonicSource creates a millisecond source whose first reading is approximately offset.
// A large offset places the counter close to its wrap point.
func NewMonotonicSource(offset uint32) *MonotonicSource {
	return &MonotonicSource{
		origin: time.Now(),
		offset: offset,
	}
}

// Ticks returns the offset plus the whole milliseconds since creation, truncated to 32 bits.
func (s *MonotonicSource) Ticks() uint32 {
	return s.offset + uint32(time.Since(s.origin)/time.Millisecond)
}

// ManualSource is a tick counter that only moves when told to. It is intended for tests and
// simulations that need to supply a synthetic tick sequence.
type ManualSource struct {
	ticks uint32
}

// NewManualSource creates a manual source starting at the given tick.
func NewManualSource(start uint32) *ManualSource {
	return &ManualSource{ticks: start}
}

// Ticks reads the current tick.
func (s *ManualSource) Ticks() uint32 {
	return atomic.LoadUint32(&s.ticks)
}

// Set moves the counter to an absolute tick.
func (s *ManualSource) Set(ticks uint32) {
	atomic.StoreUint32(&s.ticks, ticks)
}

// Advance moves the counter forward by delta ticks, wrapping past the maximum value, and returns
// the new tick.
func (s *ManualSource) Advance(delta uint32) uint32 {
	return atomic.AddUint32(&s.ticks, delta)
}
