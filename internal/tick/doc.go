// Package tick abstracts the monotonic counter that elapsed-time checks are measured against. A
// tick is one unit of that counter, one millisecond unless a custom source says otherwise. All
// tick values are uint32 and wrap at 2^32; consumers rely on unsigned modular subtraction to
// compute deltas across the wrap.
package tick
