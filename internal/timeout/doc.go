// Package timeout implements non-blocking elapsed-time checks against a wrapping tick counter.
//
// A Handle records the tick at which it was last reset. IsElapsed compares the distance from that
// tick to the current tick against a timeout, using uint32 subtraction so that the result stays
// correct when the counter wraps between the reset and the check:
//
//	var h timeout.Handle
//	timeout.Reset(&h)
//	...
//	if timeout.IsElapsed(&h, tick.SecToMs(5)) {
//		// five seconds have passed since the reset
//	}
//
// Handles are owned by the caller. Nothing in this package synchronizes access to them.
package timeout
