package tick

// Unit conversions are plain uint32 multiplications. Results wrap on overflow; callers choose
// inputs that fit, e.g. MinToMs is exact only up to 71582 minutes.

// SecToMs converts seconds to milliseconds.
func SecToMs(s uint32) uint32 {
	return s * 1000
}

// MinToMs converts minutes to milliseconds.
func MinToMs(m uint32) uint32 {
	return m * 60000
}

// MsToUs converts milliseconds to microseconds.
func MsToUs(ms uint32) uint32 {
	return ms * 1000
}

// SecToUs converts seconds to microseconds.
func SecToUs(s uint32) uint32 {
	return s * 1000000
}
