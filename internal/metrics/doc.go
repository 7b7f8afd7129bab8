// Package metrics contains abstractions for emission of metrics about watchdog activity. Currently,
// the only supported metrics output engine is statsd.
//
// Metrics are structured around hooks: the watchdog invokes hook methods at points in its polling
// loop (a watch was kicked, a watch expired, a poll pass completed), and hook implementations
// decide how, or whether, to ship those events to a backend. Emission never blocks the caller.
package metrics
