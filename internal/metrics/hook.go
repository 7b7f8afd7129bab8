package metrics

import (
	"os"
	"time"
)

// WatchdogHook is a metrics hook interface for reporting events that occur while the watchdog
// polls its watches.
type WatchdogHook interface {
	// EmitKick reports that a watch was reset by the application.
	EmitKick(watch string)

	// EmitExpiry reports that a watch was found expired. Elapsed is the full time since the last
	// reset; overshoot is how far past the timeout the expiry was detected.
	EmitExpiry(watch string, elapsed time.Duration, overshoot time.Duration)

	// EmitPoll reports the latency of one polling pass and the number of expiries it found.
	EmitPoll(latency time.Duration, expired int)
}

// AsyncStatsdWatchdogHook is an implementation of WatchdogHook that outputs metrics
// asynchronously to statsd.
type AsyncStatsdWatchdogHook struct {
	client *StatsdClient
}

// NoopWatchdogHook implements the WatchdogHook interface but noops on all emissions.
type NoopWatchdogHook struct{}

// NewAsyncStatsdWatchdogHook creates a new hook with the specified statsd address, sample rate,
// and build version. The host name and version are attached to every metric as default tags.
func NewAsyncStatsdWatchdogHook(addr string, sampleRate float32, version string) (WatchdogHook, error) {
	client, err := statsdClientFactory(addr, sampleRate, version)
	if err != nil {
		return nil, err
	}

	return &AsyncStatsdWatchdogHook{client}, nil
}

// EmitKick statsd implementation
func (h *AsyncStatsdWatchdogHook) EmitKick(watch string) {
	go h.client.Count("event.watchdog.kick", 1, map[string]string{
		"watch": watch,
	})
}

// EmitExpiry statsd implementation
func (h *AsyncStatsdWatchdogHook) EmitExpiry(watch string, elapsed time.Duration, overshoot time.Duration) {
	go func() {
		tags := map[string]string{"watch": watch}

		h.client.Count("event.watchdog.expiry", 1, tags)
		h.client.Timing("latency.watchdog.elapsed", elapsed, tags)
		h.client.Timing("latency.watchdog.overshoot", overshoot, tags)
	}()
}

// EmitPoll statsd implementation
func (h *AsyncStatsdWatchdogHook) EmitPoll(latency time.Duration, expired int) {
	go func() {
		h.client.Timing("latency.watchdog.poll", latency, nil)
		h.client.Gauge("gauge.watchdog.expired", int64(expired), nil)
	}()
}

// NewNoopWatchdogHook creates a noop implementation of WatchdogHook.
func NewNoopWatchdogHook() WatchdogHook {
	return &NoopWatchdogHook{}
}

// EmitKick noops.
func (h *NoopWatchdogHook) EmitKick(watch string) {}

// EmitExpiry noops.
func (h *NoopWatchdogHook) EmitExpiry(watch string, elapsed time.Duration, overshoot time.Duration) {
}

// EmitPoll noops.
func (h *NoopWatchdogHook) EmitPoll(latency time.Duration, expired int) {}

// statsdClientFactory creates a configured StatsdClient with reasonable defaults for the given
// statsd server address and sample rate.
func statsdClientFactory(addr string, sampleRate float32, version string) (*StatsdClient, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	defaultTags := map[string]string{
		"host": hostname,
	}
	if version != "" {
		defaultTags["version"] = version
	}

	return NewStatsdClient(addr, "ticktimeout", defaultTags, sampleRate)
}
