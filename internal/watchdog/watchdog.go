// Package watchdog is a cooperative software watchdog built on elapsed-time checks. Each named
// watch owns a timeout.Handle; the application kicks a watch to show liveness, and a polling pass
// reports every watch that has gone longer than its timeout without a kick.
package watchdog

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lib.kevinlin.info/aperture/lib"

	"ticktimeout/internal/data"
	"ticktimeout/internal/log"
	"ticktimeout/internal/metrics"
	"ticktimeout/internal/timeout"
)

// Watch describes one named timeout.
type Watch struct {
	// Name identifies the watch in kicks, logs, and metrics.
	Name string
	// Timeout is the number of ticks the watch may go without a kick.
	Timeout uint32
	// AutoReset re-arms the watch as soon as its expiry has been reported, so that it fires
	// again one timeout later. Without it, an expired watch stays expired until kicked and is
	// reported only once.
	AutoReset bool
}

// Expiry reports a watch found expired during a poll.
type Expiry struct {
	Name string
	// Elapsed is the number of ticks since the watch was last reset.
	Elapsed uint32
	// Overshoot is the number of ticks past the timeout at which the expiry was detected.
	Overshoot uint32
}

// String formats the expiry for logs.
func (e Expiry) String() string {
	return fmt.Sprintf("name=%s elapsed=%d overshoot=%d", e.Name, e.Elapsed, e.Overshoot)
}

type entry struct {
	Watch
	handle   timeout.Handle
	reported bool
}

// Watchdog polls a fixed set of watches against a single checker. Kick and Poll may be called from
// different goroutines; the watchdog serializes access to its handles.
type Watchdog struct {
	checker *timeout.Checker
	hook    metrics.WatchdogHook
	logger  log.Logger
	entries []*entry
	byName  map[string]*entry
	mutex   sync.Mutex
}

// New creates a watchdog and arms every watch at the checker's current tick. Watch names are
// expected to be unique; a repeated name replaces the earlier watch.
func New(checker *timeout.Checker, watches []Watch, hook metrics.WatchdogHook, logger log.Logger) *Watchdog {
	w := &Watchdog{
		checker: checker,
		hook:    hook,
		logger:  logger,
		byName:  make(map[string]*entry, len(watches)),
	}

	for _, watch := range watches {
		e := &entry{Watch: watch}
		checker.Reset(&e.handle)

		if existing, ok := w.byName[watch.Name]; ok {
			*existing = *e
			continue
		}

		w.entries = append(w.entries, e)
		w.byName[watch.Name] = e

		logger.Debug(
			"watchdog: armed watch: name=%s timeout=%d auto_reset=%v tick=%d",
			watch.Name,
			watch.Timeout,
			watch.AutoReset,
			e.handle,
		)
	}

	return w
}

// Kick resets the named watch. It returns false if no such watch exists.
func (w *Watchdog) Kick(name string) bool {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	e, ok := w.byName[name]
	if !ok {
		w.logger.Debug("watchdog: kick for unknown watch: name=%s", name)
		return false
	}

	w.checker.Reset(&e.handle)
	e.reported = false
	w.hook.EmitKick(name)

	w.logger.Debug("watchdog: kicked watch: name=%s tick=%d", name, e.handle)

	return true
}

// Expired reports whether the named watch is currently past its timeout, and whether the watch
// exists.
func (w *Watchdog) Expired(name string) (bool, bool) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	e, ok := w.byName[name]
	if !ok {
		return false, false
	}

	return w.checker.IsElapsed(&e.handle, e.Timeout), true
}

// Poll makes one non-blocking pass over every watch and returns the newly detected expiries,
// largest overshoot first.
func (w *Watchdog) Poll() []Expiry {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	queue := data.NewPriorityQueue(len(w.entries))

	for _, e := range w.entries {
		if e.reported || !w.checker.IsElapsed(&e.handle, e.Timeout) {
			continue
		}

		elapsed := w.checker.Elapsed(&e.handle)
		expiry := Expiry{
			Name:      e.Name,
			Elapsed:   elapsed,
			Overshoot: elapsed - e.Timeout,
		}
		queue.Push(expiry, expiry.Overshoot)

		if e.AutoReset {
			w.checker.Reset(&e.handle)
		} else {
			e.reported = true
		}
	}

	expiries := make([]Expiry, 0, queue.Len())
	for _, value := range queue.Drain() {
		expiry := value.(Expiry)
		expiries = append(expiries, expiry)

		w.logger.Warn("watchdog: watch expired: %s", expiry)
		w.hook.EmitExpiry(expiry.Name, ticksToDuration(expiry.Elapsed), ticksToDuration(expiry.Overshoot))
	}

	return expiries
}

// Run polls every interval until the context is cancelled, passing each expiry to onExpiry. The
// interval must be positive. It returns the context's error.
func (w *Watchdog) Run(ctx context.Context, interval time.Duration, onExpiry func(Expiry)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		pollTimer := lib.NewStopwatch()
		expiries := w.Poll()
		w.hook.EmitPoll(pollTimer.Elapsed(), len(expiries))

		if onExpiry != nil {
			for _, expiry := range expiries {
				onExpiry(expiry)
			}
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// ticksToDuration interprets ticks as milliseconds.
func ticksToDuration(ticks uint32) time.Duration {
	return time.Duration(ticks) * time.Millisecond
}
