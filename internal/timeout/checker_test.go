package timeout

import (
	"math"
	"testing"
	"time"

	"ticktimeout/internal/tick"
)

func TestIsElapsedImmediatelyAfterReset(t *testing.T) {
	starts := []uint32{0, 1, 1000, math.MaxUint32 / 2, math.MaxUint32}

	for _, start := range starts {
		src := tick.NewManualSource(start)
		checker := New(src)

		var h Handle
		checker.Reset(&h)

		if uint32(h) != start {
			t.Fatalf("expected handle %d got %d", start, h)
		}
		if !checker.IsElapsed(&h, 0) {
			t.Fatalf("start=%d: expected zero timeout to be elapsed", start)
		}
		for _, d := range []uint32{1, 500, math.MaxUint32} {
			if checker.IsElapsed(&h, d) {
				t.Fatalf("start=%d timeout=%d: expected not elapsed", start, d)
			}
		}
	}
}

func TestIsElapsedScenario(t *testing.T) {
	src := tick.NewManualSource(1000)
	checker := New(src)

	var h Handle
	checker.Reset(&h)

	tests := []struct {
		name     string
		now      uint32
		expected bool
	}{
		{"before timeout", 1400, false},
		{"one tick short", 1499, false},
		{"at timeout", 1500, true},
		{"after timeout without reset", 1600, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src.Set(tc.now)
			if got := checker.IsElapsed(&h, 500); got != tc.expected {
				t.Fatalf("tick=%d: expected %v got %v", tc.now, tc.expected, got)
			}
		})
	}
}

func TestIsElapsedAcrossWrap(t *testing.T) {
	src := tick.NewManualSource(4294967290)
	checker := New(src)

	var h Handle
	checker.Reset(&h)

	src.Set(5)

	if got := checker.Elapsed(&h); got != 11 {
		t.Fatalf("expected 11 elapsed ticks got %d", got)
	}
	if !checker.IsElapsed(&h, 10) {
		t.Fatal("expected timeout of 10 to be elapsed after wrap")
	}
	if !checker.IsElapsed(&h, 11) {
		t.Fatal("expected timeout of 11 to be elapsed after wrap")
	}
	if checker.IsElapsed(&h, 12) {
		t.Fatal("expected timeout of 12 not to be elapsed after wrap")
	}
}

func TestIsElapsedFirstTrueTick(t *testing.T) {
	starts := []uint32{0, 12345, math.MaxUint32 - 100}
	timeouts := []uint32{1, 7, 250}

	for _, start := range starts {
		for _, d := range timeouts {
			src := tick.NewManualSource(start)
			checker := New(src)

			var h Handle
			checker.Reset(&h)

			for i := uint32(0); i < d; i++ {
				if checker.IsElapsed(&h, d) {
					t.Fatalf("start=%d timeout=%d: elapsed early at +%d", start, d, i)
				}
				src.Advance(1)
			}

			// Remains true on every subsequent check until reset.
			for i := 0; i < 50; i++ {
				if !checker.IsElapsed(&h, d) {
					t.Fatalf("start=%d timeout=%d: not elapsed at +%d", start, d, d+uint32(i))
				}
				src.Advance(1)
			}

			checker.Reset(&h)
			if checker.IsElapsed(&h, d) {
				t.Fatalf("start=%d timeout=%d: elapsed right after reset", start, d)
			}
		}
	}
}

func TestIsElapsedDoesNotMutateHandle(t *testing.T) {
	src := tick.NewManualSource(200)
	checker := New(src)

	var h Handle
	checker.Reset(&h)
	src.Set(900)

	first := checker.IsElapsed(&h, 600)
	for i := 0; i < 10; i++ {
		if got := checker.IsElapsed(&h, 600); got != first {
			t.Fatalf("unstable result on call %d: expected %v got %v", i, first, got)
		}
		if h != 200 {
			t.Fatalf("handle changed to %d", h)
		}
	}
}

func TestIndependentHandles(t *testing.T) {
	src := tick.NewManualSource(0)
	checker := New(src)

	var a, b Handle
	checker.Reset(&a)
	src.Set(300)
	checker.Reset(&b)
	src.Set(500)

	if !checker.IsElapsed(&a, 500) {
		t.Fatal("expected handle a to be elapsed")
	}
	if checker.IsElapsed(&b, 500) {
		t.Fatal("expected handle b not to be elapsed")
	}
}

func TestCheckerWithSourceFunc(t *testing.T) {
	readings := []uint32{10, 10, 25}
	src := tick.SourceFunc(func() uint32 {
		r := readings[0]
		readings = readings[1:]
		return r
	})
	checker := New(src)

	var h Handle
	checker.Reset(&h)

	if checker.IsElapsed(&h, 15) {
		t.Fatal("expected not elapsed at tick 10")
	}
	if !checker.IsElapsed(&h, 15) {
		t.Fatal("expected elapsed at tick 25")
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		d        time.Duration
		expected uint32
	}{
		{"zero", 0, 0},
		{"sub millisecond", 999 * time.Microsecond, 0},
		{"half second", 500 * time.Millisecond, 500},
		{"minute", time.Minute, tick.MinToMs(1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Duration(tc.d); got != tc.expected {
				t.Fatalf("expected %d got %d", tc.expected, got)
			}
		})
	}
}
