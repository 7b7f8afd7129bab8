package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"ticktimeout/internal/log"
)

type recordingKicker struct {
	known  map[string]bool
	kicked []string
}

func (k *recordingKicker) Kick(name string) bool {
	k.kicked = append(k.kicked, name)
	return k.known[name]
}

func TestKickFromReader(t *testing.T) {
	k := &recordingKicker{known: map[string]bool{"heartbeat": true, "sensor": true}}

	var out bytes.Buffer
	logger := log.NewWriterLogger(&out, log.Warn)

	input := "heartbeat\n\n  sensor  \nmissing\nheartbeat"
	if err := kickFromReader(strings.NewReader(input), k, logger); err != nil {
		t.Fatalf("kick: %v", err)
	}

	expected := []string{"heartbeat", "sensor", "missing", "heartbeat"}
	if diff := cmp.Diff(expected, k.kicked); diff != "" {
		t.Fatalf("unexpected kicks (-want +got):\n%s", diff)
	}

	if !strings.Contains(out.String(), "kick for unknown watch: name=missing") {
		t.Fatalf("expected unknown watch warning, got %q", out.String())
	}
}
