package main

import (
	"bufio"
	"io"
	"strings"

	"ticktimeout/internal/log"
)

// kicker is the part of the watchdog driven by kick input.
type kicker interface {
	Kick(name string) bool
}

// kickFromReader kicks one watch per non-blank input line until the reader is exhausted.
func kickFromReader(r io.Reader, k kicker, logger log.Logger) error {
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			continue
		}

		if !k.Kick(name) {
			logger.Warn("main: kick for unknown watch: name=%s", name)
		}
	}

	return scanner.Err()
}
