//go:generate go run golang.org/x/tools/cmd/stringer -type=Level -linecomment=true

package log

import (
	"strings"
)

// Level parametrizes supported log verbosity levels.
type Level int

const (
	// Debug messages trace individual polls, resets, and tick readings.
	Debug Level = iota // DEBUG
	// Info messages convey lifecycle events such as startup and configuration.
	Info // INFO
	// Warn messages report expired watches and other conditions the operator should see.
	Warn // WARN
	// Error messages indicate behavior that is not intended and should be corrected.
	Error // ERROR
)

// ParseLevel looks up a Level by its case-insensitive name. Unknown names resolve to Error, with
// a false second return value.
func ParseLevel(name string) (Level, bool) {
	for level := Debug; level <= Error; level++ {
		if strings.EqualFold(name, level.String()) {
			return level, true
		}
	}

	return Error, false
}

// Enables indicates whether the current log level enables logging at another level.
//
// For example,
//	Debug enables Debug, Info, Warn, and Error
//	Warn enables Warn and Error, but not Debug or Info
func (l Level) Enables(other Level) bool {
	return l <= other
}
