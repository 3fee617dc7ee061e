package model

import (
	"fmt"
	"strings"

	"logview/internal/app/errors"
)

// Level is a logger severity from the store's fixed vocabulary
type Level string

// Severity vocabulary, lowest first
const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Levels lists the vocabulary in priority order
var Levels = []Level{LevelDebug, LevelInfo, LevelWarn, LevelError}

// ParseLevel normalizes and validates a level name
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if !level.Valid() {
		return "", fmt.Errorf("%w: '%s' (must be one of debug, info, warn, error)", errors.ErrInvalidLevel, s)
	}

	return level, nil
}

// Priority returns the ordering weight of the level, 0 for unknown levels
func (l Level) Priority() int {
	for i, level := range Levels {
		if level == l {
			return i + 1
		}
	}

	return 0
}

// Valid reports whether the level belongs to the vocabulary
func (l Level) Valid() bool {
	return l.Priority() > 0
}

// Next returns the next more severe level, wrapping around
func (l Level) Next() Level {
	return Levels[l.Priority()%len(Levels)]
}

// Prev returns the next less severe level, wrapping around
func (l Level) Prev() Level {
	idx := l.Priority() - 2
	if idx < 0 {
		idx += len(Levels)
	}

	return Levels[idx]
}

// Label returns the upper-case display form
func (l Level) Label() string {
	return strings.ToUpper(string(l))
}
