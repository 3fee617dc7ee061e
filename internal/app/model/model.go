package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// LogEntry is a single record returned by the log store
type LogEntry struct {
	ID        int64           `json:"id" yaml:"id"`
	Timestamp string          `json:"timestamp" yaml:"timestamp"`
	Logger    string          `json:"logger" yaml:"logger"`
	LoggerID  int             `json:"logger_id" yaml:"logger_id"`
	Level     Level           `json:"level" yaml:"level"`
	Message   string          `json:"message" yaml:"message"`
	Meta      json.RawMessage `json:"meta,omitempty" yaml:"-"`
}

// UnmarshalJSON accepts both logger_id and loggerId
func (e *LogEntry) UnmarshalJSON(data []byte) error {
	type plain LogEntry

	aux := struct {
		*plain
		LoggerIDAlt *int `json:"loggerId"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if aux.LoggerIDAlt != nil && e.LoggerID == 0 {
		e.LoggerID = *aux.LoggerIDAlt
	}

	return nil
}

// HasMeta reports whether the entry carries a non-null structured payload
func (e LogEntry) HasMeta() bool {
	trimmed := strings.TrimSpace(string(e.Meta))
	return trimmed != "" && trimmed != "null"
}

// Logger is a named logger with its current effective level
type Logger struct {
	ID    int    `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Level Level  `json:"level" yaml:"level"`
}

// LevelUpdate is the body of a logger level change
type LevelUpdate struct {
	ID    int   `json:"id"`
	Level Level `json:"level"`
}

// SortLoggers returns a copy of loggers ordered by name, case-insensitive
func SortLoggers(loggers []Logger) []Logger {
	sorted := make([]Logger, len(loggers))
	copy(sorted, loggers)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := strings.ToLower(sorted[i].Name), strings.ToLower(sorted[j].Name)
		if a == b {
			return sorted[i].Name < sorted[j].Name
		}

		return a < b
	})

	return sorted
}

// LoggerIDs returns the ids of the given loggers in order
func LoggerIDs(loggers []Logger) []int {
	ids := make([]int, 0, len(loggers))
	for _, l := range loggers {
		ids = append(ids, l.ID)
	}

	return ids
}
