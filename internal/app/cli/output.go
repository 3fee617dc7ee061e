package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.yaml.in/yaml/v3"

	"logview/internal/app/model"
)

// entryView is a log entry with its meta decoded for structured output
type entryView struct {
	ID        int64       `json:"id" yaml:"id"`
	Timestamp string      `json:"timestamp" yaml:"timestamp"`
	Logger    string      `json:"logger" yaml:"logger"`
	LoggerID  int         `json:"logger_id" yaml:"logger_id"`
	Level     model.Level `json:"level" yaml:"level"`
	Message   string      `json:"message" yaml:"message"`
	Meta      interface{} `json:"meta,omitempty" yaml:"meta,omitempty"`
}

func newEntryView(e model.LogEntry) entryView {
	view := entryView{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Logger:    e.Logger,
		LoggerID:  e.LoggerID,
		Level:     e.Level,
		Message:   e.Message,
	}

	if e.HasMeta() {
		var meta interface{}
		if err := json.Unmarshal(e.Meta, &meta); err == nil {
			view.Meta = meta
		} else {
			view.Meta = string(e.Meta)
		}
	}

	return view
}

// printer writes command results in the selected output format
type printer struct {
	out    io.Writer
	format string
}

func newPrinter(out io.Writer, format string) printer {
	return printer{out: out, format: format}
}

// Logs prints a page of entries
func (p printer) Logs(entries []model.LogEntry) error {
	if p.format != OutputText {
		views := make([]entryView, 0, len(entries))
		for _, e := range entries {
			views = append(views, newEntryView(e))
		}

		return p.encode(views)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(p.out, "No logs to display")
		return err
	}

	return p.logLines(entries)
}

// Stream prints entries that arrived while following; structured formats emit one document per entry
func (p printer) Stream(entries []model.LogEntry) error {
	if p.format == OutputText {
		return p.logLines(entries)
	}

	for _, e := range entries {
		if err := p.encodeOne(newEntryView(e)); err != nil {
			return err
		}
	}

	return nil
}

func (p printer) logLines(entries []model.LogEntry) error {
	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.ID, e.Timestamp, e.Level.Label(), e.Logger, singleLine(e.Message))
	}

	return w.Flush()
}

// Log prints a single entry with its meta
func (p printer) Log(e model.LogEntry) error {
	if p.format != OutputText {
		return p.encode(newEntryView(e))
	}

	fmt.Fprintf(p.out, "id:        %d\n", e.ID)
	fmt.Fprintf(p.out, "timestamp: %s\n", e.Timestamp)
	fmt.Fprintf(p.out, "logger:    %s (%d)\n", e.Logger, e.LoggerID)
	fmt.Fprintf(p.out, "level:     %s\n", e.Level.Label())
	fmt.Fprintf(p.out, "message:   %s\n", e.Message)

	if !e.HasMeta() {
		return nil
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, e.Meta, "", "  "); err != nil {
		buf.Reset()
		buf.Write(e.Meta)
	}

	_, err := fmt.Fprintf(p.out, "meta:\n%s\n", buf.String())

	return err
}

// Loggers prints the logger list
func (p printer) Loggers(loggers []model.Logger) error {
	if p.format != OutputText {
		if loggers == nil {
			loggers = []model.Logger{}
		}

		return p.encode(loggers)
	}

	if len(loggers) == 0 {
		_, err := fmt.Fprintln(p.out, "No loggers to display")
		return err
	}

	w := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tLEVEL")

	for _, l := range loggers {
		fmt.Fprintf(w, "%d\t%s\t%s\n", l.ID, l.Name, l.Level.Label())
	}

	return w.Flush()
}

// Level prints the outcome of a level change
func (p printer) Level(id int, level model.Level, response string) error {
	if p.format != OutputText {
		return p.encode(map[string]interface{}{"id": id, "level": level, "response": response})
	}

	_, err := fmt.Fprintf(p.out, "Logger %d set to %s: %s\n", id, level.Label(), strings.TrimSpace(response))

	return err
}

func (p printer) encode(v interface{}) error {
	switch p.format {
	case OutputYAML:
		enc := yaml.NewEncoder(p.out)
		enc.SetIndent(2)

		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	default:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}
}

func (p printer) encodeOne(v interface{}) error {
	if p.format == OutputYAML {
		return p.encode(v)
	}

	return json.NewEncoder(p.out).Encode(v)
}

func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
