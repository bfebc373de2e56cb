// Package logger records shell interaction events as newline delimited
// JSON objects so sessions can be inspected after the fact.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Event is one resolution/execution cycle.
type Event struct {
	TimestampMicros int64  `json:"timestamp_micros"`
	Name            string `json:"name,omitempty"`
	Kind            string `json:"kind,omitempty"`
	Path            string `json:"path,omitempty"`
	ExitCode        int    `json:"exit_code"`
	Abnormal        bool   `json:"abnormal,omitempty"`
}

// Kind values for Event.Kind.
const (
	KindBuiltin  = "builtin"
	KindExternal = "external"
	KindNotFound = "not_found"
)

// Logger writes events to an external sink. The zero value and a nil
// Logger both discard events.
type Logger struct {
	out io.Writer
	now func() time.Time
}

// NewJSONLines creates a Logger that writes events to w in newline
// delimited JSON object format.
func NewJSONLines(w io.Writer) *Logger {
	return &Logger{out: w, now: time.Now}
}

// NewJSONLinesAt is NewJSONLines with an explicit time source.
func NewJSONLinesAt(w io.Writer, now func() time.Time) *Logger {
	return &Logger{out: w, now: now}
}

// Nop returns a Logger that discards all events.
func Nop() *Logger {
	return &Logger{}
}

// Record writes a single event.
func (l *Logger) Record(ev Event) error {
	if l == nil || l.out == nil {
		return nil
	}

	ev.TimestampMicros = l.now().UnixNano() / int64(time.Microsecond)
	entry, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(l.out, string(entry))
	return err
}

// ReadJSONLinesLog parses a newline delimited JSON event log.
func ReadJSONLinesLog(r io.Reader, handler func(ev *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var ev Event
		if err := decoder.Decode(&ev); err != nil {
			return err
		}
		handler(&ev)
	}
	return nil
}
