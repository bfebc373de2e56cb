package logger

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTime() time.Time {
	// Go's reference timestamp.
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

func TestRecord(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLinesAt(&buf, testTime)

	require.NoError(t, l.Record(Event{Name: "tool", Kind: KindExternal, Path: "/bin/tool", ExitCode: 2}))

	expected := fmt.Sprintf(
		`{"timestamp_micros":%d,"name":"tool","kind":"external","path":"/bin/tool","exit_code":2}`+"\n",
		testTime().UnixNano()/int64(time.Microsecond))
	assert.Equal(t, expected, buf.String())
}

func TestRecord_nopDiscards(t *testing.T) {
	assert.NoError(t, Nop().Record(Event{Name: "x"}))

	var l *Logger
	assert.NoError(t, l.Record(Event{Name: "x"}), "nil logger discards")
}

func TestReadJSONLinesLog(t *testing.T) {
	var buf bytes.Buffer
	l := NewJSONLinesAt(&buf, testTime)
	require.NoError(t, l.Record(Event{Name: "echo", Kind: KindBuiltin}))
	require.NoError(t, l.Record(Event{Name: "nosuchprogram", Kind: KindNotFound}))

	var names []string
	require.NoError(t, ReadJSONLinesLog(&buf, func(ev *Event) {
		names = append(names, ev.Name)
	}))

	assert.Equal(t, []string{"echo", "nosuchprogram"}, names)
}
