package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	cases := []struct {
		line     string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"ls", []string{"ls"}},
		{"  ls  ", []string{"ls"}},
		{"echo hello world", []string{"echo", "hello", "world"}},
		{"echo   hello   world", []string{"echo", "hello", "world"}},
		// Only the space character separates tokens.
		{"a\tb", []string{"a\tb"}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.line), func(t *testing.T) {
			assert.Equal(t, tc.expected, Fields(tc.line))
		})
	}
}

func TestRemainder(t *testing.T) {
	cases := []struct {
		line     string
		n        int
		expected string
	}{
		{"echo", 1, ""},
		{"echo hello", 1, "hello"},
		{"echo   hello   world", 1, "hello   world"},
		{"  echo  hello ", 1, "hello "},
		{"cd /tmp", 1, "/tmp"},
		{"a b c", 2, "c"},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.line), func(t *testing.T) {
			assert.Equal(t, tc.expected, Remainder(tc.line, tc.n))
		})
	}
}

func ExampleRemainder() {
	fmt.Printf("%q\n", Remainder("echo   hello   world", 1))
	fmt.Printf("%q\n", Remainder("echo", 1))

	// Output: "hello   world"
	// ""
}
