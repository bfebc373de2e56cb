package shell

import (
	"errors"
	"fmt"
	"strconv"

	"minsh.dev/minsh/core/vos"
)

// ErrNoCommand reports a line with no tokens. The loop re-prompts
// without emitting a diagnostic.
var ErrNoCommand = errors.New("no command")

// UsageError reports a builtin invoked with bad arguments. It is
// recoverable: the loop emits one diagnostic line and resumes.
type UsageError struct {
	Builtin string
	Reason  string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: %s", e.Builtin, e.Reason)
}

// builtinNames is the fixed membership set of builtin command names.
// Built once and never mutated; lookup is case-sensitive exact match.
var builtinNames = map[string]bool{
	"exit": true,
	"echo": true,
	"type": true,
	"pwd":  true,
	"cd":   true,
}

// IsBuiltinName reports whether name names a shell builtin.
func IsBuiltinName(name string) bool {
	return builtinNames[name]
}

// Resolve classifies one line of input into a Command. A name that is
// not a builtin resolves through the search path to either External or
// NotFound; that outcome is data, never an error.
func Resolve(virtOS vos.VOS, line string) (*Command, error) {
	tokens := Fields(line)
	if len(tokens) == 0 {
		return nil, ErrNoCommand
	}

	name, rest := tokens[0], tokens[1:]
	if !builtinNames[name] {
		return LookPath(virtOS, name, rest), nil
	}

	switch name {
	case "exit":
		var code uint64
		switch {
		case len(rest) > 1:
			return nil, &UsageError{Builtin: name, Reason: "too many arguments"}
		case len(rest) == 1:
			parsed, err := strconv.ParseUint(rest[0], 10, 8)
			if err != nil {
				return nil, &UsageError{Builtin: name, Reason: fmt.Sprintf("%s: numeric argument required", rest[0])}
			}
			code = parsed
		}
		return &Command{Name: name, Kind: Builtin{Action: Exit{Code: uint8(code)}}}, nil

	case "echo":
		return &Command{Name: name, Kind: Builtin{Action: Echo{Text: Remainder(line, 1)}}}, nil

	case "type":
		switch {
		case len(rest) == 0:
			return nil, &UsageError{Builtin: name, Reason: "missing argument"}
		case len(rest) > 1:
			return nil, &UsageError{Builtin: name, Reason: "too many arguments"}
		case rest[0] == "type":
			// Self reference, don't recurse.
			return &Command{Name: name, Kind: Builtin{Action: Type{}}}, nil
		}

		target, err := Resolve(virtOS, rest[0])
		if err != nil {
			return nil, err
		}
		return &Command{Name: name, Kind: Builtin{Action: Type{Target: target}}}, nil

	case "pwd":
		if len(rest) > 0 {
			return nil, &UsageError{Builtin: name, Reason: "too many arguments"}
		}
		return &Command{Name: name, Kind: Builtin{Action: Pwd{}}}, nil

	case "cd":
		return &Command{Name: name, Kind: Builtin{Action: Cd{Path: Remainder(line, 1)}}}, nil
	}

	// The switch above covers every name in builtinNames.
	panic("unhandled builtin: " + name)
}
