// Package vos provides a small virtual OS layer for the shell core.
//
// The shell never touches the host directly: environment lookup, file
// stats, the working directory and process launch all go through the
// VOS interface so tests can substitute a deterministic in-memory
// implementation.
package vos

import (
	"io"
	"io/fs"
)

// VEnv represents the process environment. An absent variable is a
// valid, explicitly handled case, never an error.
type VEnv interface {
	// LookupEnv retrieves the value of the environment variable named by
	// the key. If the variable is present the value (which may be empty)
	// is returned and the boolean is true.
	LookupEnv(key string) (string, bool)

	// Getenv retrieves the value of the environment variable named by the
	// key, empty if the variable is not present.
	Getenv(key string) string
}

// VFS exposes the filesystem operations the shell needs.
type VFS interface {
	// Stat returns the FileInfo describing the named path.
	Stat(name string) (fs.FileInfo, error)

	// Getwd returns the canonical absolute path of the working directory.
	Getwd() (string, error)

	// Chdir changes the working directory.
	Chdir(dir string) error
}

// ProcState reports how a child process terminated.
type ProcState struct {
	// ExitCode is the exit status of the process, or -1 if the process
	// was terminated abnormally.
	ExitCode int

	// Exited is false when the process did not terminate via a normal
	// exit, e.g. it was killed by a signal.
	Exited bool
}

// ProcAttr holds the attributes applied to a new process.
type ProcAttr struct {
	// Env gives the environment of the new process in "key=value" form.
	// If it is nil the new process inherits the host environment.
	Env []string

	// Files specifies the standard streams inherited by the new process.
	Files VIO
}

// Process is a started child process.
type Process interface {
	// Wait blocks until the process terminates and reports how it ended.
	Wait() ProcState
}

// VIO holds the standard streams of a session.
type VIO interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer
}

// VOS provides a virtual OS interface.
type VOS interface {
	VEnv
	VFS

	// StartProcess launches the program at path with argument vector
	// argv. The argv slice becomes os.Args in the new process, so
	// argv[0] is the name the program was invoked with, not necessarily
	// path.
	StartProcess(path string, argv []string, attr *ProcAttr) (Process, error)
}
