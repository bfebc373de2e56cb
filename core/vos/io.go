package vos

import (
	"io"
	"os"
)

// NewVIOAdapter bundles the given streams into a VIO.
func NewVIOAdapter(stdin io.Reader, stdout, stderr io.Writer) *VIOAdapter {
	return &VIOAdapter{
		IStdin:  stdin,
		IStdout: stdout,
		IStderr: stderr,
	}
}

// NewStdIO returns a VIO over the host process streams.
func NewStdIO() VIO {
	return NewVIOAdapter(os.Stdin, os.Stdout, os.Stderr)
}

type VIOAdapter struct {
	IStdin  io.Reader
	IStdout io.Writer
	IStderr io.Writer
}

var _ VIO = (*VIOAdapter)(nil)

func (a *VIOAdapter) Stdin() io.Reader {
	return a.IStdin
}

func (a *VIOAdapter) Stdout() io.Writer {
	return a.IStdout
}

func (a *VIOAdapter) Stderr() io.Writer {
	return a.IStderr
}
