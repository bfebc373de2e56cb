// Package vostest provides a deterministic in-memory VOS for tests.
package vostest

import (
	"io/fs"
	"os"
	"path"
	"syscall"

	"github.com/spf13/afero"
	"minsh.dev/minsh/core/vos"
)

// ProcessFunc is a scripted process body; it returns the exit code. A
// negative code simulates abnormal termination, e.g. death by signal.
type ProcessFunc func(argv []string) int

// FakeOS implements vos.VOS over an afero in-memory filesystem, a
// map-backed environment and scripted processes.
type FakeOS struct {
	FS  afero.Fs
	Env map[string]string
	Dir string

	// Procs maps executable paths to scripted bodies. Launching any
	// other path fails the way fork/exec would.
	Procs map[string]ProcessFunc

	// Launches records the argv of every successful StartProcess call,
	// in order.
	Launches [][]string
}

var _ vos.VOS = (*FakeOS)(nil)

func NewOS() *FakeOS {
	return &FakeOS{
		FS:    afero.NewMemMapFs(),
		Env:   make(map[string]string),
		Dir:   "/",
		Procs: make(map[string]ProcessFunc),
	}
}

// MkExec creates an executable file at name, creating parents as
// needed. When body is non-nil it is invoked on launch.
func (f *FakeOS) MkExec(name string, body ProcessFunc) error {
	if err := f.FS.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	if err := afero.WriteFile(f.FS, name, []byte("#!fake"), 0o755); err != nil {
		return err
	}
	if body != nil {
		f.Procs[name] = body
	}
	return nil
}

// MkFile creates a regular, non-executable file at name.
func (f *FakeOS) MkFile(name string) error {
	if err := f.FS.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	return afero.WriteFile(f.FS, name, []byte("data"), 0o644)
}

// LookupEnv implements vos.VEnv.LookupEnv.
func (f *FakeOS) LookupEnv(key string) (string, bool) {
	val, ok := f.Env[key]
	return val, ok
}

// Getenv implements vos.VEnv.Getenv.
func (f *FakeOS) Getenv(key string) string {
	return f.Env[key]
}

// Stat implements vos.VFS.Stat.
func (f *FakeOS) Stat(name string) (fs.FileInfo, error) {
	return f.FS.Stat(name)
}

// Getwd implements vos.VFS.Getwd.
func (f *FakeOS) Getwd() (string, error) {
	return f.Dir, nil
}

// Chdir implements vos.VFS.Chdir with host-like error values.
func (f *FakeOS) Chdir(dir string) error {
	if dir == "" {
		// Matches the host's ENOENT for chdir("").
		return &os.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	}
	if !path.IsAbs(dir) {
		dir = path.Clean(path.Join(f.Dir, dir))
	}

	stat, err := f.FS.Stat(dir)
	switch {
	case err != nil:
		return &os.PathError{Op: "chdir", Path: dir, Err: fs.ErrNotExist}
	case !stat.IsDir():
		return &os.PathError{Op: "chdir", Path: dir, Err: syscall.ENOTDIR}
	default:
		f.Dir = dir
		return nil
	}
}

// StartProcess implements vos.VOS.StartProcess using the scripted
// process table.
func (f *FakeOS) StartProcess(name string, argv []string, attr *vos.ProcAttr) (vos.Process, error) {
	body, ok := f.Procs[name]
	if !ok {
		return nil, &os.PathError{Op: "fork/exec", Path: name, Err: fs.ErrNotExist}
	}

	f.Launches = append(f.Launches, argv)
	return &fakeProcess{body: body, argv: argv}, nil
}

type fakeProcess struct {
	body ProcessFunc
	argv []string
}

var _ vos.Process = (*fakeProcess)(nil)

// Wait implements vos.Process.Wait.
func (p *fakeProcess) Wait() vos.ProcState {
	code := p.body(p.argv)
	if code < 0 {
		return vos.ProcState{ExitCode: -1, Exited: false}
	}
	return vos.ProcState{ExitCode: code, Exited: true}
}
