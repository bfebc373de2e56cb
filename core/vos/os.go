package vos

import (
	"io/fs"
	"os"
	"os/exec"

	"github.com/spf13/afero"
)

// NewOS returns a VOS backed by the host operating system.
func NewOS() VOS {
	return &hostOS{fs: afero.NewOsFs()}
}

type hostOS struct {
	fs afero.Fs
}

var _ VOS = (*hostOS)(nil)

// LookupEnv implements VEnv.LookupEnv.
func (h *hostOS) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Getenv implements VEnv.Getenv.
func (h *hostOS) Getenv(key string) string {
	return os.Getenv(key)
}

// Stat implements VFS.Stat.
func (h *hostOS) Stat(name string) (fs.FileInfo, error) {
	return h.fs.Stat(name)
}

// Getwd implements VFS.Getwd.
func (h *hostOS) Getwd() (string, error) {
	return os.Getwd()
}

// Chdir implements VFS.Chdir.
func (h *hostOS) Chdir(dir string) error {
	return os.Chdir(dir)
}

// StartProcess implements VOS.StartProcess on top of os/exec.
func (h *hostOS) StartProcess(path string, argv []string, attr *ProcAttr) (Process, error) {
	cmd := &exec.Cmd{
		Path:   path,
		Args:   argv,
		Env:    attr.Env,
		Stdin:  attr.Files.Stdin(),
		Stdout: attr.Files.Stdout(),
		Stderr: attr.Files.Stderr(),
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &hostProcess{cmd: cmd}, nil
}

type hostProcess struct {
	cmd *exec.Cmd
}

var _ Process = (*hostProcess)(nil)

// Wait implements Process.Wait.
func (p *hostProcess) Wait() ProcState {
	_ = p.cmd.Wait()
	state := p.cmd.ProcessState
	if state == nil {
		return ProcState{ExitCode: -1}
	}
	return ProcState{ExitCode: state.ExitCode(), Exited: state.Exited()}
}
