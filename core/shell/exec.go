package shell

import (
	"fmt"

	"minsh.dev/minsh/core/vos"
)

// RunExternal launches a resolved external command with the session's
// streams and blocks until it terminates. A launch failure is
// recoverable: one diagnostic, then the caller's loop resumes. A
// nonzero or abnormal termination is reported with a single line; a
// clean zero exit produces no output.
func RunExternal(virtOS vos.VOS, files vos.VIO, name string, ext External) vos.ProcState {
	proc, err := virtOS.StartProcess(ext.Path, ext.Argv, &vos.ProcAttr{Files: files})
	if err != nil {
		fmt.Fprintf(files.Stderr(), "%s: %v\n", name, err)
		return vos.ProcState{ExitCode: -1}
	}

	state := proc.Wait()
	if state.ExitCode != 0 || !state.Exited {
		fmt.Fprintf(files.Stderr(), "%s: exited abnormally\n", name)
	}
	return state
}
