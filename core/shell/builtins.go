package shell

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"minsh.dev/minsh/core/vos"
)

// RunBuiltin carries out a single builtin action. Regular output goes
// to files.Stdout, failure notices to files.Stderr. It returns quit
// true only for Exit, the sole action that ends the command loop; code
// is the requested status in that case.
func RunBuiltin(virtOS vos.VOS, files vos.VIO, action BuiltinAction) (quit bool, code uint8) {
	switch action := action.(type) {
	case Exit:
		return true, action.Code

	case Echo:
		fmt.Fprintln(files.Stdout(), action.Text)

	case Type:
		runType(files.Stdout(), action)

	case Pwd:
		wd, err := virtOS.Getwd()
		if err != nil {
			fmt.Fprintf(files.Stderr(), "pwd: %v\n", err)
			break
		}
		fmt.Fprintln(files.Stdout(), wd)

	case Cd:
		runCd(virtOS, files.Stderr(), action)

	default:
		// Every BuiltinAction implementation is handled above.
		panic(fmt.Sprintf("unhandled builtin action: %T", action))
	}

	return false, 0
}

func runType(w io.Writer, action Type) {
	if action.Target == nil {
		fmt.Fprintln(w, "type is a shell builtin")
		return
	}

	target := action.Target
	switch kind := target.Kind.(type) {
	case Builtin:
		fmt.Fprintf(w, "%s is a shell builtin\n", target.Name)
	case External:
		fmt.Fprintf(w, "%s is %s\n", target.Name, kind.Path)
	case NotFound:
		fmt.Fprintf(w, "%s: not found\n", target.Name)
	default:
		panic(fmt.Sprintf("unhandled command kind: %T", target.Kind))
	}
}

// runCd expands a leading tilde against HOME (falling back to the
// literal "~" when HOME is unset) and changes the working directory.
// Failures are reported against the original unexpanded path and never
// stop the loop.
func runCd(virtOS vos.VOS, errOut io.Writer, action Cd) {
	target := action.Path
	if strings.HasPrefix(target, "~") {
		home, ok := virtOS.LookupEnv("HOME")
		if !ok {
			home = "~"
		}
		target = filepath.Join(home, strings.TrimPrefix(target, "~"))
	}

	err := virtOS.Chdir(target)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintf(errOut, "cd: %s: No such file or directory\n", action.Path)
	case errors.Is(err, syscall.ENOTDIR):
		fmt.Fprintf(errOut, "%s: not a dir\n", action.Path)
	default:
		fmt.Fprintf(errOut, "cd: %s: %v\n", action.Path, err)
	}
}
