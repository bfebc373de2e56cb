package shell

import (
	"path/filepath"
	"strings"

	"minsh.dev/minsh/core/vos"
)

// LookPath searches the directories named by the PATH environment
// variable, left to right, for an executable named name. The first
// directory with an executable match wins; an unset PATH resolves to
// NotFound. Resolution never fails with an error.
func LookPath(virtOS vos.VOS, name string, args []string) *Command {
	searchPath, ok := virtOS.LookupEnv("PATH")
	if !ok {
		return &Command{Name: name, Kind: NotFound{}}
	}

	for _, dir := range strings.Split(searchPath, ":") {
		if dir == "" {
			// Unix shell semantics: an empty path element means ".".
			dir = "."
		}

		candidate := filepath.Join(dir, name)
		info, err := virtOS.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if info.Mode()&0o111 == 0 {
			continue
		}

		return &Command{Name: name, Kind: External{
			Path: candidate,
			Argv: append([]string{name}, args...),
		}}
	}

	return &Command{Name: name, Kind: NotFound{}}
}
