package shell

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"minsh.dev/minsh/core/vos"
	"minsh.dev/minsh/core/vos/vostest"
)

func TestRunExternal_cleanExit(t *testing.T) {
	virtOS := vostest.NewOS()
	require.NoError(t, virtOS.MkExec("/bin/tool", func(argv []string) int { return 0 }))

	var stdout, stderr bytes.Buffer
	files := vos.NewVIOAdapter(bytes.NewReader(nil), &stdout, &stderr)

	state := RunExternal(virtOS, files, "tool", External{Path: "/bin/tool", Argv: []string{"tool"}})

	assert.Equal(t, 0, state.ExitCode)
	assert.True(t, state.Exited)
	assert.Empty(t, stderr.String(), "clean zero exit produces no output")
}

func TestRunExternal_nonzeroExit(t *testing.T) {
	virtOS := vostest.NewOS()
	require.NoError(t, virtOS.MkExec("/bin/tool", func(argv []string) int { return 2 }))

	var stdout, stderr bytes.Buffer
	files := vos.NewVIOAdapter(bytes.NewReader(nil), &stdout, &stderr)

	RunExternal(virtOS, files, "tool", External{Path: "/bin/tool", Argv: []string{"tool"}})

	assert.Equal(t, "tool: exited abnormally\n", stderr.String())
}

func TestRunExternal_killed(t *testing.T) {
	virtOS := vostest.NewOS()
	require.NoError(t, virtOS.MkExec("/bin/tool", func(argv []string) int { return -1 }))

	var stdout, stderr bytes.Buffer
	files := vos.NewVIOAdapter(bytes.NewReader(nil), &stdout, &stderr)

	state := RunExternal(virtOS, files, "tool", External{Path: "/bin/tool", Argv: []string{"tool"}})

	assert.False(t, state.Exited)
	assert.Equal(t, "tool: exited abnormally\n", stderr.String())
}

func TestRunExternal_launchFailureIsRecoverable(t *testing.T) {
	virtOS := vostest.NewOS()

	var stdout, stderr bytes.Buffer
	files := vos.NewVIOAdapter(bytes.NewReader(nil), &stdout, &stderr)

	// No scripted process at the path: launch fails like fork/exec would.
	state := RunExternal(virtOS, files, "tool", External{Path: "/bin/tool", Argv: []string{"tool"}})

	assert.Equal(t, -1, state.ExitCode)
	assert.Contains(t, stderr.String(), "tool: ")
}

func TestRunExternal_argvReachesProcess(t *testing.T) {
	virtOS := vostest.NewOS()

	var got []string
	require.NoError(t, virtOS.MkExec("/bin/tool", func(argv []string) int {
		got = append(got, argv...)
		return 0
	}))

	var stdout, stderr bytes.Buffer
	files := vos.NewVIOAdapter(bytes.NewReader(nil), &stdout, &stderr)

	RunExternal(virtOS, files, "tool", External{Path: "/bin/tool", Argv: []string{"tool", "-x", "y"}})

	assert.Equal(t, []string{"tool", "-x", "y"}, got)
	require.Len(t, virtOS.Launches, 1)
	assert.Equal(t, "tool", virtOS.Launches[0][0], "argv[0] is the name, not the path")
}

func ExampleRunExternal() {
	virtOS := vostest.NewOS()
	virtOS.MkExec("/bin/false", func(argv []string) int { return 1 })

	var stdout, stderr bytes.Buffer
	files := vos.NewVIOAdapter(bytes.NewReader(nil), &stdout, &stderr)
	RunExternal(virtOS, files, "false", External{Path: "/bin/false", Argv: []string{"false"}})

	fmt.Print(stderr.String())
	// Output: false: exited abnormally
}
