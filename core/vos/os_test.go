package vos

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostOS_env(t *testing.T) {
	virtOS := NewOS()

	t.Setenv("MINSH_TEST_VAR", "value")
	val, ok := virtOS.LookupEnv("MINSH_TEST_VAR")
	assert.True(t, ok)
	assert.Equal(t, "value", val)
	assert.Equal(t, "value", virtOS.Getenv("MINSH_TEST_VAR"))

	_, ok = virtOS.LookupEnv("MINSH_TEST_VAR_UNSET")
	assert.False(t, ok)
}

func TestHostOS_fs(t *testing.T) {
	virtOS := NewOS()
	dir := t.TempDir()

	info, err := virtOS.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestVIOAdapter(t *testing.T) {
	stdin := bytes.NewReader([]byte("in"))
	var stdout, stderr bytes.Buffer

	vio := NewVIOAdapter(stdin, &stdout, &stderr)
	assert.Equal(t, stdin, vio.Stdin())

	vio.Stdout().Write([]byte("out"))
	vio.Stderr().Write([]byte("err"))
	assert.Equal(t, "out", stdout.String())
	assert.Equal(t, "err", stderr.String())
}
