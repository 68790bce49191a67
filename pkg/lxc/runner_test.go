package lxc

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTool drops an executable shell script at <dir>/<prefix>-<sub> so
// ExecRunner can be exercised without lxc installed.
func writeTool(t *testing.T, dir, prefix, sub, body string) {
	t.Helper()
	path := filepath.Join(dir, prefix+"-"+sub)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
}

func TestExecRunnerCapturesStdout(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	writeTool(t, dir, "fake", "info", `echo "state: RUNNING"`)

	r := &ExecRunner{Prefix: filepath.Join(dir, "fake")}
	out, err := r.Run(context.Background(), "info", "-n", "web")
	require.NoError(t, err)
	assert.Equal(t, "state: RUNNING\n", out)
}

func TestExecRunnerNonZeroExit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts")
	}
	dir := t.TempDir()
	writeTool(t, dir, "fake", "start", `echo "lxc-start: failed" >&2; exit 1`)

	r := &ExecRunner{Prefix: filepath.Join(dir, "fake")}
	_, err := r.Run(context.Background(), "start", "-n", "web")
	require.Error(t, err)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "lxc-start: failed", cmdErr.Stderr)
	assert.Contains(t, cmdErr.Command, "start -n web")
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := &ExecRunner{Prefix: "golxc-test-no-such-tool"}
	_, err := r.Run(context.Background(), "info", "-n", "web")
	require.Error(t, err)

	var cmdErr *CommandError
	assert.ErrorAs(t, err, &cmdErr)
}
