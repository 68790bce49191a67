package lxc_test

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredrick/golxc/pkg/lxc"
	"github.com/fredrick/golxc/pkg/lxc/lxctest"
)

func newContainer(t *testing.T) (*lxc.Container, *lxctest.FakeRunner) {
	t.Helper()
	r := lxctest.NewFakeRunner()
	return lxc.New("web", lxc.WithRunner(r)), r
}

func TestStatus(t *testing.T) {
	c, r := newContainer(t)
	r.Script("info", "state: RUNNING\npid: 1234\n")

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.Status{State: lxc.StateRunning, Pid: 1234}, st)
	assert.Equal(t, lxc.StateRunning, c.State())
	assert.Equal(t, 1234, c.Pid())

	call, ok := r.LastCall("info")
	require.True(t, ok)
	assert.Equal(t, []string{"-n", "web"}, call.Args)
}

func TestStatusMissingPid(t *testing.T) {
	c, r := newContainer(t)
	r.Script("info", "state: STOPPED\n")

	st, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.StateStopped, st.State)
	assert.Equal(t, -1, st.Pid)
}

func TestExists(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "db\nweb\ndb\n")

	exists, err := c.Exists(context.Background())
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExistsEmptyList(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "")

	exists, err := c.Exists(context.Background())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunningAndFrozen(t *testing.T) {
	c, r := newContainer(t)
	r.Script("info", "state: FROZEN\npid: 99\n")

	running, err := c.Running(context.Background())
	require.NoError(t, err)
	assert.False(t, running)

	frozen, err := c.Frozen(context.Background())
	require.NoError(t, err)
	assert.True(t, frozen)

	// each check re-queried instead of trusting the cache
	assert.Equal(t, 2, r.CallCount("info"))
}

func TestStart(t *testing.T) {
	c, r := newContainer(t)
	r.Script("start", "")
	r.Script("info", "state: RUNNING\npid: 4000\n")

	st, err := c.Start(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.StateRunning, st.State)

	call, ok := r.LastCall("start")
	require.True(t, ok)
	assert.Equal(t, []string{"-d", "-n", "web"}, call.Args)
}

func TestStop(t *testing.T) {
	c, r := newContainer(t)
	r.Script("stop", "")
	r.Script("info", "state: STOPPED\npid: -1\n")

	st, err := c.Stop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.StateStopped, st.State)
}

func TestRestartOrder(t *testing.T) {
	c, r := newContainer(t)
	r.Script("stop", "")
	r.Script("start", "")
	r.Script("info", "state: RUNNING\npid: 5000\n")

	st, err := c.Restart(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.StateRunning, st.State)

	var order []string
	for _, call := range r.Calls {
		if call.Subcommand != "info" {
			order = append(order, call.Subcommand)
		}
	}
	assert.Equal(t, []string{"stop", "start"}, order)
}

func TestFreezeUnfreeze(t *testing.T) {
	c, r := newContainer(t)
	r.Script("freeze", "")
	r.Script("info", "state: FROZEN\npid: 99\n")

	st, err := c.Freeze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.StateFrozen, st.State)

	r.Script("unfreeze", "")
	r.Script("info", "state: RUNNING\npid: 99\n")

	st, err = c.Unfreeze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, lxc.StateRunning, st.State)
}

func TestWait(t *testing.T) {
	c, r := newContainer(t)
	r.Script("wait", "")

	err := c.Wait(context.Background(), lxc.StateStopped)
	require.NoError(t, err)

	call, ok := r.LastCall("wait")
	require.True(t, ok)
	assert.Equal(t, []string{"-n", "web", "-s", "STOPPED"}, call.Args)
}

func TestWaitInvalidState(t *testing.T) {
	c, r := newContainer(t)

	err := c.Wait(context.Background(), "NOT_A_STATE")
	require.Error(t, err)
	assert.True(t, cerrdefs.IsInvalidArgument(err))
	assert.Zero(t, r.CallCount("wait"))
}

func TestMemoryUsage(t *testing.T) {
	c, r := newContainer(t)
	r.Script("cgroup", "  262144\n")

	usage, err := c.MemoryUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(262144), usage)

	call, ok := r.LastCall("cgroup")
	require.True(t, ok)
	assert.Equal(t, []string{"-n", "web", "memory.usage_in_bytes"}, call.Args)
}

func TestMemoryLimitParseError(t *testing.T) {
	c, r := newContainer(t)
	r.Script("cgroup", "not-a-number\n")

	_, err := c.MemoryLimit(context.Background())
	require.Error(t, err)
	var numErr *strconv.NumError
	assert.ErrorAs(t, err, &numErr)
}

func TestProcesses(t *testing.T) {
	c, r := newContainer(t)
	r.Script("info", "state: RUNNING\npid: 1\n")
	r.Script("ps", "CONTAINER PID USER %CPU %MEM COMMAND\n"+
		"1 4821 root 0.3 1.2 /bin/sh -c sleep 10\n")

	procs, err := c.Processes(context.Background())
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, lxc.Process{
		Pid:     "4821",
		User:    "root",
		CPU:     "0.3",
		Mem:     "1.2",
		Command: "/bin/sh",
		Args:    "-c sleep 10",
	}, procs[0])
}

func TestProcessesNotRunning(t *testing.T) {
	c, r := newContainer(t)
	r.Script("info", "state: STOPPED\npid: -1\n")

	_, err := c.Processes(context.Background())
	require.Error(t, err)
	assert.True(t, cerrdefs.IsConflict(err))
	assert.EqualError(t, err, "Container is not running")
	assert.Zero(t, r.CallCount("ps"))
}

func TestCreateFromConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "web.conf")
	require.NoError(t, os.WriteFile(cfg, []byte("lxc.utsname = web\n"), 0o644))

	c, r := newContainer(t)
	r.Script("ls", "")
	r.Script("ls", "web\n")
	r.Script("create", "")

	created, err := c.Create(context.Background(), lxc.FromConfigFile(cfg))
	require.NoError(t, err)
	assert.True(t, created)

	call, ok := r.LastCall("create")
	require.True(t, ok)
	assert.Equal(t, []string{"-n", "web", "-f", cfg}, call.Args)
}

func TestCreateFromTemplate(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lxc-busybox"), []byte("#!/bin/sh\n"), 0o755))

	c, r := newContainer(t)
	r.Script("ls", "")
	r.Script("ls", "web\n")
	r.Script("create", "")

	spec := lxc.CreateSpec{
		Template:        "busybox",
		BackingStore:    "dir",
		TemplateOptions: []string{"--arch", "amd64"},
		TemplateDir:     dir,
	}
	created, err := c.Create(context.Background(), spec)
	require.NoError(t, err)
	assert.True(t, created)

	call, ok := r.LastCall("create")
	require.True(t, ok)
	assert.Equal(t, []string{"-n", "web", "-t", "busybox", "-B", "dir", "--", "--arch", "amd64"}, call.Args)
}

func TestCreateAlreadyExists(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")

	_, err := c.Create(context.Background(), lxc.FromTemplate("busybox"))
	require.Error(t, err)
	assert.True(t, cerrdefs.IsConflict(err))
	assert.Zero(t, r.CallCount("create"))
}

func TestCreateMissingConfigFile(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "")

	_, err := c.Create(context.Background(), lxc.FromConfigFile("/nonexistent/web.conf"))
	require.Error(t, err)
	assert.True(t, cerrdefs.IsInvalidArgument(err))
	assert.Zero(t, r.CallCount("create"))
}

func TestCreateMissingTemplate(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "")

	spec := lxc.CreateSpec{Template: "nope", TemplateDir: t.TempDir()}
	_, err := c.Create(context.Background(), spec)
	require.Error(t, err)
	assert.True(t, cerrdefs.IsInvalidArgument(err))
	assert.Zero(t, r.CallCount("create"))
}

func TestCloneTo(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")
	r.Script("clone", "")

	clone, err := c.CloneTo(context.Background(), "web-copy")
	require.NoError(t, err)
	assert.Equal(t, "web-copy", clone.Name)

	call, ok := r.LastCall("clone")
	require.True(t, ok)
	assert.Equal(t, []string{"-o", "web", "-n", "web-copy"}, call.Args)
}

func TestCloneToSourceMissing(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "")

	_, err := c.CloneTo(context.Background(), "web-copy")
	require.Error(t, err)
	assert.True(t, cerrdefs.IsNotFound(err))
	assert.Zero(t, r.CallCount("clone"))
}

func TestCloneToTargetExists(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\nweb-copy\n")

	_, err := c.CloneTo(context.Background(), "web-copy")
	require.Error(t, err)
	assert.True(t, cerrdefs.IsConflict(err))
	assert.Zero(t, r.CallCount("clone"))
}

func TestCloneFrom(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "base\n")
	r.Script("ls", "base\n")
	r.Script("ls", "base\nweb\n")
	r.Script("clone", "")

	created, err := c.CloneFrom(context.Background(), "base")
	require.NoError(t, err)
	assert.True(t, created)

	call, ok := r.LastCall("clone")
	require.True(t, ok)
	assert.Equal(t, []string{"-o", "base", "-n", "web"}, call.Args)
}

func TestCloneFromSelfExists(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")

	_, err := c.CloneFrom(context.Background(), "base")
	require.Error(t, err)
	assert.True(t, cerrdefs.IsConflict(err))
	assert.Zero(t, r.CallCount("clone"))
}

func TestCloneFromSourceMissing(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "")

	_, err := c.CloneFrom(context.Background(), "base")
	require.Error(t, err)
	assert.True(t, cerrdefs.IsNotFound(err))
	assert.Zero(t, r.CallCount("clone"))
}

func TestDestroyStopped(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")
	r.Script("ls", "")
	r.Script("info", "state: STOPPED\npid: -1\n")
	r.Script("destroy", "")

	destroyed, err := c.Destroy(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, destroyed)

	call, ok := r.LastCall("destroy")
	require.True(t, ok)
	assert.Equal(t, []string{"-n", "web"}, call.Args)
}

func TestDestroyRunningWithoutForce(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")
	r.Script("info", "state: RUNNING\npid: 1234\n")

	_, err := c.Destroy(context.Background(), false)
	require.Error(t, err)
	assert.True(t, cerrdefs.IsConflict(err))
	assert.Zero(t, r.CallCount("destroy"))
}

func TestDestroyRunningWithForce(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")
	r.Script("ls", "")
	r.Script("info", "state: RUNNING\npid: 1234\n")
	r.Script("destroy", "")

	destroyed, err := c.Destroy(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, destroyed)

	call, ok := r.LastCall("destroy")
	require.True(t, ok)
	assert.Equal(t, []string{"-f", "-n", "web"}, call.Args)
}

func TestDestroyTwice(t *testing.T) {
	c, r := newContainer(t)
	r.Script("ls", "web\n")
	r.Script("ls", "")
	r.Script("info", "state: STOPPED\npid: -1\n")
	r.Script("destroy", "")

	destroyed, err := c.Destroy(context.Background(), false)
	require.NoError(t, err)
	assert.True(t, destroyed)

	// second destroy sees the container gone
	_, err = c.Destroy(context.Background(), false)
	require.Error(t, err)
	assert.True(t, cerrdefs.IsNotFound(err))
	assert.Equal(t, 1, r.CallCount("destroy"))
}

func TestCommandErrorPropagates(t *testing.T) {
	c, r := newContainer(t)
	cmdErr := &lxc.CommandError{Command: "lxc-info -n web", Stderr: "lxc-info: no such container"}
	r.ScriptError("info", cmdErr)

	_, err := c.Status(context.Background())
	require.Error(t, err)
	var got *lxc.CommandError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, "lxc-info: no such container", got.Stderr)
}
