// Package lxc models the lifecycle of an lxc container by driving the
// classic lxc command-line tools and parsing their text output.
//
// A Container is a lightweight local projection of a named container: it
// owns nothing until Create or a clone registers the name with lxc, and
// every query re-invokes the tools rather than trusting cached state.
// Precondition checks (exists, running) are best-effort guards against an
// independently mutable external system, not guarantees; callers should
// retry on conflict errors rather than expect atomicity.
package lxc

import (
	"context"
	"slices"
	"strconv"
	"strings"
)

// Container is a handle on a named lxc container.
//
// Handles are independent, uncoordinated views: two handles on the same
// name share nothing, and neither owns exclusive access. All operations
// block until the underlying lxc tool exits.
type Container struct {
	Name string

	// last observed status, refreshed by every Status call. Never
	// trusted across calls.
	state State
	pid   int

	runner Runner
}

// Option configures a Container handle.
type Option func(*Container)

// WithRunner substitutes the command runner, primarily for tests.
func WithRunner(r Runner) Option {
	return func(c *Container) { c.runner = r }
}

// New returns a handle on the container called name. The container need
// not exist yet; Create, CloneTo or CloneFrom bring it into being.
func New(name string, opts ...Option) *Container {
	c := &Container{
		Name:   name,
		state:  StateUnknown,
		pid:    -1,
		runner: &ExecRunner{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status queries lxc-info and returns the container's current state and
// pid. A container lxc does not report a state for yields StateUnknown;
// a missing pid yields -1. The observed values are also cached on the
// handle for State and Pid.
func (c *Container) Status(ctx context.Context) (Status, error) {
	out, err := c.runner.Run(ctx, "info", "-n", c.Name)
	if err != nil {
		return Status{State: StateUnknown, Pid: -1}, err
	}
	st := parseInfo(out)
	c.state = st.State
	c.pid = st.Pid
	return st, nil
}

// State returns the state observed by the most recent Status call.
func (c *Container) State() State {
	return c.state
}

// Pid returns the pid observed by the most recent Status call, -1 when
// none was reported.
func (c *Container) Pid() int {
	return c.pid
}

// List returns the container names lxc currently reports, deduplicated,
// in listing order. A nil runner means the default ExecRunner.
func List(ctx context.Context, r Runner) ([]string, error) {
	if r == nil {
		r = &ExecRunner{}
	}
	out, err := r.Run(ctx, "ls")
	if err != nil {
		return nil, err
	}
	return parseList(out), nil
}

// Exists reports whether lxc currently lists a container with this
// handle's name.
func (c *Container) Exists(ctx context.Context) (bool, error) {
	names, err := List(ctx, c.runner)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, c.Name), nil
}

// Running reports whether a fresh status query observes RUNNING.
func (c *Container) Running(ctx context.Context) (bool, error) {
	st, err := c.Status(ctx)
	if err != nil {
		return false, err
	}
	return st.State == StateRunning, nil
}

// Frozen reports whether a fresh status query observes FROZEN.
func (c *Container) Frozen(ctx context.Context) (bool, error) {
	st, err := c.Status(ctx)
	if err != nil {
		return false, err
	}
	return st.State == StateFrozen, nil
}

// Start requests a detached start and returns the status observed
// afterwards. The transition is not verified; poll Status or use Wait.
func (c *Container) Start(ctx context.Context) (Status, error) {
	if _, err := c.runner.Run(ctx, "start", "-d", "-n", c.Name); err != nil {
		return Status{State: StateUnknown, Pid: -1}, err
	}
	return c.Status(ctx)
}

// Stop requests a stop and returns the status observed afterwards.
func (c *Container) Stop(ctx context.Context) (Status, error) {
	if _, err := c.runner.Run(ctx, "stop", "-n", c.Name); err != nil {
		return Status{State: StateUnknown, Pid: -1}, err
	}
	return c.Status(ctx)
}

// Restart stops then starts the container. Not atomic: a failure between
// the two calls leaves the container stopped. No retry is attempted.
func (c *Container) Restart(ctx context.Context) (Status, error) {
	if _, err := c.Stop(ctx); err != nil {
		return Status{State: StateUnknown, Pid: -1}, err
	}
	return c.Start(ctx)
}

// Freeze requests a freeze and returns the status observed afterwards.
func (c *Container) Freeze(ctx context.Context) (Status, error) {
	if _, err := c.runner.Run(ctx, "freeze", "-n", c.Name); err != nil {
		return Status{State: StateUnknown, Pid: -1}, err
	}
	return c.Status(ctx)
}

// Unfreeze thaws a frozen container and returns the status observed
// afterwards.
func (c *Container) Unfreeze(ctx context.Context) (Status, error) {
	if _, err := c.runner.Run(ctx, "unfreeze", "-n", c.Name); err != nil {
		return Status{State: StateUnknown, Pid: -1}, err
	}
	return c.Status(ctx)
}

// Wait blocks until lxc reports the container reached state. The target
// is validated first; lxc-wait itself enforces no timeout, so with a
// background context this can block forever.
func (c *Container) Wait(ctx context.Context, state State) error {
	if !ValidState(state) {
		return ErrInvalidState(state)
	}
	_, err := c.runner.Run(ctx, "wait", "-n", c.Name, "-s", string(state))
	return err
}

// MemoryUsage returns the container's memory.usage_in_bytes cgroup
// counter. Non-numeric output surfaces as a strconv parse error.
func (c *Container) MemoryUsage(ctx context.Context) (int64, error) {
	return c.cgroupValue(ctx, "memory.usage_in_bytes")
}

// MemoryLimit returns the container's memory.limit_in_bytes cgroup
// counter.
func (c *Container) MemoryLimit(ctx context.Context) (int64, error) {
	return c.cgroupValue(ctx, "memory.limit_in_bytes")
}

func (c *Container) cgroupValue(ctx context.Context, key string) (int64, error) {
	out, err := c.runner.Run(ctx, "cgroup", "-n", c.Name, key)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(strings.TrimSpace(out), 10, 64)
}

// Processes lists the processes running inside the container, in the
// order lxc-ps reports them. Fails with a conflict error when the
// container is not running; the listing command is never invoked then.
func (c *Container) Processes(ctx context.Context) ([]Process, error) {
	running, err := c.Running(ctx)
	if err != nil {
		return nil, err
	}
	if !running {
		return nil, ErrContainerNotRunning("ps", c.Name)
	}
	out, err := c.runner.Run(ctx, "ps", "-n", c.Name, "--", "-o", processColumns)
	if err != nil {
		return nil, err
	}
	return parseProcessTable(out), nil
}

// Create registers the container with lxc according to spec. It fails
// with a conflict error when the name already exists, and with an
// invalid-argument error when a referenced config file or template is
// missing; in both cases lxc-create is never invoked. Success is defined
// as lxc listing the name afterwards, which is the returned value.
func (c *Container) Create(ctx context.Context, spec CreateSpec) (bool, error) {
	exists, err := c.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, ErrContainerExists("create", c.Name)
	}
	if err := spec.validate(); err != nil {
		return false, err
	}
	if _, err := c.runner.Run(ctx, "create", spec.args(c.Name)...); err != nil {
		return false, err
	}
	return c.Exists(ctx)
}

// CloneTo clones this container to target and returns a handle on the
// clone, sharing this handle's runner. The source must exist and the
// target must not; lxc-clone is never invoked otherwise. The clone's
// existence is not re-verified; callers check the returned handle.
func (c *Container) CloneTo(ctx context.Context, target string) (*Container, error) {
	exists, err := c.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrContainerNotFound("clone", c.Name)
	}

	clone := New(target, WithRunner(c.runner))
	exists, err = clone.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrContainerExists("clone", target)
	}

	if _, err := c.runner.Run(ctx, "clone", "-o", c.Name, "-n", target); err != nil {
		return nil, err
	}
	return clone, nil
}

// CloneFrom creates this container as a clone of source. This handle's
// name must not exist yet and source must; lxc-clone is never invoked
// otherwise. Returns whether lxc lists the name afterwards.
func (c *Container) CloneFrom(ctx context.Context, source string) (bool, error) {
	exists, err := c.Exists(ctx)
	if err != nil {
		return false, err
	}
	if exists {
		return false, ErrContainerExists("clone", c.Name)
	}

	src := New(source, WithRunner(c.runner))
	exists, err = src.Exists(ctx)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrContainerNotFound("clone", source)
	}

	if _, err := c.runner.Run(ctx, "clone", "-o", source, "-n", c.Name); err != nil {
		return false, err
	}
	return c.Exists(ctx)
}

// Destroy removes the container. A running container is refused unless
// force is set, in which case lxc-destroy stops and removes it in one
// step. Returns true when lxc no longer lists the name afterwards.
func (c *Container) Destroy(ctx context.Context, force bool) (bool, error) {
	exists, err := c.Exists(ctx)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, ErrContainerNotFound("destroy", c.Name)
	}

	running, err := c.Running(ctx)
	if err != nil {
		return false, err
	}
	if running && !force {
		return false, ErrContainerRunning("destroy", c.Name)
	}

	args := []string{"-n", c.Name}
	if running {
		args = append([]string{"-f"}, args...)
	}
	if _, err := c.runner.Run(ctx, "destroy", args...); err != nil {
		return false, err
	}

	exists, err = c.Exists(ctx)
	if err != nil {
		return false, err
	}
	return !exists, nil
}
