package lxc

import (
	"fmt"

	cerrdefs "github.com/containerd/errdefs"
)

// ContainerError represents a failed container operation with a
// human-readable message. It wraps an errdefs sentinel so callers can
// classify failures with cerrdefs.IsNotFound / IsConflict /
// IsInvalidArgument instead of matching message text.
type ContainerError struct {
	Op      string // operation that failed (e.g. "create", "destroy", "wait")
	Err     error  // underlying error or errdefs sentinel
	Message string // human-readable message
}

func (e *ContainerError) Error() string {
	return e.Message
}

func (e *ContainerError) Unwrap() error {
	return e.Err
}

// Common error constructors

// ErrContainerExists reports a create or clone target colliding with an
// existing container.
func ErrContainerExists(op, name string) *ContainerError {
	return &ContainerError{
		Op:      op,
		Err:     cerrdefs.ErrConflict,
		Message: fmt.Sprintf("Container '%s' already exists", name),
	}
}

// ErrContainerNotFound reports an operation on a container the lxc tools
// do not know about.
func ErrContainerNotFound(op, name string) *ContainerError {
	return &ContainerError{
		Op:      op,
		Err:     cerrdefs.ErrNotFound,
		Message: fmt.Sprintf("Container '%s' does not exist", name),
	}
}

// ErrContainerNotRunning reports an operation that requires a running
// container.
func ErrContainerNotRunning(op, name string) *ContainerError {
	return &ContainerError{
		Op:      op,
		Err:     cerrdefs.ErrConflict,
		Message: "Container is not running",
	}
}

// ErrContainerRunning reports a destroy on a running container without
// force.
func ErrContainerRunning(op, name string) *ContainerError {
	return &ContainerError{
		Op:      op,
		Err:     cerrdefs.ErrConflict,
		Message: fmt.Sprintf("Container '%s' is running; stop it first or destroy with force", name),
	}
}

// ErrInvalidState reports an unrecognized state token passed to Wait.
func ErrInvalidState(state State) *ContainerError {
	return &ContainerError{
		Op:      "wait",
		Err:     cerrdefs.ErrInvalidArgument,
		Message: fmt.Sprintf("Invalid container state '%s'", state),
	}
}

// ErrFileNotFound reports a config file or template path that does not
// exist on disk.
func ErrFileNotFound(op, path string) *ContainerError {
	return &ContainerError{
		Op:      op,
		Err:     cerrdefs.ErrInvalidArgument,
		Message: fmt.Sprintf("File '%s' does not exist", path),
	}
}

// CommandError reports a non-zero exit from an lxc tool. Stderr carries
// the tool's captured error output verbatim.
type CommandError struct {
	Command string // full command line that was attempted
	Stderr  string // captured standard error
	Err     error  // underlying exec error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command '%s' failed: %s", e.Command, e.Stderr)
	}
	return fmt.Sprintf("command '%s' failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
