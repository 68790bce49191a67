package lxc

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
)

// Runner executes an lxc tool and returns its captured standard output.
// A non-zero exit must surface as a *CommandError carrying the tool's
// stderr; stdout is returned verbatim, trailing newlines included.
//
// The container handle issues every operation through a Runner, so tests
// substitute a scripted fake without touching a real lxc installation.
type Runner interface {
	Run(ctx context.Context, subcommand string, args ...string) (string, error)
}

// DefaultPrefix is the command prefix of the classic lxc tools: the
// "start" subcommand runs the "lxc-start" binary.
const DefaultPrefix = "lxc"

// ExecRunner runs lxc tools as local subprocesses.
type ExecRunner struct {
	// Prefix is the tool name prefix, DefaultPrefix when empty.
	Prefix string
}

// Run invokes <prefix>-<subcommand> with args, blocking until it exits.
func (r *ExecRunner) Run(ctx context.Context, subcommand string, args ...string) (string, error) {
	prefix := r.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	name := prefix + "-" + subcommand

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Command: name + " " + strings.Join(args, " "),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.String(), nil
}
