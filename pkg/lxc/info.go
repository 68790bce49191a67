package lxc

import (
	"regexp"
	"strconv"
	"strings"
)

// lxc-info output grammar: lines of the form "state: <TOKEN>" and
// "pid: <signed integer>". Only the first occurrence of each is used.
var (
	statePattern = regexp.MustCompile(`state:\s+(\w+)`)
	pidPattern   = regexp.MustCompile(`pid:\s+(-?\d+)`)
)

// Status is the last-observed lifecycle state and init pid of a
// container. Pid is -1 when the info output carries no pid line.
type Status struct {
	State State
	Pid   int
}

// parseInfo extracts state and pid from lxc-info output. Missing fields
// are reported as StateUnknown / -1, never as errors: callers must treat
// an absent state as unknown, not as running or stopped.
func parseInfo(out string) Status {
	st := Status{State: StateUnknown, Pid: -1}

	if m := statePattern.FindStringSubmatch(out); m != nil {
		st.State = State(m[1])
	}
	if m := pidPattern.FindStringSubmatch(out); m != nil {
		// the pattern only admits an optional sign and digits
		pid, err := strconv.Atoi(m[1])
		if err == nil {
			st.Pid = pid
		}
	}
	return st
}

// parseList splits lxc-ls output into deduplicated container names,
// preserving first-seen order. Blank lines are dropped.
func parseList(out string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, line := range strings.Split(out, "\n") {
		name := strings.TrimSpace(line)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}
