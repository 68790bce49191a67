package lxc

// State is a container lifecycle state as reported by the lxc tools.
// The vocabulary is fixed by lxc itself; comparisons are case-sensitive.
type State string

const (
	StateStopped  State = "STOPPED"
	StateRunning  State = "RUNNING"
	StateFrozen   State = "FROZEN"
	StateStarting State = "STARTING"
	StateStopping State = "STOPPING"
	StateAborting State = "ABORTING"
	StateFreezing State = "FREEZING"
	StateThawed   State = "THAWED"

	// StateUnknown is reported when lxc-info output carries no state line.
	StateUnknown State = "UNKNOWN"
)

var knownStates = map[State]struct{}{
	StateStopped:  {},
	StateRunning:  {},
	StateFrozen:   {},
	StateStarting: {},
	StateStopping: {},
	StateAborting: {},
	StateFreezing: {},
	StateThawed:   {},
	StateUnknown:  {},
}

// ValidState reports whether s is one of the recognized lifecycle states.
// Wait checks its target against this before issuing a blocking lxc-wait.
func ValidState(s State) bool {
	_, ok := knownStates[s]
	return ok
}

func (s State) String() string {
	return string(s)
}
