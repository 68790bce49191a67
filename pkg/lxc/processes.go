package lxc

import "strings"

// Process is one row of a container's process listing, captured while the
// container was running. All fields are kept as the text lxc-ps emitted;
// cpu and mem in particular stay opaque percentage strings.
type Process struct {
	Pid     string
	User    string
	CPU     string
	Mem     string
	Command string
	Args    string
}

// processColumns is the fixed format spec passed to lxc-ps.
const processColumns = "pid,user,%cpu,%mem,args"

// parseProcessLine parses one process-table row. The grammar is strictly
// positional: the first token is an index column artifact from lxc-ps
// formatting and is discarded; the next five are pid, user, cpu, mem and
// command; everything left is rejoined with single spaces as args. Lines
// with fewer than six tokens yield ok == false.
func parseProcessLine(line string) (Process, bool) {
	fields := strings.Fields(line)
	if len(fields) < 6 {
		return Process{}, false
	}
	return Process{
		Pid:     fields[1],
		User:    fields[2],
		CPU:     fields[3],
		Mem:     fields[4],
		Command: fields[5],
		Args:    strings.Join(fields[6:], " "),
	}, true
}

// parseProcessTable drops the header line and maps every remaining line
// through parseProcessLine, preserving the listing order.
func parseProcessTable(out string) []Process {
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) <= 1 {
		return nil
	}
	var procs []Process
	for _, line := range lines[1:] {
		if p, ok := parseProcessLine(line); ok {
			procs = append(procs, p)
		}
	}
	return procs
}
