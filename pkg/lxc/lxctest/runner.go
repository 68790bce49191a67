package lxctest

import (
	"context"
	"fmt"
	"sync"
)

// Call records one Runner invocation.
type Call struct {
	Subcommand string
	Args       []string
}

// String renders the call the way the command line would look, which
// keeps test failure output readable.
func (c Call) String() string {
	s := c.Subcommand
	for _, a := range c.Args {
		s += " " + a
	}
	return s
}

type response struct {
	out string
	err error
}

// FakeRunner is a scripted test double for lxc.Runner. Responses are
// queued per subcommand with Script / ScriptError and consumed in FIFO
// order; the last response is sticky, so a single Script("ls", ...)
// serves any number of existence checks. Running a subcommand with no
// script panics, which fails loud on unexpected tool invocations.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string][]response

	// Calls records every invocation in order.
	Calls []Call

	// RunFn, when set, handles every invocation instead of the
	// scripted responses. Calls are still recorded.
	RunFn func(ctx context.Context, subcommand string, args ...string) (string, error)
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string][]response)}
}

// Script queues stdout for the next invocation of subcommand.
func (f *FakeRunner) Script(subcommand, stdout string) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[subcommand] = append(f.responses[subcommand], response{out: stdout})
	return f
}

// ScriptError queues a failure for the next invocation of subcommand.
func (f *FakeRunner) ScriptError(subcommand string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[subcommand] = append(f.responses[subcommand], response{err: err})
	return f
}

// Run implements lxc.Runner.
func (f *FakeRunner) Run(ctx context.Context, subcommand string, args ...string) (string, error) {
	f.mu.Lock()
	f.Calls = append(f.Calls, Call{Subcommand: subcommand, Args: args})
	if f.RunFn != nil {
		f.mu.Unlock()
		return f.RunFn(ctx, subcommand, args...)
	}
	queue := f.responses[subcommand]
	if len(queue) == 0 {
		f.mu.Unlock()
		panic(fmt.Sprintf("lxctest: no scripted response for %q — call Script(%q, ...)", subcommand, subcommand))
	}
	resp := queue[0]
	if len(queue) > 1 {
		f.responses[subcommand] = queue[1:]
	}
	f.mu.Unlock()
	return resp.out, resp.err
}

// CallCount returns how many times subcommand was invoked.
func (f *FakeRunner) CallCount(subcommand string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c.Subcommand == subcommand {
			n++
		}
	}
	return n
}

// LastCall returns the most recent invocation of subcommand, or false
// if it was never invoked.
func (f *FakeRunner) LastCall(subcommand string) (Call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.Calls) - 1; i >= 0; i-- {
		if f.Calls[i].Subcommand == subcommand {
			return f.Calls[i], true
		}
	}
	return Call{}, false
}
