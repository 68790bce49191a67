// Package lxctest provides test doubles for pkg/lxc.
//
// FakeRunner is a scripted lxc.Runner: tests queue canned stdout or
// errors per subcommand and assert on the recorded invocations, so no
// real lxc installation is ever touched.
package lxctest
