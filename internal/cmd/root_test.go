package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandsRegistered(t *testing.T) {
	want := []string{
		"create", "start", "stop", "restart", "freeze", "unfreeze",
		"destroy", "clone", "info", "list", "ps", "wait", "mem",
	}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name], "command %q not registered", name)
	}
}

func TestCreateFlags(t *testing.T) {
	for _, flag := range []string{"config", "template", "backing-store", "template-options"} {
		require.NotNil(t, createCmd.Flags().Lookup(flag), "flag --%s missing", flag)
	}
}

func TestDestroyForceFlag(t *testing.T) {
	var f *pflag.Flag = destroyCmd.Flags().Lookup("force")
	require.NotNil(t, f)
	assert.Equal(t, "f", f.Shorthand)
}

func TestListAlias(t *testing.T) {
	assert.Contains(t, listCmd.Aliases, "ls")
}
