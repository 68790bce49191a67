package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/internal/logger"
	"github.com/fredrick/golxc/pkg/lxc"
)

// The start/stop/restart/freeze/unfreeze verbs share one shape: request
// the transition, print the status observed afterwards. None of them
// verifies the transition; "golxc wait" does that.

var startCmd = &cobra.Command{
	Use:   "start <name>",
	Short: "Start a container (detached)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], "start", (*lxc.Container).Start)
	},
}

var stopCmd = &cobra.Command{
	Use:   "stop <name>",
	Short: "Stop a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], "stop", (*lxc.Container).Stop)
	},
}

var restartCmd = &cobra.Command{
	Use:   "restart <name>",
	Short: "Stop then start a container",
	Long: `Stops the container, then starts it again.

The two steps are not atomic: a failure in between leaves the
container stopped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], "restart", (*lxc.Container).Restart)
	},
}

var freezeCmd = &cobra.Command{
	Use:   "freeze <name>",
	Short: "Freeze a running container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], "freeze", (*lxc.Container).Freeze)
	},
}

var unfreezeCmd = &cobra.Command{
	Use:   "unfreeze <name>",
	Short: "Thaw a frozen container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return transition(cmd, args[0], "unfreeze", (*lxc.Container).Unfreeze)
	},
}

func init() {
	rootCmd.AddCommand(startCmd, stopCmd, restartCmd, freezeCmd, unfreezeCmd)
}

func transition(cmd *cobra.Command, name, verb string, op func(*lxc.Container, context.Context) (lxc.Status, error)) error {
	logger.Debug().Str("container", name).Str("op", verb).Msg("requesting transition")

	st, err := op(container(name), cmd.Context())
	if err != nil {
		return err
	}
	printStatus(name, st)
	return nil
}

func printStatus(name string, st lxc.Status) {
	if st.Pid >= 0 {
		fmt.Printf("%s: %s (pid %d)\n", name, st.State, st.Pid)
		return
	}
	fmt.Printf("%s: %s\n", name, st.State)
}
