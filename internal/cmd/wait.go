package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/internal/logger"
	"github.com/fredrick/golxc/pkg/lxc"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait <name> <state>",
	Short: "Block until a container reaches a state",
	Long: `Blocks until lxc reports the container reached the given state
(e.g. RUNNING, STOPPED, FROZEN). No timeout is enforced: if the
container never reaches the state, this waits forever.`,
	Args: cobra.ExactArgs(2),
	RunE: runWait,
}

func init() {
	rootCmd.AddCommand(waitCmd)
}

func runWait(cmd *cobra.Command, args []string) error {
	name, state := args[0], lxc.State(args[1])

	logger.Debug().Str("container", name).Str("state", state.String()).Msg("waiting for state")

	if err := container(name).Wait(cmd.Context(), state); err != nil {
		return err
	}
	fmt.Printf("%s: %s\n", name, state)
	return nil
}
