package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/internal/logger"
)

var destroyForce bool

// destroyCmd represents the destroy command
var destroyCmd = &cobra.Command{
	Use:   "destroy <name>",
	Short: "Remove a container",
	Long: `Removes a stopped container.

A running container is refused unless --force is given, in which
case lxc stops and removes it in one step.`,
	Args: cobra.ExactArgs(1),
	RunE: runDestroy,
}

func init() {
	rootCmd.AddCommand(destroyCmd)

	destroyCmd.Flags().BoolVarP(&destroyForce, "force", "f", false, "Stop a running container before removing it")
}

func runDestroy(cmd *cobra.Command, args []string) error {
	name := args[0]

	logger.Debug().Str("container", name).Bool("force", destroyForce).Msg("destroying container")

	destroyed, err := container(name).Destroy(cmd.Context(), destroyForce)
	if err != nil {
		return err
	}
	if !destroyed {
		return fmt.Errorf("lxc still lists container '%s' after destroy", name)
	}

	fmt.Printf("Container %s destroyed\n", name)
	return nil
}
