package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/internal/logger"
)

// cloneCmd represents the clone command
var cloneCmd = &cobra.Command{
	Use:   "clone <source> <target>",
	Short: "Clone a container under a new name",
	Args:  cobra.ExactArgs(2),
	RunE:  runClone,
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}

func runClone(cmd *cobra.Command, args []string) error {
	source, target := args[0], args[1]

	logger.Debug().Str("source", source).Str("target", target).Msg("cloning container")

	clone, err := container(source).CloneTo(cmd.Context(), target)
	if err != nil {
		return err
	}

	// CloneTo does not re-verify the clone; report what lxc says now.
	exists, err := clone.Exists(cmd.Context())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("lxc does not list container '%s' after clone", target)
	}

	fmt.Printf("Container %s cloned to %s\n", source, target)
	return nil
}
