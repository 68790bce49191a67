package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/pkg/lxc"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <name>",
	Short: "Show a container's state and pid",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List containers known to lxc",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	rootCmd.AddCommand(infoCmd, listCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	name := args[0]

	st, err := container(name).Status(cmd.Context())
	if err != nil {
		return err
	}
	printStatus(name, st)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	names, err := lxc.List(cmd.Context(), &lxc.ExecRunner{Prefix: cfg.Prefix})
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
