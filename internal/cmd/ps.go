package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// psCmd represents the ps command
var psCmd = &cobra.Command{
	Use:   "ps <name>",
	Short: "List processes inside a running container",
	Args:  cobra.ExactArgs(1),
	RunE:  runPs,
}

func init() {
	rootCmd.AddCommand(psCmd)
}

func runPs(cmd *cobra.Command, args []string) error {
	procs, err := container(args[0]).Processes(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PID\tUSER\t%CPU\t%MEM\tCOMMAND\tARGS")
	for _, p := range procs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", p.Pid, p.User, p.CPU, p.Mem, p.Command, p.Args)
	}
	return w.Flush()
}
