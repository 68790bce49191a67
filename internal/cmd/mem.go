package cmd

import (
	"fmt"

	"github.com/docker/go-units"
	"github.com/spf13/cobra"
)

var memShowLimit bool

// memCmd represents the mem command
var memCmd = &cobra.Command{
	Use:   "mem <name>",
	Short: "Show a container's memory usage",
	Long: `Reads the container's memory cgroup counters and prints them
human-readable. Use --limit to print the configured limit instead
of current usage.`,
	Args: cobra.ExactArgs(1),
	RunE: runMem,
}

func init() {
	rootCmd.AddCommand(memCmd)

	memCmd.Flags().BoolVarP(&memShowLimit, "limit", "l", false, "Show the memory limit instead of usage")
}

func runMem(cmd *cobra.Command, args []string) error {
	c := container(args[0])

	var (
		bytes int64
		err   error
		label = "usage"
	)
	if memShowLimit {
		bytes, err = c.MemoryLimit(cmd.Context())
		label = "limit"
	} else {
		bytes, err = c.MemoryUsage(cmd.Context())
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s memory %s: %s (%d bytes)\n", c.Name, label, units.BytesSize(float64(bytes)), bytes)
	return nil
}
