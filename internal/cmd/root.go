// Package cmd implements the golxc command-line interface.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/internal/cmdutil"
	"github.com/fredrick/golxc/internal/config"
	"github.com/fredrick/golxc/internal/logger"
	"github.com/fredrick/golxc/pkg/lxc"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"

	// Global flags
	debug   bool
	workDir string
	prefix  string

	// cfg is loaded in the persistent pre-run and read by every command
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "golxc",
	Short: "LXC container lifecycle management",
	Long: `Golxc drives the classic lxc command-line tools to manage
the lifecycle of LXC containers: create, start, stop, freeze,
clone and destroy, with status derived by parsing tool output.

Quick start:
  golxc create web -t busybox   # Create a container from a template
  golxc start web               # Start it detached
  golxc info web                # State and pid
  golxc destroy web --force     # Stop and remove in one step`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if workDir == "" {
			var err error
			workDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		var err error
		cfg, err = config.NewLoader(workDir).Load()
		if err != nil {
			return err
		}
		if prefix != "" {
			cfg.Prefix = prefix
		}

		logCfg := &logger.LoggingConfig{
			FileEnabled: cfg.Logging.FileEnabled,
			MaxSizeMB:   cfg.Logging.MaxSizeMB,
			MaxAgeDays:  cfg.Logging.MaxAgeDays,
			MaxBackups:  cfg.Logging.MaxBackups,
		}
		if err := logger.InitWithFile(debug, cfg.Logging.Dir, logCfg); err != nil {
			return err
		}

		logger.Debug().
			Str("version", Version).
			Str("workdir", workDir).
			Str("prefix", cfg.Prefix).
			Msg("golxc starting")
		return nil
	},
	Version: Version,
}

// Execute runs the root command and translates errors into process exit
// codes. It is called once from main.
func Execute() int {
	defer logger.CloseFileWriter() //nolint:errcheck

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	if errors.Is(err, cmdutil.SilentError) {
		return 1
	}

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) {
		fmt.Fprintln(os.Stderr, flagErr)
		return 2
	}

	var cmdErr *lxc.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cmdErr.Stderr)
		return 1
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	return 1
}

// container builds a handle on name using the configured tool prefix.
func container(name string) *lxc.Container {
	return lxc.New(name, lxc.WithRunner(&lxc.ExecRunner{Prefix: cfg.Prefix}))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "w", "", "Working directory (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", "", "lxc tool prefix (default from config, then \"lxc\")")

	// Version template
	rootCmd.SetVersionTemplate(fmt.Sprintf("golxc %s (commit: %s)\n", Version, Commit))
}
