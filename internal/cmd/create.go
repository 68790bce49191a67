package cmd

import (
	"fmt"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/fredrick/golxc/internal/cmdutil"
	"github.com/fredrick/golxc/internal/logger"
	"github.com/fredrick/golxc/pkg/lxc"
)

var (
	createConfigFile   string
	createTemplate     string
	createBackingStore string
	createTemplateOpts string
)

// createCmd represents the create command
var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new container",
	Long: `Creates a container from a config file, a template, or both.

Template options after the container's own flags are handed to the
template itself:
  golxc create web -t download --template-options "-d ubuntu -r jammy"`,
	Args: cobra.ExactArgs(1),
	RunE: runCreate,
}

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createConfigFile, "config", "f", "", "Path to an lxc config file")
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "", "Creation template name")
	createCmd.Flags().StringVarP(&createBackingStore, "backing-store", "B", "", "Backing store type (dir, lvm, btrfs, ...)")
	createCmd.Flags().StringVar(&createTemplateOpts, "template-options", "", "Options passed through to the template")
}

func runCreate(cmd *cobra.Command, args []string) error {
	name := args[0]

	spec := lxc.CreateSpec{
		ConfigFile:   createConfigFile,
		Template:     createTemplate,
		BackingStore: createBackingStore,
		TemplateDir:  cfg.TemplateDir,
	}
	if createTemplateOpts != "" {
		opts, err := shlex.Split(createTemplateOpts)
		if err != nil {
			return cmdutil.FlagErrorf("invalid --template-options: %v", err)
		}
		spec.TemplateOptions = opts
	}

	logger.Debug().
		Str("container", name).
		Str("template", createTemplate).
		Str("backing_store", createBackingStore).
		Msg("creating container")

	created, err := container(name).Create(cmd.Context(), spec)
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("lxc did not register container '%s'", name)
	}

	fmt.Printf("Container %s created\n", name)
	return nil
}
