package lxc

import (
	"os"
	"path/filepath"
)

// DefaultTemplateDir is where lxc installs its creation templates; a
// template named "busybox" lives at <dir>/lxc-busybox.
const DefaultTemplateDir = "/usr/lib/lxc/templates"

// CreateSpec describes how a container is created. Exactly one variant
// applies: a bare config file, or a template with optional extras.
// Construct with FromConfigFile or FromTemplate.
type CreateSpec struct {
	// ConfigFile is a path to an lxc config file. Must exist when set.
	ConfigFile string

	// Template names a creation template resolved under TemplateDir.
	Template string

	// BackingStore selects the container's backing store type (e.g.
	// "dir", "lvm", "btrfs"). Passed through unvalidated.
	BackingStore string

	// TemplateOptions are extra tokens handed to the template after a
	// "--" separator.
	TemplateOptions []string

	// TemplateDir overrides DefaultTemplateDir. Used by tests and by
	// hosts with relocated lxc installs.
	TemplateDir string
}

// FromConfigFile builds a spec that creates from a single config file.
func FromConfigFile(path string) CreateSpec {
	return CreateSpec{ConfigFile: path}
}

// FromTemplate builds a spec that creates from a named template.
func FromTemplate(template string) CreateSpec {
	return CreateSpec{Template: template}
}

// validate checks that every referenced file exists before any lxc tool
// is invoked.
func (s CreateSpec) validate() error {
	if s.ConfigFile != "" {
		if _, err := os.Stat(s.ConfigFile); err != nil {
			return ErrFileNotFound("create", s.ConfigFile)
		}
	}
	if s.Template != "" {
		dir := s.TemplateDir
		if dir == "" {
			dir = DefaultTemplateDir
		}
		path := filepath.Join(dir, "lxc-"+s.Template)
		if _, err := os.Stat(path); err != nil {
			return ErrFileNotFound("create", path)
		}
	}
	return nil
}

// args assembles the lxc-create argument list for container name in the
// fixed order: name, config-file flag, template flag, backing-store
// flag, then "--" and the template options (only when any are present).
func (s CreateSpec) args(name string) []string {
	args := []string{"-n", name}
	if s.ConfigFile != "" {
		args = append(args, "-f", s.ConfigFile)
	}
	if s.Template != "" {
		args = append(args, "-t", s.Template)
	}
	if s.BackingStore != "" {
		args = append(args, "-B", s.BackingStore)
	}
	if len(s.TemplateOptions) > 0 {
		args = append(args, "--")
		args = append(args, s.TemplateOptions...)
	}
	return args
}
