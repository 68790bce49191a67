package config

import "github.com/fredrick/golxc/pkg/lxc"

// Config represents the root configuration structure for golxc.yaml
type Config struct {
	// Prefix is the lxc tool name prefix; "start" runs "<prefix>-start".
	Prefix string `yaml:"prefix" mapstructure:"prefix"`

	// TemplateDir is where creation templates are resolved.
	TemplateDir string `yaml:"template_dir" mapstructure:"template_dir"`

	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// LoggingConfig defines optional rotated file logging.
type LoggingConfig struct {
	FileEnabled *bool  `yaml:"file_enabled,omitempty" mapstructure:"file_enabled"`
	Dir         string `yaml:"dir,omitempty" mapstructure:"dir"`
	MaxSizeMB   int    `yaml:"max_size_mb,omitempty" mapstructure:"max_size_mb"`
	MaxAgeDays  int    `yaml:"max_age_days,omitempty" mapstructure:"max_age_days"`
	MaxBackups  int    `yaml:"max_backups,omitempty" mapstructure:"max_backups"`
}

// DefaultConfig returns the configuration used when no golxc.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Prefix:      lxc.DefaultPrefix,
		TemplateDir: lxc.DefaultTemplateDir,
	}
}
