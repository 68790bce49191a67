package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFileName is the default configuration file name
const ConfigFileName = "golxc.yaml"

// Loader handles loading and parsing of golxc configuration
type Loader struct {
	workDir string
	viper   *viper.Viper
}

// NewLoader creates a new configuration loader for the given working directory
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir: workDir,
		viper:   viper.New(),
	}
}

// Load reads golxc.yaml from the working directory, falling back to
// $HOME/.config/golxc/golxc.yaml. A missing file is not an error: the
// defaults apply, optionally overridden by GOLXC_* environment variables
// (GOLXC_PREFIX, GOLXC_TEMPLATE_DIR).
func (l *Loader) Load() (*Config, error) {
	defaults := DefaultConfig()
	l.viper.SetDefault("prefix", defaults.Prefix)
	l.viper.SetDefault("template_dir", defaults.TemplateDir)

	l.viper.SetEnvPrefix("GOLXC")
	l.viper.AutomaticEnv()

	configPath, ok := l.findConfig()
	if ok {
		l.viper.SetConfigFile(configPath)
		l.viper.SetConfigType("yaml")
		if err := l.viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// findConfig returns the first config file on the search path.
func (l *Loader) findConfig() (string, bool) {
	candidates := []string{filepath.Join(l.workDir, ConfigFileName)}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "golxc", ConfigFileName))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// ConfigPath returns the path to the working-directory config file,
// whether or not it exists.
func (l *Loader) ConfigPath() string {
	return filepath.Join(l.workDir, ConfigFileName)
}

// Exists checks if a configuration file is present on the search path
func (l *Loader) Exists() bool {
	_, ok := l.findConfig()
	return ok
}
