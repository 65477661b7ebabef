package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.yaml.in/yaml/v3"
)

// Config represents the ltbridge configuration
type Config struct {
	Version    string            `yaml:"version" validate:"required"`
	InstallDir string            `yaml:"install_dir,omitempty"`
	Launcher   string            `yaml:"launcher" validate:"required"`
	Project    Project           `yaml:"project"`
	Env        map[string]string `yaml:"env,omitempty"`
	Log        LogConfig         `yaml:"log"`
}

// Project describes where the console project lives relative to the bridge installation
type Project struct {
	Dir             string `yaml:"dir" validate:"required"`
	File            string `yaml:"file" validate:"required"`
	LevelsUp        int    `yaml:"levels_up" validate:"min=1"`
	WorkDirLevelsUp int    `yaml:"workdir_levels_up" validate:"min=1"`
}

// LogConfig controls the bridge's own structured logging
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"oneof=text json"`
	Output string `yaml:"output"`
}

const (
	ConfigFileName         = "ltbridge.yml"
	CurrentVersion         = "1.0"
	DefaultLauncher        = "dotnet"
	DefaultProjectDir      = "LivingTool.Console"
	DefaultProjectFile     = "LivingTool.Console.csproj"
	DefaultLevelsUp        = 2
	DefaultWorkDirLevelsUp = 2
	DefaultLogLevel        = "warn"
	DefaultLogFormat       = "text"
	DefaultLogOutput       = "stderr"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when no config file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig loads configuration from the given path. An empty path means
// ltbridge.yml in the current directory; a missing file yields the defaults.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = ConfigFileName
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Relative install_dir is taken relative to the config file itself
	if config.InstallDir != "" && !filepath.IsAbs(config.InstallDir) {
		config.InstallDir = filepath.Join(filepath.Dir(configPath), config.InstallDir)
	}

	return &config, nil
}

// Validate fills in defaults and validates the configuration
func (c *Config) Validate() error {
	c.applyDefaults()

	if err := validate.Struct(c); err != nil {
		return err
	}

	for key := range c.Env {
		if key == "" || strings.Contains(key, "=") {
			return fmt.Errorf("invalid env key '%s'", key)
		}
	}

	return nil
}

// Validate checks the log settings on their own, e.g. after a command-line override
func (l LogConfig) Validate() error {
	return validate.Struct(l)
}

func (c *Config) applyDefaults() {
	if c.Version == "" {
		c.Version = CurrentVersion
	}
	if c.Launcher == "" {
		c.Launcher = DefaultLauncher
	}
	if c.Project.Dir == "" {
		c.Project.Dir = DefaultProjectDir
	}
	if c.Project.File == "" {
		c.Project.File = DefaultProjectFile
	}
	if c.Project.LevelsUp == 0 {
		c.Project.LevelsUp = DefaultLevelsUp
	}
	if c.Project.WorkDirLevelsUp == 0 {
		c.Project.WorkDirLevelsUp = DefaultWorkDirLevelsUp
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.Output == "" {
		c.Log.Output = DefaultLogOutput
	}
}

// EnvOverrides returns the configured child environment as KEY=VALUE pairs
func (c *Config) EnvOverrides() []string {
	env := make([]string, 0, len(c.Env))
	for key, value := range c.Env {
		env = append(env, fmt.Sprintf("%s=%s", key, value))
	}
	return env
}
