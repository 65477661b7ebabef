package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestLoadConfig_NonExistentFile(t *testing.T) {
	tempDir := t.TempDir()

	config, err := LoadConfig(filepath.Join(tempDir, ConfigFileName))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Version != CurrentVersion {
		t.Errorf("Expected version %s, got %s", CurrentVersion, config.Version)
	}

	if config.Launcher != DefaultLauncher {
		t.Errorf("Expected launcher '%s', got %s", DefaultLauncher, config.Launcher)
	}

	if config.Project.File != DefaultProjectFile {
		t.Errorf("Expected project file '%s', got %s", DefaultProjectFile, config.Project.File)
	}

	if config.Project.LevelsUp != 2 || config.Project.WorkDirLevelsUp != 2 {
		t.Errorf("Expected levels 2/2, got %d/%d", config.Project.LevelsUp, config.Project.WorkDirLevelsUp)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	configContent := `version: "1.0"
install_dir: install/desktop
launcher: /usr/local/bin/dotnet
project:
  dir: Tools.Console
  file: Tools.Console.csproj
  levels_up: 3
env:
  DOTNET_CLI_TELEMETRY_OPTOUT: "1"
log:
  level: debug
  format: json
`

	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.Launcher != "/usr/local/bin/dotnet" {
		t.Errorf("Expected launcher '/usr/local/bin/dotnet', got %s", config.Launcher)
	}

	expectedInstall := filepath.Join(tempDir, "install", "desktop")
	if config.InstallDir != expectedInstall {
		t.Errorf("Expected install_dir '%s', got %s", expectedInstall, config.InstallDir)
	}

	if config.Project.Dir != "Tools.Console" || config.Project.File != "Tools.Console.csproj" {
		t.Errorf("Unexpected project: %+v", config.Project)
	}

	if config.Project.LevelsUp != 3 {
		t.Errorf("Expected levels_up 3, got %d", config.Project.LevelsUp)
	}

	// Unset values fall back to defaults
	if config.Project.WorkDirLevelsUp != DefaultWorkDirLevelsUp {
		t.Errorf("Expected workdir_levels_up %d, got %d", DefaultWorkDirLevelsUp, config.Project.WorkDirLevelsUp)
	}

	if config.Log.Level != "debug" || config.Log.Format != "json" || config.Log.Output != DefaultLogOutput {
		t.Errorf("Unexpected log config: %+v", config.Log)
	}

	env := config.EnvOverrides()
	if !slices.Contains(env, "DOTNET_CLI_TELEMETRY_OPTOUT=1") {
		t.Errorf("Expected env override, got %v", env)
	}
}

func TestLoadConfig_AbsoluteInstallDirKept(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)
	installDir := filepath.Join(tempDir, "abs")

	if err := os.WriteFile(configPath, []byte("install_dir: "+installDir+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if config.InstallDir != installDir {
		t.Errorf("Expected install_dir '%s', got %s", installDir, config.InstallDir)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, ConfigFileName)

	if err := os.WriteFile(configPath, []byte("launcher: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}

	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative levels", content: "project:\n  levels_up: -1\n"},
		{name: "unknown log level", content: "log:\n  level: loud\n"},
		{name: "unknown log format", content: "log:\n  format: xml\n"},
		{name: "bad env key", content: "env:\n  \"A=B\": c\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(configPath, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write config file: %v", err)
			}

			_, err := LoadConfig(configPath)
			if err == nil {
				t.Fatal("Expected validation error")
			}

			if !strings.Contains(err.Error(), "invalid configuration") {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("empty config gets defaults", func(t *testing.T) {
		config := &Config{}
		if err := config.Validate(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if config.Launcher != DefaultLauncher {
			t.Errorf("Expected launcher '%s', got %s", DefaultLauncher, config.Launcher)
		}
		if config.Log.Format != DefaultLogFormat {
			t.Errorf("Expected log format '%s', got %s", DefaultLogFormat, config.Log.Format)
		}
	})

	t.Run("warning is accepted as log level", func(t *testing.T) {
		config := &Config{Log: LogConfig{Level: "warning"}}
		if err := config.Validate(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
	})
}

func TestLogConfig_Validate(t *testing.T) {
	valid := LogConfig{Level: "debug", Format: "text"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	invalid := LogConfig{Level: "verbose", Format: "text"}
	if err := invalid.Validate(); err == nil {
		t.Error("Expected error for unknown log level")
	}
}

func TestDefault(t *testing.T) {
	config := Default()

	if config.Project.Dir != DefaultProjectDir {
		t.Errorf("Expected project dir '%s', got %s", DefaultProjectDir, config.Project.Dir)
	}
	if len(config.EnvOverrides()) != 0 {
		t.Errorf("Expected no env overrides, got %v", config.EnvOverrides())
	}
}
