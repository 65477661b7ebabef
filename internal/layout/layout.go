// Package layout resolves the console project and the working directory from
// the bridge's installation location. The installation is expected to sit a
// fixed number of levels below a source directory that also holds the console
// project:
//
//	src/
//	├── LivingTool.Console/LivingTool.Console.csproj
//	└── LivingTool.Desktop/bridge/   <- install dir, two levels below src/
package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/livingtool/ltbridge/internal/config"
	"github.com/livingtool/ltbridge/internal/errors"
)

// Layout describes the relative position of the console project.
type Layout struct {
	LevelsUp    int
	ProjectDir  string
	ProjectFile string
}

// FromConfig builds a Layout from the project section of the configuration.
func FromConfig(p config.Project) Layout {
	return Layout{
		LevelsUp:    p.LevelsUp,
		ProjectDir:  p.Dir,
		ProjectFile: p.File,
	}
}

// Variables to allow mocking in tests
var (
	osExecutable = os.Executable
	osStat       = os.Stat
	filepathAbs  = filepath.Abs
)

// InstallDir picks the base directory the project is resolved from: the
// configured override, then the value injected at build time, then the
// directory holding the running executable.
func InstallDir(override, buildTime string) (string, error) {
	if dir := strings.TrimSpace(override); dir != "" {
		return filepath.Abs(dir)
	}
	if dir := strings.TrimSpace(buildTime); dir != "" {
		return filepath.Abs(dir)
	}

	exe, err := osExecutable()
	if err != nil {
		return "", errors.InstallDirUnavailable(err)
	}
	if resolved, evalErr := filepath.EvalSymlinks(exe); evalErr == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Ascend walks levels parent directories up from path. It reports false when
// the filesystem root is reached before all levels are consumed.
func Ascend(path string, levels int) (string, bool) {
	current := filepath.Clean(path)
	for range levels {
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
	return current, true
}

// ResolveProjectPath locates the console project file relative to baseDir.
func ResolveProjectPath(baseDir string, l Layout) (string, error) {
	absBase, err := filepathAbs(baseDir)
	if err != nil {
		return "", errors.InstallDirNotAbsolute(baseDir, err)
	}

	srcDir, ok := Ascend(absBase, l.LevelsUp)
	if !ok {
		return "", errors.InstallLayoutTooShallow(absBase, l.LevelsUp)
	}

	projectPath := filepath.Join(srcDir, l.ProjectDir, l.ProjectFile)
	if _, err := osStat(projectPath); err != nil {
		return "", errors.ProjectNotFound(l.ProjectDir, projectPath)
	}

	return projectPath, nil
}

// ResolveWorkingDirectory returns the directory the console program runs in.
// A non-blank request wins but must exist; otherwise the directory levels
// above the project file is used.
func ResolveWorkingDirectory(requested, projectPath string, levels int) (string, error) {
	if trimmed := strings.TrimSpace(requested); trimmed != "" {
		info, err := osStat(trimmed)
		if err != nil {
			return "", errors.WorkingDirectoryNotFound(trimmed)
		}
		if !info.IsDir() {
			return "", errors.WorkingDirectoryNotDirectory(trimmed)
		}
		return trimmed, nil
	}

	fallback, ok := Ascend(projectPath, levels)
	if !ok {
		return "", errors.DefaultWorkingDirectoryUnavailable(projectPath)
	}
	return fallback, nil
}
