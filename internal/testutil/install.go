// Package testutil provides helpers shared across tests.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProjectDir  = "LivingTool.Console"
	ProjectFile = "LivingTool.Console.csproj"
)

// Installation is a synthetic source tree laid out the way a real bridge
// installation expects:
//
//	<Root>/src/LivingTool.Console/LivingTool.Console.csproj
//	<Root>/src/LivingTool.Desktop/bridge/   (InstallDir)
type Installation struct {
	Root        string
	SrcDir      string
	InstallDir  string
	ProjectPath string
}

// NewInstallation creates the tree under a fresh temporary directory.
func NewInstallation(t *testing.T) *Installation {
	t.Helper()

	root := t.TempDir()
	src := filepath.Join(root, "src")
	inst := &Installation{
		Root:        root,
		SrcDir:      src,
		InstallDir:  filepath.Join(src, "LivingTool.Desktop", "bridge"),
		ProjectPath: filepath.Join(src, ProjectDir, ProjectFile),
	}

	mustMkdir(t, inst.InstallDir)
	mustMkdir(t, filepath.Dir(inst.ProjectPath))
	if err := os.WriteFile(inst.ProjectPath, []byte("<Project Sdk=\"Microsoft.NET.Sdk\" />\n"), 0o644); err != nil {
		t.Fatalf("write project file: %v", err)
	}

	return inst
}

// RemoveProject deletes the marker project file.
func (i *Installation) RemoveProject(t *testing.T) {
	t.Helper()
	if err := os.Remove(i.ProjectPath); err != nil {
		t.Fatalf("remove project file: %v", err)
	}
}

// fakeLauncherScript stands in for "dotnet". It checks the
// "run --project <path> -- <command>" prefix and then acts on <command>.
const fakeLauncherScript = `#!/bin/sh
if [ "$1" != "run" ] || [ "$2" != "--project" ] || [ "$4" != "--" ]; then
  echo "unexpected invocation: $*" >&2
  exit 64
fi
project="$3"
shift 4
command="$1"
shift
case "$command" in
  echo) echo "$*" ;;
  argv) for arg in "$@"; do printf '[%s]\n' "$arg"; done ;;
  stderr) echo "$*" >&2 ;;
  both) echo out; echo err >&2 ;;
  exit) echo "exiting with $1" >&2; exit "$1" ;;
  env) printf 'NO_COLOR=%s\n' "$NO_COLOR"; printf 'LTBRIDGE_TEST=%s\n' "$LTBRIDGE_TEST" ;;
  pwd) pwd ;;
  project) printf '%s\n' "$project" ;;
  invalid) printf 'bad \377\376 bytes' ;;
  signal) kill -9 $$ ;;
  *) echo "unknown command: $command" >&2; exit 1 ;;
esac
`

// WriteFakeLauncher writes an executable fake launcher into dir and returns
// its absolute path. Tests using it are skipped on Windows.
func WriteFakeLauncher(t *testing.T, dir string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("fake launcher requires a POSIX shell")
	}

	path := filepath.Join(dir, "fake-dotnet")
	if err := os.WriteFile(path, []byte(fakeLauncherScript), 0o755); err != nil {
		t.Fatalf("write fake launcher: %v", err)
	}
	return path
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}
