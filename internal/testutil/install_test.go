package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewInstallation(t *testing.T) {
	inst := NewInstallation(t)

	if _, err := os.Stat(inst.ProjectPath); err != nil {
		t.Fatalf("project file missing: %v", err)
	}

	info, err := os.Stat(inst.InstallDir)
	if err != nil || !info.IsDir() {
		t.Fatalf("install dir missing: %v", err)
	}

	if got := filepath.Dir(filepath.Dir(inst.InstallDir)); got != inst.SrcDir {
		t.Fatalf("install dir two levels up = %s, want %s", got, inst.SrcDir)
	}

	inst.RemoveProject(t)
	if _, err := os.Stat(inst.ProjectPath); !os.IsNotExist(err) {
		t.Fatalf("project file still present: %v", err)
	}
}

func TestWriteFakeLauncher(t *testing.T) {
	path := WriteFakeLauncher(t, t.TempDir())

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat launcher: %v", err)
	}
	if info.Mode().Perm()&0o100 == 0 {
		t.Fatalf("launcher not executable: %v", info.Mode())
	}
}
