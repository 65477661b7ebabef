package framework

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/livingtool/ltbridge/internal/testutil"
)

const filePerm = 0600

// TestEnvironment is an installation tree with a freshly built ltbridge
// binary inside its install directory and a fake launcher next to it.
type TestEnvironment struct {
	t            *testing.T
	installation *testutil.Installation
	binary       string
	configPath   string
}

func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("e2e tests use a POSIX shell launcher")
	}

	env := &TestEnvironment{
		t:            t,
		installation: testutil.NewInstallation(t),
	}

	env.buildBridge()
	env.WriteConfig(fmt.Sprintf("launcher: %s\n", testutil.WriteFakeLauncher(t, env.installation.Root)))

	return env
}

func (e *TestEnvironment) buildBridge() {
	e.t.Helper()

	binary := filepath.Join(e.installation.InstallDir, "ltbridge")
	if prebuilt := os.Getenv("LTBRIDGE_E2E_BINARY"); prebuilt != "" {
		data, err := os.ReadFile(prebuilt)
		if err != nil {
			e.t.Fatalf("Specified ltbridge binary not found: %s", prebuilt)
		}
		if err := os.WriteFile(binary, data, 0o755); err != nil {
			e.t.Fatalf("Failed to copy ltbridge binary: %v", err)
		}
	} else {
		cmd := exec.Command("go", "build", "-o", binary, "./cmd/ltbridge")
		cmd.Dir = e.findProjectRoot()
		if output, err := cmd.CombinedOutput(); err != nil {
			e.t.Fatalf("Failed to build ltbridge binary: %v\nOutput: %s", err, output)
		}
	}

	e.binary = binary
}

func (e *TestEnvironment) findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		e.t.Fatalf("Failed to get working directory: %v", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			e.t.Fatal("Could not find project root (go.mod)")
		}
		dir = parent
	}
}

// WriteConfig replaces the configuration the binary is started with.
func (e *TestEnvironment) WriteConfig(content string) {
	e.t.Helper()

	path := filepath.Join(e.installation.Root, "ltbridge.yml")
	if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
		e.t.Fatalf("Failed to write config %s: %v", path, err)
	}
	e.configPath = path
}

// RunBridge runs the binary from the installation root and returns its
// combined output and exit code.
func (e *TestEnvironment) RunBridge(args ...string) (string, int) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.installation.Root
	cmd.Env = append(os.Environ(), "LTBRIDGE_CONFIG="+e.configPath, "LTBRIDGE_LOG_LEVEL=")

	output, err := cmd.CombinedOutput()
	if err == nil {
		return string(output), 0
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		e.t.Fatalf("Failed to run ltbridge %s: %v", strings.Join(args, " "), err)
	}
	return string(output), exitErr.ExitCode()
}

func (e *TestEnvironment) Installation() *testutil.Installation {
	return e.installation
}

func (e *TestEnvironment) MkdirTemp(name string) string {
	e.t.Helper()

	dir := filepath.Join(e.t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		e.t.Fatalf("Failed to create directory: %v", err)
	}
	return dir
}
