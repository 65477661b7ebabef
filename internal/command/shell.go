package command

import (
	"bytes"
	stderrors "errors"
	"os"
	"os/exec"

	"github.com/livingtool/ltbridge/internal/errors"
)

// NoColorEnv is always set on the child so its output stays plain text
const NoColorEnv = "NO_COLOR=1"

// processRunner implements Runner using os/exec
type processRunner struct{}

// NewProcessRunner creates a Runner that spawns real processes
func NewProcessRunner() Runner {
	return &processRunner{}
}

// Run starts cmd without a shell and blocks until it exits
func (r *processRunner) Run(cmd Command) (*Output, error) {
	// #nosec G204 - the launcher comes from configuration and arguments are passed as a vector
	execCmd := exec.Command(cmd.Name, cmd.Args...)
	execCmd.Dir = cmd.WorkDir

	// Later entries win, so NO_COLOR cannot be overridden by configuration
	env := append(execCmd.Environ(), cmd.Env...)
	execCmd.Env = append(env, NoColorEnv)

	var stdout, stderr bytes.Buffer
	execCmd.Stdout = &stdout
	execCmd.Stderr = &stderr

	err := execCmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if !stderrors.As(err, &exitErr) {
			return nil, errors.LauncherSpawnFailed(cmd.Name, err)
		}
	}

	return &Output{
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		ExitCode: exitCode(execCmd.ProcessState),
		Success:  execCmd.ProcessState.Success(),
	}, nil
}

// exitCode uses the numeric code when the platform reports one. A process
// killed by a signal has none and maps to 1.
func exitCode(state *os.ProcessState) int {
	if code := state.ExitCode(); code >= 0 {
		return code
	}
	if state.Success() {
		return 0
	}
	return 1
}
