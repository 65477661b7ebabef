package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds. Every error returned by the bridge matches exactly one of these
// through errors.Is; the message itself stays a single flat string.
var (
	ErrValidation       = errors.New("validation error")
	ErrPathResolution   = errors.New("path resolution error")
	ErrWorkingDirectory = errors.New("working directory error")
	ErrExecution        = errors.New("execution error")
	ErrConfig           = errors.New("configuration error")
)

type bridgeError struct {
	kind  error
	msg   string
	cause error
}

func (e *bridgeError) Error() string {
	return e.msg
}

func (e *bridgeError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}

func newError(kind error, cause error, msg string) error {
	return &bridgeError{kind: kind, msg: msg, cause: cause}
}

// Validation Errors
func CommandNameRequired() error {
	msg := `command name is required

Usage: ltbridge invoke <command> [-- args...]

Examples:
  • ltbridge invoke run -- -f gc.bin
  • ltbridge invoke read -- -f SLUS_008.11`
	return newError(ErrValidation, nil, msg)
}

func FileArgumentRequired(command, what string) error {
	msg := fmt.Sprintf(`%s requires %s.

Usage: ltbridge %s -f <path>`, command, what, command)
	return newError(ErrValidation, nil, msg)
}

// Path Resolution Errors
func InstallLayoutTooShallow(baseDir string, levels int) error {
	msg := fmt.Sprintf(`unable to resolve source directory: '%s' has fewer than %d parent directories

Tip: Set install_dir in ltbridge.yml to the directory the bridge is installed in`, baseDir, levels)
	return newError(ErrPathResolution, nil, msg)
}

func ProjectNotFound(projectName, attemptedPath string) error {
	msg := fmt.Sprintf(`%s project not found at %s

Solutions:
  • Check that the console project sits next to the bridge installation
  • Set install_dir or project.dir in ltbridge.yml`, projectName, attemptedPath)
	return newError(ErrPathResolution, nil, msg)
}

func InstallDirUnavailable(originalError error) error {
	msg := fmt.Sprintf("unable to determine bridge installation directory\n\nOriginal error: %v", originalError)
	return newError(ErrPathResolution, originalError, msg)
}

func InstallDirNotAbsolute(baseDir string, originalError error) error {
	msg := fmt.Sprintf("unable to make installation directory '%s' absolute\n\nOriginal error: %v", baseDir, originalError)
	return newError(ErrPathResolution, originalError, msg)
}

func InvalidLogLevel(level string, originalError error) error {
	msg := fmt.Sprintf(`invalid log level '%s'

Solution: Use one of debug, info, warn, warning or error`, level)
	return newError(ErrConfig, originalError, msg)
}

// Working Directory Errors
func WorkingDirectoryNotFound(path string) error {
	return newError(ErrWorkingDirectory, nil, fmt.Sprintf("working directory does not exist: %s", path))
}

func WorkingDirectoryNotDirectory(path string) error {
	return newError(ErrWorkingDirectory, nil, fmt.Sprintf("working directory is not a directory: %s", path))
}

func DefaultWorkingDirectoryUnavailable(projectPath string) error {
	msg := fmt.Sprintf(`unable to resolve default working directory from %s

Tip: Pass --workdir to choose the directory explicitly`, projectPath)
	return newError(ErrWorkingDirectory, nil, msg)
}

// Execution Errors
func LauncherSpawnFailed(launcher string, originalError error) error {
	msg := fmt.Sprintf("failed to execute %s command: %v", launcher, originalError)

	errorStr := originalError.Error()
	if strings.Contains(errorStr, "executable file not found") || strings.Contains(errorStr, "no such file") {
		msg += fmt.Sprintf(`

Cause: %s is not installed or not on PATH
Solution: Install the runtime or set launcher in ltbridge.yml to its full path`, launcher)
	} else if strings.Contains(errorStr, "permission denied") {
		msg += `

Cause: Permission denied
Solution: Check that the launcher is executable by the current user`
	}

	return newError(ErrExecution, originalError, msg)
}

// Configuration Errors
func ConfigLoadFailed(configPath string, parseError error) error {
	msg := fmt.Sprintf("failed to load configuration from '%s'", configPath)

	parseErrorStr := parseError.Error()
	if strings.Contains(parseErrorStr, "yaml") || strings.Contains(parseErrorStr, "unmarshal") {
		msg += `

Cause: YAML syntax error in configuration file
Solution: Check YAML syntax and indentation`
	} else if strings.Contains(parseErrorStr, "permission denied") {
		msg += `

Cause: Permission denied reading configuration file`
	}

	msg += fmt.Sprintf("\n\nOriginal error: %v", parseError)
	return newError(ErrConfig, parseError, msg)
}
