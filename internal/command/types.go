package command

// Command represents a process invocation with an explicit argument vector
type Command struct {
	Name    string   // Launcher program (e.g., "dotnet")
	Args    []string // Arguments, passed to the process verbatim
	WorkDir string   // Working directory of the child
	Env     []string // KEY=VALUE overrides applied on top of the parent environment
}

// Output is what a finished process left behind. A non-zero exit is reported
// here and is not an error.
type Output struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Success  bool
}

// Runner executes a Command synchronously and captures its output
type Runner interface {
	Run(cmd Command) (*Output, error)
}
