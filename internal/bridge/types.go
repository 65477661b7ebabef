package bridge

// Request is one invocation of the console program. Field names match the
// desktop host's IPC payload.
type Request struct {
	Command          string   `json:"command" validate:"required" jsonschema_description:"Console sub-command to run, such as run, read or npc"`
	Args             []string `json:"args" jsonschema_description:"Arguments passed verbatim after the command"`
	WorkingDirectory string   `json:"workingDirectory,omitempty" jsonschema_description:"Directory to run in; blank uses the directory two levels above the project"`
}

// Response is the normalized result of a finished invocation. A console
// program that exits non-zero still produces a Response with Success false.
type Response struct {
	CommandLine      string `json:"commandLine" jsonschema_description:"Display-only rendering of the invoked command line"`
	Stdout           string `json:"stdout"`
	Stderr           string `json:"stderr"`
	CombinedOutput   string `json:"combinedOutput" jsonschema_description:"stdout followed by stderr, newline-separated when both are present"`
	ExitCode         int    `json:"exitCode"`
	Success          bool   `json:"success"`
	ProjectPath      string `json:"projectPath"`
	WorkingDirectory string `json:"workingDirectory"`
}

// Location is where an invocation would run, without running anything
type Location struct {
	InstallDir              string `json:"installDir"`
	ProjectPath             string `json:"projectPath"`
	DefaultWorkingDirectory string `json:"defaultWorkingDirectory"`
}
