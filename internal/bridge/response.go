package bridge

import (
	"golang.org/x/text/encoding/unicode"

	"github.com/livingtool/ltbridge/internal/command"
)

// decodeOutput turns captured bytes into text, replacing invalid UTF-8
// sequences with U+FFFD instead of failing.
func decodeOutput(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	// The decoder substitutes U+FFFD per invalid byte and never fails.
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(raw)
	return string(decoded)
}

// combineOutput joins the two streams, stdout first. Chronological
// interleaving is not preserved because the streams are captured separately.
func combineOutput(stdout, stderr string) string {
	switch {
	case stderr == "":
		return stdout
	case stdout == "":
		return stderr
	default:
		return stdout + "\n" + stderr
	}
}

func buildResponse(commandLine, projectPath, workDir string, out *command.Output) *Response {
	stdout := decodeOutput(out.Stdout)
	stderr := decodeOutput(out.Stderr)

	return &Response{
		CommandLine:      commandLine,
		Stdout:           stdout,
		Stderr:           stderr,
		CombinedOutput:   combineOutput(stdout, stderr),
		ExitCode:         out.ExitCode,
		Success:          out.Success,
		ProjectPath:      projectPath,
		WorkingDirectory: workDir,
	}
}
