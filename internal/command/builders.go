package command

import (
	"strings"

	"github.com/livingtool/ltbridge/internal/errors"
)

// Console sub-commands understood by LivingTool.Console
const (
	ConsoleRun  = "run"
	ConsoleRead = "read"
	ConsoleNpc  = "npc"
)

// LauncherRun builds "<launcher> run --project <projectPath> -- <command> [args...]"
func LauncherRun(launcher, projectPath, command string, args []string) Command {
	argv := make([]string, 0, len(args)+5)
	argv = append(argv, "run", "--project", projectPath, "--", command)
	argv = append(argv, args...)

	return Command{
		Name: launcher,
		Args: argv,
	}
}

// RunOptions represents options for the console run command
type RunOptions struct {
	File       string // -f, main archive (gc.bin)
	OutputDir  string // -o
	LocSectors string // -l
	Executable string // -e
}

// RunArgs builds the arguments of the console run command. Blank options are omitted.
func RunArgs(opts RunOptions) []string {
	var args []string

	if file := NormalizePath(opts.File); file != "" {
		args = append(args, "-f", file)
	}
	if output := NormalizePath(opts.OutputDir); output != "" {
		args = append(args, "-o", output)
	}
	if loc := NormalizePath(opts.LocSectors); loc != "" {
		args = append(args, "-l", loc)
	}
	if exe := NormalizePath(opts.Executable); exe != "" {
		args = append(args, "-e", exe)
	}

	return args
}

// ReadArgs builds the arguments of the console read command
func ReadArgs(file string) ([]string, error) {
	file = NormalizePath(file)
	if file == "" {
		return nil, errors.FileArgumentRequired(ConsoleRead, "a file path")
	}
	return []string{"-f", file}, nil
}

// NpcArgs builds the arguments of the console npc command
func NpcArgs(file string) ([]string, error) {
	file = NormalizePath(file)
	if file == "" {
		return nil, errors.FileArgumentRequired(ConsoleNpc, "an NPC BIN file path")
	}
	return []string{"-f", file}, nil
}

// NormalizePath trims the value and turns Windows separators into forward slashes
func NormalizePath(value string) string {
	return strings.ReplaceAll(strings.TrimSpace(value), `\`, "/")
}
