package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/livingtool/ltbridge/internal/command"
)

// NewRunCommand creates the run command definition
func NewRunCommand() *cli.Command {
	return &cli.Command{
		Name:      command.ConsoleRun,
		Usage:     "Unpack game assets from the main archive",
		UsageText: "ltbridge run [-f gc.bin] [-o output] [-l locsectors.bin] [-e SLUS_008.11] [-- args...]",
		Description: "Runs the console 'run' command. Blank values are omitted and " +
			"backslashes in paths are converted to forward slashes.",
		ArgsUsage: "[-- args...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Main archive file",
				Value:   "gc.bin",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output folder",
				Value:   "output",
			},
			&cli.StringFlag{
				Name:    "loc-sectors",
				Aliases: []string{"l"},
				Usage:   "Localization sectors file",
				Value:   "locsectors.bin",
			},
			&cli.StringFlag{
				Name:    "executable",
				Aliases: []string{"e"},
				Usage:   "Game executable",
				Value:   "SLUS_008.11",
			},
		}, invocationFlags()...),
		Action: runConsoleCommand,
	}
}

func runConsoleCommand(_ context.Context, cmd *cli.Command) error {
	args := command.RunArgs(command.RunOptions{
		File:       cmd.String("file"),
		OutputDir:  cmd.String("output"),
		LocSectors: cmd.String("loc-sectors"),
		Executable: cmd.String("executable"),
	})
	return runInvocation(cmd, consoleRequest(cmd, command.ConsoleRun, args))
}

// NewReadCommand creates the read command definition
func NewReadCommand() *cli.Command {
	return &cli.Command{
		Name:      command.ConsoleRead,
		Usage:     "Print structure details for a file",
		UsageText: "ltbridge read -f <file> [-- args...]",
		ArgsUsage: "[-- args...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "File to inspect",
			},
		}, invocationFlags()...),
		Action: readConsoleCommand,
	}
}

func readConsoleCommand(_ context.Context, cmd *cli.Command) error {
	args, err := command.ReadArgs(cmd.String("file"))
	if err != nil {
		return err
	}
	return runInvocation(cmd, consoleRequest(cmd, command.ConsoleRead, args))
}

// NewNpcCommand creates the npc command definition
func NewNpcCommand() *cli.Command {
	return &cli.Command{
		Name:      command.ConsoleNpc,
		Usage:     "Decode an NPC BIN file and list names and dialogues",
		UsageText: "ltbridge npc -f <file> [-- args...]",
		ArgsUsage: "[-- args...]",
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "NPC BIN file",
			},
		}, invocationFlags()...),
		Action: npcConsoleCommand,
	}
}

func npcConsoleCommand(_ context.Context, cmd *cli.Command) error {
	args, err := command.NpcArgs(cmd.String("file"))
	if err != nil {
		return err
	}
	return runInvocation(cmd, consoleRequest(cmd, command.ConsoleNpc, args))
}
