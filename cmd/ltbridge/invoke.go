package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/livingtool/ltbridge/internal/bridge"
	"github.com/livingtool/ltbridge/internal/errors"
	"github.com/livingtool/ltbridge/internal/render"
)

// NewInvokeCommand creates the generic invoke command definition
func NewInvokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "invoke",
		Usage: "Invoke a console command with arbitrary arguments",
		UsageText: "ltbridge invoke <command> [-- args...]\n" +
			"ltbridge invoke --request request.json\n" +
			"ltbridge invoke --request - < request.json",
		Description: "Runs the console project through the launcher and reports output and exit code. " +
			"Arguments after the command are passed verbatim without shell interpretation. " +
			"With --request, a JSON request ({\"command\", \"args\", \"workingDirectory\"}) is read instead.",
		ArgsUsage: "<command> [-- args...]",
		Flags: append(invocationFlags(),
			&cli.StringFlag{
				Name:  "request",
				Usage: "Read the request as JSON from a file ('-' for standard input)",
			},
		),
		Action: invokeCommand,
	}
}

func invocationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "workdir",
			Aliases: []string{"C"},
			Usage:   "Working directory for the console program (default: two levels above the project)",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Print the response as JSON",
		},
	}
}

func invokeCommand(_ context.Context, cmd *cli.Command) error {
	req, err := buildInvokeRequest(cmd)
	if err != nil {
		return err
	}
	return runInvocation(cmd, req)
}

func buildInvokeRequest(cmd *cli.Command) (bridge.Request, error) {
	args := cmd.Args().Slice()

	var req bridge.Request
	if source := cmd.String("request"); source != "" {
		if len(args) > 0 {
			return req, fmt.Errorf("--request cannot be combined with positional arguments")
		}
		parsed, err := readRequest(cmd, source)
		if err != nil {
			return req, err
		}
		req = parsed
	} else {
		req = parseInvokeArgs(args)
	}

	if workDir := cmd.String("workdir"); workDir != "" {
		req.WorkingDirectory = workDir
	}
	return req, nil
}

// parseInvokeArgs splits positional arguments into the console command and
// its arguments. The flag parser has already consumed the "--" separator, so
// everything after the command is kept verbatim, including a literal "--".
func parseInvokeArgs(args []string) bridge.Request {
	if len(args) == 0 {
		return bridge.Request{}
	}
	return bridge.Request{Command: args[0], Args: append([]string(nil), args[1:]...)}
}

func readRequest(cmd *cli.Command, source string) (bridge.Request, error) {
	var req bridge.Request

	var r io.Reader
	if source == "-" {
		r = inputReader(cmd)
	} else {
		f, err := os.Open(source)
		if err != nil {
			return req, fmt.Errorf("failed to open request file: %w", err)
		}
		defer f.Close()
		r = f
	}

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return req, fmt.Errorf("failed to parse request: %w", err)
	}
	return req, nil
}

// consoleRequest builds a request for one of the console's own subcommands
// and appends extra positional arguments verbatim.
func consoleRequest(cmd *cli.Command, name string, args []string) bridge.Request {
	return bridge.Request{
		Command:          name,
		Args:             append(args, cmd.Args().Slice()...),
		WorkingDirectory: cmd.String("workdir"),
	}
}

func runInvocation(cmd *cli.Command, req bridge.Request) error {
	if strings.TrimSpace(req.Command) == "" {
		return errors.CommandNameRequired()
	}

	b, closeLog, err := loadBridge(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	resp, err := b.Invoke(req)
	if err != nil {
		return err
	}

	w := outputWriter(cmd)
	if cmd.Bool("json") {
		err = render.JSON(w, resp)
	} else {
		err = render.Text(w, resp)
	}
	if err != nil {
		return err
	}

	if !resp.Success {
		code := resp.ExitCode
		if code == 0 {
			code = 1
		}
		return &exitStatusError{code: code}
	}
	return nil
}
