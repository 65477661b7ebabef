package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/livingtool/ltbridge/internal/bridge"
)

// NewSchemaCommand creates the schema command definition
func NewSchemaCommand() *cli.Command {
	return &cli.Command{
		Name:      "schema",
		Usage:     "Print the JSON Schema of the request or response",
		UsageText: "ltbridge schema [request|response]",
		ArgsUsage: "[request|response]",
		Action:    schemaCommand,
		ShellComplete: func(_ context.Context, cmd *cli.Command) {
			for _, name := range []string{"request", "response"} {
				fmt.Fprintln(cmd.Root().Writer, name)
			}
		},
	}
}

func schemaCommand(_ context.Context, cmd *cli.Command) error {
	which := cmd.Args().First()
	if which == "" {
		which = "request"
	}

	var (
		data []byte
		err  error
	)
	switch which {
	case "request":
		data, err = bridge.RequestSchema()
	case "response":
		data, err = bridge.ResponseSchema()
	default:
		return fmt.Errorf("unknown schema %q: expected request or response", which)
	}
	if err != nil {
		return err
	}

	w := outputWriter(cmd)
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
