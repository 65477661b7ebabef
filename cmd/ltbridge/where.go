package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/livingtool/ltbridge/internal/render"
)

// NewWhereCommand creates the where command definition
func NewWhereCommand() *cli.Command {
	return &cli.Command{
		Name:  "where",
		Usage: "Show the install directory, project and default working directory",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the locations as JSON",
			},
		},
		Action: whereCommand,
	}
}

func whereCommand(_ context.Context, cmd *cli.Command) error {
	b, closeLog, err := loadBridge(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	loc, err := b.Locate()
	if err != nil {
		return err
	}

	w := outputWriter(cmd)
	if cmd.Bool("json") {
		return render.JSON(w, loc)
	}
	return render.Location(w, loc)
}
