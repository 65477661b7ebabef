package main

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/livingtool/ltbridge/internal/bridge"
	"github.com/livingtool/ltbridge/internal/command"
	"github.com/livingtool/ltbridge/internal/config"
	"github.com/livingtool/ltbridge/internal/errors"
	"github.com/livingtool/ltbridge/internal/layout"
	"github.com/livingtool/ltbridge/internal/logging"
)

// Variables to allow mocking in tests
var newRunner = command.NewProcessRunner

func createApp() *cli.Command {
	return &cli.Command{
		Name:  "ltbridge",
		Usage: "Run LivingTool console commands and report their results",
		Description: "ltbridge locates the LivingTool.Console project next to its installation, " +
			"runs a console command through the launcher and prints the captured output, exit code and paths.",
		Version:               resolveVersion(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to the configuration file",
				Value:   config.ConfigFileName,
				Sources: cli.EnvVars("LTBRIDGE_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Override the configured log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LTBRIDGE_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			NewInvokeCommand(),
			NewRunCommand(),
			NewReadCommand(),
			NewNpcCommand(),
			NewWhereCommand(),
			NewSchemaCommand(),
		},
	}
}

// loadBridge builds a Bridge from the global flags. The returned closer
// releases the log output.
func loadBridge(cmd *cli.Command) (*bridge.Bridge, func() error, error) {
	root := cmd.Root()
	configPath := root.String("config")

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, errors.ConfigLoadFailed(configPath, err)
	}

	if level := root.String("log-level"); level != "" {
		cfg.Log.Level = level
		if err := cfg.Log.Validate(); err != nil {
			return nil, nil, errors.InvalidLogLevel(level, err)
		}
	}

	logger, closeLog, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, errors.ConfigLoadFailed(configPath, err)
	}

	dir, err := layout.InstallDir(cfg.InstallDir, installDir)
	if err != nil {
		_ = closeLog()
		return nil, nil, err
	}

	return bridge.New(cfg, dir, newRunner(), logger), closeLog, nil
}

func outputWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func inputReader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
