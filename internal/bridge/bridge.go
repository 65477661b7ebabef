// Package bridge invokes the LivingTool console program on behalf of a host
// and turns the finished process into a Response.
package bridge

import (
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/oklog/ulid/v2"

	"github.com/livingtool/ltbridge/internal/command"
	"github.com/livingtool/ltbridge/internal/config"
	"github.com/livingtool/ltbridge/internal/errors"
	"github.com/livingtool/ltbridge/internal/layout"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Bridge holds only immutable settings, so one value may serve concurrent
// Invoke calls; each call spawns its own process.
type Bridge struct {
	installDir    string
	layout        layout.Layout
	workDirLevels int
	launcher      string
	env           []string
	runner        command.Runner
	logger        *slog.Logger
}

// New creates a Bridge that resolves the console project from installDir.
func New(cfg *config.Config, installDir string, runner command.Runner, logger *slog.Logger) *Bridge {
	return &Bridge{
		installDir:    installDir,
		layout:        layout.FromConfig(cfg.Project),
		workDirLevels: cfg.Project.WorkDirLevelsUp,
		launcher:      cfg.Launcher,
		env:           cfg.EnvOverrides(),
		runner:        runner,
		logger:        logger,
	}
}

// Invoke runs one console command and blocks until it exits. Errors are
// returned only when the bridge itself fails; a console program exiting
// non-zero yields a Response with Success false.
func (b *Bridge) Invoke(req Request) (*Response, error) {
	log := b.logger.With("invocation_id", ulid.Make().String())

	req.Command = strings.TrimSpace(req.Command)
	if err := validate.Struct(req); err != nil {
		log.Warn("invocation rejected", "error", err)
		return nil, errors.CommandNameRequired()
	}

	projectPath, err := layout.ResolveProjectPath(b.installDir, b.layout)
	if err != nil {
		log.Error("project resolution failed", "install_dir", b.installDir, "error", err)
		return nil, err
	}

	workDir, err := layout.ResolveWorkingDirectory(req.WorkingDirectory, projectPath, b.workDirLevels)
	if err != nil {
		log.Error("working directory resolution failed", "requested", req.WorkingDirectory, "error", err)
		return nil, err
	}

	cmd := command.LauncherRun(b.launcher, projectPath, req.Command, req.Args)
	cmd.WorkDir = workDir
	cmd.Env = b.env
	commandLine := command.FormatCommandLine(cmd)

	log.Info("invoking console command", "command_line", commandLine, "working_directory", workDir)
	start := time.Now()

	out, err := b.runner.Run(cmd)
	if err != nil {
		log.Error("console command could not be started", "launcher", b.launcher, "error", err)
		return nil, err
	}

	log.Info("console command finished",
		"exit_code", out.ExitCode,
		"success", out.Success,
		"duration", time.Since(start))

	return buildResponse(commandLine, projectPath, workDir, out), nil
}

// Locate resolves the project and the default working directory without
// running anything.
func (b *Bridge) Locate() (*Location, error) {
	projectPath, err := layout.ResolveProjectPath(b.installDir, b.layout)
	if err != nil {
		return nil, err
	}

	workDir, err := layout.ResolveWorkingDirectory("", projectPath, b.workDirLevels)
	if err != nil {
		return nil, err
	}

	return &Location{
		InstallDir:              b.installDir,
		ProjectPath:             projectPath,
		DefaultWorkingDirectory: workDir,
	}, nil
}
