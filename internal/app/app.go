// Package app implements the application layer for changed.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"
	"go.trai.ch/changed/internal/adapters/linear"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/changed/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App sequences a run: configuration, plugin hooks, scenario execution and the report.
type App struct {
	configLoader ports.ConfigLoader
	finder       ports.ScenarioFinder
	runner       *scheduler.Runner
	telemetry    ports.Telemetry
	logger       ports.Logger
	plugins      []ports.Plugin

	stdout io.Writer
	clock  clockwork.Clock
	getwd  func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	finder ports.ScenarioFinder,
	runner *scheduler.Runner,
	telemetry ports.Telemetry,
	log ports.Logger,
	plugins ...ports.Plugin,
) *App {
	return &App{
		configLoader: loader,
		finder:       finder,
		runner:       runner,
		telemetry:    telemetry,
		logger:       log,
		plugins:      plugins,
		stdout:       os.Stdout,
		clock:        clockwork.NewRealClock(),
		getwd:        os.Getwd,
	}
}

// WithOutput sets the writer the report is rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkDir pins the directory configuration discovery starts from.
func (a *App) WithWorkDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithClock replaces the clock used to time the run.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// Plugins returns the registered lifecycle plugins in hook order.
func (a *App) Plugins() []ports.Plugin {
	return a.plugins
}

// LogOptions configures the logger.
type LogOptions struct {
	JSON    bool
	Verbose bool
}

// ConfigureLogger enables the modes requested by the logging flags when the logger
// supports them. Modes already enabled through the environment stay on.
func (a *App) ConfigureLogger(opts LogOptions) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok && opts.JSON {
		l.SetJSON(true)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok && opts.Verbose {
		l.SetVerbose(true)
	}
}

// RunOptions configuration for the Run method.
type RunOptions struct {
	// JSON renders the report as JSON instead of text.
	JSON bool
}

// Run loads the project, lets plugins narrow the schedule, executes the remaining
// scenarios and renders the report. Each plugin hook is awaited before the next one
// and the first hook error aborts the run.
func (a *App) Run(ctx context.Context, flags *pflag.FlagSet, opts RunOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	for _, p := range a.plugins {
		if err := p.OnConfigLoaded(ctx, cfg); err != nil {
			return err
		}
	}

	for _, p := range a.plugins {
		if err := p.OnArgParsed(ctx, flags); err != nil {
			return err
		}
	}

	scenarios, err := a.finder.Find(cfg)
	if err != nil {
		return err
	}
	sched := scheduler.NewScheduler(scenarios)

	for _, p := range a.plugins {
		if err := p.OnStartup(ctx, sched); err != nil {
			return err
		}
	}

	report := domain.NewReport()
	report.StartedAt = a.clock.Now()
	runErr := a.runner.Run(ctx, cfg, sched, report)
	report.EndedAt = a.clock.Now()

	if err := a.telemetry.Close(); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", err))
	}

	for _, p := range a.plugins {
		if err := p.OnCleanup(ctx, report); err != nil {
			return errors.Join(runErr, err)
		}
	}

	if err := a.renderer(opts).Render(report); err != nil {
		return errors.Join(runErr, zerr.Wrap(err, "failed to render report"))
	}

	return runErr
}

func (a *App) renderer(opts RunOptions) ports.Renderer {
	if opts.JSON {
		return linear.NewJSONRenderer(a.stdout)
	}
	return linear.NewRenderer(a.stdout)
}

func (a *App) loadConfig() (*domain.ProjectConfig, error) {
	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrFailedToGetWorkingDir.Error())
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	// Storage removes the plugins' local storage.
	Storage bool
	// All removes the whole state directory.
	All bool
}

// Clean removes persisted state of the project.
func (a *App) Clean(_ context.Context, options CleanOptions) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	var errs error

	remove := func(path string, name string) {
		a.logger.Info(fmt.Sprintf("removing %s...", name))
		if err := os.RemoveAll(path); err != nil {
			errs = errors.Join(errs, zerr.Wrap(err, fmt.Sprintf("failed to remove %s", name)))
			return
		}
		a.logger.Info(fmt.Sprintf("removed %s", name))
	}

	switch {
	case options.All:
		remove(filepath.Join(cfg.ProjectDir, domain.DefaultStatePath()), "state directory")
	case options.Storage:
		remove(filepath.Join(cfg.ProjectDir, domain.DefaultLocalStoragePath()), "local storage")
	}

	return errs
}
