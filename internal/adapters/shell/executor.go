// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the project's runner command with the scenario path appended.
// The process runs in the project directory with os.Environ() overridden by cfg.Env.
func (e *Executor) Execute(
	ctx context.Context,
	cfg *domain.ProjectConfig,
	scenario *domain.Scenario,
	stdout, stderr io.Writer,
) error {
	if len(cfg.Runner) == 0 {
		return zerr.With(zerr.Wrap(domain.ErrEmptyRunner, "cannot execute scenario"), "scenario", scenario.Rel)
	}

	name := cfg.Runner[0]
	args := append(slices.Clone(cfg.Runner[1:]), scenario.Path)

	cmdEnv := resolveEnvironment(os.Environ(), cfg.Env)

	// Resolve the executable against the PATH the process will see.
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // runner is user configured

	// Keep the name as invoked rather than the resolved path.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	cmd.Dir = cfg.ProjectDir
	cmd.Env = cmdEnv

	outLog := newLogWriter(e.logger, scenario.Rel)
	errLog := newLogWriter(e.logger, scenario.Rel)
	cmd.Stdout = io.MultiWriter(writerOrDiscard(stdout), outLog)
	cmd.Stderr = io.MultiWriter(writerOrDiscard(stderr), errLog)

	runErr := cmd.Run()
	outLog.Flush()
	errLog.Flush()

	if runErr != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err := zerr.Wrap(domain.ErrScenarioExecutionFailed, runErr.Error())
		err = zerr.With(err, "scenario", scenario.Rel)
		return zerr.With(err, "exit_code", exitCode)
	}

	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// logWriter forwards complete lines of process output to the logger at debug level.
type logWriter struct {
	logger ports.Logger
	prefix string

	mu  sync.Mutex
	buf bytes.Buffer
}

func newLogWriter(logger ports.Logger, prefix string) *logWriter {
	return &logWriter{logger: logger, prefix: prefix}
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Partial line, keep it for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimRight(line, "\r\n"))
	}
	return len(p), nil
}

// Flush emits any buffered partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}

func (w *logWriter) emit(line string) {
	if w.logger == nil {
		return
	}
	w.logger.Debug(fmt.Sprintf("[%s] %s", w.prefix, line))
}

// resolveEnvironment applies the overrides on top of the system environment.
// The result is sorted by key.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
