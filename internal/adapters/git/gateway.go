// Package git implements the repository gateway on top of the git executable.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
)

// CommandRunner runs git with args in dir and returns its captured output.
type CommandRunner func(ctx context.Context, dir string, args ...string) (stdout, stderr string, err error)

// Gateway implements ports.Repository by invoking the git executable.
//
// The repository root is discovered lazily from the working directory on the
// first operation that needs it and reused afterwards.
type Gateway struct {
	logger  ports.Logger
	run     CommandRunner
	workDir func() (string, error)

	root     string
	resolved bool
}

// NewGateway creates a Gateway that runs the git executable found on PATH.
func NewGateway(logger ports.Logger) *Gateway {
	return &Gateway{
		logger:  logger,
		run:     runGit,
		workDir: os.Getwd,
	}
}

// WithRunner replaces the command runner. Used for testing.
func (g *Gateway) WithRunner(run CommandRunner) *Gateway {
	g.run = run
	return g
}

// WithWorkDir pins the directory repository discovery starts from.
func (g *Gateway) WithWorkDir(dir string) *Gateway {
	g.workDir = func() (string, error) { return dir, nil }
	return g
}

// Root returns the repository working tree root, discovering it if needed.
func (g *Gateway) Root(ctx context.Context) (string, error) {
	if g.resolved {
		return g.root, nil
	}

	cwd, err := g.workDir()
	if err != nil {
		return "", domain.RepositoryNotFoundError(zerr.Wrap(err, domain.ErrFailedToGetWorkingDir.Error()))
	}

	out, stderr, err := g.exec(ctx, cwd, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", domain.RepositoryNotFoundError(withStderr(zerr.Wrap(err, "git rev-parse failed"), stderr, cwd))
	}

	root := strings.TrimSpace(out)
	if root == "" {
		return "", domain.RepositoryNotFoundError(zerr.With(zerr.New("empty repository root"), "cwd", cwd))
	}

	g.root = filepath.Clean(root)
	g.resolved = true
	return g.root, nil
}

// Fetch runs 'git fetch' in the repository.
func (g *Gateway) Fetch(ctx context.Context) error {
	root, err := g.Root(ctx)
	if err != nil {
		return err
	}

	if _, stderr, err := g.exec(ctx, root, "fetch"); err != nil {
		return domain.FetchFailedError(withStderr(zerr.Wrap(err, "git fetch failed"), stderr, root))
	}
	return nil
}

// ChangedFiles lists files that changed between origin/<branch> and HEAD and lie strictly inside targetDir.
// Deleted files are excluded since a deleted scenario cannot be run.
//
// git reports paths below the symlink-free repository root, while targetDir may
// be reached through a symlink. Containment is decided on resolved paths and the
// returned paths are spelled below targetDir as given.
func (g *Gateway) ChangedFiles(ctx context.Context, branch, targetDir string) (domain.PathSet, error) {
	root, err := g.Root(ctx)
	if err != nil {
		return domain.PathSet{}, err
	}

	out, stderr, err := g.exec(ctx, root,
		"diff", "--name-only", "-z", "--diff-filter=ACMTR", "origin/"+branch+"...HEAD", "--", ".")
	if err != nil {
		cause := zerr.With(withStderr(zerr.Wrap(err, "git diff failed"), stderr, root), "branch", branch)
		return domain.PathSet{}, domain.DiffFailedError(branch, cause)
	}

	return filterChanged(resolvePath(root), resolvePath(targetDir), filepath.Clean(targetDir), out), nil
}

func (g *Gateway) exec(ctx context.Context, dir string, args ...string) (string, string, error) {
	if g.logger != nil {
		g.logger.Debug("running git " + strings.Join(args, " "))
	}
	return g.run(ctx, dir, args...)
}

// filterChanged resolves the NUL separated diff output against root and keeps
// the paths strictly inside realTarget, re-rooted at target.
func filterChanged(root, realTarget, target, diff string) domain.PathSet {
	var paths []string
	for _, name := range strings.Split(diff, "\x00") {
		if name == "" {
			continue
		}
		rel, ok := strictlyInside(realTarget, filepath.Join(root, filepath.FromSlash(name)))
		if ok {
			paths = append(paths, filepath.Join(target, rel))
		}
	}
	return domain.NewPathSet(paths...)
}

// strictlyInside returns path relative to dir when dir is a proper ancestor of path.
func strictlyInside(dir, path string) (string, bool) {
	rel, err := filepath.Rel(dir, path)
	if err != nil || filepath.IsAbs(rel) {
		return "", false
	}
	if rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

// resolvePath evaluates symlinks in p. A path that does not exist is only cleaned.
func resolvePath(p string) string {
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		return resolved
	}
	return filepath.Clean(p)
}

func withStderr(err error, stderr, dir string) error {
	err = zerr.With(err, "dir", dir)
	if s := strings.TrimSpace(stderr); s != "" {
		err = zerr.With(err, "stderr", s)
	}
	return err
}

func runGit(ctx context.Context, dir string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = zerr.With(zerr.Wrap(err, "git exited unsuccessfully"), "exit_code", exitErr.ExitCode())
		}
	}
	return stdout.String(), stderr.String(), err
}
