package git_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/changed/internal/adapters/git"
	"go.trai.ch/changed/internal/core/domain"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git executable not available")
	}
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=changed", "GIT_AUTHOR_EMAIL=changed@example.com",
		"GIT_COMMITTER_NAME=changed", "GIT_COMMITTER_EMAIL=changed@example.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.PrivateFilePerm))
}

// setupRepo creates a clone of a bare remote with a "feature" branch checked out
// that adds, modifies and deletes files relative to origin/main.
func setupRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	base, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("GIT_CEILING_DIRECTORIES", base)

	remote := filepath.Join(base, "remote.git")
	work := filepath.Join(base, "work")
	require.NoError(t, os.MkdirAll(work, domain.DirPerm))

	runGit(t, base, "init", "--bare", remote)
	runGit(t, work, "init")
	runGit(t, work, "checkout", "-b", "main")

	writeFile(t, filepath.Join(work, "README.md"), "readme\n")
	writeFile(t, filepath.Join(work, "scenarios", "existing.sh"), "exit 0\n")
	writeFile(t, filepath.Join(work, "scenarios", "removed.sh"), "exit 0\n")
	runGit(t, work, "add", ".")
	runGit(t, work, "commit", "-m", "initial")
	runGit(t, work, "remote", "add", "origin", remote)
	runGit(t, work, "push", "origin", "main")

	runGit(t, work, "checkout", "-b", "feature")
	writeFile(t, filepath.Join(work, "scenarios", "existing.sh"), "exit 1\n")
	writeFile(t, filepath.Join(work, "scenarios", "nested", "added.sh"), "exit 0\n")
	writeFile(t, filepath.Join(work, "contexts", "helper.sh"), "true\n")
	writeFile(t, filepath.Join(work, "scenarios", "überprüfung.sh"), "exit 0\n")
	require.NoError(t, os.Remove(filepath.Join(work, "scenarios", "removed.sh")))
	runGit(t, work, "add", "-A")
	runGit(t, work, "commit", "-m", "feature")

	return work
}

func TestGateway_Integration_ChangedFiles(t *testing.T) {
	work := setupRepo(t)
	gw := git.NewGateway(nil).WithWorkDir(work)
	ctx := context.Background()

	require.NoError(t, gw.Fetch(ctx))

	changed, err := gw.ChangedFiles(ctx, "main", filepath.Join(work, "scenarios"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(work, "scenarios", "existing.sh"),
		filepath.Join(work, "scenarios", "nested", "added.sh"),
		filepath.Join(work, "scenarios", "überprüfung.sh"),
	}, changed.Sorted())
}

func TestGateway_Integration_SymlinkedWorkDir(t *testing.T) {
	work := setupRepo(t)
	link := filepath.Join(filepath.Dir(work), "link")
	require.NoError(t, os.Symlink(work, link))

	gw := git.NewGateway(nil).WithWorkDir(link)

	changed, err := gw.ChangedFiles(context.Background(), "main", filepath.Join(link, "scenarios"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(link, "scenarios", "existing.sh"),
		filepath.Join(link, "scenarios", "nested", "added.sh"),
		filepath.Join(link, "scenarios", "überprüfung.sh"),
	}, changed.Sorted())
}

func TestGateway_Integration_FromSubdirectory(t *testing.T) {
	work := setupRepo(t)
	gw := git.NewGateway(nil).WithWorkDir(filepath.Join(work, "scenarios"))

	root, err := gw.Root(context.Background())
	require.NoError(t, err)
	assert.Equal(t, work, root)
}

func TestGateway_Integration_UnknownBranch(t *testing.T) {
	work := setupRepo(t)
	gw := git.NewGateway(nil).WithWorkDir(work)

	_, err := gw.ChangedFiles(context.Background(), "does-not-exist", filepath.Join(work, "scenarios"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiffFailed)
	assert.Contains(t, err.Error(), "'does-not-exist'")
}

func TestGateway_Integration_NotARepository(t *testing.T) {
	requireGit(t)
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	gw := git.NewGateway(nil).WithWorkDir(dir)

	err = gw.Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRepositoryNotFound)
}
