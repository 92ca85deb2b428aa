package shell_test

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/changed/internal/adapters/shell"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T, script string) (*domain.ProjectConfig, *domain.Scenario) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios", "case.sh")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(script), domain.PrivateFilePerm))

	return domain.DefaultProjectConfig(dir), domain.NewScenario(dir, path)
}

func TestExecutor_Execute_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, scenario := setup(t, "echo hello\necho oops >&2\n")

	var stdout, stderr bytes.Buffer
	err := shell.NewExecutor(mockLogger).Execute(t.Context(), cfg, scenario, &stdout, &stderr)
	require.NoError(t, err)

	assert.Equal(t, "hello\n", stdout.String())
	assert.Equal(t, "oops\n", stderr.String())
}

func TestExecutor_Execute_WorkingDirAndEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, scenario := setup(t, "pwd\necho \"$APP_ENV\"\n")
	cfg.Env["APP_ENV"] = "test"

	var stdout bytes.Buffer
	err := shell.NewExecutor(mockLogger).Execute(t.Context(), cfg, scenario, &stdout, nil)
	require.NoError(t, err)

	wantDir, err := filepath.EvalSymlinks(cfg.ProjectDir)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(stdout.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	gotDir, err := filepath.EvalSymlinks(string(lines[0]))
	require.NoError(t, err)
	assert.Equal(t, wantDir, gotDir)
	assert.Equal(t, "test", string(lines[1]))
}

func TestExecutor_Execute_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, scenario := setup(t, "exit 3\n")

	err := shell.NewExecutor(mockLogger).Execute(t.Context(), cfg, scenario, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScenarioExecutionFailed)
	assert.Contains(t, err.Error(), "exit status 3")
}

func TestExecutor_Execute_EmptyRunner(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cfg, scenario := setup(t, "exit 0\n")
	cfg.Runner = nil

	err := shell.NewExecutor(mockLogger).Execute(t.Context(), cfg, scenario, nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyRunner)
}

func TestExecutor_Execute_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()

	cfg, scenario := setup(t, "sleep 5\n")

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := shell.NewExecutor(mockLogger).Execute(ctx, cfg, scenario, nil, nil)
	assert.ErrorIs(t, err, domain.ErrScenarioExecutionFailed)
}
