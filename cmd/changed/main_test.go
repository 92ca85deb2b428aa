package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/changed/internal/app"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/changed/internal/core/ports/mocks"
	"go.trai.ch/changed/internal/engine/scheduler"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	ctrl      *gomock.Controller
	loader    *mocks.MockConfigLoader
	finder    *mocks.MockScenarioFinder
	executor  *mocks.MockExecutor
	telemetry *mocks.MockTelemetry
	logger    *mocks.MockLogger
	app       *app.App
	dir       string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		ctrl:      ctrl,
		loader:    mocks.NewMockConfigLoader(ctrl),
		finder:    mocks.NewMockScenarioFinder(ctrl),
		executor:  mocks.NewMockExecutor(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
		dir:       t.TempDir(),
	}
	runner := scheduler.NewRunner(f.executor, f.telemetry, f.logger)
	f.app = app.New(f.loader, f.finder, runner, f.telemetry, f.logger).
		WithOutput(io.Discard).
		WithWorkDir(f.dir)
	return f
}

func (f *fixture) provider() ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, io.Discard, f.provider())

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "changed version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run logs the error and returns 1 when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)
	loadErr := errors.New("load failed")

	f.loader.EXPECT().Load(f.dir).Return(nil, loadErr)
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, loadErr)
	})

	exitCode := run(context.Background(), []string{"run"}, io.Discard, io.Discard, f.provider())
	assert.Equal(t, 1, exitCode)
}

// TestRun_ScenarioFailure verifies that failed scenarios exit with 1 without logging an error.
func TestRun_ScenarioFailure(t *testing.T) {
	f := newFixture(t)

	cfg := domain.DefaultProjectConfig(f.dir)
	cfg.Parallelism = 1
	scenario := domain.NewScenario(f.dir, filepath.Join(f.dir, "scenarios", "a.sh"))

	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.loader.EXPECT().Load(f.dir).Return(cfg, nil)
	f.finder.EXPECT().Find(cfg).Return([]*domain.Scenario{scenario}, nil)
	f.telemetry.EXPECT().Close().Return(nil)

	f.telemetry.EXPECT().Record(gomock.Any(), scenario.Rel).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			v := mocks.NewMockVertex(f.ctrl)
			v.EXPECT().Stdout().Return(io.Discard)
			v.EXPECT().Stderr().Return(io.Discard)
			v.EXPECT().Complete(gomock.Any())
			return ctx, v
		})
	f.executor.EXPECT().Execute(gomock.Any(), cfg, scenario, gomock.Any(), gomock.Any()).
		Return(domain.ErrScenarioExecutionFailed)

	exitCode := run(context.Background(), []string{"run"}, io.Discard, io.Discard, f.provider())
	assert.Equal(t, 1, exitCode)
}

// TestRun_Signal verifies that the context is canceled on signal.
func TestRun_Signal(t *testing.T) {
	f := newFixture(t)
	blockCh := make(chan struct{})

	f.loader.EXPECT().Load(gomock.Any()).DoAndReturn(func(_ string) (*domain.ProjectConfig, error) {
		select {
		case <-blockCh:
			return nil, context.Canceled
		case <-time.After(5 * time.Second):
			return nil, errors.New("timeout in mock")
		}
	})
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)

	go func() {
		errCh <- run(ctx, []string{"run"}, io.Discard, io.Discard, f.provider())
	}()

	time.Sleep(100 * time.Millisecond)

	cancel()
	close(blockCh)

	select {
	case ret := <-errCh:
		assert.NotEqual(t, 0, ret)
	case <-time.After(2 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
