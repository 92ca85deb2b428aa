package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Runner executes the scheduled scenarios of a Scheduler.
type Runner struct {
	executor  ports.Executor
	telemetry ports.Telemetry
	logger    ports.Logger
	clock     clockwork.Clock
}

// NewRunner creates a new Runner.
func NewRunner(executor ports.Executor, telemetry ports.Telemetry, logger ports.Logger) *Runner {
	return &Runner{
		executor:  executor,
		telemetry: telemetry,
		logger:    logger,
		clock:     clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used to time scenarios.
func (r *Runner) WithClock(clock clockwork.Clock) *Runner {
	r.clock = clock
	return r
}

// Run executes every scheduled scenario with at most cfg.Parallelism running at once.
// A failing scenario does not stop the others. One result per discovered scenario is
// recorded in the report, in schedule order, ignored scenarios included.
func (r *Runner) Run(ctx context.Context, cfg *domain.ProjectConfig, sched *Scheduler, report *domain.Report) error {
	scheduled := sched.Scheduled()
	r.logger.Info(fmt.Sprintf("running %d of %d scenarios", len(scheduled), sched.Len()))

	results := make(map[string]domain.ScenarioResult, len(scheduled))
	resultCh := make(chan domain.ScenarioResult, len(scheduled))

	g := new(errgroup.Group)
	if cfg.Parallelism > 0 {
		g.SetLimit(cfg.Parallelism)
	}

	for _, scenario := range scheduled {
		g.Go(func() error {
			resultCh <- r.runOne(ctx, cfg, scenario)
			return nil
		})
	}

	_ = g.Wait()
	close(resultCh)

	for res := range resultCh {
		results[res.Scenario.Path] = res
	}

	failed := 0
	for scenario := range sched.All() {
		res, ok := results[scenario.Path]
		if !ok {
			res = domain.ScenarioResult{Scenario: scenario, Status: domain.StatusIgnored}
		}
		if res.Status == domain.StatusFailed {
			failed++
		}
		report.Record(res)
	}

	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "scenario run interrupted")
	}

	if failed > 0 {
		err := zerr.Wrap(domain.ErrScenariosFailed, fmt.Sprintf("%d of %d scenarios failed", failed, len(scheduled)))
		return zerr.With(err, "failed", failed)
	}

	return nil
}

func (r *Runner) runOne(ctx context.Context, cfg *domain.ProjectConfig, scenario *domain.Scenario) domain.ScenarioResult {
	res := domain.ScenarioResult{Scenario: scenario}

	if err := ctx.Err(); err != nil {
		res.Status = domain.StatusFailed
		res.Error = err.Error()
		return res
	}

	ctx, vertex := r.telemetry.Record(ctx, scenario.Rel)

	start := r.clock.Now()
	err := r.executor.Execute(ctx, cfg, scenario, vertex.Stdout(), vertex.Stderr())
	res.Duration = r.clock.Since(start).Round(time.Millisecond)
	vertex.Complete(err)

	if err != nil {
		r.logger.Debug(fmt.Sprintf("scenario %s failed: %v", scenario.Rel, err))
		res.Status = domain.StatusFailed
		res.Error = err.Error()
		return res
	}

	res.Status = domain.StatusPassed
	return res
}
