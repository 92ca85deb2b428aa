package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestPathSet(t *testing.T) {
	set := domain.NewPathSet("/repo/scenarios/b.py", "/repo/scenarios/./a.py", "/repo/scenarios/b.py")

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains("/repo/scenarios/a.py"))
	assert.True(t, set.Contains("/repo/scenarios/sub/../b.py"))
	assert.False(t, set.Contains("/repo/scenarios/c.py"))
	assert.Equal(t, []string{"/repo/scenarios/a.py", "/repo/scenarios/b.py"}, set.Sorted())

	var iterated []string
	for p := range set.All() {
		iterated = append(iterated, p)
	}
	assert.Equal(t, set.Sorted(), iterated)
}

func TestPathSet_Empty(t *testing.T) {
	var zero domain.PathSet
	assert.Equal(t, 0, zero.Len())
	assert.False(t, zero.Contains("/any"))
	assert.Empty(t, zero.Sorted())
}

func TestTimestamp(t *testing.T) {
	_, ok := domain.NoTimestamp.Get()
	assert.False(t, ok)
	assert.False(t, domain.NoTimestamp.IsSet())
	assert.True(t, domain.NoTimestamp.Time().IsZero())

	epoch := domain.TimestampOf(0)
	seconds, ok := epoch.Get()
	assert.True(t, ok)
	assert.Equal(t, int64(0), seconds)
	assert.NotEqual(t, domain.NoTimestamp, epoch)

	ts := domain.TimestampOf(1_700_000_000)
	assert.Equal(t, time.Unix(1_700_000_000, 0).Local(), ts.Time())
}

func TestNewScenario(t *testing.T) {
	s := domain.NewScenario("/project", "/project/scenarios/sub/../login.py")

	assert.Equal(t, "/project/scenarios/login.py", s.Path)
	assert.Equal(t, "scenarios/login.py", s.Rel)
	assert.Equal(t, domain.ScenarioID("scenarios/login.py"), s.ID)
	assert.NotEqual(t, domain.ScenarioID("scenarios/logout.py"), s.ID)
}

func TestReport(t *testing.T) {
	r := domain.NewReport()
	require.NotEmpty(t, r.RunID)
	assert.NotEqual(t, r.RunID, domain.NewReport().RunID)

	r.AddSummary("same line")
	r.AddSummary("same line")
	assert.Equal(t, []string{"same line", "same line"}, r.Summary)

	a := domain.NewScenario("/p", "/p/scenarios/a.py")
	b := domain.NewScenario("/p", "/p/scenarios/b.py")
	r.Record(domain.ScenarioResult{Scenario: a, Status: domain.StatusPassed})
	r.Record(domain.ScenarioResult{Scenario: b, Status: domain.StatusIgnored})

	assert.Equal(t, "scenarios/a.py", r.Results[0].Rel)
	assert.Equal(t, 1, r.Count(domain.StatusPassed))
	assert.Equal(t, 1, r.Count(domain.StatusIgnored))
	assert.Equal(t, 0, r.Count(domain.StatusFailed))

	assert.Zero(t, r.Elapsed())
	r.StartedAt = time.Unix(100, 0)
	r.EndedAt = time.Unix(103, 0)
	assert.Equal(t, 3*time.Second, r.Elapsed())
}

func TestChangedOptions_Enabled(t *testing.T) {
	assert.False(t, domain.ChangedOptions{CacheDuration: domain.DefaultCacheDuration}.Enabled())
	assert.True(t, domain.ChangedOptions{Branch: "main"}.Enabled())
	assert.True(t, domain.ChangedOptions{BranchSet: true}.Enabled())
}

func TestDefaultProjectConfig(t *testing.T) {
	cfg := domain.DefaultProjectConfig("/project")

	assert.Equal(t, "/project", cfg.ProjectDir)
	assert.Equal(t, "scenarios", cfg.ScenariosDir)
	assert.Equal(t, "*", cfg.Pattern)
	assert.Equal(t, []string{"sh"}, cfg.Runner)
	assert.Positive(t, cfg.Parallelism)
	assert.NotNil(t, cfg.Env)
}

func TestError(t *testing.T) {
	cause := errors.New("exit status 128")
	err := domain.FetchFailedError(cause)

	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, domain.ErrDiffFailed)
	assert.Equal(t, err.Message(), err.Error())

	wrapped := zerr.Wrap(err, "startup")
	assert.ErrorIs(t, wrapped, domain.ErrFetchFailed)

	var domainErr *domain.Error
	require.ErrorAs(t, wrapped, &domainErr)
	assert.Equal(t, domain.ErrFetchFailed, domainErr.Kind)
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *domain.Error
		kind error
		want string
	}{
		{
			name: "negative cache",
			err:  domain.NegativeCacheDurationError(-1),
			kind: domain.ErrInvalidConfiguration,
			want: "Cache duration must be non-negative. Please provide a valid value for '--changed-fetch-cache'.",
		},
		{
			name: "conflicting fetch options",
			err:  domain.ConflictingFetchOptionsError(),
			kind: domain.ErrInvalidConfiguration,
			want: "The options '--changed-no-fetch' and '--changed-fetch-cache' cannot be used together. Please choose one.",
		},
		{
			name: "repository not found",
			err:  domain.RepositoryNotFoundError(nil),
			kind: domain.ErrRepositoryNotFound,
			want: "Unable to find a git repository in the current or any parent directories. " +
				"Ensure you are in a directory that is part of a valid git repository.",
		},
		{
			name: "diff failed",
			err:  domain.DiffFailedError("main", nil),
			kind: domain.ErrDiffFailed,
			want: "Failed to retrieve the file differences from the git repository for the branch 'main'. " +
				"Please ensure that the branch name is correct and exists.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
			assert.ErrorIs(t, tt.err, tt.kind)
		})
	}
}
