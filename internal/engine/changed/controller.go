// Package changed implements the git-changed plugin, which limits a run to the
// scenarios whose files changed relative to a reference branch.
package changed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/pflag"
	"go.trai.ch/changed/internal/core/domain"
	"go.trai.ch/changed/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// PluginName is the title of the plugin's flag group.
	PluginName = "Git Changed"

	// StorageScope names the plugin's local storage file.
	StorageScope = "git_changed"

	// LastFetchedKey is the local storage key of the last successful fetch time.
	LastFetchedKey = "last_fetched"

	// FlagBranch selects the reference branch.
	FlagBranch = "changed-against-branch"
	// FlagFetchCache sets the fetch cache duration in seconds.
	FlagFetchCache = "changed-fetch-cache"
	// FlagNoFetch disables fetching.
	FlagNoFetch = "changed-no-fetch"
)

type state int

const (
	stateArmed state = iota
	stateDisabled
	stateEvaluated
)

// Controller implements ports.Plugin.
type Controller struct {
	repo           ports.Repository
	storageFactory ports.StorageFactory
	clock          clockwork.Clock
	logger         ports.Logger
	getwd          func() (string, error)

	storage     ports.LocalStorage
	project     *domain.ProjectConfig
	opts        domain.ChangedOptions
	state       state
	lastFetched domain.Timestamp
	noChanged   bool
}

// NewController creates a new Controller.
func NewController(
	repo ports.Repository,
	storageFactory ports.StorageFactory,
	clock clockwork.Clock,
	logger ports.Logger,
) *Controller {
	return &Controller{
		repo:           repo,
		storageFactory: storageFactory,
		clock:          clock,
		logger:         logger,
		getwd:          os.Getwd,
		opts:           domain.ChangedOptions{CacheDuration: domain.DefaultCacheDuration},
	}
}

// WithWorkDir pins the directory the default scenarios directory is resolved
// against when no project configuration was loaded.
func (c *Controller) WithWorkDir(dir string) *Controller {
	c.getwd = func() (string, error) { return dir, nil }
	return c
}

// Name returns the flag group title.
func (c *Controller) Name() string {
	return PluginName
}

// Options returns the parsed options.
func (c *Controller) Options() domain.ChangedOptions {
	return c.opts
}

// RegisterFlags declares the git-changed flags.
func (c *Controller) RegisterFlags(flags *pflag.FlagSet) {
	flags.String(FlagBranch, "",
		"Run only scenarios that have changed relative to the specified git branch")
	flags.Int(FlagFetchCache, domain.DefaultCacheDuration,
		"Duration in seconds to cache the results of 'git fetch'")
	flags.Bool(FlagNoFetch, false,
		"Do not fetch the latest changes from the remote repository")

	for _, name := range []string{FlagBranch, FlagFetchCache, FlagNoFetch} {
		// SetAnnotation only fails for undeclared flags.
		if err := flags.SetAnnotation(name, ports.FlagGroupAnnotation, []string{c.Name()}); err != nil {
			panic(err)
		}
	}
}

// OnConfigLoaded remembers the project layout and opens the plugin's storage
// inside the project directory.
func (c *Controller) OnConfigLoaded(_ context.Context, cfg *domain.ProjectConfig) error {
	c.project = cfg
	storage, err := c.storageFactory.Create(StorageScope, cfg.ProjectDir)
	if err != nil {
		return err
	}
	c.storage = storage
	return nil
}

// OnArgParsed reads and validates the git-changed flags.
func (c *Controller) OnArgParsed(_ context.Context, flags *pflag.FlagSet) error {
	branch, err := flags.GetString(FlagBranch)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlagLookupFailed.Error()), "flag", FlagBranch)
	}
	cacheDuration, err := flags.GetInt(FlagFetchCache)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlagLookupFailed.Error()), "flag", FlagFetchCache)
	}
	noFetch, err := flags.GetBool(FlagNoFetch)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFlagLookupFailed.Error()), "flag", FlagNoFetch)
	}

	c.opts = domain.ChangedOptions{
		Branch:        branch,
		BranchSet:     flags.Changed(FlagBranch),
		CacheDuration: cacheDuration,
		NoFetch:       noFetch,
	}

	if c.opts.CacheDuration < 0 {
		return domain.NegativeCacheDurationError(c.opts.CacheDuration)
	}

	if c.opts.NoFetch && c.opts.CacheDuration != domain.DefaultCacheDuration {
		return domain.ConflictingFetchOptionsError()
	}

	if !c.opts.Enabled() {
		c.state = stateDisabled
	}
	return nil
}

// OnStartup fetches when the cached fetch is stale, then ignores every scenario
// whose file did not change relative to the reference branch.
func (c *Controller) OnStartup(ctx context.Context, scheduler ports.ScenarioScheduler) error {
	if c.state == stateDisabled || !c.opts.Enabled() {
		return nil
	}

	if !c.opts.NoFetch {
		if err := c.fetchIfStale(ctx); err != nil {
			return err
		}
	}

	target, err := c.scenariosDir()
	if err != nil {
		return err
	}

	changed, err := c.repo.ChangedFiles(ctx, c.opts.Branch, target)
	if err != nil {
		return err
	}
	c.noChanged = changed.Len() == 0

	ignored := 0
	for scenario := range scheduler.All() {
		if c.noChanged || !changed.Contains(scenario.Path) {
			scheduler.Ignore(scenario)
			ignored++
		}
	}

	c.logger.Debug(fmt.Sprintf("%d changed files relative to origin/%s, %d scenarios ignored",
		changed.Len(), c.opts.Branch, ignored))

	c.state = stateEvaluated
	return nil
}

// scenariosDir is the directory the host discovers scenarios in.
func (c *Controller) scenariosDir() (string, error) {
	if c.project != nil {
		return filepath.Join(c.project.ProjectDir, c.project.ScenariosDir), nil
	}
	cwd, err := c.getwd()
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrFailedToGetWorkingDir.Error())
	}
	return filepath.Join(cwd, domain.DefaultScenariosDir), nil
}

func (c *Controller) fetchIfStale(ctx context.Context) error {
	if c.storage == nil {
		return zerr.Wrap(domain.ErrStorageUnavailable, PluginName)
	}

	var seconds int64
	found, err := c.storage.Get(ctx, LastFetchedKey, &seconds)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read last fetch time"), "key", LastFetchedKey)
	}
	c.lastFetched = domain.NoTimestamp
	if found {
		c.lastFetched = domain.TimestampOf(seconds)
	}

	if !c.shouldFetch() {
		c.logger.Debug(fmt.Sprintf("skipping fetch, last fetch is within %ds", c.opts.CacheDuration))
		return nil
	}

	if err := c.repo.Fetch(ctx); err != nil {
		return err
	}
	c.lastFetched = domain.TimestampOf(c.now())
	return nil
}

func (c *Controller) shouldFetch() bool {
	seconds, ok := c.lastFetched.Get()
	return !ok || c.now()-seconds > int64(c.opts.CacheDuration)
}

func (c *Controller) now() int64 {
	return c.clock.Now().Unix()
}

// OnCleanup adds the "no changes" summary and persists the last fetch time.
func (c *Controller) OnCleanup(ctx context.Context, report ports.Report) error {
	if c.state == stateDisabled || !c.opts.Enabled() {
		return nil
	}

	if c.noChanged {
		report.AddSummary(c.summary())
	}

	seconds, ok := c.lastFetched.Get()
	if !ok {
		return nil
	}

	if c.storage == nil {
		return zerr.Wrap(domain.ErrStorageUnavailable, PluginName)
	}
	if err := c.storage.Put(ctx, LastFetchedKey, seconds); err != nil {
		return err
	}
	return c.storage.Flush(ctx)
}

func (c *Controller) summary() string {
	summary := fmt.Sprintf("No scenarios have changed relative to the '%s' branch", c.opts.Branch)
	if c.lastFetched.IsSet() {
		summary += " since the last fetch at " + c.lastFetched.Time().Format(time.DateTime)
	}
	return summary
}
