package ports

import (
	"context"

	"github.com/spf13/pflag"
	"go.trai.ch/changed/internal/core/domain"
)

// FlagGroupAnnotation is the pflag annotation naming the help group of a plugin flag.
const FlagGroupAnnotation = "changed_flag_group"

// Plugin hooks into the run lifecycle.
//
// The hooks fire strictly in this order, each awaited before the next:
// OnConfigLoaded, OnArgParsed, OnStartup, OnCleanup. RegisterFlags is
// called once when the CLI is built.
//
//go:generate mockgen -source=plugin.go -destination=mocks/mock_plugin.go -package=mocks
type Plugin interface {
	// Name is the title of the plugin's flag group in help output.
	Name() string

	// RegisterFlags declares the plugin's command line flags.
	// Flags are annotated with FlagGroupAnnotation set to Name.
	RegisterFlags(flags *pflag.FlagSet)

	// OnConfigLoaded is called once the project configuration is known.
	OnConfigLoaded(ctx context.Context, cfg *domain.ProjectConfig) error

	// OnArgParsed validates and stores the parsed flag values.
	OnArgParsed(ctx context.Context, flags *pflag.FlagSet) error

	// OnStartup is called before any scenario runs and may ignore scheduled scenarios.
	OnStartup(ctx context.Context, scheduler ScenarioScheduler) error

	// OnCleanup is called after all scenarios ran.
	OnCleanup(ctx context.Context, report Report) error
}
