package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/changed/internal/core/ports"
)

type flagGroup struct {
	name  string
	flags *pflag.FlagSet
}

// splitFlagGroups separates flags annotated with a plugin group from the rest.
// Groups keep the order in which their first flag appears.
func splitFlagGroups(flags *pflag.FlagSet) (*pflag.FlagSet, []flagGroup) {
	local := pflag.NewFlagSet("local", pflag.ContinueOnError)
	var groups []flagGroup
	index := map[string]int{}

	flags.VisitAll(func(f *pflag.Flag) {
		names := f.Annotations[ports.FlagGroupAnnotation]
		if len(names) == 0 {
			local.AddFlag(f)
			return
		}

		i, ok := index[names[0]]
		if !ok {
			i = len(groups)
			index[names[0]] = i
			groups = append(groups, flagGroup{
				name:  names[0],
				flags: pflag.NewFlagSet(names[0], pflag.ContinueOnError),
			})
		}
		groups[i].flags.AddFlag(f)
	})

	return local, groups
}

// groupedUsage prints the usage of cmd with each plugin's flags under its own heading.
func groupedUsage(cmd *cobra.Command) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Usage:\n  %s\n", cmd.UseLine())

	local, groups := splitFlagGroups(cmd.LocalFlags())
	if local.HasFlags() {
		fmt.Fprintf(&b, "\nFlags:\n%s", local.FlagUsages())
	}
	for _, g := range groups {
		fmt.Fprintf(&b, "\n%s:\n%s", g.name, g.flags.FlagUsages())
	}
	if cmd.HasAvailableInheritedFlags() {
		fmt.Fprintf(&b, "\nGlobal Flags:\n%s", cmd.InheritedFlags().FlagUsages())
	}

	_, err := fmt.Fprint(cmd.OutOrStderr(), b.String())
	return err
}
