package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// The command tree is assembled from init() funcs spread across files, so
// structural conventions are easiest to enforce in one walk.

func TestCommandTreeFlagConventions(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		shorthands := make(map[string]string)
		cmd.LocalFlags().VisitAll(func(flag *pflag.Flag) {
			if flag.Usage == "" {
				t.Errorf("%s: flag --%s has no usage string", cmd.CommandPath(), flag.Name)
			}
			if flag.Shorthand != "" {
				if prev, ok := shorthands[flag.Shorthand]; ok {
					t.Errorf("%s: shorthand -%s used by both --%s and --%s",
						cmd.CommandPath(), flag.Shorthand, prev, flag.Name)
				}
				shorthands[flag.Shorthand] = flag.Name
			}
		})
	})
}

func TestCommandTreeHasShortDescriptions(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		if cmd.Short == "" {
			t.Errorf("%s: missing Short description", cmd.CommandPath())
		}
	})
}

func TestLeafCommandsAreRunnable(t *testing.T) {
	walkCommands(rootCmd, func(cmd *cobra.Command) {
		if len(cmd.Commands()) == 0 && !cmd.Runnable() {
			t.Errorf("%s: leaf command is not runnable", cmd.CommandPath())
		}
	})
}

func walkCommands(cmd *cobra.Command, fn func(*cobra.Command)) {
	fn(cmd)
	for _, sub := range cmd.Commands() {
		walkCommands(sub, fn)
	}
}
