// Package cli implements the cjlib command-line tool's command tree,
// following the NewRootCmd / one-New<Name>Cmd-per-subcommand,
// RunE-based structure used by eykd-prosemark-go's cmd package.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// debugFlag is the package-level switch for -v/--debug, matching the
// single global verbosity flag pattern: subcommands read it via
// newLogger rather than threading a flag value through every command.
var debugFlag bool

// newLogger builds the zap.Logger the CLI injects into the facade,
// matching edirooss-zmux-server's split between a quiet default and a
// verbose development config.
func newLogger() *zap.Logger {
	if !debugFlag {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// NewRootCmd creates the root cjlib command with all subcommands
// registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cjlib",
		Short:         "cjlib - a JSON document toolbox backed by an AVL-ordered map",
		SilenceErrors: false,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&debugFlag, "debug", "v", false, "enable verbose logging (and, for cat, a debug dump of the parsed tree)")

	root.AddCommand(newGetCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newRemoveCmd())
	root.AddCommand(newCatCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newFromYAMLCmd())
	return root
}
