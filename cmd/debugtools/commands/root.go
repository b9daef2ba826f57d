// Package commands implements CLI commands for debugtools.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/willibrandon/debugtools"
)

var version string

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "debugtools",
		Short: "Print tagged debug, info and error lines",
		Long: `debugtools prints lines through its three console channels.

Every line is tagged with its severity, the local time and, when known,
the source location it was logged from:

  [ERROR][14:03:27][main.go:42] || connection refused`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		versionCmd(),
		emitCmd(),
		demoCmd(),
	)

	return rootCmd
}

// Execute runs the CLI.
func Execute(v string) error {
	version = v
	return newRootCmd().Execute()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "debugtools version %s\n", version)
		},
	}
}

// Color modes accepted by --color.
const (
	colorAlways = "always"
	colorNever  = "never"
	colorAuto   = "auto"
)

// channelOptions resolves the writer and colour mode into messenger options.
func channelOptions(out io.Writer, mode string) ([]debugtools.Option, error) {
	colored := true
	switch mode {
	case colorAlways:
	case colorNever:
		colored = false
	case colorAuto:
		colored = isTerminal(out)
	default:
		return nil, fmt.Errorf("unsupported color mode: %s", mode)
	}

	if f, ok := out.(*os.File); ok && colored {
		out = colorable.NewColorable(f)
	}

	if !colored {
		return []debugtools.Option{debugtools.WithSink(debugtools.NewPlainSink(out))}, nil
	}
	return []debugtools.Option{debugtools.WithWriter(out)}, nil
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
