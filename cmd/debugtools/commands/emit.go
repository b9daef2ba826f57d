package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/willibrandon/debugtools"
)

// emitCmd creates the emit command.
func emitCmd() *cobra.Command {
	var (
		severity string
		caller   string
		color    string
	)

	cmd := &cobra.Command{
		Use:   "emit [words...]",
		Short: "Print one line on a channel",
		Long: `Print the given words as a single line on the debug, info or error channel.

Examples:
  # Print an info line with no caller label
  debugtools emit hello world

  # Print a red error line attributed to a source location
  debugtools emit --severity error --caller server.go:118 listener closed

  # Drop colour when piping into a file
  debugtools emit --severity debug --color auto cache warmed > out.log`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sev := debugtools.ParseSeverity(severity)
			switch sev {
			case debugtools.SeverityDebug, debugtools.SeverityInfo, debugtools.SeverityError:
			default:
				return fmt.Errorf("unsupported severity: %s", severity)
			}

			opts, err := channelOptions(cmd.OutOrStdout(), color)
			if err != nil {
				return err
			}
			m, err := debugtools.New(string(sev), opts...)
			if err != nil {
				return fmt.Errorf("failed to create channel: %w", err)
			}

			var at debugtools.CallerInfo
			if caller != "" {
				if at, err = parseCaller(caller); err != nil {
					return err
				}
			}

			m.BeginAt(at).Text(strings.Join(args, " ")).Emit()
			return nil
		},
	}

	cmd.Flags().StringVar(&severity, "severity", "info", "Channel to print on (debug, info, error)")
	cmd.Flags().StringVar(&caller, "caller", "", "Source location to label the line with, as file:line")
	cmd.Flags().StringVar(&color, "color", colorAlways, "Colour mode (always, never, auto)")

	return cmd
}

// parseCaller splits "path/to/file.go:42" into a CallerInfo.
func parseCaller(s string) (debugtools.CallerInfo, error) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return debugtools.CallerInfo{}, fmt.Errorf("invalid caller %q: expected file:line", s)
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil || line < 0 {
		return debugtools.CallerInfo{}, fmt.Errorf("invalid caller %q: bad line number", s)
	}
	return debugtools.CallerInfo{File: s[:i], Line: line}, nil
}
