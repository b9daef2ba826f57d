package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/willibrandon/debugtools"
	"github.com/willibrandon/debugtools/internal/logger"
	"github.com/willibrandon/mtlog"
	"github.com/willibrandon/mtlog/core"
)

// demoCmd creates the demo command.
func demoCmd() *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print sample lines on every channel",
		Long: `Print a sample line on the debug, info and error channels, then the
same three levels again routed from an mtlog logger.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := runDemo(cmd.OutOrStdout(), color)
			if err != nil {
				return err
			}
			logger.Log.Info("Demo complete: {lines} lines printed", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&color, "color", colorAlways, "Colour mode (always, never, auto)")

	return cmd
}

// runDemo prints the sample lines to out and returns how many were printed.
func runDemo(out io.Writer, color string) (int, error) {
	opts, err := channelOptions(out, color)
	if err != nil {
		return 0, err
	}

	var channels [3]*debugtools.Messenger
	for i, sev := range []debugtools.Severity{
		debugtools.SeverityDebug,
		debugtools.SeverityInfo,
		debugtools.SeverityError,
	} {
		channels[i], err = debugtools.New(string(sev), opts...)
		if err != nil {
			return 0, fmt.Errorf("failed to create %s channel: %w", sev, err)
		}
	}
	debug, info, errorCh := channels[0], channels[1], channels[2]

	debug.Begin().Text("cache size ").Int(128).Text(", warm ").Bool(true).Emit()
	info.Begin().Text("listening on port ").Int(8080).Char('/').Text("tcp").Emit()
	errorCh.Log(debugtools.Text("retries exhausted after "), debugtools.Int(3), debugtools.Text(" attempts"))

	log := mtlog.New(
		mtlog.WithSink(debugtools.NewEventSink(debug, info, errorCh)),
		mtlog.WithMinimumLevel(core.VerboseLevel),
	)
	log.Debug("Loaded {Count} plugins", 4)
	log.Info("User {UserId} signed in", 42)
	log.Error("Payment {PaymentId} declined", "pay-17")

	return 6, nil
}
