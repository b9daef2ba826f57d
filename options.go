package debugtools

import (
	"fmt"
	"io"
	"time"
)

// Option configures a messenger.
type Option func(*Config) error

// Clock returns the wall-clock time stamped onto each line.
type Clock func() time.Time

// Config holds the messenger configuration.
type Config struct {
	// Output
	Sink   Sink
	Writer io.Writer

	// Timestamps
	Clock Clock

	// Monitoring
	Metrics bool
}

// WithSink sets the sink the messenger owns.
func WithSink(sink Sink) Option {
	return func(c *Config) error {
		if sink == nil {
			return ErrNilSink
		}
		c.Sink = sink
		return nil
	}
}

// WithWriter builds the severity's default sink on top of w instead of stdout.
// It is ignored when WithSink is also given.
func WithWriter(w io.Writer) Option {
	return func(c *Config) error {
		if w == nil {
			return ErrNilWriter
		}
		c.Writer = w
		return nil
	}
}

// WithClock replaces the time source used for the HH:MM:SS stamp.
func WithClock(clock Clock) Option {
	return func(c *Config) error {
		if clock == nil {
			return ErrNilClock
		}
		c.Clock = clock
		return nil
	}
}

// WithMetrics toggles the prometheus counters recorded on every flush.
func WithMetrics(enabled bool) Option {
	return func(c *Config) error {
		c.Metrics = enabled
		return nil
	}
}

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		Clock:   time.Now,
		Metrics: true,
	}
}

// validate checks if the configuration is valid for the given severity.
func (c *Config) validate(severity Severity) error {
	if severity == "" {
		return ErrEmptySeverity
	}
	if c.Clock == nil {
		return fmt.Errorf("%s messenger: %w", severity, ErrNilClock)
	}
	return nil
}
