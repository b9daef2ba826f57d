// Package debugtools provides severity channels that render tagged, colourised lines to the console.
package debugtools

import "errors"

var (
	// ErrEmptySeverity is returned when a messenger is configured without a channel name.
	ErrEmptySeverity = errors.New("severity name is empty")

	// ErrNilSink indicates a nil sink was supplied.
	ErrNilSink = errors.New("sink is nil")

	// ErrNilWriter indicates a nil writer was supplied.
	ErrNilWriter = errors.New("writer is nil")

	// ErrNilClock indicates a nil clock was supplied.
	ErrNilClock = errors.New("clock is nil")

	// ErrUnknownSeverity is returned when a messenger cannot replace any of the default channels.
	ErrUnknownSeverity = errors.New("severity does not name a default channel")
)
