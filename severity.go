package debugtools

import (
	"strings"

	"github.com/willibrandon/mtlog/core"
)

// Severity names a channel. It is always upper case.
type Severity string

const (
	// SeverityDebug is the blue debug channel.
	SeverityDebug Severity = "DEBUG"
	// SeverityInfo is the uncoloured info channel.
	SeverityInfo Severity = "INFO"
	// SeverityError is the red error channel.
	SeverityError Severity = "ERROR"
)

// ParseSeverity upper-cases name into a Severity.
func ParseSeverity(name string) Severity {
	return Severity(strings.ToUpper(name))
}

// String returns the tag printed between the first pair of brackets.
func (s Severity) String() string {
	return string(s)
}

// severityForLevel maps an mtlog level onto one of the three channels.
func severityForLevel(level core.LogEventLevel) Severity {
	switch level {
	case core.VerboseLevel, core.DebugLevel:
		return SeverityDebug
	case core.ErrorLevel, core.FatalLevel:
		return SeverityError
	default:
		return SeverityInfo
	}
}
