package debugtools

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/willibrandon/debugtools/monitoring"
)

// Messenger is a severity channel. It owns one sink and serialises writes to it,
// so lines emitted from concurrent goroutines never interleave.
type Messenger struct {
	mu       sync.Mutex
	severity Severity
	sink     Sink
	clock    Clock
	metrics  bool
}

// New creates a messenger for the named severity. The name is upper-cased.
// Without WithSink the sink follows the severity: blue for DEBUG, red for
// ERROR, plain otherwise.
func New(severity string, opts ...Option) (*Messenger, error) {
	config := defaultConfig()

	for _, opt := range opts {
		if err := opt(config); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
	}

	sev := ParseSeverity(severity)
	if err := config.validate(sev); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	sink := config.Sink
	if sink == nil {
		sink = defaultSink(sev, config.Writer)
	}

	return &Messenger{
		severity: sev,
		sink:     sink,
		clock:    config.Clock,
		metrics:  config.Metrics,
	}, nil
}

// MustNew is like New but panics on an invalid configuration.
func MustNew(severity string, opts ...Option) *Messenger {
	m, err := New(severity, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// Severity returns the channel name.
func (m *Messenger) Severity() Severity {
	return m.severity
}

// Begin starts a message tagged with the location of the code calling Begin.
func (m *Messenger) Begin() *Builder {
	return m.newBuilder(Caller(1))
}

// Log appends values in order and emits the line, tagged with the location of
// the code calling Log.
func (m *Messenger) Log(values ...Value) {
	m.newBuilder(Caller(1)).Append(values...).Emit()
}

// BeginAt starts a message labelled with caller. A zero CallerInfo prints no label.
func (m *Messenger) BeginAt(caller CallerInfo) *Builder {
	return m.newBuilder(caller)
}

func (m *Messenger) newBuilder(caller CallerInfo) *Builder {
	return &Builder{m: m, caller: caller.Label()}
}

// format composes "[SEVERITY][HH:MM:SS][caller] || text". Without a caller the
// bracketed segment collapses to a single space.
func (m *Messenger) format(when time.Time, caller, text string) string {
	var sb strings.Builder
	sb.Grow(len(m.severity) + len(caller) + len(text) + 20)

	sb.WriteByte('[')
	sb.WriteString(string(m.severity))
	sb.WriteString("][")
	sb.WriteString(Timestamp(when))
	sb.WriteByte(']')
	if caller != "" {
		sb.WriteByte('[')
		sb.WriteString(caller)
		sb.WriteString("] ")
	} else {
		sb.WriteByte(' ')
	}
	sb.WriteString("|| ")
	sb.WriteString(text)

	return sb.String()
}

// flush renders one line and hands it to the sink. A zero when means now.
func (m *Messenger) flush(when time.Time, caller, text string) {
	if when.IsZero() {
		when = m.clock()
	}
	line := m.format(when, caller, text)

	m.mu.Lock()
	m.sink.Print(line)
	m.mu.Unlock()

	if m.metrics {
		monitoring.RecordLine(string(m.severity), len(line), caller != "")
	}
}
