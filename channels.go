package debugtools

import (
	"fmt"
	"sync"
)

// The default channels are built on first use and shared process-wide.
var defaults struct {
	once    sync.Once
	mu      sync.RWMutex
	debugCh *Messenger
	infoCh  *Messenger
	errorCh *Messenger
}

func initDefaults() {
	defaults.once.Do(func() {
		defaults.debugCh = MustNew(string(SeverityDebug))
		defaults.infoCh = MustNew(string(SeverityInfo))
		defaults.errorCh = MustNew(string(SeverityError))
	})
}

// Debugger returns the default debug channel.
func Debugger() *Messenger {
	initDefaults()
	defaults.mu.RLock()
	defer defaults.mu.RUnlock()
	return defaults.debugCh
}

// Informer returns the default info channel.
func Informer() *Messenger {
	initDefaults()
	defaults.mu.RLock()
	defer defaults.mu.RUnlock()
	return defaults.infoCh
}

// Errorer returns the default error channel.
func Errorer() *Messenger {
	initDefaults()
	defaults.mu.RLock()
	defer defaults.mu.RUnlock()
	return defaults.errorCh
}

// SetDefault replaces the default channel matching m's severity and returns the
// one it replaced.
func SetDefault(m *Messenger) (*Messenger, error) {
	if m == nil {
		return nil, fmt.Errorf("set default: nil messenger")
	}
	initDefaults()
	defaults.mu.Lock()
	defer defaults.mu.Unlock()

	var slot **Messenger
	switch m.severity {
	case SeverityDebug:
		slot = &defaults.debugCh
	case SeverityInfo:
		slot = &defaults.infoCh
	case SeverityError:
		slot = &defaults.errorCh
	default:
		return nil, fmt.Errorf("set default %q: %w", m.severity, ErrUnknownSeverity)
	}

	prev := *slot
	*slot = m
	return prev, nil
}

// Debug starts a debug message tagged with the caller's location.
func Debug() *Builder {
	return Debugger().newBuilder(Caller(1))
}

// Info starts an info message tagged with the caller's location.
func Info() *Builder {
	return Informer().newBuilder(Caller(1))
}

// Error starts an error message tagged with the caller's location.
func Error() *Builder {
	return Errorer().newBuilder(Caller(1))
}

// Debugv emits values on the debug channel in one call.
func Debugv(values ...Value) {
	Debugger().newBuilder(Caller(1)).Append(values...).Emit()
}

// Infov emits values on the info channel in one call.
func Infov(values ...Value) {
	Informer().newBuilder(Caller(1)).Append(values...).Emit()
}

// Errorv emits values on the error channel in one call.
func Errorv(values ...Value) {
	Errorer().newBuilder(Caller(1)).Append(values...).Emit()
}
