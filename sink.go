package debugtools

import (
	"fmt"
	"strings"

	"github.com/willibrandon/mtlog/core"
)

// Property names read from an event to label its caller.
const (
	SourceFileProperty = "SourceFile"
	SourceLineProperty = "SourceLine"
)

// EventSink routes mtlog events onto the debug, info and error channels.
// It implements the core.LogEventSink interface from mtlog.
type EventSink struct {
	debug   *Messenger
	info    *Messenger
	errorCh *Messenger
}

// Ensure we implement the interface
var _ core.LogEventSink = (*EventSink)(nil)

// NewEventSink creates a sink writing through the given channels. A nil
// channel falls back to the matching default.
func NewEventSink(debug, info, errorCh *Messenger) *EventSink {
	if debug == nil {
		debug = Debugger()
	}
	if info == nil {
		info = Informer()
	}
	if errorCh == nil {
		errorCh = Errorer()
	}
	return &EventSink{debug: debug, info: info, errorCh: errorCh}
}

// Emit renders the event's template and prints it on the channel matching its
// level, stamped with the event's own timestamp.
// Implements core.LogEventSink from mtlog.
func (s *EventSink) Emit(event *core.LogEvent) {
	if event == nil {
		return
	}

	b := s.route(event.Level).newBuilder(eventCaller(event.Properties))
	b.at(event.Timestamp).
		Text(RenderTemplate(event.MessageTemplate, event.Properties)).
		Emit()
}

// Close has nothing to release; the channels outlive the sink.
func (s *EventSink) Close() error {
	return nil
}

func (s *EventSink) route(level core.LogEventLevel) *Messenger {
	switch severityForLevel(level) {
	case SeverityDebug:
		return s.debug
	case SeverityError:
		return s.errorCh
	default:
		return s.info
	}
}

func eventCaller(props map[string]any) CallerInfo {
	file, _ := props[SourceFileProperty].(string)
	if file == "" {
		return CallerInfo{}
	}
	var line int
	switch v := props[SourceLineProperty].(type) {
	case int:
		line = v
	case int64:
		line = int(v)
	case uint64:
		line = int(v)
	}
	return CallerInfo{File: file, Line: line}
}

// RenderTemplate substitutes each {Name} hole in template with the matching
// property. Capturing prefixes (@, $) and format suffixes (:fmt, ,align) are
// ignored. Holes without a property are left as written, and doubled braces
// render as literal braces.
func RenderTemplate(template string, props map[string]any) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}

	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			sb.WriteByte('{')
			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			sb.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				sb.WriteString(template[i:])
				return sb.String()
			}
			hole := template[i : i+end+1]
			if v, ok := props[propertyName(hole)]; ok {
				sb.WriteString(fmt.Sprint(v))
			} else {
				sb.WriteString(hole)
			}
			i += end
		default:
			sb.WriteByte(c)
		}
	}

	return sb.String()
}

// propertyName extracts Name from "{@Name:format}".
func propertyName(hole string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(hole, "{"), "}")
	name = strings.TrimLeft(name, "@$")
	if i := strings.IndexAny(name, ":,"); i >= 0 {
		name = name[:i]
	}
	return name
}
