package debugtools

import (
	"strings"
	"time"
)

// Builder accumulates the fragments of one message. Emit flushes it to the
// owning messenger and resets it, so a builder may be reused for the next
// message. A Builder is not safe for concurrent use.
type Builder struct {
	m      *Messenger
	buf    strings.Builder
	caller string
	when   time.Time
}

// Bool appends "true" or "false".
func (b *Builder) Bool(v bool) *Builder {
	return b.Append(Bool(v))
}

// Int appends v in decimal.
func (b *Builder) Int(v int) *Builder {
	return b.Append(Int(v))
}

// Int64 appends v in decimal.
func (b *Builder) Int64(v int64) *Builder {
	return b.Append(Int64(v))
}

// Char appends a single character.
func (b *Builder) Char(v rune) *Builder {
	return b.Append(Char(v))
}

// Text appends v verbatim.
func (b *Builder) Text(v string) *Builder {
	return b.Append(Text(v))
}

// Append appends each value in order.
func (b *Builder) Append(values ...Value) *Builder {
	for _, v := range values {
		if v == nil {
			continue
		}
		b.buf.WriteString(v.text())
	}
	return b
}

// SetCaller replaces the caller label printed with the next line.
func (b *Builder) SetCaller(caller CallerInfo) *Builder {
	b.caller = caller.Label()
	return b
}

// Caller returns the label that will be printed, or "" when there is none.
func (b *Builder) Caller() string {
	return b.caller
}

// String returns the text accumulated so far.
func (b *Builder) String() string {
	return b.buf.String()
}

// Emit writes the line and resets the builder.
func (b *Builder) Emit() {
	b.m.flush(b.when, b.caller, b.buf.String())
	b.reset()
}

func (b *Builder) at(when time.Time) *Builder {
	b.when = when
	return b
}

func (b *Builder) reset() {
	b.buf.Reset()
	b.caller = ""
	b.when = time.Time{}
}
