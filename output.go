package debugtools

import (
	"io"

	"github.com/mattn/go-colorable"
)

// ANSI escape codes wrapped around coloured lines.
const (
	colorBlue    = "\033[34m"
	colorBoldRed = "\033[1;31m"
	colorReset   = "\033[0m"
)

// Sink renders a finished line to the console. Print never fails; write
// errors from the underlying writer are dropped.
type Sink interface {
	Print(line string)
}

// stdout returns the console writer, translating escape codes on Windows consoles that lack VT support.
func stdout() io.Writer {
	return colorable.NewColorableStdout()
}

// PlainSink writes lines without decoration.
type PlainSink struct {
	w io.Writer
}

// NewPlainSink creates a plain sink on w, or on stdout when w is nil.
func NewPlainSink(w io.Writer) *PlainSink {
	if w == nil {
		w = stdout()
	}
	return &PlainSink{w: w}
}

// Print writes line followed by a newline.
func (s *PlainSink) Print(line string) {
	_, _ = io.WriteString(s.w, line+"\n")
}

// DebugSink writes lines in blue.
type DebugSink struct {
	w io.Writer
}

// NewDebugSink creates a debug sink on w, or on stdout when w is nil.
func NewDebugSink(w io.Writer) *DebugSink {
	if w == nil {
		w = stdout()
	}
	return &DebugSink{w: w}
}

// Print writes line wrapped in blue.
func (s *DebugSink) Print(line string) {
	printColored(s.w, colorBlue, line)
}

// ErrorSink writes lines in bold red.
type ErrorSink struct {
	w io.Writer
}

// NewErrorSink creates an error sink on w, or on stdout when w is nil.
func NewErrorSink(w io.Writer) *ErrorSink {
	if w == nil {
		w = stdout()
	}
	return &ErrorSink{w: w}
}

// Print writes line wrapped in bold red.
func (s *ErrorSink) Print(line string) {
	printColored(s.w, colorBoldRed, line)
}

// printColored issues a single write so the escape codes never separate from the line.
func printColored(w io.Writer, color, line string) {
	_, _ = io.WriteString(w, color+line+colorReset+"\n")
}

// defaultSink picks the sink matching a severity's console colour.
func defaultSink(severity Severity, w io.Writer) Sink {
	switch severity {
	case SeverityDebug:
		return NewDebugSink(w)
	case SeverityError:
		return NewErrorSink(w)
	default:
		return NewPlainSink(w)
	}
}
