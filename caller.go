package debugtools

import (
	"runtime"
	"strconv"
	"strings"
)

// CallerInfo identifies the source line a message was logged from.
type CallerInfo struct {
	File string
	Line int
}

// Caller captures the location of its caller. skip 0 is the function calling
// Caller, skip 1 the function above it, and so on.
func Caller(skip int) CallerInfo {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return CallerInfo{}
	}
	return CallerInfo{File: file, Line: line}
}

// Label renders "<file>:<line>" using the last path segment of File. Both '/'
// and '\' count as separators, whatever the host OS, so paths recorded on
// another platform reduce to the same name. An empty File has no label.
func (c CallerInfo) Label() string {
	if c.File == "" {
		return ""
	}
	name := c.File
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name + ":" + strconv.Itoa(c.Line)
}

// String implements fmt.Stringer.
func (c CallerInfo) String() string {
	return c.Label()
}
