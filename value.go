package debugtools

import "strconv"

// Value is one fragment of a message. The set of implementations is closed:
// booleans, integers, characters and text.
type Value interface {
	text() string
}

type (
	boolValue bool
	intValue  int64
	charValue rune
	textValue string
)

func (v boolValue) text() string { return strconv.FormatBool(bool(v)) }
func (v intValue) text() string { return strconv.FormatInt(int64(v), 10) }
func (v charValue) text() string { return string(rune(v)) }
func (v textValue) text() string { return string(v) }

// Bool renders as "true" or "false".
func Bool(v bool) Value { return boolValue(v) }

// Int renders in decimal.
func Int(v int) Value { return intValue(v) }

// Int64 renders in decimal.
func Int64(v int64) Value { return intValue(v) }

// Char renders as the character itself.
func Char(v rune) Value { return charValue(v) }

// Text renders verbatim.
func Text(v string) Value { return textValue(v) }
