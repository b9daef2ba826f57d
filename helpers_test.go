package debugtools

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fixedClock always reports 09:05:03 local time.
func fixedClock() time.Time {
	return time.Date(2024, time.March, 7, 9, 5, 3, 0, time.Local)
}

func newTestMessenger(t *testing.T, severity Severity, buf *bytes.Buffer) *Messenger {
	t.Helper()
	m, err := New(string(severity),
		WithSink(NewPlainSink(buf)),
		WithClock(fixedClock),
		WithMetrics(false),
	)
	require.NoError(t, err)
	return m
}
