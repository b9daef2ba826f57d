package debugtools

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSinks(t *testing.T) {
	inputs := []string{"", "hello", "[INFO][00:00:00] || x"}

	for _, in := range inputs {
		var plain, debug, errBuf bytes.Buffer

		NewPlainSink(&plain).Print(in)
		NewDebugSink(&debug).Print(in)
		NewErrorSink(&errBuf).Print(in)

		require.Equal(t, in+"\n", plain.String())
		require.NotContains(t, plain.String(), "\033[")
		require.Equal(t, "\033[34m"+in+"\033[0m\n", debug.String())
		require.Equal(t, "\033[1;31m"+in+"\033[0m\n", errBuf.String())
	}
}

func TestDefaultSinkFollowsSeverity(t *testing.T) {
	var buf bytes.Buffer

	require.IsType(t, &DebugSink{}, defaultSink(SeverityDebug, &buf))
	require.IsType(t, &PlainSink{}, defaultSink(SeverityInfo, &buf))
	require.IsType(t, &ErrorSink{}, defaultSink(SeverityError, &buf))
	require.IsType(t, &PlainSink{}, defaultSink(Severity("WARN"), &buf))
}

func TestNilWriterFallsBackToStdout(t *testing.T) {
	require.NotNil(t, NewPlainSink(nil).w)
	require.NotNil(t, NewDebugSink(nil).w)
	require.NotNil(t, NewErrorSink(nil).w)
}
