package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/willibrandon/debugtools"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestEmitCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
	}{
		{
			name:    "info default",
			args:    []string{"emit", "hello", "world"},
			pattern: `^\[INFO\]\[\d{2}:\d{2}:\d{2}\] \|\| hello world\n$`,
		},
		{
			name:    "error with caller",
			args:    []string{"emit", "--severity", "error", "--caller", "pkg/server.go:118", "listener", "closed"},
			pattern: `^\x1b\[1;31m\[ERROR\]\[\d{2}:\d{2}:\d{2}\]\[server\.go:118\] \|\| listener closed\x1b\[0m\n$`,
		},
		{
			name:    "debug coloured",
			args:    []string{"emit", "--severity", "DEBUG", "cache", "warm"},
			pattern: `^\x1b\[34m\[DEBUG\]\[\d{2}:\d{2}:\d{2}\] \|\| cache warm\x1b\[0m\n$`,
		},
		{
			name:    "debug never coloured",
			args:    []string{"emit", "--severity", "debug", "--color", "never", "x"},
			pattern: `^\[DEBUG\]\[\d{2}:\d{2}:\d{2}\] \|\| x\n$`,
		},
		{
			name:    "auto drops colour off a terminal",
			args:    []string{"emit", "--severity", "error", "--color", "auto", "x"},
			pattern: `^\[ERROR\]\[\d{2}:\d{2}:\d{2}\] \|\| x\n$`,
		},
		{
			name:    "windows caller path",
			args:    []string{"emit", "--caller", `C:\src\main.go:7`, "up"},
			pattern: `^\[INFO\]\[\d{2}:\d{2}:\d{2}\]\[main\.go:7\] \|\| up\n$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.NoError(t, err)
			require.Regexp(t, tt.pattern, out)
		})
	}
}

func TestEmitCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown severity", []string{"emit", "--severity", "trace", "x"}, "unsupported severity"},
		{"unknown color", []string{"emit", "--color", "rainbow", "x"}, "unsupported color mode"},
		{"caller without line", []string{"emit", "--caller", "main.go", "x"}, "expected file:line"},
		{"caller bad line", []string{"emit", "--caller", "main.go:abc", "x"}, "bad line number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, tt.args...)
			require.ErrorContains(t, err, tt.want)
			require.Empty(t, out)
		})
	}
}

func TestParseCaller(t *testing.T) {
	got, err := parseCaller("/a/b/c.go:12")
	require.NoError(t, err)
	require.Equal(t, debugtools.CallerInfo{File: "/a/b/c.go", Line: 12}, got)

	for _, bad := range []string{"", ":1", "c.go:", "c.go:-3"} {
		_, err := parseCaller(bad)
		require.Error(t, err, bad)
	}
}

func TestVersionCommand(t *testing.T) {
	version = "1.2.3"
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	require.Equal(t, "debugtools version 1.2.3\n", out)
}

func TestRunDemo(t *testing.T) {
	var out bytes.Buffer
	n, err := runDemo(&out, colorNever)
	require.NoError(t, err)
	require.Equal(t, 6, n)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	require.Regexp(t, `^\[DEBUG\]\[\d{2}:\d{2}:\d{2}\]\[demo\.go:\d+\] \|\| cache size 128, warm true$`, lines[0])
	require.Regexp(t, `^\[INFO\]\[\d{2}:\d{2}:\d{2}\]\[demo\.go:\d+\] \|\| listening on port 8080/tcp$`, lines[1])
	require.Regexp(t, `^\[ERROR\]\[\d{2}:\d{2}:\d{2}\]\[demo\.go:\d+\] \|\| retries exhausted after 3 attempts$`, lines[2])

	_, err = runDemo(&out, "sometimes")
	require.Error(t, err)
}
