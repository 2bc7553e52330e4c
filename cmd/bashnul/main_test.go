package main

import (
	"bytes"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/require"
)

func cLocale(key string) string {
	if key == "LC_ALL" {
		return "C"
	}
	return ""
}

type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, syscall.EPIPE
}

func TestRunUsage(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"no arguments", []string{"bashnul"}},
		{"no program name", nil},
		{"unknown flag", []string{"bashnul", "-x"}},
		{"both flags", []string{"bashnul", "-e", "-d"}},
		{"combined flags", []string{"bashnul", "-ed"}},
		{"trailing junk", []string{"bashnul", "-e1"}},
		{"no dash", []string{"bashnul", "e"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			code := run(tc.args, cLocale, strings.NewReader("data"), stdout, stderr)
			require.Equal(t, exitUsage, code)
			require.Contains(t, stderr.String(), "Usage: bashnul -d|-e")
			require.Empty(t, stdout.String())
		})
	}
}

func TestRunLocale(t *testing.T) {
	for _, lc := range []string{"", "en_US.UTF-8", "POSIX", "c"} {
		t.Run(lc, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			getenv := func(string) string { return lc }
			code := run([]string{"bashnul", "-e"}, getenv, strings.NewReader("data"), stdout, stderr)
			require.Equal(t, exitFailure, code)
			require.Equal(t, "please set LC_ALL=C\n", stderr.String())
			require.Empty(t, stdout.String())
		})
	}
}

func TestRun(t *testing.T) {
	cases := []struct {
		name   string
		flag   string
		input  string
		output string
		code   int
		stderr string
	}{
		{"encode", "-e", "\x41\x00\x42\x01", "\x41\x01\x02\x42\x01\x03", 0, ""},
		{"encode empty", "-e", "", "", 0, ""},
		{"decode", "-d", "\x41\x01\x02\x42\x01\x03", "\x41\x00\x42\x01", 0, ""},
		{"decode raw NUL", "-d", "\x41\x00", "", exitFailure, "encountered NUL"},
		{"decode unknown escape", "-d", "\x01\x05", "", exitFailure, "unknown 01 05 sequence"},
		{"decode truncated", "-d", "\x41\x01", "\x41", exitFailure, "stream ended with 01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
			code := run([]string{"bashnul", tc.flag}, cLocale, strings.NewReader(tc.input), stdout, stderr)
			require.Equal(t, tc.code, code)
			require.Equal(t, tc.output, stdout.String())
			if tc.stderr == "" {
				require.Empty(t, stderr.String())
			} else {
				require.Contains(t, stderr.String(), tc.stderr)
			}
		})
	}
}

func TestRunSinkGone(t *testing.T) {
	stderr := new(bytes.Buffer)
	code := run([]string{"bashnul", "-e"}, cLocale, strings.NewReader("data"), brokenPipe{}, stderr)
	require.Equal(t, exitFailure, code)
	require.Empty(t, stderr.String())
}
