package log

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureOutput swaps os.Stdout and os.Stderr for pipes while f runs.
func captureOutput(f func()) (stdout, stderr string) {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	outCh := make(chan string)
	errCh := make(chan string)

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rOut)
		outCh <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, rErr)
		errCh <- buf.String()
	}()

	f()

	_ = wOut.Close()
	_ = wErr.Close()

	stdout = <-outCh
	stderr = <-errCh

	os.Stdout = oldStdout
	os.Stderr = oldStderr

	return stdout, stderr
}

func TestSetVerbose(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebugf_VerboseOff(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(false)

	stdout, stderr := captureOutput(func() {
		Debugf("test debug message")
	})

	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}

func TestLevels(t *testing.T) {
	originalVerbose := verbose
	defer func() { verbose = originalVerbose }()

	SetVerbose(true)

	tests := []struct {
		name     string
		logFunc  func(string, ...interface{})
		expected string
		toStderr bool
	}{
		{"Debug", Debugf, "[DBG] test message\n", false},
		{"Info", Infof, "[INF] test message\n", false},
		{"Warn", Warnf, "[WRN] test message\n", false},
		{"Error", Errorf, "[ERR] test message\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr := captureOutput(func() {
				tt.logFunc("test %s", "message")
			})

			// Pipes are not terminals, so no ANSI prefixes are expected.
			if tt.toStderr {
				assert.Empty(t, stdout)
				assert.Equal(t, tt.expected, stderr)
			} else {
				assert.Equal(t, tt.expected, stdout)
				assert.Empty(t, stderr)
			}
		})
	}
}

func TestForceStdErr(t *testing.T) {
	originalForceStdErr := forceStdErr
	defer func() { forceStdErr = originalForceStdErr }()

	SetForceStdErr(true)

	stdout, stderr := captureOutput(func() {
		Infof("test info to stderr")
	})

	assert.Empty(t, stdout)
	assert.Equal(t, "[INF] test info to stderr\n", stderr)
}

func TestDisableLogs(t *testing.T) {
	originalDisabled := disableLogs
	defer func() { disableLogs = originalDisabled }()

	DisableLogs()
	assert.True(t, IsDisabled())

	stdout, stderr := captureOutput(func() {
		Infof("hidden")
		Errorf("hidden")
	})

	assert.Empty(t, stdout)
	assert.Empty(t, stderr)
}
