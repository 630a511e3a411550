package logging

import (
	"bytes"
	"strings"
	"testing"
)

// captureLogOutput is a test helper to capture log output
func captureLogOutput(level string, fn func()) string {
	var buf bytes.Buffer

	originalStdout, originalStderr, originalSuccess := stdoutLogger, stderrLogger, successOutput
	defer func() {
		stdoutLogger, stderrLogger, successOutput = originalStdout, originalStderr, originalSuccess
	}()

	SetOutput(&buf)
	SetLevel(level)

	fn()

	return strings.TrimSpace(buf.String())
}

// TestLogLevels tests that logging functions work at different levels
func TestLogLevels(t *testing.T) {
	tests := []struct {
		name     string
		logFunc  func()
		expected string
	}{
		{
			name:     "Info level",
			logFunc:  func() { Info("test info message") },
			expected: "test info message",
		},
		{
			name:     "Warn level",
			logFunc:  func() { Warn("test warn message") },
			expected: "test warn message",
		},
		{
			name:     "Error level",
			logFunc:  func() { Error("test error message") },
			expected: "test error message",
		},
		{
			name:     "Success level",
			logFunc:  func() { Success("created budget %s", "q1") },
			expected: "created budget q1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput("DEBUG", tt.logFunc)

			if !strings.Contains(output, tt.expected) {
				t.Errorf("Expected output to contain '%s', got '%s'", tt.expected, output)
			}
		})
	}
}

// TestSetLevel tests that log level filtering works correctly
func TestSetLevel(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		logFunc      func()
		shouldOutput bool
	}{
		{
			name:         "Info logged at INFO level",
			level:        "INFO",
			logFunc:      func() { Info("info message") },
			shouldOutput: true,
		},
		{
			name:         "Debug filtered at INFO level",
			level:        "INFO",
			logFunc:      func() { Debug("debug message") },
			shouldOutput: false,
		},
		{
			name:         "Success filtered at ERROR level",
			level:        "ERROR",
			logFunc:      func() { Success("done") },
			shouldOutput: false,
		},
		{
			name:         "Error logged at WARN level",
			level:        "WARN",
			logFunc:      func() { Error("error message") },
			shouldOutput: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := captureLogOutput(tt.level, tt.logFunc)

			if tt.shouldOutput && output == "" {
				t.Error("Expected output but got none")
			}
			if !tt.shouldOutput && output != "" {
				t.Errorf("Expected no output but got: %s", output)
			}
		})
	}
}

func TestLevelWriter(t *testing.T) {
	output := captureLogOutput("DEBUG", func() {
		w := NewLevelWriter("warn", "resty")
		w.Write([]byte("first line\n\nsecond line\n"))
	})

	for _, want := range []string{"resty: first line", "resty: second line"} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q, got %q", want, output)
		}
	}
}

func TestValidateLogLevel(t *testing.T) {
	for _, level := range []string{"DEBUG", "INFO", "WARN", "ERROR"} {
		if err := ValidateLogLevel(level); err != nil {
			t.Errorf("ValidateLogLevel(%q) unexpected error: %v", level, err)
		}
	}
	for _, level := range []string{"", "debug", "TRACE"} {
		if err := ValidateLogLevel(level); err == nil {
			t.Errorf("ValidateLogLevel(%q) expected error", level)
		}
	}
}
