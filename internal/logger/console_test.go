package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/harrison/tutorialbatch/internal/tutorial"
)

// TestNewConsoleLogger verifies the constructor creates a ConsoleLogger with the provided writer.
func TestNewConsoleLogger(t *testing.T) {
	t.Run("with valid writer", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewConsoleLogger(buf, "info")

		if logger == nil {
			t.Fatal("expected non-nil logger")
		}
		if logger.writer != buf {
			t.Error("writer not set correctly")
		}
		if logger.logLevel != "info" {
			t.Errorf("expected log level %q, got %q", "info", logger.logLevel)
		}
		if logger.colorOutput {
			t.Error("expected no color for a buffer")
		}
	})

	t.Run("with nil writer", func(t *testing.T) {
		logger := NewConsoleLogger(nil, "info")
		if logger == nil {
			t.Fatal("expected non-nil logger even with nil writer")
		}
		// Must not panic.
		logger.LogInfo("discarded")
		logger.LogSummary(tutorial.Summary{}, time.Second)
	})

	t.Run("normalizes level", func(t *testing.T) {
		for input, want := range map[string]string{
			"DEBUG":   "debug",
			" warn ":  "warn",
			"":        "info",
			"verbose": "info",
		} {
			if got := NewConsoleLogger(nil, input).logLevel; got != want {
				t.Errorf("level %q normalized to %q, want %q", input, got, want)
			}
		}
	})
}

// TestLevelFiltering verifies messages below the configured level are dropped.
func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		dropped  []string
	}{
		{level: "trace", expected: []string{"[TRACE]", "[DEBUG]", "[INFO]", "[WARN]", "[ERROR]"}},
		{level: "info", expected: []string{"[INFO]", "[WARN]", "[ERROR]"}, dropped: []string{"[TRACE]", "[DEBUG]"}},
		{level: "error", expected: []string{"[ERROR]"}, dropped: []string{"[DEBUG]", "[INFO]", "[WARN]"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := NewConsoleLogger(buf, tt.level)

			logger.LogTrace("t")
			logger.LogDebug("d")
			logger.LogInfo("i")
			logger.LogWarn("w")
			logger.LogError("e")

			output := buf.String()
			for _, want := range tt.expected {
				if !strings.Contains(output, want) {
					t.Errorf("expected %q in output %q", want, output)
				}
			}
			for _, notWant := range tt.dropped {
				if strings.Contains(output, notWant) {
					t.Errorf("did not expect %q in output %q", notWant, output)
				}
			}
		})
	}
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogWarn("error reading /data/4: permission denied")

	output := buf.String()
	if !strings.HasPrefix(output, "[") {
		t.Error("expected output to start with timestamp [")
	}
	if !strings.HasSuffix(output, "[WARN] error reading /data/4: permission denied\n") {
		t.Errorf("unexpected format: %q", output)
	}
}

func TestLogPlanStart(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info").LogPlanStart("/data/tutorials")

	if !strings.Contains(buf.String(), "Scanning /data/tutorials") {
		t.Errorf("unexpected output: %q", buf.String())
	}

	buf.Reset()
	NewConsoleLogger(buf, "warn").LogPlanStart("/data/tutorials")
	if buf.Len() != 0 {
		t.Errorf("expected no output at warn level, got %q", buf.String())
	}
}

// TestLogSummary verifies summary formatting.
func TestLogSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	logger.LogSummary(tutorial.Summary{Candidates: 10, Included: 7, Skipped: 3}, 90*time.Second)

	want := "Tutorials: 10 found, 7 included, 3 skipped (1m30s)"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected %q in %q", want, buf.String())
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{5 * time.Second, "5s"},
		{2 * time.Minute, "2m"},
		{90 * time.Second, "1m30s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatColorizedSummaryContainsCounts(t *testing.T) {
	got := formatColorizedSummary(tutorial.Summary{Candidates: 2, Included: 1, Skipped: 1}, newColorScheme())
	for _, want := range []string{"2 found", "1 included", "1 skipped"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

// TestConcurrentLogging verifies the logger is safe for concurrent use.
func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "info")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.LogInfo("message")
		}()
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "[INFO] message\n"); got != 20 {
		t.Errorf("expected 20 lines, got %d", got)
	}
}

func TestNoOpLoggerSatisfiesGeneratorLogger(t *testing.T) {
	var _ tutorial.Logger = NewNoOpLogger()
	var _ tutorial.Logger = NewConsoleLogger(nil, "info")
}
