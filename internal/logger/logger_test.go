package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetVerbose(t *testing.T) {
	// Reset state after test
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	// Initially not verbose
	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	// Enable verbose
	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	// Disable verbose
	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	output := buf.String()
	if output == "" {
		t.Error("expected output when verbose is enabled")
	}
	if output != "[DEBUG] test message arg\n" {
		t.Errorf("unexpected output: %q", output)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")

	if buf.Len() > 0 {
		t.Error("expected no output when verbose is disabled")
	}
}

func TestSection(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Test Section")

	output := buf.String()
	if output != "\n=== Test Section ===\n" {
		t.Errorf("unexpected section output: %q", output)
	}
}

func TestInfo(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info message %d", 42)

	output := buf.String()
	if output != "[INFO] info message 42\n" {
		t.Errorf("unexpected info output: %q", output)
	}
}

func TestInfo_NotVerboseStillReachesFile(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
		CloseFile()
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	path := filepath.Join(t.TempDir(), "scraper.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile: %v", err)
	}

	Info("matched %d of %d", 7, 10)
	CloseFile()

	if buf.Len() > 0 {
		t.Error("expected no stderr output when verbose is disabled")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "INFO:matched 7 of 10") {
		t.Errorf("log file missing info line: %q", string(data))
	}
}

func TestWarn(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Warn("warning message")

	output := buf.String()
	if output != "[WARN] warning message\n" {
		t.Errorf("unexpected warn output: %q", output)
	}
}

func TestSetFile_AppendsTimestampedLevels(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
		CloseFile()
	}()

	SetOutput(&bytes.Buffer{})
	path := filepath.Join(t.TempDir(), "scraper.log")
	if err := SetFile(path); err != nil {
		t.Fatalf("SetFile: %v", err)
	}

	Warn("no results for %q", "Ace Pharmacy")
	Error("register unreachable")
	CloseFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got %d: %q", len(lines), string(data))
	}
	if !strings.Contains(lines[0], `WARNING:no results for "Ace Pharmacy"`) {
		t.Errorf("unexpected warn line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR:register unreachable") {
		t.Errorf("unexpected error line: %q", lines[1])
	}
	// Timestamp prefix like "2026-08-25 10:30:01,123".
	for _, line := range lines {
		if len(line) < len(timeLayout) || line[4] != '-' || line[19] != ',' {
			t.Errorf("line missing timestamp prefix: %q", line)
		}
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	SetOutput(&buf)

	// Run concurrent operations
	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	// Wait for all goroutines
	for i := 0; i < 10; i++ {
		<-done
	}
	// Test passes if no race conditions
}
