// Package logger provides logging for the pharmacy-scraper CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// are printed to stderr to help users follow the enrichment pipeline.
// Independently of verbose mode, a run log file can be attached with
// SetFile; info, warning and error messages are always appended to it
// with timestamps so long scraping runs leave an audit trail.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// timeLayout matches the run-log timestamp format, millisecond precision.
const timeLayout = "2006-01-02 15:04:05,000"

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	logFile *os.File
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetFile attaches a run log file, created or appended to at path.
// Any previously attached file is closed first.
func SetFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	return nil
}

// CloseFile detaches and closes the run log file, if one is attached.
func CloseFile() {
	mu.Lock()
	defer mu.Unlock()
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

func logToFile(level, format string, args ...any) {
	if logFile == nil {
		return
	}
	ts := time.Now().Format(timeLayout)
	fmt.Fprintf(logFile, ts+" "+level+":"+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[DEBUG] "+format+"\n", args...)
		logToFile("DEBUG", format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info records an informational message. It is printed to stderr when
// verbose mode is enabled and always appended to the run log file.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[INFO] "+format+"\n", args...)
	}
	logToFile("INFO", format, args...)
}

// Warn records a warning. It is printed to stderr when verbose mode is
// enabled and always appended to the run log file.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[WARN] "+format+"\n", args...)
	}
	logToFile("WARNING", format, args...)
}

// Error records an error. It is printed to stderr when verbose mode is
// enabled and always appended to the run log file.
func Error(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "[ERROR] "+format+"\n", args...)
	}
	logToFile("ERROR", format, args...)
}
