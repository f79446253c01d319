// Package log provides best-effort file-backed logging for the TUI.
// Nothing may write to stdout/stderr while the alt screen is active, so all
// diagnostics go to a log file. Enable with SPLITPANE_DEBUG=1.
package log

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// DebugEnv is the env var that enables debug logging.
const DebugEnv = "SPLITPANE_DEBUG"

var (
	// WarningLog records recoverable conditions (e.g. swallowed persistence
	// failures). ErrorLog records conditions that degrade functionality.
	WarningLog *log.Logger
	ErrorLog   *log.Logger
	DebugLog   *log.Logger

	logFile *os.File
	enabled bool
)

func init() {
	// Loggers are always non-nil so package users never guard against nil.
	discard := log.New(io.Discard, "", 0)
	WarningLog = discard
	ErrorLog = discard
	DebugLog = discard
}

func logFileName() string {
	return filepath.Join(os.TempDir(), "splitpane-debug.log")
}

// Initialize opens the log file and wires the package loggers if
// SPLITPANE_DEBUG=1 is set. Call once from main before starting the program.
func Initialize() {
	if os.Getenv(DebugEnv) != "1" {
		return
	}
	f, err := os.OpenFile(logFileName(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o666)
	if err != nil {
		// Leave the discard loggers in place; logging stays best-effort.
		return
	}
	logFile = f
	enabled = true
	flags := log.Ldate | log.Ltime | log.Lmicroseconds
	WarningLog = log.New(f, "WARN: ", flags)
	ErrorLog = log.New(f, "ERROR: ", flags)
	DebugLog = log.New(f, "DEBUG: ", flags)
	DebugLog.Printf("debug log: %s", logFileName())
}

// Enabled reports whether debug logging was activated by Initialize.
func Enabled() bool {
	return enabled
}

// Close flushes and closes the log file. Call on program exit.
func Close() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}
