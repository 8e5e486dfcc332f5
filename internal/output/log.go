// SPDX-License-Identifier: MPL-2.0

// Package output provides the resolver's terminal logging surface.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the global logger instance.
var Logger *log.Logger

func init() {
	Logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
}

// SetupLogging configures the logger based on verbosity.
func SetupLogging(verbose bool) {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	Logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: verbose,
		ReportCaller:    verbose,
	})
}

// Debug logs a debug message.
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Info logs an info message.
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Warn logs a warning message.
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message.
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}

// stdout is the writer Print, Println, and Stdout target. Tests swap it
// out with SetStdoutOverride instead of reading the real os.Stdout.
var stdout io.Writer = os.Stdout

// SetStdoutOverride redirects Stdout() and Print/Println to w. Intended
// for tests; call Reset when done.
func SetStdoutOverride(w io.Writer) { stdout = w }

// Reset clears the stdout test override, restoring os.Stdout.
func Reset() { stdout = os.Stdout }

// Print prints a message to stdout without any formatting.
func Print(msg string) {
	io.WriteString(stdout, msg)
}

// Println prints a message to stdout with a newline.
func Println(msg string) {
	io.WriteString(stdout, msg+"\n")
}

// Stdout returns the writer commands render tables and JSON to.
func Stdout() io.Writer {
	return stdout
}
