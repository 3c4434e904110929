// Package logger provides the leveled logger used across the loaders and the CLI.
// Console output goes to stderr so that command output on stdout stays machine readable.
package logger

// Logger defines the logging interface
type Logger interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
