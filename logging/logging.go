package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

const (
	// TraceLevel indicates a log message's level of criticality
	TraceLevel = iota
	// DebugLevel indicates a log message's level of criticality
	DebugLevel
	// InfoLevel indicates a log message's level of criticality
	InfoLevel
	// WarnLevel indicates a log message's level of criticality
	WarnLevel
	// ErrorLevel indicates a log message's level of criticality
	ErrorLevel
	// FatalLevel indicates a log message's level of criticality
	FatalLevel
)

var (
	threshold int32 = WarnLevel
	logger          = log.New(os.Stderr, "", log.LstdFlags)
)

// LogLevelToString translates a log level enum to a string representation
func LogLevelToString(level int) string {
	switch level {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	default:
		return "TRACE"
	}
}

// SetLevel discards messages below the given level. Defaults to WarnLevel.
func SetLevel(level int) {
	atomic.StoreInt32(&threshold, int32(level))
}

// SetOutput redirects log messages to w
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Enabled returns true iff messages at the given level are currently emitted
func Enabled(level int) bool {
	return int32(level) >= atomic.LoadInt32(&threshold)
}

// Logf emits a message at the given level
func Logf(level int, format string, args ...interface{}) {
	if !Enabled(level) {
		return
	}
	logger.Output(3, fmt.Sprintf("%s: %s", LogLevelToString(level), fmt.Sprintf(format, args...)))
}

// Debugf emits a message at DebugLevel
func Debugf(format string, args ...interface{}) {
	Logf(DebugLevel, format, args...)
}

// Infof emits a message at InfoLevel
func Infof(format string, args ...interface{}) {
	Logf(InfoLevel, format, args...)
}

// Warnf emits a message at WarnLevel
func Warnf(format string, args ...interface{}) {
	Logf(WarnLevel, format, args...)
}
