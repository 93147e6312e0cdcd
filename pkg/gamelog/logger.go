package gamelog

import (
	"fmt"
	"sync"
	"time"
)

// DefaultSeverity is the severity used when a caller has no opinion, such as
// by Print.
const DefaultSeverity = LevelDisplay

// DisplayDuration is how long a line stays visible on the display sink.
const DisplayDuration = 5 * time.Second

// Logger formats log events and routes them to two sinks: every line goes to
// the permanent sink, and lines at or above the display threshold also go to
// the display sink, colored by severity. A Logger is safe for concurrent
// use. Logging never fails; a missing sink, caller or color degrades
// silently.
type Logger struct {
	mu        sync.Mutex
	permanent PermanentSink
	display   DisplaySink
	resolve   Resolver
	threshold Severity
}

// New creates and initializes a new Logger instance. Both sinks start unset;
// the display threshold starts at LevelDisplay.
func New() *Logger {
	return &Logger{
		resolve:   ResolveContext,
		threshold: LevelDisplay,
	}
}

// SetPermanentSink sets the destination for the unconditional log stream.
func (l *Logger) SetPermanentSink(sink PermanentSink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.permanent = sink
}

// SetDisplaySink sets the destination for threshold-gated on-screen lines.
func (l *Logger) SetDisplaySink(sink DisplaySink) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.display = sink
}

// SetResolver replaces the context resolver. A nil resolver restores
// ResolveContext.
func (l *Logger) SetResolver(resolve Resolver) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if resolve == nil {
		resolve = ResolveContext
	}
	l.resolve = resolve
}

// SetDisplayThreshold sets the minimum severity required for a line to also
// appear on the display sink. The permanent sink is never gated.
func (l *Logger) SetDisplayThreshold(level Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// DisplayThreshold returns the current display threshold.
func (l *Logger) DisplayThreshold() Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// Log resolves the caller to a context name, formats the line and routes it.
// The permanent sink receives every line; the display sink receives the line
// iff level meets the display threshold.
func (l *Logger) Log(caller Contextual, message string, level Severity) {
	l.mu.Lock()
	permanent := l.permanent
	display := l.display
	resolve := l.resolve
	threshold := l.threshold
	l.mu.Unlock()

	name := resolve(caller)
	if name == "" {
		name = UnknownContext
	}

	line := fmt.Sprintf("[%s]\t%s: %s", level, name, message)

	if permanent != nil {
		permanent.Write(level, line)
	}
	if display != nil && level >= threshold {
		display.Show(line, ColorFor(level), DisplayDuration)
	}
}

// Print logs a message at the default severity.
func (l *Logger) Print(caller Contextual, message string) {
	l.Log(caller, message, DefaultSeverity)
}

// ---- Global / Default Logger ----

var defaultLogger = New()

// Default returns the default logger instance.
func Default() *Logger {
	return defaultLogger
}

// SetDefault replaces the default logger instance.
func SetDefault(logger *Logger) {
	if logger != nil {
		defaultLogger = logger
	}
}

// SetDisplayThreshold sets the display threshold of the default logger.
func SetDisplayThreshold(level Severity) {
	defaultLogger.SetDisplayThreshold(level)
}

// Log logs a message using the default logger.
func Log(caller Contextual, message string, level Severity) {
	defaultLogger.Log(caller, message, level)
}

// Print logs a message at the default severity using the default logger.
func Print(caller Contextual, message string) {
	defaultLogger.Print(caller, message)
}
