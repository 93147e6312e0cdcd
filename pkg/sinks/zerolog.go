package sinks

import (
	"github.com/rs/zerolog"

	"github.com/gronkutils/gamelog/pkg/gamelog"
)

// ZerologSink routes the permanent log stream to a zerolog.Logger, selecting
// the zerolog level from the event's severity.
type ZerologSink struct {
	log zerolog.Logger
}

// NewZerologSink creates a sink writing through the given zerolog logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{log: logger}
}

// zerologLevel maps a severity to a zerolog level. zerolog has fewer levels
// than Severity, so Log and Display share Info. Unrecognized severities fall
// back to Info.
func zerologLevel(level gamelog.Severity) zerolog.Level {
	switch level {
	case gamelog.LevelVeryVerbose:
		return zerolog.TraceLevel
	case gamelog.LevelVerbose:
		return zerolog.DebugLevel
	case gamelog.LevelLog:
		return zerolog.InfoLevel
	case gamelog.LevelDisplay:
		return zerolog.InfoLevel
	case gamelog.LevelWarning:
		return zerolog.WarnLevel
	case gamelog.LevelError:
		return zerolog.ErrorLevel
	case gamelog.LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Write implements gamelog.PermanentSink. Fatal events go through WithLevel,
// which, unlike zerolog's Fatal, never terminates the host process.
func (s *ZerologSink) Write(level gamelog.Severity, line string) {
	s.log.WithLevel(zerologLevel(level)).Msg(line)
}
