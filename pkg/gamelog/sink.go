package gamelog

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// PermanentSink receives every formatted log line, regardless of the display
// threshold. The severity selects the sink's underlying channel; sinks must
// treat unrecognized severities as their default channel. Write must never
// fail or panic.
type PermanentSink interface {
	Write(level Severity, line string)
}

// DisplaySink receives threshold-passing lines for transient on-screen
// display. Implementations must silently discard lines when no display
// surface is available. Each call is an independent entry; lines never
// replace earlier ones.
type DisplaySink interface {
	Show(line string, color tcell.Color, duration time.Duration)
}

// Event is a single resolved log line as seen by the permanent stream.
type Event struct {
	Time  time.Time
	Level Severity
	Line  string
}
