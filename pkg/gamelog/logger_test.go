package gamelog_test

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gronkutils/gamelog/pkg/gamelog"
)

// permWrite records one call to a permanent sink.
type permWrite struct {
	level gamelog.Severity
	line  string
}

type permRecorder struct {
	writes []permWrite
}

func (r *permRecorder) Write(level gamelog.Severity, line string) {
	r.writes = append(r.writes, permWrite{level: level, line: line})
}

// showCall records one call to a display sink.
type showCall struct {
	line     string
	color    tcell.Color
	duration time.Duration
}

type displayRecorder struct {
	shows []showCall
}

func (r *displayRecorder) Show(line string, color tcell.Color, duration time.Duration) {
	r.shows = append(r.shows, showCall{line: line, color: color, duration: duration})
}

// testActor is a plain named caller.
type testActor struct {
	name string
}

func (a *testActor) DisplayName() string { return a.name }

// testPart is a caller owned by another named caller.
type testPart struct {
	name  string
	owner gamelog.Contextual
}

func (p *testPart) DisplayName() string       { return p.name }
func (p *testPart) Owner() gamelog.Contextual { return p.owner }

func newTestLogger() (*gamelog.Logger, *permRecorder, *displayRecorder) {
	logger := gamelog.New()
	perm := &permRecorder{}
	display := &displayRecorder{}
	logger.SetPermanentSink(perm)
	logger.SetDisplaySink(display)
	return logger, perm, display
}

func TestLogLineFormat(t *testing.T) {
	tests := []struct {
		name     string
		caller   gamelog.Contextual
		message  string
		level    gamelog.Severity
		expected string
	}{
		{"named caller", &testActor{name: "Player"}, "spawned", gamelog.LevelDisplay, "[Display]\tPlayer: spawned"},
		{"owned part", &testPart{name: "Weapon", owner: &testActor{name: "Player"}}, "fired", gamelog.LevelWarning, "[Warning]\tPlayer.Weapon: fired"},
		{"orphan part", &testPart{name: "Weapon"}, "fired", gamelog.LevelLog, "[Log]\tWeapon: fired"},
		{"part with nameless owner", &testPart{name: "Weapon", owner: &testActor{}}, "fired", gamelog.LevelLog, "[Log]\tWeapon: fired"},
		{"nil caller", nil, "msg", gamelog.LevelDisplay, "[Display]\tUnknownContext: msg"},
		{"nameless caller", &testActor{}, "msg", gamelog.LevelDisplay, "[Display]\tUnknownContext: msg"},
		{"unknown severity", &testActor{name: "Player"}, "msg", gamelog.Severity(99), "[Unknown]\tPlayer: msg"},
	}

	for _, test := range tests {
		logger, perm, _ := newTestLogger()
		logger.Log(test.caller, test.message, test.level)

		if len(perm.writes) != 1 {
			t.Errorf("%s: permanent sink got %d writes, want 1", test.name, len(perm.writes))
			continue
		}
		if perm.writes[0].line != test.expected {
			t.Errorf("%s: line = %q, want %q", test.name, perm.writes[0].line, test.expected)
		}
		if perm.writes[0].level != test.level {
			t.Errorf("%s: level = %v, want %v", test.name, perm.writes[0].level, test.level)
		}
	}
}

func TestDisplayThresholdGating(t *testing.T) {
	levels := []gamelog.Severity{
		gamelog.LevelVeryVerbose,
		gamelog.LevelVerbose,
		gamelog.LevelLog,
		gamelog.LevelDisplay,
		gamelog.LevelWarning,
		gamelog.LevelError,
		gamelog.LevelFatal,
	}
	caller := &testActor{name: "Player"}

	for _, threshold := range levels {
		logger, perm, display := newTestLogger()
		logger.SetDisplayThreshold(threshold)

		for _, level := range levels {
			before := len(display.shows)
			logger.Log(caller, "msg", level)

			shown := len(display.shows) > before
			if want := level >= threshold; shown != want {
				t.Errorf("threshold %s, level %s: shown = %v, want %v", threshold, level, shown, want)
			}
		}

		// The permanent sink is never gated.
		if len(perm.writes) != len(levels) {
			t.Errorf("threshold %s: permanent sink got %d writes, want %d", threshold, len(perm.writes), len(levels))
		}
	}
}

func TestDefaultThresholdIsDisplay(t *testing.T) {
	logger, _, display := newTestLogger()
	if got := logger.DisplayThreshold(); got != gamelog.LevelDisplay {
		t.Fatalf("default threshold = %v, want LevelDisplay", got)
	}

	logger.Log(&testActor{name: "a"}, "msg", gamelog.LevelLog)
	if len(display.shows) != 0 {
		t.Errorf("LevelLog reached the display sink under the default threshold")
	}
	logger.Log(&testActor{name: "a"}, "msg", gamelog.LevelDisplay)
	if len(display.shows) != 1 {
		t.Errorf("LevelDisplay did not reach the display sink under the default threshold")
	}
}

func TestPrintUsesDefaultSeverity(t *testing.T) {
	logger, perm, _ := newTestLogger()
	logger.Print(&testActor{name: "Player"}, "hello")

	if len(perm.writes) != 1 {
		t.Fatalf("permanent sink got %d writes, want 1", len(perm.writes))
	}
	if perm.writes[0].level != gamelog.DefaultSeverity {
		t.Errorf("Print logged at %v, want %v", perm.writes[0].level, gamelog.DefaultSeverity)
	}
}

func TestDisplayColorAndDuration(t *testing.T) {
	logger, _, display := newTestLogger()
	logger.Log(&testActor{name: "Player"}, "msg", gamelog.LevelError)

	if len(display.shows) != 1 {
		t.Fatalf("display sink got %d shows, want 1", len(display.shows))
	}
	show := display.shows[0]
	if show.color != gamelog.ColorFor(gamelog.LevelError) {
		t.Errorf("show color = %v, want %v", show.color, gamelog.ColorFor(gamelog.LevelError))
	}
	if show.duration != gamelog.DisplayDuration {
		t.Errorf("show duration = %v, want %v", show.duration, gamelog.DisplayDuration)
	}
}

func TestRepeatedLogsAreIndependent(t *testing.T) {
	logger, perm, display := newTestLogger()
	caller := &testActor{name: "Player"}

	logger.Log(caller, "same", gamelog.LevelWarning)
	logger.Log(caller, "same", gamelog.LevelWarning)

	if len(perm.writes) != 2 || len(display.shows) != 2 {
		t.Fatalf("got %d permanent writes and %d shows, want 2 and 2", len(perm.writes), len(display.shows))
	}
	if perm.writes[0].line != perm.writes[1].line {
		t.Errorf("repeated lines differ: %q vs %q", perm.writes[0].line, perm.writes[1].line)
	}
}

func TestLogWithoutSinks(t *testing.T) {
	// A logger with no sinks must not panic.
	logger := gamelog.New()
	logger.Log(&testActor{name: "Player"}, "msg", gamelog.LevelFatal)
	logger.Log(nil, "msg", gamelog.LevelDisplay)
}

func TestCustomResolver(t *testing.T) {
	logger, perm, _ := newTestLogger()
	logger.SetResolver(func(gamelog.Contextual) string { return "Everywhere" })

	logger.Log(nil, "msg", gamelog.LevelDisplay)
	if perm.writes[0].line != "[Display]\tEverywhere: msg" {
		t.Errorf("line = %q, want custom resolver context", perm.writes[0].line)
	}

	// An empty resolution still degrades to the sentinel.
	logger.SetResolver(func(gamelog.Contextual) string { return "" })
	logger.Log(&testActor{name: "Player"}, "msg", gamelog.LevelDisplay)
	if perm.writes[1].line != "[Display]\tUnknownContext: msg" {
		t.Errorf("line = %q, want sentinel context", perm.writes[1].line)
	}
}
